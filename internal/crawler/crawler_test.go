package crawler

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/apetre/climatico-scraper/internal/pages"
)

// stubPage is one page the fake session can serve.
type stubPage struct {
	source  string
	next    string
	hasNext bool
}

// stubSession replays a fixed pagination chain without a browser.
type stubSession struct {
	pages    map[string]stubPage
	current  string
	navErrs  map[string]error
	visited  []string
}

func (s *stubSession) Navigate(url string) error {
	if err := s.navErrs[url]; err != nil {
		return err
	}
	if _, ok := s.pages[url]; !ok {
		return fmt.Errorf("unknown page: %s", url)
	}
	s.current = url
	s.visited = append(s.visited, url)
	return nil
}

func (s *stubSession) Source() (string, error) {
	return s.pages[s.current].source, nil
}

func (s *stubSession) NextLinkHref() (string, bool, error) {
	page := s.pages[s.current]
	return page.next, page.hasNext, nil
}

func threePageChain() *stubSession {
	return &stubSession{
		pages: map[string]stubPage{
			"https://www.climatico.ro/aer-conditionat/vrv": {
				source:  "<html>page one</html>",
				next:    "https://www.climatico.ro/aer-conditionat/vrv?p=2",
				hasNext: true,
			},
			"https://www.climatico.ro/aer-conditionat/vrv?p=2": {
				source:  "<html>page two</html>",
				next:    "https://www.climatico.ro/aer-conditionat/vrv?p=3",
				hasNext: true,
			},
			"https://www.climatico.ro/aer-conditionat/vrv?p=3": {
				source: "<html>page three</html>",
			},
		},
		navErrs: map[string]error{},
	}
}

func TestCrawlListingFollowsChainToTheEnd(t *testing.T) {
	session := threePageChain()
	store := pages.NewStore(t.TempDir())
	c := New(session, store, nil)

	captured, err := c.CrawlListing(context.Background(), "https://www.climatico.ro/aer-conditionat/vrv")

	require.NoError(t, err)
	assert.Equal(t, 3, captured)
	assert.Len(t, session.visited, 3)

	files, err := store.Files()
	require.NoError(t, err)
	assert.Len(t, files, 3)
}

func TestCrawlListingRejectsBadStartURL(t *testing.T) {
	tests := []struct {
		name string
		url  string
	}{
		{"unparseable", "http://exa mple.com/"},
		{"relative", "aer-conditionat/vrv"},
		{"empty", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			session := threePageChain()
			c := New(session, pages.NewStore(t.TempDir()), nil)

			captured, err := c.CrawlListing(context.Background(), tt.url)

			assert.ErrorIs(t, err, ErrBadStartURL)
			assert.Zero(t, captured)
			assert.Empty(t, session.visited, "nothing may be fetched for a bad start URL")
		})
	}
}

func TestCrawlListingNavigationFailureIsFatal(t *testing.T) {
	session := threePageChain()
	navErr := errors.New("connection reset")
	session.navErrs["https://www.climatico.ro/aer-conditionat/vrv?p=2"] = navErr

	store := pages.NewStore(t.TempDir())
	c := New(session, store, nil)

	captured, err := c.CrawlListing(context.Background(), "https://www.climatico.ro/aer-conditionat/vrv")

	assert.ErrorIs(t, err, navErr)
	assert.Equal(t, 1, captured)

	// The capture from before the failure stays on disk.
	files, ferr := store.Files()
	require.NoError(t, ferr)
	assert.Len(t, files, 1)
}

func TestCrawlListingBrokenNextLinkAborts(t *testing.T) {
	session := threePageChain()
	page := session.pages["https://www.climatico.ro/aer-conditionat/vrv"]
	page.next = "/aer-conditionat/vrv?p=2"
	session.pages["https://www.climatico.ro/aer-conditionat/vrv"] = page

	c := New(session, pages.NewStore(t.TempDir()), nil)

	captured, err := c.CrawlListing(context.Background(), "https://www.climatico.ro/aer-conditionat/vrv")

	assert.ErrorIs(t, err, ErrPaginationBroken)
	assert.NotErrorIs(t, err, ErrBadStartURL)
	assert.Equal(t, 1, captured)
}

func TestCrawlListingMissingNextHrefAborts(t *testing.T) {
	session := threePageChain()
	page := session.pages["https://www.climatico.ro/aer-conditionat/vrv"]
	page.next = ""
	page.hasNext = true
	session.pages["https://www.climatico.ro/aer-conditionat/vrv"] = page

	c := New(session, pages.NewStore(t.TempDir()), nil)

	_, err := c.CrawlListing(context.Background(), "https://www.climatico.ro/aer-conditionat/vrv")

	assert.ErrorIs(t, err, ErrPaginationBroken)
}

func TestCrawlListingNamingFailureSkipsCaptureOnly(t *testing.T) {
	// An opaque-origin page cannot be named; its capture is skipped but
	// its next link still advances the chain.
	session := &stubSession{
		pages: map[string]stubPage{
			"data:text/html,listing": {
				source:  "<html>unnameable</html>",
				next:    "https://www.climatico.ro/aer-conditionat/vrv?p=3",
				hasNext: true,
			},
			"https://www.climatico.ro/aer-conditionat/vrv?p=3": {
				source: "<html>page three</html>",
			},
		},
		navErrs: map[string]error{},
	}

	store := pages.NewStore(t.TempDir())
	c := New(session, store, nil)

	captured, err := c.CrawlListing(context.Background(), "data:text/html,listing")

	require.NoError(t, err)
	assert.Equal(t, 1, captured)
	assert.Len(t, session.visited, 2)
}

func TestCrawlListingStopsOnCancelledContext(t *testing.T) {
	session := threePageChain()
	c := New(session, pages.NewStore(t.TempDir()), nil)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := c.CrawlListing(ctx, "https://www.climatico.ro/aer-conditionat/vrv")

	assert.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, session.visited)
}

package crawler

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/url"

	"github.com/apetre/climatico-scraper/internal/observability"
	"github.com/apetre/climatico-scraper/internal/pages"
)

var (
	// ErrBadStartURL means the configured first page URL did not parse.
	// Nothing has been fetched when this is returned.
	ErrBadStartURL = errors.New("invalid start page URL")
	// ErrPaginationBroken means a page declared a next-page link whose
	// target is not a usable URL. Distinct from running out of pages.
	ErrPaginationBroken = errors.New("next page link is not a valid URL")
)

// Session is the browser capability the crawler drives. It is owned
// exclusively by one crawl from start to finish.
type Session interface {
	Navigate(url string) error
	Source() (string, error)
	NextLinkHref() (string, bool, error)
}

// Crawler walks a listing's pagination chain with a single browser
// session and persists every rendered page through a capture store.
type Crawler struct {
	session Session
	store   *pages.Store
	logger  *slog.Logger
}

func New(session Session, store *pages.Store, logger *slog.Logger) *Crawler {
	if logger == nil {
		logger = slog.Default()
	}
	return &Crawler{
		session: session,
		store:   store,
		logger:  logger.With("component", "crawler"),
	}
}

// CrawlListing visits startURL and every successive page reachable through
// the head-level next link, saving each rendered page to the capture
// store. It returns the number of pages captured.
//
// Failures are handled per contract: a navigation failure aborts the
// remaining chain (pages already captured stay on disk), a naming failure
// skips only that page's capture, and a next link with an unusable target
// aborts with ErrPaginationBroken. There is no page bound and no cycle
// detection; the target site is trusted to terminate its chain.
func (c *Crawler) CrawlListing(ctx context.Context, startURL string) (int, error) {
	pageURL, err := url.Parse(startURL)
	if err != nil || !pageURL.IsAbs() {
		return 0, fmt.Errorf("%w: %q", ErrBadStartURL, startURL)
	}

	c.logger.Info("starting listing crawl", "url", startURL)

	captured := 0
	for {
		select {
		case <-ctx.Done():
			return captured, ctx.Err()
		default:
		}

		if err := c.session.Navigate(pageURL.String()); err != nil {
			return captured, fmt.Errorf("navigation to %s failed: %w", pageURL, err)
		}

		name, err := pages.FileNameForURL(pageURL)
		if err != nil {
			c.logger.Error("could not determine capture file name, skipping page",
				"url", pageURL.String(), "error", err)
		} else {
			source, err := c.session.Source()
			if err != nil {
				return captured, fmt.Errorf("reading source of %s failed: %w", pageURL, err)
			}
			if err := c.store.Save(name, []byte(source)); err != nil {
				return captured, err
			}
			c.logger.Info("saved listing page", "url", pageURL.String(), "file", name)
			observability.PagesCaptured.Inc()
			captured++
		}

		href, found, err := c.session.NextLinkHref()
		if err != nil {
			return captured, fmt.Errorf("next page probe failed: %w", err)
		}
		if !found {
			c.logger.Info("no more pages left", "pages_captured", captured)
			return captured, nil
		}

		next, err := url.Parse(href)
		if err != nil || !next.IsAbs() {
			return captured, fmt.Errorf("%w: %q", ErrPaginationBroken, href)
		}
		pageURL = next
	}
}

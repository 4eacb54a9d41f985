package pages

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileNameForURL(t *testing.T) {
	tests := []struct {
		name     string
		url      string
		expected string
		wantErr  bool
	}{
		{
			name:     "plain path without query",
			url:      "https://www.climatico.ro/aer-conditionat/vrv",
			expected: "https__www.climatico.ro__443__slash_aer-conditionat_slash_vrv.html",
		},
		{
			name:     "path with query string",
			url:      "https://www.climatico.ro/aer-conditionat/vrv?p=2&order=price",
			expected: "https__www.climatico.ro__443__slash_aer-conditionat_slash_vrv__p_eq_2_order_eq_price.html",
		},
		{
			name:     "explicit port is kept",
			url:      "http://localhost:8080/listing",
			expected: "http__localhost__8080__slash_listing.html",
		},
		{
			name:     "http default port",
			url:      "http://example.com/a",
			expected: "http__example.com__80__slash_a.html",
		},
		{
			name:    "data url has an opaque origin",
			url:     "data:text/html,hello",
			wantErr: true,
		},
		{
			name:    "mailto url has an opaque origin",
			url:     "mailto:someone@example.com",
			wantErr: true,
		},
		{
			name:    "scheme without a default port",
			url:     "gopher://example.com/listing",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			u, err := url.Parse(tt.url)
			require.NoError(t, err)

			name, err := FileNameForURL(u)

			if tt.wantErr {
				assert.ErrorIs(t, err, ErrOpaqueOrigin)
				assert.Empty(t, name)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.expected, name)
			}
		})
	}
}

// Distinct URLs can escape to the same name. This is an accepted property
// of the readable-name scheme, not a defect to be fixed with hashing.
func TestFileNameForURLAcceptedCollision(t *testing.T) {
	a, err := url.Parse("https://example.com/a/b")
	require.NoError(t, err)
	b, err := url.Parse("https://example.com/a_slash_b")
	require.NoError(t, err)

	nameA, err := FileNameForURL(a)
	require.NoError(t, err)
	nameB, err := FileNameForURL(b)
	require.NoError(t, err)

	assert.Equal(t, nameA, nameB)
}

func TestFileNameForURLIsDeterministic(t *testing.T) {
	u, err := url.Parse("https://www.climatico.ro/aer-conditionat/vrv?p=3")
	require.NoError(t, err)

	first, err := FileNameForURL(u)
	require.NoError(t, err)

	second, err := FileNameForURL(u)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

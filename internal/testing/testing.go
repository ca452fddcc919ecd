// package testing contains shared testing utilities
package testing

import (
	"context"
	"net/http"

	"github.com/feldhop/the-album-club-app/internal/catalog"
)

// MockCatalog is a test double for [catalog.Service] returning canned results.
type MockCatalog struct {
	Artists      []catalog.Artist
	Albums       []catalog.Album
	Err          error
	SearchCall   int
	AlbumsCall   int
	LastAlbumsID int64
}

func (m *MockCatalog) SearchArtists(ctx context.Context, query string) ([]catalog.Artist, error) {
	if query == "" {
		return []catalog.Artist{}, nil
	}
	m.SearchCall++
	if m.Err != nil {
		return nil, m.Err
	}
	return m.Artists, nil
}

func (m *MockCatalog) ListAlbums(ctx context.Context, artistID int64) ([]catalog.Album, error) {
	if artistID <= 0 {
		return []catalog.Album{}, nil
	}
	m.AlbumsCall++
	m.LastAlbumsID = artistID
	if m.Err != nil {
		return nil, m.Err
	}
	return m.Albums, nil
}

func (m *MockCatalog) Name() string { return "mock" }

// MockRoundTripper allows custom HTTP responses for testing
type MockRoundTripper struct {
	response *http.Response
	err      error
	calls    int
}

func NewMockRoundTripper(r *http.Response, e error) *MockRoundTripper {
	return &MockRoundTripper{response: r, err: e}
}

func (m *MockRoundTripper) RoundTrip(*http.Request) (*http.Response, error) {
	m.calls++
	return m.response, m.err
}

// Calls reports how many requests passed through the round tripper.
func (m *MockRoundTripper) Calls() int {
	return m.calls
}

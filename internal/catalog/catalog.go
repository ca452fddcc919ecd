// package catalog defines interface Service for the external music catalog
// API (Deezer) providing artist search and album listings.
package catalog

import "context"

// Service is the interface for music catalog providers that can search
// artists by name and list an artist's albums.
type Service interface {
	// SearchArtists searches the catalog by artist name. An empty query
	// returns an empty result without calling upstream.
	SearchArtists(ctx context.Context, query string) ([]Artist, error)

	// ListAlbums lists an artist's albums by catalog artist id. A
	// non-positive id returns an empty result without calling upstream.
	// Only the first page of the upstream response is returned.
	ListAlbums(ctx context.Context, artistID int64) ([]Album, error)

	// Name returns the name of the catalog provider (e.g., "Deezer")
	Name() string
}

// Artist is the minimal artist shape exposed to clients.
type Artist struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// Album is the minimal album shape exposed to clients. Cover carries the
// large cover art URL.
type Album struct {
	ID    int64  `json:"id"`
	Title string `json:"title"`
	Cover string `json:"cover"`
}

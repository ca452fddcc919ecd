// Deezer implementation of [Service]
//
// Response shapes based on https://developers.deezer.com/api
package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"github.com/feldhop/the-album-club-app/internal/shared"
	"golang.org/x/time/rate"
)

const defaultBaseURL = "https://api.deezer.com"

// deezerArtist is an artist record inside a Deezer data envelope.
type deezerArtist struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// deezerAlbum is an album record inside a Deezer data envelope. CoverBig is
// the large cover art variant.
type deezerAlbum struct {
	ID       int64  `json:"id"`
	Title    string `json:"title"`
	CoverBig string `json:"cover_big"`
}

// DeezerService implements the Service interface against the Deezer API.
// Requests are rate limited with a [rate.Limiter]; Deezer's public catalog
// endpoints need no authentication.
type DeezerService struct {
	baseURL    string
	httpClient *http.Client
	limiter    *rate.Limiter
}

// NewDeezerService creates a Deezer catalog client. baseURL falls back to the
// public API when empty, client falls back to [http.DefaultClient], and a
// non-positive rps disables rate limiting.
func NewDeezerService(baseURL string, client *http.Client, rps float64, burst int) *DeezerService {
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	if client == nil {
		client = http.DefaultClient
	}

	limit := rate.Inf
	if rps > 0 {
		limit = rate.Limit(rps)
	}
	if burst <= 0 {
		burst = 1
	}

	return &DeezerService{
		baseURL:    baseURL,
		httpClient: client,
		limiter:    rate.NewLimiter(limit, burst),
	}
}

func (s *DeezerService) Name() string {
	return "Deezer"
}

// SearchArtists searches Deezer for artists matching the query. Fails closed
// on an empty query. Upstream duplicates are passed through unchanged.
func (s *DeezerService) SearchArtists(ctx context.Context, query string) ([]Artist, error) {
	if query == "" {
		return []Artist{}, nil
	}

	endpoint := fmt.Sprintf("/search/artist?q=%s", url.QueryEscape(query))

	var envelope struct {
		Data []deezerArtist `json:"data"`
	}
	if err := s.doRequest(ctx, endpoint, &envelope); err != nil {
		return nil, err
	}
	if envelope.Data == nil {
		return nil, &shared.UpstreamFormatError{Endpoint: endpoint, Detail: "missing data envelope"}
	}

	artists := make([]Artist, 0, len(envelope.Data))
	for _, a := range envelope.Data {
		artists = append(artists, Artist{ID: a.ID, Name: a.Name})
	}

	return artists, nil
}

// ListAlbums lists an artist's albums. Fails closed on a non-positive id.
// Only the first page of the upstream response is consumed.
func (s *DeezerService) ListAlbums(ctx context.Context, artistID int64) ([]Album, error) {
	if artistID <= 0 {
		return []Album{}, nil
	}

	endpoint := fmt.Sprintf("/artist/%d/albums", artistID)

	var envelope struct {
		Data []deezerAlbum `json:"data"`
	}
	if err := s.doRequest(ctx, endpoint, &envelope); err != nil {
		return nil, err
	}
	if envelope.Data == nil {
		return nil, &shared.UpstreamFormatError{Endpoint: endpoint, Detail: "missing data envelope"}
	}

	albums := make([]Album, 0, len(envelope.Data))
	for _, a := range envelope.Data {
		albums = append(albums, Album{ID: a.ID, Title: a.Title, Cover: a.CoverBig})
	}

	return albums, nil
}

// doRequest performs a rate-limited GET against the Deezer API and decodes
// the JSON response into result.
func (s *DeezerService) doRequest(ctx context.Context, endpoint string, result any) error {
	if err := s.limiter.Wait(ctx); err != nil {
		return fmt.Errorf("rate limiter: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.baseURL+endpoint, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", shared.ErrAPIRequest, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("%w: deezer status %d", shared.ErrAPIRequest, resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(result); err != nil {
		return &shared.UpstreamFormatError{Endpoint: endpoint, Detail: "invalid JSON", Err: err}
	}

	return nil
}

package server

import (
	"net/http"
	"strconv"

	"github.com/feldhop/the-album-club-app/internal/catalog"
	"github.com/go-chi/chi/v5"
)

// SearchArtists handles GET /api/artists?query=Q
//
// An omitted or blank query returns the empty shape without touching the
// catalog.
func (s *Server) SearchArtists(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("query")

	artists, err := s.catalog.SearchArtists(r.Context(), query)
	if err != nil {
		s.logger.Error("artist search failed", "query", query, "error", err)
		respondError(w, http.StatusBadGateway, "Failed to search artists")
		return
	}

	respondJSON(w, http.StatusOK, map[string][]catalog.Artist{"artists": artists})
}

// ListAlbums handles GET /api/artists/{id}
//
// A missing or non-numeric id returns an empty album list.
func (s *Server) ListAlbums(w http.ResponseWriter, r *http.Request) {
	artistID, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		respondJSON(w, http.StatusOK, map[string][]catalog.Album{"albums": {}})
		return
	}

	albums, err := s.catalog.ListAlbums(r.Context(), artistID)
	if err != nil {
		s.logger.Error("album listing failed", "artist_id", artistID, "error", err)
		respondError(w, http.StatusBadGateway, "Failed to list albums")
		return
	}

	respondJSON(w, http.StatusOK, map[string][]catalog.Album{"albums": albums})
}

package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/feldhop/the-album-club-app/internal/models"
	"github.com/feldhop/the-album-club-app/internal/shared"
)

// DropRequest is the POST /api/drops payload.
type DropRequest struct {
	ArtistName string `json:"artistName"`
	ArtistID   int64  `json:"artistId"`
	AlbumTitle string `json:"albumTitle"`
	AlbumID    int64  `json:"albumId"`
	AlbumCover string `json:"albumCover"`
	UserID     int64  `json:"userId"`
}

// GetDrops handles GET /api/drops and GET /api/drops?latest=1
//
// Without the latest flag it returns the full flattened feed, newest first.
// With it, only the single newest drop, or the "" sentinel when none exist.
func (s *Server) GetDrops(w http.ResponseWriter, r *http.Request) {
	if r.URL.Query().Get("latest") != "" {
		drop, ok, err := s.drops.LatestDrop(r.Context())
		if err != nil {
			s.logger.Error("failed to fetch latest drop", "error", err)
			respondError(w, http.StatusInternalServerError, fmt.Sprintf("Failed to fetch drops: %v", err))
			return
		}
		if !ok {
			respondJSON(w, http.StatusOK, "")
			return
		}
		respondJSON(w, http.StatusOK, drop)
		return
	}

	drops, err := s.drops.ListDrops(r.Context())
	if err != nil {
		s.logger.Error("failed to list drops", "error", err)
		respondError(w, http.StatusInternalServerError, fmt.Sprintf("Failed to fetch drops: %v", err))
		return
	}

	respondJSON(w, http.StatusOK, drops)
}

// CreateDrop handles POST /api/drops
//
// The payload is validated before any repository call; validation failures
// are 400s with the offending field named.
func (s *Server) CreateDrop(w http.ResponseWriter, r *http.Request) {
	var req DropRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	dropID, err := s.drops.CreateDrop(r.Context(), models.DropParams{
		ArtistName:     req.ArtistName,
		ArtistDeezerID: req.ArtistID,
		AlbumTitle:     req.AlbumTitle,
		AlbumDeezerID:  req.AlbumID,
		AlbumCoverURL:  req.AlbumCover,
		UserID:         req.UserID,
	})

	var validationErr *shared.ValidationError
	if errors.As(err, &validationErr) {
		respondError(w, http.StatusBadRequest, validationErr.Error())
		return
	}
	if err != nil {
		s.logger.Error("failed to create drop", "artist", req.ArtistName, "album", req.AlbumTitle, "error", err)
		respondError(w, http.StatusInternalServerError, "failed to create drop")
		return
	}

	respondJSON(w, http.StatusOK, map[string]map[string]int64{"drop": {"id": dropID}})
}

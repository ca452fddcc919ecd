package server

import (
	"fmt"
	"net/http"

	"github.com/feldhop/the-album-club-app/internal/models"
)

// ListUsers handles GET /api/users
func (s *Server) ListUsers(w http.ResponseWriter, r *http.Request) {
	users, err := s.users.List(r.Context())
	if err != nil {
		s.logger.Error("failed to list users", "error", err)
		respondError(w, http.StatusInternalServerError, fmt.Sprintf("Failed to fetch users: %v", err))
		return
	}

	respondJSON(w, http.StatusOK, map[string][]models.User{"users": users})
}

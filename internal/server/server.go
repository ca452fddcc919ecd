// package server contains the HTTP surface for the drop tracker: JSON
// handlers over the drop and user repositories plus the catalog client.
package server

import (
	"github.com/charmbracelet/log"
	"github.com/feldhop/the-album-club-app/internal/catalog"
	"github.com/feldhop/the-album-club-app/internal/repositories"
	"github.com/feldhop/the-album-club-app/internal/shared"
)

// Server holds the handler dependencies. Everything is injected at
// construction time; handlers carry no global state.
type Server struct {
	drops   *repositories.DropRepository
	users   *repositories.UserRepository
	catalog catalog.Service
	logger  *log.Logger
}

// NewServer creates a new API server.
func NewServer(drops *repositories.DropRepository, users *repositories.UserRepository, cat catalog.Service, logger *log.Logger) *Server {
	if logger == nil {
		logger = shared.NewLogger(nil)
	}
	return &Server{
		drops:   drops,
		users:   users,
		catalog: cat,
		logger:  logger,
	}
}

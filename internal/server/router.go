package server

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

// NewRouter creates a new HTTP router with all API routes configured.
func (s *Server) NewRouter() *chi.Mux {
	r := chi.NewRouter()

	r.Use(RequestID)
	r.Use(middleware.RealIP)
	r.Use(RequestLogger(s.logger))
	r.Use(middleware.Recoverer)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		MaxAge:         300,
	}))

	r.Route("/api", func(r chi.Router) {
		r.Get("/artists", s.SearchArtists)
		r.Get("/artists/{id}", s.ListAlbums)
		r.Get("/drops", s.GetDrops)
		r.Post("/drops", s.CreateDrop)
		r.Get("/users", s.ListUsers)
	})

	return r
}

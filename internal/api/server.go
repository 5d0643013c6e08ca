// Package api provides the HTTP API server and handlers for the Roots application.
package api

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/rootsapp/roots-server/internal/catalog"
	"github.com/rootsapp/roots-server/internal/http/response"
	"github.com/rootsapp/roots-server/internal/service"
)

// Server holds dependencies for HTTP handlers.
type Server struct {
	catalog        *catalog.Client
	libraryService *service.LibraryService
	sessionService *service.SessionService
	noteService    *service.NoteService
	statsService   *service.StatsService
	genreService   *service.GenreService
	router         *chi.Mux
	logger         *slog.Logger
}

// NewServer creates a new HTTP server with all routes configured.
func NewServer(catalogClient *catalog.Client, libraryService *service.LibraryService, sessionService *service.SessionService, noteService *service.NoteService, statsService *service.StatsService, genreService *service.GenreService, logger *slog.Logger) *Server {
	s := &Server{
		catalog:        catalogClient,
		libraryService: libraryService,
		sessionService: sessionService,
		noteService:    noteService,
		statsService:   statsService,
		genreService:   genreService,
		router:         chi.NewRouter(),
		logger:         logger,
	}

	s.setupMiddleware()
	s.setupRoutes()

	return s
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// setupMiddleware configures middleware stack.
func (s *Server) setupMiddleware() {
	s.router.Use(middleware.RequestID)
	s.router.Use(middleware.RealIP)
	s.router.Use(middleware.Logger)
	s.router.Use(middleware.Recoverer)
	s.router.Use(middleware.Compress(5))

	// The server is local-first; a permissive policy lets a dev frontend
	// on another port talk to it.
	s.router.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		MaxAge:         300,
	}))
}

// setupRoutes configures all HTTP routes.
func (s *Server) setupRoutes() {
	// Health check.
	s.router.Get("/health", s.handleHealthCheck)

	// API v1.
	s.router.Route("/api/v1", func(r chi.Router) {
		// Catalog search.
		r.Get("/search", s.handleSearch)

		// Library.
		r.Route("/library", func(r chi.Router) {
			r.Get("/", s.handleListBooks)
			r.Post("/", s.handleSaveBook)
			r.Get("/{id}", s.handleGetBook)
			r.Delete("/{id}", s.handleDeleteBook)
			r.Put("/{id}/progress", s.handleUpdateProgress)
			r.Put("/{id}/status", s.handleSetStatus)
			r.Put("/{id}/rating", s.handleSetRating)
			r.Get("/{id}/notes", s.handleListBookNotes)
		})

		// Reading sessions.
		r.Route("/sessions", func(r chi.Router) {
			r.Post("/", s.handleRecordSession)
			r.Get("/", s.handleListSessions)
		})

		// Weekly charts.
		r.Route("/stats", func(r chi.Router) {
			r.Get("/weekly-minutes", s.handleWeeklyMinutes)
			r.Get("/weekly-pages", s.handleWeeklyPages)
		})

		// Notes.
		r.Route("/notes", func(r chi.Router) {
			r.Post("/", s.handleCreateNote)
			r.Get("/", s.handleListNotes)
			r.Get("/{id}", s.handleGetNote)
			r.Put("/{id}", s.handleUpdateNote)
			r.Delete("/{id}", s.handleDeleteNote)
		})

		// Genres.
		r.Route("/genres", func(r chi.Router) {
			r.Get("/", s.handleListGenres)
			r.Post("/", s.handleCreateGenre)
		})
	})
}

// handleHealthCheck returns server health status.
func (s *Server) handleHealthCheck(w http.ResponseWriter, _ *http.Request) {
	response.Success(w, map[string]string{
		"status": "healthy",
	}, s.logger)
}

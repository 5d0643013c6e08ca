package api

import (
	"encoding/json/v2"
	"net/http"

	"github.com/rootsapp/roots-server/internal/http/response"
	"github.com/rootsapp/roots-server/internal/service"
)

// handleListGenres returns all genres alphabetically.
func (s *Server) handleListGenres(w http.ResponseWriter, r *http.Request) {
	genres, err := s.genreService.ListGenres(r.Context())
	if err != nil {
		response.HandleError(w, err, s.logger)
		return
	}
	response.Success(w, genres, s.logger)
}

// handleCreateGenre creates a genre keyed by its slugified name.
func (s *Server) handleCreateGenre(w http.ResponseWriter, r *http.Request) {
	var req service.CreateGenreRequest
	if err := json.UnmarshalRead(r.Body, &req); err != nil {
		response.BadRequest(w, "Invalid request body", s.logger)
		return
	}

	genre, err := s.genreService.CreateGenre(r.Context(), req)
	if err != nil {
		response.HandleError(w, err, s.logger)
		return
	}
	response.Created(w, genre, s.logger)
}

package api

import (
	"encoding/json/v2"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/rootsapp/roots-server/internal/domain"
	"github.com/rootsapp/roots-server/internal/http/response"
	"github.com/rootsapp/roots-server/internal/service"
)

// handleListBooks returns the library, newest first, duplicate editions
// collapsed.
func (s *Server) handleListBooks(w http.ResponseWriter, r *http.Request) {
	books, err := s.libraryService.ListBooks(r.Context())
	if err != nil {
		response.HandleError(w, err, s.logger)
		return
	}
	response.Success(w, books, s.logger)
}

// handleSaveBook adds a catalog result to the library.
func (s *Server) handleSaveBook(w http.ResponseWriter, r *http.Request) {
	var req service.SaveBookRequest
	if err := json.UnmarshalRead(r.Body, &req); err != nil {
		response.BadRequest(w, "Invalid request body", s.logger)
		return
	}

	book, created, err := s.libraryService.SaveBook(r.Context(), req)
	if err != nil {
		response.HandleError(w, err, s.logger)
		return
	}

	if created {
		response.Created(w, book, s.logger)
		return
	}
	response.Success(w, book, s.logger)
}

// handleGetBook returns a single library book.
func (s *Server) handleGetBook(w http.ResponseWriter, r *http.Request) {
	book, err := s.libraryService.GetBook(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err, s.logger)
		return
	}
	response.Success(w, book, s.logger)
}

// handleDeleteBook removes a book and its dependent rows.
func (s *Server) handleDeleteBook(w http.ResponseWriter, r *http.Request) {
	if err := s.libraryService.DeleteBook(r.Context(), chi.URLParam(r, "id")); err != nil {
		response.HandleError(w, err, s.logger)
		return
	}
	response.NoContent(w)
}

// ProgressRequest carries a new page position.
type ProgressRequest struct {
	CurrentPage int `json:"current_page"`
}

// handleUpdateProgress moves a book to a new page and re-derives its status.
func (s *Server) handleUpdateProgress(w http.ResponseWriter, r *http.Request) {
	var req ProgressRequest
	if err := json.UnmarshalRead(r.Body, &req); err != nil {
		response.BadRequest(w, "Invalid request body", s.logger)
		return
	}

	book, err := s.libraryService.UpdateProgress(r.Context(), chi.URLParam(r, "id"), req.CurrentPage)
	if err != nil {
		response.HandleError(w, err, s.logger)
		return
	}
	response.Success(w, book, s.logger)
}

// StatusRequest carries a manual status override.
type StatusRequest struct {
	Status string `json:"status"`
}

// handleSetStatus applies a manual status override.
func (s *Server) handleSetStatus(w http.ResponseWriter, r *http.Request) {
	var req StatusRequest
	if err := json.UnmarshalRead(r.Body, &req); err != nil {
		response.BadRequest(w, "Invalid request body", s.logger)
		return
	}

	book, err := s.libraryService.SetStatus(r.Context(), chi.URLParam(r, "id"), domain.Status(req.Status))
	if err != nil {
		response.HandleError(w, err, s.logger)
		return
	}
	response.Success(w, book, s.logger)
}

// RatingRequest carries a star rating; null clears it.
type RatingRequest struct {
	Rating *int `json:"rating"`
}

// handleSetRating sets or clears a book's rating.
func (s *Server) handleSetRating(w http.ResponseWriter, r *http.Request) {
	var req RatingRequest
	if err := json.UnmarshalRead(r.Body, &req); err != nil {
		response.BadRequest(w, "Invalid request body", s.logger)
		return
	}

	book, err := s.libraryService.SetRating(r.Context(), chi.URLParam(r, "id"), req.Rating)
	if err != nil {
		response.HandleError(w, err, s.logger)
		return
	}
	response.Success(w, book, s.logger)
}

// handleListBookNotes returns the notes attached to one book.
func (s *Server) handleListBookNotes(w http.ResponseWriter, r *http.Request) {
	bookID := chi.URLParam(r, "id")

	// A missing book gives an empty list rather than a 404; the client
	// treats notes as an annotation layer, not a resource check.
	notes, err := s.noteService.ListNotes(r.Context(), &bookID)
	if err != nil {
		response.HandleError(w, err, s.logger)
		return
	}
	response.Success(w, notes, s.logger)
}

package api

import (
	"encoding/json/v2"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/rootsapp/roots-server/internal/http/response"
)

// NoteRequest carries note text and an optional book attachment.
type NoteRequest struct {
	BookID *string `json:"book_id"`
	Text   string  `json:"text"`
}

// noteID parses the {id} URL parameter.
func noteID(r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	return id, err == nil
}

// handleCreateNote stores a note.
func (s *Server) handleCreateNote(w http.ResponseWriter, r *http.Request) {
	var req NoteRequest
	if err := json.UnmarshalRead(r.Body, &req); err != nil {
		response.BadRequest(w, "Invalid request body", s.logger)
		return
	}

	note, err := s.noteService.CreateNote(r.Context(), req.BookID, req.Text)
	if err != nil {
		response.HandleError(w, err, s.logger)
		return
	}
	response.Created(w, note, s.logger)
}

// handleListNotes returns all notes, newest first.
func (s *Server) handleListNotes(w http.ResponseWriter, r *http.Request) {
	notes, err := s.noteService.ListNotes(r.Context(), nil)
	if err != nil {
		response.HandleError(w, err, s.logger)
		return
	}
	response.Success(w, notes, s.logger)
}

// handleGetNote returns a single note.
func (s *Server) handleGetNote(w http.ResponseWriter, r *http.Request) {
	id, ok := noteID(r)
	if !ok {
		response.BadRequest(w, "Invalid note ID", s.logger)
		return
	}

	note, err := s.noteService.GetNote(r.Context(), id)
	if err != nil {
		response.HandleError(w, err, s.logger)
		return
	}
	response.Success(w, note, s.logger)
}

// handleUpdateNote overwrites a note's text and book attachment.
func (s *Server) handleUpdateNote(w http.ResponseWriter, r *http.Request) {
	id, ok := noteID(r)
	if !ok {
		response.BadRequest(w, "Invalid note ID", s.logger)
		return
	}

	var req NoteRequest
	if err := json.UnmarshalRead(r.Body, &req); err != nil {
		response.BadRequest(w, "Invalid request body", s.logger)
		return
	}

	note, err := s.noteService.UpdateNote(r.Context(), id, req.BookID, req.Text)
	if err != nil {
		response.HandleError(w, err, s.logger)
		return
	}
	response.Success(w, note, s.logger)
}

// handleDeleteNote removes a note. Unknown IDs are treated as deleted.
func (s *Server) handleDeleteNote(w http.ResponseWriter, r *http.Request) {
	id, ok := noteID(r)
	if !ok {
		response.BadRequest(w, "Invalid note ID", s.logger)
		return
	}

	if err := s.noteService.DeleteNote(r.Context(), id); err != nil {
		response.HandleError(w, err, s.logger)
		return
	}
	response.NoContent(w)
}

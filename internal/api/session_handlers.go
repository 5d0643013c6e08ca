package api

import (
	"encoding/json/v2"
	"net/http"
	"strconv"

	"github.com/rootsapp/roots-server/internal/http/response"
	"github.com/rootsapp/roots-server/internal/service"
)

// handleRecordSession appends a finished stopwatch run to the ledger.
func (s *Server) handleRecordSession(w http.ResponseWriter, r *http.Request) {
	var req service.RecordSessionRequest
	if err := json.UnmarshalRead(r.Body, &req); err != nil {
		response.BadRequest(w, "Invalid request body", s.logger)
		return
	}

	session, err := s.sessionService.RecordSession(r.Context(), req)
	if err != nil {
		response.HandleError(w, err, s.logger)
		return
	}
	response.Created(w, session, s.logger)
}

// handleListSessions returns recent sessions, newest first. An optional
// limit query parameter caps the count.
func (s *Server) handleListSessions(w http.ResponseWriter, r *http.Request) {
	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			response.BadRequest(w, "Invalid limit", s.logger)
			return
		}
		limit = n
	}

	sessions, err := s.sessionService.ListSessions(r.Context(), limit)
	if err != nil {
		response.HandleError(w, err, s.logger)
		return
	}
	response.Success(w, sessions, s.logger)
}

package api

import (
	"net/http"

	"github.com/rootsapp/roots-server/internal/http/response"
)

// handleWeeklyMinutes returns reading minutes per day for the current week.
func (s *Server) handleWeeklyMinutes(w http.ResponseWriter, r *http.Request) {
	minutes, err := s.statsService.WeeklyMinutes(r.Context())
	if err != nil {
		response.HandleError(w, err, s.logger)
		return
	}
	response.Success(w, minutes, s.logger)
}

// handleWeeklyPages returns pages read per day for the current week.
func (s *Server) handleWeeklyPages(w http.ResponseWriter, r *http.Request) {
	pages, err := s.statsService.WeeklyPages(r.Context())
	if err != nil {
		response.HandleError(w, err, s.logger)
		return
	}
	response.Success(w, pages, s.logger)
}

package api

import (
	"errors"
	"net/http"
	"strings"

	"github.com/rootsapp/roots-server/internal/catalog"
	"github.com/rootsapp/roots-server/internal/http/response"
)

// handleSearch proxies a text query to the book catalog.
func (s *Server) handleSearch(w http.ResponseWriter, r *http.Request) {
	query := strings.TrimSpace(r.URL.Query().Get("q"))
	if query == "" {
		response.BadRequest(w, "Query parameter q is required", s.logger)
		return
	}

	results, err := s.catalog.Search(r.Context(), query)
	if err != nil {
		if errors.Is(err, catalog.ErrRateLimited) {
			response.Error(w, http.StatusTooManyRequests, "Catalog rate limit reached, try again shortly", s.logger)
			return
		}
		s.logger.Error("catalog search failed", "query", query, "error", err)
		response.Error(w, http.StatusBadGateway, "Catalog search failed", s.logger)
		return
	}

	response.Success(w, results, s.logger)
}

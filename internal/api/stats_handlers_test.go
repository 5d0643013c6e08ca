package api

import (
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rootsapp/roots-server/internal/domain"
)

func TestWeeklyMinutesEndpoint(t *testing.T) {
	s := setupTestServer(t, nil)

	rec := doRequest(t, s, http.MethodPost, "/api/v1/sessions", map[string]any{
		"duration_seconds": 1800,
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = doRequest(t, s, http.MethodGet, "/api/v1/stats/weekly-minutes", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var minutes []domain.DayMinutes
	decodeData(t, rec, &minutes)
	require.Len(t, minutes, 7)

	today := time.Now().Format(domain.DayFormat)
	total := 0
	for _, m := range minutes {
		if m.Day == today {
			total = m.Minutes
		}
	}
	assert.Equal(t, 30, total)
}

func TestWeeklyPagesEndpoint(t *testing.T) {
	s := setupTestServer(t, nil)

	saveBook(t, s, "vol-1", 400)
	rec := doRequest(t, s, http.MethodPut, "/api/v1/library/vol-1/progress", map[string]any{
		"current_page": 42,
	})
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doRequest(t, s, http.MethodGet, "/api/v1/stats/weekly-pages", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var pages []domain.DayPages
	decodeData(t, rec, &pages)
	require.Len(t, pages, 7)

	today := time.Now().Format(domain.DayFormat)
	total := 0
	for _, p := range pages {
		if p.Day == today {
			total = p.Pages
		}
	}
	assert.Equal(t, 42, total)
}

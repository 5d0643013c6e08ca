package api

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rootsapp/roots-server/internal/domain"
)

func TestGenreEndpoints(t *testing.T) {
	s := setupTestServer(t, nil)

	rec := doRequest(t, s, http.MethodPost, "/api/v1/genres", map[string]any{
		"name": "Science Fiction",
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var genre domain.Genre
	decodeData(t, rec, &genre)
	assert.Equal(t, "science-fiction", genre.Slug)

	// Duplicate slug conflicts.
	rec = doRequest(t, s, http.MethodPost, "/api/v1/genres", map[string]any{
		"name": "science fiction",
	})
	assert.Equal(t, http.StatusConflict, rec.Code)

	rec = doRequest(t, s, http.MethodGet, "/api/v1/genres", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var genres []domain.Genre
	decodeData(t, rec, &genres)
	assert.Len(t, genres, 1)
}

package api

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rootsapp/roots-server/internal/domain"
)

func TestNoteCRUD(t *testing.T) {
	s := setupTestServer(t, nil)

	// Create.
	rec := doRequest(t, s, http.MethodPost, "/api/v1/notes", map[string]any{
		"text": "  The broken earth trilogy opener.  ",
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var note domain.Note
	decodeData(t, rec, &note)
	assert.Equal(t, "The broken earth trilogy opener.", note.Text)

	path := fmt.Sprintf("/api/v1/notes/%d", note.ID)

	// Read.
	rec = doRequest(t, s, http.MethodGet, path, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	// Update.
	rec = doRequest(t, s, http.MethodPut, path, map[string]any{
		"text": "revised",
	})
	require.Equal(t, http.StatusOK, rec.Code)
	decodeData(t, rec, &note)
	assert.Equal(t, "revised", note.Text)

	// Delete, twice.
	rec = doRequest(t, s, http.MethodDelete, path, nil)
	assert.Equal(t, http.StatusNoContent, rec.Code)
	rec = doRequest(t, s, http.MethodDelete, path, nil)
	assert.Equal(t, http.StatusNoContent, rec.Code)

	rec = doRequest(t, s, http.MethodGet, path, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestNoteValidationEndpoint(t *testing.T) {
	s := setupTestServer(t, nil)

	rec := doRequest(t, s, http.MethodPost, "/api/v1/notes", map[string]any{
		"text": "   ",
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = doRequest(t, s, http.MethodGet, "/api/v1/notes/not-a-number", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = doRequest(t, s, http.MethodPost, "/api/v1/notes", map[string]any{
		"book_id": "missing",
		"text":    "orphan",
	})
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestBookNotesEndpoint(t *testing.T) {
	s := setupTestServer(t, nil)

	saveBook(t, s, "vol-1", 400)

	rec := doRequest(t, s, http.MethodPost, "/api/v1/notes", map[string]any{
		"book_id": "vol-1",
		"text":    "attached",
	})
	require.Equal(t, http.StatusCreated, rec.Code)
	rec = doRequest(t, s, http.MethodPost, "/api/v1/notes", map[string]any{
		"text": "floating",
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = doRequest(t, s, http.MethodGet, "/api/v1/library/vol-1/notes", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var notes []domain.Note
	decodeData(t, rec, &notes)
	require.Len(t, notes, 1)
	assert.Equal(t, "attached", notes[0].Text)

	rec = doRequest(t, s, http.MethodGet, "/api/v1/notes", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	decodeData(t, rec, &notes)
	assert.Len(t, notes, 2)
}

func TestNoteReattachEndpoint(t *testing.T) {
	s := setupTestServer(t, nil)

	saveBook(t, s, "vol-1", 400)

	rec := doRequest(t, s, http.MethodPost, "/api/v1/notes", map[string]any{
		"text": "floating",
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	var note domain.Note
	decodeData(t, rec, &note)
	path := fmt.Sprintf("/api/v1/notes/%d", note.ID)

	// Attach via update.
	rec = doRequest(t, s, http.MethodPut, path, map[string]any{
		"book_id": "vol-1",
		"text":    "now about the book",
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	decodeData(t, rec, &note)
	require.NotNil(t, note.BookID)
	assert.Equal(t, "vol-1", *note.BookID)

	var notes []domain.Note
	rec = doRequest(t, s, http.MethodGet, "/api/v1/library/vol-1/notes", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	decodeData(t, rec, &notes)
	assert.Len(t, notes, 1)

	// Omitting book_id detaches.
	rec = doRequest(t, s, http.MethodPut, path, map[string]any{
		"text": "floating again",
	})
	require.Equal(t, http.StatusOK, rec.Code)
	// Decode into a zero value: book_id is omitted from the response when
	// nil, and Unmarshal would leave the stale pointer in place otherwise.
	note = domain.Note{}
	decodeData(t, rec, &note)
	assert.Nil(t, note.BookID)

	// An unknown book is rejected.
	rec = doRequest(t, s, http.MethodPut, path, map[string]any{
		"book_id": "missing",
		"text":    "nowhere",
	})
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

package service

import (
	"context"
	stderrors "errors"
	"log/slog"
	"strings"
	"time"

	"github.com/rootsapp/roots-server/internal/domain"
	"github.com/rootsapp/roots-server/internal/errors"
	"github.com/rootsapp/roots-server/internal/store"
	"github.com/rootsapp/roots-server/internal/store/sqlite"
)

// NoteService manages free-form reading notes.
type NoteService struct {
	store  *sqlite.Store
	logger *slog.Logger
	now    func() time.Time
}

// NewNoteService creates a new note service.
func NewNoteService(store *sqlite.Store, logger *slog.Logger) *NoteService {
	return &NoteService{
		store:  store,
		logger: logger,
		now:    time.Now,
	}
}

// CreateNote stores a note, optionally attached to a saved book.
// Whitespace-only text is rejected; surrounding whitespace is trimmed.
func (s *NoteService) CreateNote(ctx context.Context, bookID *string, text string) (*domain.Note, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, errors.Validation("note text is required")
	}

	if bookID != nil {
		exists, err := s.store.BookExists(ctx, *bookID)
		if err != nil {
			return nil, errors.Wrap(err, errors.CodeInternal, "check book")
		}
		if !exists {
			return nil, errors.NotFoundf("book %s not found", *bookID)
		}
	}

	now := s.now()
	note := &domain.Note{
		BookID:    bookID,
		Text:      text,
		CreatedAt: now,
		UpdatedAt: now,
	}

	id, err := s.store.CreateNote(ctx, note)
	if err != nil {
		return nil, errors.Wrap(err, errors.CodeInternal, "create note")
	}
	note.ID = id

	s.logger.Info("note created", "note_id", id)
	return note, nil
}

// GetNote returns a single note.
func (s *NoteService) GetNote(ctx context.Context, id int64) (*domain.Note, error) {
	note, err := s.store.GetNote(ctx, id)
	if stderrors.Is(err, store.ErrNotFound) {
		return nil, errors.NotFoundf("note %d not found", id)
	}
	if err != nil {
		return nil, errors.Wrap(err, errors.CodeInternal, "get note")
	}
	return note, nil
}

// UpdateNote overwrites a note in place: text and the optional book
// attachment. A nil bookID detaches the note.
func (s *NoteService) UpdateNote(ctx context.Context, id int64, bookID *string, text string) (*domain.Note, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, errors.Validation("note text is required")
	}

	if bookID != nil {
		exists, err := s.store.BookExists(ctx, *bookID)
		if err != nil {
			return nil, errors.Wrap(err, errors.CodeInternal, "check book")
		}
		if !exists {
			return nil, errors.NotFoundf("book %s not found", *bookID)
		}
	}

	note, err := s.GetNote(ctx, id)
	if err != nil {
		return nil, err
	}

	note.BookID = bookID
	note.Text = text
	note.UpdatedAt = s.now()

	if err := s.store.UpdateNote(ctx, note); err != nil {
		if stderrors.Is(err, store.ErrNotFound) {
			return nil, errors.NotFoundf("note %d not found", id)
		}
		return nil, errors.Wrap(err, errors.CodeInternal, "update note")
	}
	return note, nil
}

// DeleteNote removes a note. Deleting an unknown note is not an error.
func (s *NoteService) DeleteNote(ctx context.Context, id int64) error {
	if err := s.store.DeleteNote(ctx, id); err != nil {
		return errors.Wrap(err, errors.CodeInternal, "delete note")
	}
	return nil
}

// ListNotes returns notes newest-first, optionally restricted to one book.
func (s *NoteService) ListNotes(ctx context.Context, bookID *string) ([]*domain.Note, error) {
	notes, err := s.store.ListNotes(ctx, bookID)
	if err != nil {
		return nil, errors.Wrap(err, errors.CodeInternal, "list notes")
	}
	return notes, nil
}

package service

import (
	"context"
	stderrors "errors"
	"log/slog"
	"time"

	"github.com/rootsapp/roots-server/internal/domain"
	"github.com/rootsapp/roots-server/internal/errors"
	"github.com/rootsapp/roots-server/internal/id"
	"github.com/rootsapp/roots-server/internal/store"
	"github.com/rootsapp/roots-server/internal/store/sqlite"
	"github.com/rootsapp/roots-server/internal/validation"
)

// defaultSessionLimit caps session history responses when the caller
// does not ask for a specific count.
const defaultSessionLimit = 50

// SessionService manages the append-only reading session ledger.
type SessionService struct {
	store     *sqlite.Store
	logger    *slog.Logger
	validator *validation.Validator
	now       func() time.Time
}

// NewSessionService creates a new session service.
func NewSessionService(store *sqlite.Store, logger *slog.Logger) *SessionService {
	return &SessionService{
		store:     store,
		logger:    logger,
		validator: validation.New(),
		now:       time.Now,
	}
}

// RecordSessionRequest contains fields for saving a finished stopwatch run.
type RecordSessionRequest struct {
	BookID          *string    `json:"book_id"`
	StartedAt       *time.Time `json:"started_at"`
	EndedAt         *time.Time `json:"ended_at"`
	DurationSeconds int        `json:"duration_seconds" validate:"required,min=1"`
}

// RecordSession appends a session to the ledger. Sessions are immutable
// once written. A book reference, when present, must point at a saved
// book; the timestamps are optional metadata around the measured
// duration.
func (s *SessionService) RecordSession(ctx context.Context, req RecordSessionRequest) (*domain.ReadingSession, error) {
	if err := s.validator.Validate(req); err != nil {
		return nil, err
	}

	if req.BookID != nil {
		exists, err := s.store.BookExists(ctx, *req.BookID)
		if err != nil {
			return nil, errors.Wrap(err, errors.CodeInternal, "check book")
		}
		if !exists {
			return nil, errors.NotFoundf("book %s not found", *req.BookID)
		}
	}

	now := s.now()

	// The session lands on the day it ended, not the day it started:
	// a run over midnight counts for the day the reader stopped.
	at := now
	if req.EndedAt != nil {
		at = *req.EndedAt
	}

	session := &domain.ReadingSession{
		ID:              id.MustGenerate("rs"),
		BookID:          req.BookID,
		StartedAt:       req.StartedAt,
		EndedAt:         req.EndedAt,
		DurationSeconds: req.DurationSeconds,
		Day:             at.Format(domain.DayFormat),
		CreatedAt:       now,
	}

	if err := s.store.CreateReadingSession(ctx, session); err != nil {
		if stderrors.Is(err, store.ErrInvalidInput) {
			return nil, errors.Validation("session duration must be positive")
		}
		return nil, errors.Wrap(err, errors.CodeInternal, "record session")
	}

	s.logger.Info("session recorded",
		"session_id", session.ID,
		"day", session.Day,
		"duration_seconds", session.DurationSeconds,
	)
	return session, nil
}

// ListSessions returns recent sessions, newest first. A limit of zero
// or less falls back to the default.
func (s *SessionService) ListSessions(ctx context.Context, limit int) ([]*domain.ReadingSession, error) {
	if limit <= 0 {
		limit = defaultSessionLimit
	}

	sessions, err := s.store.ListReadingSessions(ctx, limit)
	if err != nil {
		return nil, errors.Wrap(err, errors.CodeInternal, "list sessions")
	}
	return sessions, nil
}

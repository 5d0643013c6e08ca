// Package service orchestrates library, ledger, and note operations on
// top of the sqlite store.
package service

import (
	"context"
	stderrors "errors"
	"log/slog"
	"time"

	"github.com/rootsapp/roots-server/internal/domain"
	"github.com/rootsapp/roots-server/internal/errors"
	"github.com/rootsapp/roots-server/internal/normalize"
	"github.com/rootsapp/roots-server/internal/store"
	"github.com/rootsapp/roots-server/internal/store/sqlite"
	"github.com/rootsapp/roots-server/internal/validation"
)

// LibraryService manages the saved-book library and the reading progress
// engine.
type LibraryService struct {
	store     *sqlite.Store
	logger    *slog.Logger
	validator *validation.Validator
	now       func() time.Time
}

// NewLibraryService creates a new library service.
func NewLibraryService(store *sqlite.Store, logger *slog.Logger) *LibraryService {
	return &LibraryService{
		store:     store,
		logger:    logger,
		validator: validation.New(),
		now:       time.Now,
	}
}

// SaveBookRequest contains fields for saving a book into the library,
// typically copied from a catalog search result.
type SaveBookRequest struct {
	ID          string `json:"id" validate:"required"`
	Title       string `json:"title" validate:"required,min=1,max=500"`
	Authors     string `json:"authors" validate:"max=500"`
	CoverURL    string `json:"cover_url" validate:"omitempty,url"`
	PageCount   int    `json:"page_count" validate:"min=0"`
	Description string `json:"description"`
}

// SaveBook adds a book to the library. Saving a book that is already in
// the library is a no-op: the stored copy, with whatever progress the
// reader has made, wins. Returns the stored book and whether it was
// newly created.
func (s *LibraryService) SaveBook(ctx context.Context, req SaveBookRequest) (*domain.Book, bool, error) {
	if err := s.validator.Validate(req); err != nil {
		return nil, false, err
	}

	now := s.now()
	book := &domain.Book{
		ID:          req.ID,
		Title:       req.Title,
		Authors:     req.Authors,
		CoverURL:    req.CoverURL,
		PageCount:   req.PageCount,
		CurrentPage: 0,
		Status:      domain.StatusWantToRead,
		Description: req.Description,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	created, err := s.store.UpsertBook(ctx, book)
	if err != nil {
		return nil, false, errors.Wrap(err, errors.CodeInternal, "save book")
	}

	stored, err := s.store.GetBook(ctx, req.ID)
	if err != nil {
		return nil, false, errors.Wrap(err, errors.CodeInternal, "load saved book")
	}

	s.logger.Info("book saved",
		"book_id", stored.ID,
		"title", stored.Title,
		"created", created,
	)
	return stored, created, nil
}

// GetBook returns a single library book.
func (s *LibraryService) GetBook(ctx context.Context, id string) (*domain.Book, error) {
	book, err := s.store.GetBook(ctx, id)
	if stderrors.Is(err, store.ErrNotFound) {
		return nil, errors.NotFoundf("book %s not found", id)
	}
	if err != nil {
		return nil, errors.Wrap(err, errors.CodeInternal, "get book")
	}
	return book, nil
}

// ListBooks returns the library, most recently saved first. Duplicate
// editions of the same title/author pair are collapsed to the most
// recently saved one.
func (s *LibraryService) ListBooks(ctx context.Context) ([]*domain.Book, error) {
	books, err := s.store.ListBooks(ctx)
	if err != nil {
		return nil, errors.Wrap(err, errors.CodeInternal, "list books")
	}

	seen := make(map[string]bool, len(books))
	out := books[:0]
	for _, b := range books {
		key := normalize.TitleAuthorKey(b.Title, b.Authors)
		if seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, b)
	}
	return out, nil
}

// UpdateProgress moves a book to a new page position. The position is
// clamped to [0, page count], the status is re-derived from the new
// position, and any forward movement is journaled into the daily pages
// ledger. Backward movement corrects the position without touching the
// ledger.
func (s *LibraryService) UpdateProgress(ctx context.Context, id string, page int) (*domain.Book, error) {
	book, err := s.GetBook(ctx, id)
	if err != nil {
		return nil, err
	}

	now := s.now()
	clamped := domain.ClampPages(book.PageCount, page)
	status := domain.DeriveStatus(book.PageCount, clamped)
	delta := domain.Delta(book.CurrentPage, clamped)

	if err := s.store.UpdateBookProgress(ctx, id, clamped, status, now); err != nil {
		if stderrors.Is(err, store.ErrNotFound) {
			return nil, errors.NotFoundf("book %s not found", id)
		}
		return nil, errors.Wrap(err, errors.CodeInternal, "update progress")
	}

	if delta > 0 {
		day := now.Format(domain.DayFormat)
		if err := s.store.RecordDailyProgress(ctx, id, day, delta); err != nil {
			// The position update already landed; losing a ledger entry
			// is worth a warning, not a failed request.
			s.logger.Warn("failed to record daily progress",
				"book_id", id,
				"day", day,
				"pages", delta,
				"error", err,
			)
		}
	}

	book.CurrentPage = clamped
	book.Status = status
	book.UpdatedAt = now

	s.logger.Info("progress updated",
		"book_id", id,
		"current_page", clamped,
		"status", string(status),
		"pages_added", delta,
	)
	return book, nil
}

// SetStatus applies a manual status override. Moving to want-to-read
// resets the position to zero. Marking finished snaps the position to
// the final page, which requires a known page count. Moving to reading
// leaves the position untouched.
func (s *LibraryService) SetStatus(ctx context.Context, id string, status domain.Status) (*domain.Book, error) {
	if !status.Valid() {
		return nil, errors.Validationf("invalid status %q", string(status))
	}

	book, err := s.GetBook(ctx, id)
	if err != nil {
		return nil, err
	}

	page := book.CurrentPage
	switch status {
	case domain.StatusWantToRead:
		page = 0
	case domain.StatusFinished:
		if book.PageCount <= 0 {
			return nil, errors.Validation("cannot mark a book with unknown page count as finished")
		}
		page = book.PageCount
	case domain.StatusReading:
		// keep position
	}

	now := s.now()
	if err := s.store.UpdateBookProgress(ctx, id, page, status, now); err != nil {
		if stderrors.Is(err, store.ErrNotFound) {
			return nil, errors.NotFoundf("book %s not found", id)
		}
		return nil, errors.Wrap(err, errors.CodeInternal, "set status")
	}

	book.CurrentPage = page
	book.Status = status
	book.UpdatedAt = now

	s.logger.Info("status set",
		"book_id", id,
		"status", string(status),
		"current_page", page,
	)
	return book, nil
}

// SetRating sets a book's rating on a 1-5 scale, or clears it.
func (s *LibraryService) SetRating(ctx context.Context, id string, rating *int) (*domain.Book, error) {
	if rating != nil && (*rating < 1 || *rating > 5) {
		return nil, errors.Validationf("rating %d out of range (1-5)", *rating)
	}

	book, err := s.GetBook(ctx, id)
	if err != nil {
		return nil, err
	}

	now := s.now()
	if err := s.store.UpdateBookRating(ctx, id, rating, now); err != nil {
		if stderrors.Is(err, store.ErrNotFound) {
			return nil, errors.NotFoundf("book %s not found", id)
		}
		return nil, errors.Wrap(err, errors.CodeInternal, "set rating")
	}

	book.Rating = rating
	book.UpdatedAt = now
	return book, nil
}

// DeleteBook removes a book together with its ledger rows and notes.
// Reading sessions survive with the book reference cleared. Deleting an
// unknown book is treated as already done.
func (s *LibraryService) DeleteBook(ctx context.Context, id string) error {
	err := s.store.DeleteBook(ctx, id)
	if stderrors.Is(err, store.ErrNotFound) {
		s.logger.Debug("delete of unknown book", "book_id", id)
		return nil
	}
	if err != nil {
		return errors.Wrap(err, errors.CodeInternal, "delete book")
	}

	s.logger.Info("book deleted", "book_id", id)
	return nil
}

package service

import (
	"context"
	stderrors "errors"
	"log/slog"

	"github.com/rootsapp/roots-server/internal/domain"
	"github.com/rootsapp/roots-server/internal/errors"
	"github.com/rootsapp/roots-server/internal/genre"
	"github.com/rootsapp/roots-server/internal/store"
	"github.com/rootsapp/roots-server/internal/store/sqlite"
	"github.com/rootsapp/roots-server/internal/validation"
)

// GenreService manages the flat genre list used to shelve books.
type GenreService struct {
	store     *sqlite.Store
	logger    *slog.Logger
	validator *validation.Validator
}

// NewGenreService creates a new genre service.
func NewGenreService(store *sqlite.Store, logger *slog.Logger) *GenreService {
	return &GenreService{
		store:     store,
		logger:    logger,
		validator: validation.New(),
	}
}

// CreateGenreRequest contains fields for creating a genre.
type CreateGenreRequest struct {
	Name string `json:"name" validate:"required,min=1,max=100"`
}

// CreateGenre creates a genre. Identity is the slugified name, so
// "Science Fiction" and "science fiction" are the same genre.
func (s *GenreService) CreateGenre(ctx context.Context, req CreateGenreRequest) (*domain.Genre, error) {
	if err := s.validator.Validate(req); err != nil {
		return nil, err
	}

	slug := genre.Slugify(req.Name)
	if slug == "" {
		return nil, errors.Validation("genre name has no usable characters")
	}

	g := &domain.Genre{Name: req.Name, Slug: slug}
	id, err := s.store.CreateGenre(ctx, g)
	if stderrors.Is(err, store.ErrAlreadyExists) {
		return nil, errors.Conflict("genre already exists")
	}
	if err != nil {
		return nil, errors.Wrap(err, errors.CodeInternal, "create genre")
	}
	g.ID = id

	s.logger.Info("genre created", "genre_id", id, "slug", slug)
	return g, nil
}

// ListGenres returns all genres alphabetically.
func (s *GenreService) ListGenres(ctx context.Context) ([]*domain.Genre, error) {
	genres, err := s.store.ListGenres(ctx)
	if err != nil {
		return nil, errors.Wrap(err, errors.CodeInternal, "list genres")
	}
	return genres, nil
}

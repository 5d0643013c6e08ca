package sqlite

import (
	"context"
	"database/sql"
	"strings"
	"time"

	"github.com/rootsapp/roots-server/internal/domain"
	"github.com/rootsapp/roots-server/internal/store"
)

// CreateGenre inserts a genre. Identity is the normalized slug.
// Returns store.ErrAlreadyExists if a genre with that slug exists.
func (s *Store) CreateGenre(ctx context.Context, genre *domain.Genre) (int64, error) {
	result, err := s.db.ExecContext(ctx, `
		INSERT INTO genres (name, slug, created_at) VALUES (?, ?, ?)`,
		genre.Name, genre.Slug, formatTime(time.Now()))
	if err != nil {
		if strings.Contains(err.Error(), "UNIQUE constraint failed") {
			return 0, store.ErrAlreadyExists
		}
		return 0, err
	}
	return result.LastInsertId()
}

// GetGenreBySlug retrieves a genre by its normalized slug.
// Returns store.ErrNotFound if no such genre exists.
func (s *Store) GetGenreBySlug(ctx context.Context, slug string) (*domain.Genre, error) {
	var g domain.Genre
	err := s.db.QueryRowContext(ctx,
		`SELECT id, name, slug FROM genres WHERE slug = ?`, slug).
		Scan(&g.ID, &g.Name, &g.Slug)
	if err == sql.ErrNoRows {
		return nil, store.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &g, nil
}

// ListGenres returns all genres ordered by name.
func (s *Store) ListGenres(ctx context.Context) ([]*domain.Genre, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, name, slug FROM genres ORDER BY name ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var genres []*domain.Genre
	for rows.Next() {
		var g domain.Genre
		if err := rows.Scan(&g.ID, &g.Name, &g.Slug); err != nil {
			return nil, err
		}
		genres = append(genres, &g)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return genres, nil
}

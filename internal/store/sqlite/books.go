package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/rootsapp/roots-server/internal/domain"
	"github.com/rootsapp/roots-server/internal/store"
)

// bookColumns is the ordered list of columns selected in book queries.
// Must match the scan order in scanBook.
const bookColumns = `id, title, authors, cover_url, page_count, current_page,
	status, rating, genre_id, description, created_at, updated_at`

// scanBook scans a sql.Row (or sql.Rows via its Scan method) into a domain.Book.
func scanBook(scanner interface{ Scan(dest ...any) error }) (*domain.Book, error) {
	var b domain.Book

	var (
		status    string
		rating    sql.NullInt64
		genreID   sql.NullInt64
		desc      sql.NullString
		createdAt string
		updatedAt string
	)

	err := scanner.Scan(
		&b.ID,
		&b.Title,
		&b.Authors,
		&b.CoverURL,
		&b.PageCount,
		&b.CurrentPage,
		&status,
		&rating,
		&genreID,
		&desc,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	b.Status = domain.Status(status)

	if rating.Valid {
		r := int(rating.Int64)
		b.Rating = &r
	}
	if genreID.Valid {
		g := genreID.Int64
		b.GenreID = &g
	}
	if desc.Valid {
		b.Description = desc.String
	}

	b.CreatedAt, err = parseTime(createdAt)
	if err != nil {
		return nil, err
	}
	b.UpdatedAt, err = parseTime(updatedAt)
	if err != nil {
		return nil, err
	}

	return &b, nil
}

// UpsertBook inserts a book keyed by its external catalog ID. If a row with
// that ID already exists the insert is a no-op: re-saving a search result
// never overwrites a saved book's user-edited fields. Returns whether the
// row was newly created.
func (s *Store) UpsertBook(ctx context.Context, book *domain.Book) (bool, error) {
	result, err := s.db.ExecContext(ctx, `
		INSERT INTO books (
			id, title, authors, cover_url, page_count, current_page,
			status, rating, genre_id, description, created_at, updated_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO NOTHING`,
		book.ID,
		book.Title,
		book.Authors,
		book.CoverURL,
		book.PageCount,
		book.CurrentPage,
		string(book.Status),
		nullableInt(book.Rating),
		nullableInt64(book.GenreID),
		nullString(book.Description),
		formatTime(book.CreatedAt),
		formatTime(book.UpdatedAt),
	)
	if err != nil {
		if strings.Contains(err.Error(), "CHECK constraint failed") {
			return false, store.ErrInvalidInput
		}
		return false, err
	}

	n, err := result.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

// GetBook retrieves a single book by its external catalog ID.
// Returns store.ErrNotFound if the book does not exist.
func (s *Store) GetBook(ctx context.Context, id string) (*domain.Book, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT `+bookColumns+` FROM books WHERE id = ?`, id)

	b, err := scanBook(row)
	if err == sql.ErrNoRows {
		return nil, store.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return b, nil
}

// ListBooks returns all saved books, most recently saved first.
func (s *Store) ListBooks(ctx context.Context) ([]*domain.Book, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT `+bookColumns+` FROM books ORDER BY created_at DESC, rowid DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var books []*domain.Book
	for rows.Next() {
		b, err := scanBook(rows)
		if err != nil {
			return nil, err
		}
		books = append(books, b)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return books, nil
}

// BookExists reports whether a book with the given external ID is saved.
func (s *Store) BookExists(ctx context.Context, id string) (bool, error) {
	var one int
	err := s.db.QueryRowContext(ctx,
		`SELECT 1 FROM books WHERE id = ?`, id).Scan(&one)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// UpdateBookProgress persists a new page position and derived status.
// Returns store.ErrNotFound if the book does not exist.
func (s *Store) UpdateBookProgress(ctx context.Context, id string, currentPage int, status domain.Status, updatedAt time.Time) error {
	result, err := s.db.ExecContext(ctx, `
		UPDATE books SET current_page = ?, status = ?, updated_at = ?
		WHERE id = ?`,
		currentPage, string(status), formatTime(updatedAt), id)
	if err != nil {
		return err
	}

	n, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return store.ErrNotFound
	}
	return nil
}

// UpdateBookRating sets or clears a book's rating.
// Returns store.ErrNotFound if the book does not exist.
func (s *Store) UpdateBookRating(ctx context.Context, id string, rating *int, updatedAt time.Time) error {
	result, err := s.db.ExecContext(ctx, `
		UPDATE books SET rating = ?, updated_at = ? WHERE id = ?`,
		nullableInt(rating), formatTime(updatedAt), id)
	if err != nil {
		return err
	}

	n, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return store.ErrNotFound
	}
	return nil
}

// DeleteBook removes a book and its dependent rows in a single transaction:
// daily-progress rows and notes are deleted, reading sessions keep their row
// with the book reference nulled. Returns store.ErrNotFound if the ID is
// unknown so the caller can decide whether that matters.
func (s *Store) DeleteBook(ctx context.Context, id string) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM daily_progress WHERE book_id = ?`, id); err != nil {
		return fmt.Errorf("delete daily progress: %w", err)
	}
	if _, err := tx.ExecContext(ctx, `DELETE FROM notes WHERE book_id = ?`, id); err != nil {
		return fmt.Errorf("delete notes: %w", err)
	}
	if _, err := tx.ExecContext(ctx, `UPDATE reading_sessions SET book_id = NULL WHERE book_id = ?`, id); err != nil {
		return fmt.Errorf("detach sessions: %w", err)
	}

	result, err := tx.ExecContext(ctx, `DELETE FROM books WHERE id = ?`, id)
	if err != nil {
		return err
	}

	n, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return store.ErrNotFound
	}
	return tx.Commit()
}

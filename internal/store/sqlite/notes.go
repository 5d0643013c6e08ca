package sqlite

import (
	"context"
	"database/sql"

	"github.com/rootsapp/roots-server/internal/domain"
	"github.com/rootsapp/roots-server/internal/store"
)

const noteColumns = `id, book_id, text, created_at, updated_at`

// scanNote scans a sql.Row (or sql.Rows via its Scan method) into a domain.Note.
func scanNote(scanner interface{ Scan(dest ...any) error }) (*domain.Note, error) {
	var n domain.Note

	var (
		bookID    sql.NullString
		createdAt string
		updatedAt string
	)

	err := scanner.Scan(&n.ID, &bookID, &n.Text, &createdAt, &updatedAt)
	if err != nil {
		return nil, err
	}

	if bookID.Valid {
		n.BookID = &bookID.String
	}

	n.CreatedAt, err = parseTime(createdAt)
	if err != nil {
		return nil, err
	}
	n.UpdatedAt, err = parseTime(updatedAt)
	if err != nil {
		return nil, err
	}

	return &n, nil
}

// CreateNote inserts a note and returns its surrogate ID.
func (s *Store) CreateNote(ctx context.Context, note *domain.Note) (int64, error) {
	result, err := s.db.ExecContext(ctx, `
		INSERT INTO notes (book_id, text, created_at, updated_at)
		VALUES (?, ?, ?, ?)`,
		nullableString(note.BookID),
		note.Text,
		formatTime(note.CreatedAt),
		formatTime(note.UpdatedAt),
	)
	if err != nil {
		return 0, err
	}
	return result.LastInsertId()
}

// GetNote retrieves a single note by ID.
// Returns store.ErrNotFound if the note does not exist.
func (s *Store) GetNote(ctx context.Context, id int64) (*domain.Note, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT `+noteColumns+` FROM notes WHERE id = ?`, id)

	n, err := scanNote(row)
	if err == sql.ErrNoRows {
		return nil, store.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return n, nil
}

// UpdateNote overwrites a note's text and book reference in place.
// Returns store.ErrNotFound if the note does not exist.
func (s *Store) UpdateNote(ctx context.Context, note *domain.Note) error {
	result, err := s.db.ExecContext(ctx, `
		UPDATE notes SET book_id = ?, text = ?, updated_at = ?
		WHERE id = ?`,
		nullableString(note.BookID),
		note.Text,
		formatTime(note.UpdatedAt),
		note.ID,
	)
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

// DeleteNote deletes a note by ID. This operation is idempotent.
func (s *Store) DeleteNote(ctx context.Context, id int64) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM notes WHERE id = ?`, id)
	return err
}

// ListNotes returns notes newest-first by identifier. A non-nil bookID
// restricts the list to one book's notes.
func (s *Store) ListNotes(ctx context.Context, bookID *string) ([]*domain.Note, error) {
	query := `SELECT ` + noteColumns + ` FROM notes`
	var args []any
	if bookID != nil {
		query += ` WHERE book_id = ?`
		args = append(args, *bookID)
	}
	query += ` ORDER BY id DESC`

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var notes []*domain.Note
	for rows.Next() {
		n, err := scanNote(rows)
		if err != nil {
			return nil, err
		}
		notes = append(notes, n)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return notes, nil
}

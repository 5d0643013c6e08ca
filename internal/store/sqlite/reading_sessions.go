package sqlite

import (
	"context"
	"database/sql"
	"strings"

	"github.com/rootsapp/roots-server/internal/domain"
	"github.com/rootsapp/roots-server/internal/store"
)

// readingSessionColumns is the ordered list of columns selected in reading
// session queries. Must match the scan order in scanReadingSession.
const readingSessionColumns = `id, book_id, started_at, ended_at,
	duration_seconds, day, created_at`

// scanReadingSession scans a sql.Row (or sql.Rows via its Scan method) into a domain.ReadingSession.
func scanReadingSession(scanner interface{ Scan(dest ...any) error }) (*domain.ReadingSession, error) {
	var rs domain.ReadingSession

	var (
		bookID    sql.NullString
		startedAt sql.NullString
		endedAt   sql.NullString
		createdAt string
	)

	err := scanner.Scan(
		&rs.ID,
		&bookID,
		&startedAt,
		&endedAt,
		&rs.DurationSeconds,
		&rs.Day,
		&createdAt,
	)
	if err != nil {
		return nil, err
	}

	if bookID.Valid {
		rs.BookID = &bookID.String
	}

	rs.StartedAt, err = parseNullableTime(startedAt)
	if err != nil {
		return nil, err
	}
	rs.EndedAt, err = parseNullableTime(endedAt)
	if err != nil {
		return nil, err
	}
	rs.CreatedAt, err = parseTime(createdAt)
	if err != nil {
		return nil, err
	}

	return &rs, nil
}

// CreateReadingSession appends a session to the ledger. Sessions are
// immutable once written; there is no update path.
// Returns store.ErrAlreadyExists if the session ID already exists.
func (s *Store) CreateReadingSession(ctx context.Context, session *domain.ReadingSession) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO reading_sessions (
			id, book_id, started_at, ended_at, duration_seconds, day, created_at
		) VALUES (?, ?, ?, ?, ?, ?, ?)`,
		session.ID,
		nullableString(session.BookID),
		nullTimeString(session.StartedAt),
		nullTimeString(session.EndedAt),
		session.DurationSeconds,
		session.Day,
		formatTime(session.CreatedAt),
	)
	if err != nil {
		if strings.Contains(err.Error(), "UNIQUE constraint failed") {
			return store.ErrAlreadyExists
		}
		if strings.Contains(err.Error(), "CHECK constraint failed") {
			return store.ErrInvalidInput
		}
		return err
	}
	return nil
}

// ListReadingSessions returns sessions ordered most recent first.
// If limit > 0, at most limit sessions are returned.
func (s *Store) ListReadingSessions(ctx context.Context, limit int) ([]*domain.ReadingSession, error) {
	query := `SELECT ` + readingSessionColumns + ` FROM reading_sessions
		ORDER BY created_at DESC`

	var args []any
	if limit > 0 {
		query += ` LIMIT ?`
		args = append(args, limit)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var sessions []*domain.ReadingSession
	for rows.Next() {
		rs, err := scanReadingSession(rows)
		if err != nil {
			return nil, err
		}
		sessions = append(sessions, rs)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return sessions, nil
}

// SumSecondsByDay returns the total session seconds per calendar day in
// [startDay, endDay] inclusive. Days without sessions are absent from the
// map; the caller zero-fills the chart window.
func (s *Store) SumSecondsByDay(ctx context.Context, startDay, endDay string) (map[string]int, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT day, SUM(duration_seconds) FROM reading_sessions
		WHERE day >= ? AND day <= ?
		GROUP BY day`, startDay, endDay)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	totals := make(map[string]int)
	for rows.Next() {
		var day string
		var seconds int
		if err := rows.Scan(&day, &seconds); err != nil {
			return nil, err
		}
		totals[day] = seconds
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return totals, nil
}

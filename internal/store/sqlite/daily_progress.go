package sqlite

import (
	"context"

	"github.com/rootsapp/roots-server/internal/domain"
)

// RecordDailyProgress accumulates pages into the ledger row for
// (bookID, day), creating the row if absent. The ledger holds one row per
// book per calendar day.
func (s *Store) RecordDailyProgress(ctx context.Context, bookID, day string, pages int) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO daily_progress (book_id, day, pages)
		VALUES (?, ?, ?)
		ON CONFLICT(book_id, day) DO UPDATE SET pages = pages + excluded.pages`,
		bookID, day, pages)
	return err
}

// GetDailyProgress returns the ledger rows for a book, oldest day first.
func (s *Store) GetDailyProgress(ctx context.Context, bookID string) ([]*domain.DailyProgress, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT book_id, day, pages FROM daily_progress
		WHERE book_id = ?
		ORDER BY day ASC`, bookID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []*domain.DailyProgress
	for rows.Next() {
		var e domain.DailyProgress
		if err := rows.Scan(&e.BookID, &e.Day, &e.Pages); err != nil {
			return nil, err
		}
		entries = append(entries, &e)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return entries, nil
}

// SumPagesByDay returns the total pages read per calendar day in
// [startDay, endDay] inclusive, across all books. Days without entries are
// absent from the map; the caller zero-fills the chart window.
func (s *Store) SumPagesByDay(ctx context.Context, startDay, endDay string) (map[string]int, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT day, SUM(pages) FROM daily_progress
		WHERE day >= ? AND day <= ?
		GROUP BY day`, startDay, endDay)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	totals := make(map[string]int)
	for rows.Next() {
		var day string
		var pages int
		if err := rows.Scan(&day, &pages); err != nil {
			return nil, err
		}
		totals[day] = pages
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return totals, nil
}

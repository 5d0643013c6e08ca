package domain

import "time"

// DayFormat is the calendar-date layout used throughout the ledgers.
const DayFormat = "2006-01-02"

// DailyProgress is one accumulating ledger row: the pages read for a book on
// a single calendar day. Repeated progress updates on the same day add into
// the same row.
type DailyProgress struct {
	BookID string `json:"book_id"`
	Day    string `json:"day"`
	Pages  int    `json:"pages"`
}

// DayPages is a per-day total for the weekly pages chart.
type DayPages struct {
	Day   string `json:"day"`
	Pages int    `json:"pages"`
}

// DayMinutes is a per-day reading-time total, in whole minutes.
type DayMinutes struct {
	Day     string `json:"day"`
	Minutes int    `json:"minutes"`
}

// ReadingSession is one saved stopwatch run. Sessions are append-only and
// immutable once created; the book reference is optional.
type ReadingSession struct {
	ID              string     `json:"id"`
	BookID          *string    `json:"book_id,omitempty"`
	StartedAt       *time.Time `json:"started_at,omitempty"`
	EndedAt         *time.Time `json:"ended_at,omitempty"`
	DurationSeconds int        `json:"duration_seconds"`
	Day             string     `json:"day"`
	CreatedAt       time.Time  `json:"created_at"`
}

// WeekOf returns the Sunday-to-Saturday window containing t, as midnight
// day boundaries in t's location.
func WeekOf(t time.Time) (start, end time.Time) {
	midnight := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
	start = midnight.AddDate(0, 0, -int(midnight.Weekday()))
	end = start.AddDate(0, 0, 6)
	return start, end
}

// Days returns every calendar day from start through end inclusive,
// formatted with DayFormat. Used to zero-fill chart windows.
func Days(start, end time.Time) []string {
	var days []string
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		days = append(days, d.Format(DayFormat))
	}
	return days
}

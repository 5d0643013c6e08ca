// Package domain contains the core business entities and derivation rules for the Roots reading tracker.
package domain

import "time"

// Status is a book's reading state. It is derived from page progress
// rather than freely settable: see DeriveStatus.
type Status string

// Reading states.
const (
	StatusWantToRead Status = "want-to-read"
	StatusReading    Status = "reading"
	StatusFinished   Status = "finished"
)

// Valid reports whether s is one of the known reading states.
func (s Status) Valid() bool {
	switch s {
	case StatusWantToRead, StatusReading, StatusFinished:
		return true
	}
	return false
}

// Book is a saved library entry. The ID is the external catalog volume
// identifier, stable across searches, and becomes the local primary key
// once the book is saved.
type Book struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Authors     string    `json:"authors"`
	CoverURL    string    `json:"cover_url,omitempty"`
	PageCount   int       `json:"page_count"`
	CurrentPage int       `json:"current_page"`
	Status      Status    `json:"status"`
	Rating      *int      `json:"rating,omitempty"`
	GenreID     *int64    `json:"genre_id,omitempty"`
	Description string    `json:"description,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// Percent returns the completion percentage for the book's current progress.
func (b *Book) Percent() int {
	return Percent(b.PageCount, b.CurrentPage)
}

// DeriveStatus computes the canonical reading state from page progress.
// A book with no recorded pages is want-to-read. A book whose progress has
// reached a known page count is finished. Everything else is reading; an
// unknown page count (0) can never yield finished, since completion cannot
// be determined.
func DeriveStatus(totalPages, pagesRead int) Status {
	if pagesRead <= 0 {
		return StatusWantToRead
	}
	if totalPages > 0 && pagesRead >= totalPages {
		return StatusFinished
	}
	return StatusReading
}

// ClampPages clamps pagesRead into [0, totalPages]. When the page count is
// unknown (totalPages <= 0) there is no denominator to track progress
// against, so the result is forced to 0.
func ClampPages(totalPages, pagesRead int) int {
	if totalPages <= 0 || pagesRead < 0 {
		return 0
	}
	if pagesRead > totalPages {
		return totalPages
	}
	return pagesRead
}

// Percent returns the completion percentage rounded to the nearest integer,
// always within 0-100. Unknown page counts yield 0.
func Percent(totalPages, pagesRead int) int {
	if totalPages <= 0 {
		return 0
	}
	pagesRead = ClampPages(totalPages, pagesRead)
	// Round half up.
	return (pagesRead*100 + totalPages/2) / totalPages
}

// Delta returns the forward progress between two page positions. Negative
// movement (the user corrected the page number downward) is never attributed
// to the daily ledger, so the result is floored at 0.
func Delta(oldPagesRead, newPagesRead int) int {
	d := newPagesRead - oldPagesRead
	if d < 0 {
		return 0
	}
	return d
}

package domain

import "time"

// Note is a free-text annotation. The book reference is optional: a note
// without one is a general note.
type Note struct {
	ID        int64     `json:"id"`
	BookID    *string   `json:"book_id,omitempty"`
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

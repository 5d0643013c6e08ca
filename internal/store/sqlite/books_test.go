package sqlite

import (
	"context"
	"testing"
	"time"

	"github.com/rootsapp/roots-server/internal/domain"
	"github.com/rootsapp/roots-server/internal/store"
)

func testBook(id string) *domain.Book {
	now := time.Now().UTC()
	return &domain.Book{
		ID:          id,
		Title:       "The Left Hand of Darkness",
		Authors:     "Ursula K. Le Guin",
		CoverURL:    "https://books.example.com/covers/" + id + ".jpg",
		PageCount:   304,
		CurrentPage: 0,
		Status:      domain.StatusWantToRead,
		Description: "A science fiction novel.",
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

func TestUpsertBook(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	created, err := s.UpsertBook(ctx, testBook("vol-1"))
	if err != nil {
		t.Fatalf("upsert book: %v", err)
	}
	if !created {
		t.Fatal("first upsert should report created")
	}

	got, err := s.GetBook(ctx, "vol-1")
	if err != nil {
		t.Fatalf("get book: %v", err)
	}
	if got.Title != "The Left Hand of Darkness" {
		t.Errorf("title = %q", got.Title)
	}
	if got.Status != domain.StatusWantToRead {
		t.Errorf("status = %q", got.Status)
	}
	if got.Rating != nil {
		t.Errorf("rating should be nil, got %v", *got.Rating)
	}
}

func TestUpsertBookIdempotent(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	if _, err := s.UpsertBook(ctx, testBook("vol-1")); err != nil {
		t.Fatalf("first upsert: %v", err)
	}

	// User makes progress on the saved copy.
	now := time.Now().UTC()
	if err := s.UpdateBookProgress(ctx, "vol-1", 120, domain.StatusReading, now); err != nil {
		t.Fatalf("update progress: %v", err)
	}

	// Re-saving the same search result must not clobber user state.
	created, err := s.UpsertBook(ctx, testBook("vol-1"))
	if err != nil {
		t.Fatalf("second upsert: %v", err)
	}
	if created {
		t.Error("second upsert should not report created")
	}

	got, err := s.GetBook(ctx, "vol-1")
	if err != nil {
		t.Fatalf("get book: %v", err)
	}
	if got.CurrentPage != 120 {
		t.Errorf("current_page = %d, want 120", got.CurrentPage)
	}
	if got.Status != domain.StatusReading {
		t.Errorf("status = %q, want %q", got.Status, domain.StatusReading)
	}

	books, err := s.ListBooks(ctx)
	if err != nil {
		t.Fatalf("list books: %v", err)
	}
	if len(books) != 1 {
		t.Errorf("expected 1 book, got %d", len(books))
	}
}

func TestGetBookNotFound(t *testing.T) {
	s := newTestStore(t)

	_, err := s.GetBook(context.Background(), "missing")
	if err != store.ErrNotFound {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestListBooksOrder(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	base := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	for i, id := range []string{"vol-a", "vol-b", "vol-c"} {
		b := testBook(id)
		b.CreatedAt = base.Add(time.Duration(i) * time.Hour)
		b.UpdatedAt = b.CreatedAt
		if _, err := s.UpsertBook(ctx, b); err != nil {
			t.Fatalf("upsert %s: %v", id, err)
		}
	}

	books, err := s.ListBooks(ctx)
	if err != nil {
		t.Fatalf("list books: %v", err)
	}
	if len(books) != 3 {
		t.Fatalf("expected 3 books, got %d", len(books))
	}
	// Most recently saved first.
	if books[0].ID != "vol-c" || books[2].ID != "vol-a" {
		t.Errorf("unexpected order: %s, %s, %s", books[0].ID, books[1].ID, books[2].ID)
	}
}

func TestBookExists(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	exists, err := s.BookExists(ctx, "vol-1")
	if err != nil {
		t.Fatalf("exists: %v", err)
	}
	if exists {
		t.Error("book should not exist yet")
	}

	if _, err := s.UpsertBook(ctx, testBook("vol-1")); err != nil {
		t.Fatalf("upsert: %v", err)
	}

	exists, err = s.BookExists(ctx, "vol-1")
	if err != nil {
		t.Fatalf("exists: %v", err)
	}
	if !exists {
		t.Error("book should exist")
	}
}

func TestUpdateBookProgressNotFound(t *testing.T) {
	s := newTestStore(t)

	err := s.UpdateBookProgress(context.Background(), "missing", 10,
		domain.StatusReading, time.Now().UTC())
	if err != store.ErrNotFound {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestUpdateBookRating(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	if _, err := s.UpsertBook(ctx, testBook("vol-1")); err != nil {
		t.Fatalf("upsert: %v", err)
	}

	rating := 4
	now := time.Now().UTC()
	if err := s.UpdateBookRating(ctx, "vol-1", &rating, now); err != nil {
		t.Fatalf("set rating: %v", err)
	}

	got, err := s.GetBook(ctx, "vol-1")
	if err != nil {
		t.Fatalf("get book: %v", err)
	}
	if got.Rating == nil || *got.Rating != 4 {
		t.Errorf("rating = %v, want 4", got.Rating)
	}

	// Clearing the rating.
	if err := s.UpdateBookRating(ctx, "vol-1", nil, now); err != nil {
		t.Fatalf("clear rating: %v", err)
	}
	got, err = s.GetBook(ctx, "vol-1")
	if err != nil {
		t.Fatalf("get book: %v", err)
	}
	if got.Rating != nil {
		t.Errorf("rating should be cleared, got %v", *got.Rating)
	}
}

func TestDeleteBookCascades(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	if _, err := s.UpsertBook(ctx, testBook("vol-1")); err != nil {
		t.Fatalf("upsert: %v", err)
	}

	if err := s.RecordDailyProgress(ctx, "vol-1", "2024-03-01", 25); err != nil {
		t.Fatalf("record progress: %v", err)
	}

	bookID := "vol-1"
	note := &domain.Note{
		BookID:    &bookID,
		Text:      "Interesting chapter on Gethenian politics.",
		CreatedAt: time.Now().UTC(),
		UpdatedAt: time.Now().UTC(),
	}
	noteID, err := s.CreateNote(ctx, note)
	if err != nil {
		t.Fatalf("create note: %v", err)
	}

	session := &domain.ReadingSession{
		ID:              "rs-cascade",
		BookID:          &bookID,
		DurationSeconds: 1800,
		Day:             "2024-03-01",
		CreatedAt:       time.Now().UTC(),
	}
	if err := s.CreateReadingSession(ctx, session); err != nil {
		t.Fatalf("create session: %v", err)
	}

	if err := s.DeleteBook(ctx, "vol-1"); err != nil {
		t.Fatalf("delete book: %v", err)
	}

	// Daily progress rows are gone.
	progress, err := s.GetDailyProgress(ctx, "vol-1")
	if err != nil {
		t.Fatalf("get daily progress: %v", err)
	}
	if len(progress) != 0 {
		t.Errorf("expected no progress rows, got %d", len(progress))
	}

	// Notes are gone.
	if _, err := s.GetNote(ctx, noteID); err != store.ErrNotFound {
		t.Errorf("expected note to be deleted, got %v", err)
	}

	// Reading sessions survive with the book reference nulled.
	sessions, err := s.ListReadingSessions(ctx, 10)
	if err != nil {
		t.Fatalf("list sessions: %v", err)
	}
	if len(sessions) != 1 {
		t.Fatalf("expected 1 session, got %d", len(sessions))
	}
	if sessions[0].BookID != nil {
		t.Errorf("session book_id should be nulled, got %v", *sessions[0].BookID)
	}
}

// Dependent rows must be removed no matter which pooled connection runs the
// delete. Pinning one connection forces the delete onto a different,
// freshly created connection in the pool.
func TestDeleteBookCascadesAcrossConnections(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	if _, err := s.UpsertBook(ctx, testBook("vol-1")); err != nil {
		t.Fatalf("upsert: %v", err)
	}
	if err := s.RecordDailyProgress(ctx, "vol-1", "2024-03-01", 25); err != nil {
		t.Fatalf("record progress: %v", err)
	}

	bookID := "vol-1"
	note := &domain.Note{
		BookID:    &bookID,
		Text:      "Read before the pooled delete.",
		CreatedAt: time.Now().UTC(),
		UpdatedAt: time.Now().UTC(),
	}
	noteID, err := s.CreateNote(ctx, note)
	if err != nil {
		t.Fatalf("create note: %v", err)
	}

	conn, err := s.db.Conn(ctx)
	if err != nil {
		t.Fatalf("pin connection: %v", err)
	}
	defer conn.Close()

	if err := s.DeleteBook(ctx, "vol-1"); err != nil {
		t.Fatalf("delete book: %v", err)
	}

	progress, err := s.GetDailyProgress(ctx, "vol-1")
	if err != nil {
		t.Fatalf("get daily progress: %v", err)
	}
	if len(progress) != 0 {
		t.Errorf("expected no progress rows, got %d", len(progress))
	}
	if _, err := s.GetNote(ctx, noteID); err != store.ErrNotFound {
		t.Errorf("expected note to be deleted, got %v", err)
	}
}

func TestDeleteBookNotFound(t *testing.T) {
	s := newTestStore(t)

	err := s.DeleteBook(context.Background(), "missing")
	if err != store.ErrNotFound {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

package sqlite

import (
	"context"
	"testing"
)

func TestRecordDailyProgressAccumulates(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	if _, err := s.UpsertBook(ctx, testBook("vol-1")); err != nil {
		t.Fatalf("upsert book: %v", err)
	}

	// Two deltas on the same day collapse into one row.
	if err := s.RecordDailyProgress(ctx, "vol-1", "2024-03-01", 50); err != nil {
		t.Fatalf("first record: %v", err)
	}
	if err := s.RecordDailyProgress(ctx, "vol-1", "2024-03-01", 30); err != nil {
		t.Fatalf("second record: %v", err)
	}
	if err := s.RecordDailyProgress(ctx, "vol-1", "2024-03-02", 10); err != nil {
		t.Fatalf("next day record: %v", err)
	}

	progress, err := s.GetDailyProgress(ctx, "vol-1")
	if err != nil {
		t.Fatalf("get progress: %v", err)
	}
	if len(progress) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(progress))
	}

	byDay := make(map[string]int)
	for _, p := range progress {
		byDay[p.Day] = p.Pages
	}
	if byDay["2024-03-01"] != 80 {
		t.Errorf("2024-03-01 = %d, want 80", byDay["2024-03-01"])
	}
	if byDay["2024-03-02"] != 10 {
		t.Errorf("2024-03-02 = %d, want 10", byDay["2024-03-02"])
	}
}

func TestRecordDailyProgressUnknownBook(t *testing.T) {
	s := newTestStore(t)

	err := s.RecordDailyProgress(context.Background(), "missing", "2024-03-01", 10)
	if err == nil {
		t.Error("expected foreign key error for unknown book")
	}
}

func TestSumPagesByDay(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	if _, err := s.UpsertBook(ctx, testBook("vol-1")); err != nil {
		t.Fatalf("upsert vol-1: %v", err)
	}
	if _, err := s.UpsertBook(ctx, testBook("vol-2")); err != nil {
		t.Fatalf("upsert vol-2: %v", err)
	}

	// Two books on the same day sum together.
	if err := s.RecordDailyProgress(ctx, "vol-1", "2024-03-04", 20); err != nil {
		t.Fatalf("record: %v", err)
	}
	if err := s.RecordDailyProgress(ctx, "vol-2", "2024-03-04", 15); err != nil {
		t.Fatalf("record: %v", err)
	}
	if err := s.RecordDailyProgress(ctx, "vol-1", "2024-03-05", 40); err != nil {
		t.Fatalf("record: %v", err)
	}
	// Outside the queried range.
	if err := s.RecordDailyProgress(ctx, "vol-1", "2024-03-10", 99); err != nil {
		t.Fatalf("record: %v", err)
	}

	sums, err := s.SumPagesByDay(ctx, "2024-03-03", "2024-03-09")
	if err != nil {
		t.Fatalf("sum pages: %v", err)
	}
	if len(sums) != 2 {
		t.Fatalf("expected 2 days, got %d", len(sums))
	}
	if sums["2024-03-04"] != 35 {
		t.Errorf("2024-03-04 = %d, want 35", sums["2024-03-04"])
	}
	if sums["2024-03-05"] != 40 {
		t.Errorf("2024-03-05 = %d, want 40", sums["2024-03-05"])
	}
}

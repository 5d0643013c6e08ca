package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWeeklyMinutes(t *testing.T) {
	store := setupTest(t)
	sessions := NewSessionService(store, testLogger())
	svc := NewStatsService(store, testLogger())
	ctx := context.Background()

	// Wednesday 2024-03-06; the containing week is Sun 03-03 .. Sat 03-09.
	now := time.Date(2024, 3, 6, 15, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return now }

	monday := time.Date(2024, 3, 4, 21, 0, 0, 0, time.UTC)
	sessions.now = func() time.Time { return monday }
	_, err := sessions.RecordSession(ctx, RecordSessionRequest{DurationSeconds: 600})
	require.NoError(t, err)
	_, err = sessions.RecordSession(ctx, RecordSessionRequest{DurationSeconds: 930})
	require.NoError(t, err)

	// Outside the week; must not appear.
	lastSaturday := time.Date(2024, 3, 2, 10, 0, 0, 0, time.UTC)
	sessions.now = func() time.Time { return lastSaturday }
	_, err = sessions.RecordSession(ctx, RecordSessionRequest{DurationSeconds: 3600})
	require.NoError(t, err)

	minutes, err := svc.WeeklyMinutes(ctx)
	require.NoError(t, err)
	require.Len(t, minutes, 7)

	assert.Equal(t, "2024-03-03", minutes[0].Day)
	assert.Equal(t, "2024-03-09", minutes[6].Day)

	byDay := map[string]int{}
	for _, m := range minutes {
		byDay[m.Day] = m.Minutes
	}
	// 600 + 930 seconds on Monday is 25 whole minutes.
	assert.Equal(t, 25, byDay["2024-03-04"])
	// Every other day of the week is present and zero.
	assert.Equal(t, 0, byDay["2024-03-06"])
	assert.Equal(t, 0, byDay["2024-03-09"])
}

func TestWeeklyPages(t *testing.T) {
	store := setupTest(t)
	library := NewLibraryService(store, testLogger())
	svc := NewStatsService(store, testLogger())
	ctx := context.Background()

	now := time.Date(2024, 3, 6, 15, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return now }

	saveTestBook(t, library, "vol-1", 200)

	library.now = func() time.Time { return time.Date(2024, 3, 5, 9, 0, 0, 0, time.UTC) }
	_, err := library.UpdateProgress(ctx, "vol-1", 40)
	require.NoError(t, err)

	library.now = func() time.Time { return now }
	_, err = library.UpdateProgress(ctx, "vol-1", 70)
	require.NoError(t, err)

	pages, err := svc.WeeklyPages(ctx)
	require.NoError(t, err)
	require.Len(t, pages, 7)

	byDay := map[string]int{}
	for _, p := range pages {
		byDay[p.Day] = p.Pages
	}
	assert.Equal(t, 40, byDay["2024-03-05"])
	assert.Equal(t, 30, byDay["2024-03-06"])
	assert.Equal(t, 0, byDay["2024-03-03"])
}

func TestWeeklyPagesEmpty(t *testing.T) {
	svc := NewStatsService(setupTest(t), testLogger())

	pages, err := svc.WeeklyPages(context.Background())
	require.NoError(t, err)
	require.Len(t, pages, 7)
	for _, p := range pages {
		assert.Zero(t, p.Pages)
	}
}

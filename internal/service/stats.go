package service

import (
	"context"
	"log/slog"
	"time"

	"github.com/rootsapp/roots-server/internal/domain"
	"github.com/rootsapp/roots-server/internal/errors"
	"github.com/rootsapp/roots-server/internal/store/sqlite"
)

// StatsService aggregates the daily ledgers into weekly charts.
type StatsService struct {
	store  *sqlite.Store
	logger *slog.Logger
	now    func() time.Time
}

// NewStatsService creates a new stats service.
func NewStatsService(store *sqlite.Store, logger *slog.Logger) *StatsService {
	return &StatsService{
		store:  store,
		logger: logger,
		now:    time.Now,
	}
}

// WeeklyMinutes returns reading time per day for the current
// Sunday-to-Saturday week, in whole minutes. Every day of the week is
// present, zero-filled where nothing was recorded.
func (s *StatsService) WeeklyMinutes(ctx context.Context) ([]domain.DayMinutes, error) {
	start, end := domain.WeekOf(s.now())
	days := domain.Days(start, end)

	seconds, err := s.store.SumSecondsByDay(ctx, days[0], days[len(days)-1])
	if err != nil {
		return nil, errors.Wrap(err, errors.CodeInternal, "sum reading seconds")
	}

	out := make([]domain.DayMinutes, len(days))
	for i, day := range days {
		out[i] = domain.DayMinutes{
			Day:     day,
			Minutes: seconds[day] / 60,
		}
	}
	return out, nil
}

// WeeklyPages returns pages read per day for the current
// Sunday-to-Saturday week, zero-filled like WeeklyMinutes.
func (s *StatsService) WeeklyPages(ctx context.Context) ([]domain.DayPages, error) {
	start, end := domain.WeekOf(s.now())
	days := domain.Days(start, end)

	pages, err := s.store.SumPagesByDay(ctx, days[0], days[len(days)-1])
	if err != nil {
		return nil, errors.Wrap(err, errors.CodeInternal, "sum pages")
	}

	out := make([]domain.DayPages, len(days))
	for i, day := range days {
		out[i] = domain.DayPages{
			Day:   day,
			Pages: pages[day],
		}
	}
	return out, nil
}

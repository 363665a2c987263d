package stats

import (
	"context"
	"time"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Windows returns the start instants for today, this week (starting Sunday)
// and this calendar month, in now's location.
func Windows(now time.Time) (dayStart, weekStart, monthStart time.Time) {
	year, month, day := now.Date()
	loc := now.Location()

	dayStart = time.Date(year, month, day, 0, 0, 0, 0, loc)
	weekStart = dayStart.AddDate(0, 0, -int(now.Weekday()))
	monthStart = time.Date(year, month, 1, 0, 0, 0, 0, loc)
	return
}

// Compute counts orders created today, this week, this month and ever,
// all windows closed at now. Point-in-time, not a subscription.
func (s *Service) Compute(ctx context.Context, now time.Time) (*Stats, error) {
	dayStart, weekStart, monthStart := Windows(now)

	today, err := s.repo.CountCreatedBetween(ctx, dayStart, now)
	if err != nil {
		return nil, err
	}

	thisWeek, err := s.repo.CountCreatedBetween(ctx, weekStart, now)
	if err != nil {
		return nil, err
	}

	thisMonth, err := s.repo.CountCreatedBetween(ctx, monthStart, now)
	if err != nil {
		return nil, err
	}

	total, err := s.repo.CountAll(ctx)
	if err != nil {
		return nil, err
	}

	return &Stats{
		Today:     today,
		ThisWeek:  thisWeek,
		ThisMonth: thisMonth,
		Total:     total,
	}, nil
}

// Package app holds the application services and business logic.
package app

import (
	"context"
	"time"

	"fittrack/internal/domain"
)

// HydrationService keeps one cup counter per calendar day.
type HydrationService struct {
	repo domain.HydrationRepository
	now  func() time.Time
}

// NewHydrationService creates a HydrationService backed by the given repository.
func NewHydrationService(repo domain.HydrationRepository) *HydrationService {
	return &HydrationService{repo: repo, now: time.Now}
}

// WithClock replaces the time source used to resolve today.
func (s *HydrationService) WithClock(now func() time.Time) *HydrationService {
	s.now = now
	return s
}

// AddCup increments today's counter, creating the record on first use.
//
// The read and the write are separate store calls and nothing serializes
// them: two concurrent calls for the same day may both read N and both
// persist N+1. When both find no record for a new day, the store keeps one
// record per date, so one insert wins with cups=1 and the other returns
// domain.ErrDayExists.
func (s *HydrationService) AddCup(ctx context.Context) (*domain.HydrationDay, error) {
	today := domain.LocalDay(s.now())
	day, err := s.repo.FindByDate(ctx, today)
	if err != nil {
		return nil, err
	}
	if day == nil {
		day = &domain.HydrationDay{Date: today}
	}
	day.Cups++
	return s.repo.Save(ctx, day)
}

// GetSummary returns today's record, or an unsaved zero-cup record.
func (s *HydrationService) GetSummary(ctx context.Context) (*domain.HydrationDay, error) {
	today := domain.LocalDay(s.now())
	day, err := s.repo.FindByDate(ctx, today)
	if err != nil {
		return nil, err
	}
	if day == nil {
		return &domain.HydrationDay{Date: today}, nil
	}
	return day, nil
}

// GetWeek returns the stored records of the trailing seven days, oldest first.
// Days without a record are omitted.
func (s *HydrationService) GetWeek(ctx context.Context) ([]domain.HydrationDay, error) {
	start, end := domain.WeekWindow(s.now())
	return s.repo.FindByDateBetween(ctx, start, end)
}

package app

import (
	"context"
	"time"

	"fittrack/internal/domain"
)

// MealLogService records per-user meal entries stamped with server time.
type MealLogService struct {
	repo domain.MealLogRepository
	now  func() time.Time
}

// NewMealLogService creates a MealLogService backed by the given repository.
func NewMealLogService(repo domain.MealLogRepository) *MealLogService {
	return &MealLogService{repo: repo, now: time.Now}
}

// WithClock replaces the time source used to stamp entries.
func (s *MealLogService) WithClock(now func() time.Time) *MealLogService {
	s.now = now
	return s
}

// AddMeal stores the entry. Client supplied LogDate and LogTime are replaced
// with the current server date and time.
func (s *MealLogService) AddMeal(ctx context.Context, entry domain.MealLogEntry) (*domain.MealLogEntry, error) {
	now := s.now()
	entry.ID = 0
	entry.LogDate = domain.LocalDay(now)
	entry.LogTime = domain.ClockTime(now)
	return s.repo.Save(ctx, &entry)
}

// GetTodayMeals returns the entries logged today by userID.
func (s *MealLogService) GetTodayMeals(ctx context.Context, userID int64) ([]domain.MealLogEntry, error) {
	return s.repo.FindAllByUserIDAndLogDate(ctx, userID, domain.LocalDay(s.now()))
}

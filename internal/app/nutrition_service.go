package app

import (
	"context"
	"strings"
	"time"

	"fittrack/internal/domain"
)

// ModeDaily selects today's meals; any other mode selects the trailing week.
const ModeDaily = "daily"

// NutritionService stores meals and answers daily or weekly summaries.
type NutritionService struct {
	repo domain.MealRepository
	now  func() time.Time
}

// NewNutritionService creates a NutritionService backed by the given repository.
func NewNutritionService(repo domain.MealRepository) *NutritionService {
	return &NutritionService{repo: repo, now: time.Now}
}

// WithClock replaces the time source used to resolve today.
func (s *NutritionService) WithClock(now func() time.Time) *NutritionService {
	s.now = now
	return s
}

// AddMeal persists the meal as given and returns it with its assigned ID.
func (s *NutritionService) AddMeal(ctx context.Context, meal domain.Meal) (*domain.Meal, error) {
	meal.ID = 0
	return s.repo.Save(ctx, &meal)
}

// GetSummary returns today's meals when mode is "daily" (case-insensitive)
// or empty. Every other value returns meals dated within [today-6, today].
func (s *NutritionService) GetSummary(ctx context.Context, mode string) ([]domain.Meal, error) {
	now := s.now()
	if mode == "" || strings.EqualFold(mode, ModeDaily) {
		return s.repo.FindByDate(ctx, domain.LocalDay(now))
	}
	start, end := domain.WeekWindow(now)
	return s.repo.FindByDateBetween(ctx, start, end)
}

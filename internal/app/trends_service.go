package app

import (
	"context"
	"time"

	"fittrack/internal/domain"
)

// MaxTrendDays caps the window served by GetDaily.
const MaxTrendDays = 366

// TrendsService builds per-day hydration and nutrition series.
type TrendsService struct {
	hydrationRepo domain.HydrationRepository
	mealRepo      domain.MealRepository
	now           func() time.Time
}

// NewTrendsService creates a TrendsService backed by the given repositories.
func NewTrendsService(hr domain.HydrationRepository, mr domain.MealRepository) *TrendsService {
	return &TrendsService{hydrationRepo: hr, mealRepo: mr, now: time.Now}
}

// WithClock replaces the time source used to resolve today.
func (s *TrendsService) WithClock(now func() time.Time) *TrendsService {
	s.now = now
	return s
}

// DayPoint is a single data point returned by GetDaily.
type DayPoint struct {
	Day      string `json:"day"`
	Cups     int    `json:"cups"`
	Meals    int    `json:"meals"`
	Calories int    `json:"calories"`
	Carbs    int    `json:"carbs"`
	Protein  int    `json:"protein"`
	Fat      int    `json:"fat"`
}

// GetDaily returns one point per day for the last days days, oldest first.
// Meals whose date is not one of those days are ignored.
func (s *TrendsService) GetDaily(ctx context.Context, days int) ([]DayPoint, error) {
	if days < 1 {
		days = 1
	}
	if days > MaxTrendDays {
		days = MaxTrendDays
	}

	now := s.now()
	start, end := domain.DayWindow(now, days)

	hydration, err := s.hydrationRepo.FindByDateBetween(ctx, start, end)
	if err != nil {
		return nil, err
	}
	meals, err := s.mealRepo.FindByDateBetween(ctx, start, end)
	if err != nil {
		return nil, err
	}

	points := make([]DayPoint, days)
	index := make(map[string]int, days)
	for i := 0; i < days; i++ {
		day := domain.LocalDay(now.AddDate(0, 0, i-(days-1)))
		points[i].Day = day
		index[day] = i
	}

	for _, h := range hydration {
		if i, ok := index[h.Date]; ok {
			points[i].Cups += h.Cups
		}
	}
	for _, m := range meals {
		i, ok := index[m.Date]
		if !ok {
			continue
		}
		p := &points[i]
		p.Meals++
		p.Calories += m.Calories
		p.Carbs += m.Carbs
		p.Protein += m.Protein
		p.Fat += m.Fat
	}
	return points, nil
}

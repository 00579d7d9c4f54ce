package app_test

import (
	"context"
	"testing"

	"fittrack/internal/adapter/memory"
	"fittrack/internal/app"
	"fittrack/internal/domain"
)

type mockMealRepo struct {
	saveFn  func(ctx context.Context, meal *domain.Meal) (*domain.Meal, error)
	dayFn   func(ctx context.Context, date string) ([]domain.Meal, error)
	rangeFn func(ctx context.Context, start, end string) ([]domain.Meal, error)
}

func (m *mockMealRepo) Save(ctx context.Context, meal *domain.Meal) (*domain.Meal, error) {
	if m.saveFn != nil {
		return m.saveFn(ctx, meal)
	}
	out := *meal
	out.ID = 1
	return &out, nil
}

func (m *mockMealRepo) FindByDate(ctx context.Context, date string) ([]domain.Meal, error) {
	if m.dayFn != nil {
		return m.dayFn(ctx, date)
	}
	return nil, nil
}

func (m *mockMealRepo) FindByDateBetween(ctx context.Context, start, end string) ([]domain.Meal, error) {
	if m.rangeFn != nil {
		return m.rangeFn(ctx, start, end)
	}
	return nil, nil
}

func TestNutritionSummary_ModeSelection(t *testing.T) {
	tests := []struct {
		mode       string
		wantWeekly bool
	}{
		{"", false},
		{"daily", false},
		{"DAILY", false},
		{"Daily", false},
		{"weekly", true},
		{"WEEKLY", true},
		{"monthly", true},
		{"day", true},
	}
	for _, tc := range tests {
		t.Run("mode="+tc.mode, func(t *testing.T) {
			var daily, weekly bool
			repo := &mockMealRepo{
				dayFn: func(_ context.Context, date string) ([]domain.Meal, error) {
					if date != "2024-01-01" {
						t.Fatalf("unexpected date %s", date)
					}
					daily = true
					return nil, nil
				},
				rangeFn: func(_ context.Context, start, end string) ([]domain.Meal, error) {
					if start != "2023-12-26" || end != "2024-01-01" {
						t.Fatalf("unexpected range [%s, %s]", start, end)
					}
					weekly = true
					return nil, nil
				},
			}
			svc := app.NewNutritionService(repo).WithClock(fixedClock(2024, 1, 1))
			if _, err := svc.GetSummary(context.Background(), tc.mode); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if weekly != tc.wantWeekly || daily == tc.wantWeekly {
				t.Fatalf("daily=%v weekly=%v; want weekly=%v", daily, weekly, tc.wantWeekly)
			}
		})
	}
}

func TestAddMeal_DailySummaryContainsItOnce(t *testing.T) {
	ctx := context.Background()
	svc := app.NewNutritionService(memory.New().Meals()).WithClock(fixedClock(2024, 1, 1))

	stored, err := svc.AddMeal(ctx, domain.Meal{Name: "Oatmeal", Calories: 300, Date: "2024-01-01"})
	if err != nil {
		t.Fatalf("AddMeal: %v", err)
	}
	if stored.ID == 0 {
		t.Fatal("expected an assigned id")
	}

	meals, err := svc.GetSummary(ctx, "daily")
	if err != nil {
		t.Fatalf("GetSummary: %v", err)
	}
	if len(meals) != 1 || meals[0].ID != stored.ID || meals[0].Name != "Oatmeal" || meals[0].Calories != 300 {
		t.Fatalf("unexpected daily summary: %+v", meals)
	}
}

func TestWeeklySummary_TrailingSevenDays(t *testing.T) {
	ctx := context.Background()
	svc := app.NewNutritionService(memory.New().Meals()).WithClock(fixedClock(2024, 1, 10))

	dates := []string{"2024-01-02", "2024-01-03", "2024-01-04", "2024-01-07", "2024-01-10", "2024-01-11"}
	for _, d := range dates {
		if _, err := svc.AddMeal(ctx, domain.Meal{Name: "meal " + d, Date: d}); err != nil {
			t.Fatalf("AddMeal: %v", err)
		}
	}

	weekly, err := svc.GetSummary(ctx, "weekly")
	if err != nil {
		t.Fatalf("GetSummary: %v", err)
	}
	got := make(map[string]bool)
	for _, m := range weekly {
		got[m.Date] = true
	}
	for _, want := range []string{"2024-01-04", "2024-01-07", "2024-01-10"} {
		if !got[want] {
			t.Errorf("weekly summary missing %s", want)
		}
	}
	for _, excluded := range []string{"2024-01-02", "2024-01-03", "2024-01-11"} {
		if got[excluded] {
			t.Errorf("weekly summary should not include %s", excluded)
		}
	}
	if len(weekly) != 3 {
		t.Fatalf("expected 3 meals, got %d", len(weekly))
	}
}

func TestAddMeal_IgnoresClientID(t *testing.T) {
	repo := &mockMealRepo{
		saveFn: func(_ context.Context, meal *domain.Meal) (*domain.Meal, error) {
			if meal.ID != 0 {
				t.Fatalf("expected id reset before save, got %d", meal.ID)
			}
			out := *meal
			out.ID = 77
			return &out, nil
		},
	}
	got, err := app.NewNutritionService(repo).AddMeal(context.Background(), domain.Meal{ID: 3, Name: "Toast"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.ID != 77 {
		t.Fatalf("expected id 77, got %d", got.ID)
	}
}

// Package memory implements an in-memory record store for development and testing.
package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"fittrack/internal/domain"
)

// DB implements an in-memory record store. Records are copied on the way in
// and on the way out so callers never share state with the store.
type DB struct {
	mu        sync.Mutex
	hydration []domain.HydrationDay
	meals     []domain.Meal
	mealLogs  []domain.MealLogEntry

	hydrationIDCounter int64
	mealIDCounter      int64
	mealLogIDCounter   int64
}

// New creates a new in-memory database.
func New() *DB {
	return &DB{}
}

// Ensure interfaces are met.
var _ domain.HydrationRepository = (*DB)(nil)
var _ domain.MealRepository = (*MealRepo)(nil)
var _ domain.MealLogRepository = (*MealLogRepo)(nil)

// Ping always succeeds.
func (db *DB) Ping(ctx context.Context) error {
	return nil
}

// --- HydrationRepository ---

// FindByDate returns the hydration record for date, or nil.
func (db *DB) FindByDate(ctx context.Context, date string) (*domain.HydrationDay, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	for _, h := range db.hydration {
		if h.Date == date {
			out := h
			return &out, nil
		}
	}
	return nil, nil
}

// FindByDateBetween returns hydration records within [start, end], oldest first.
func (db *DB) FindByDateBetween(ctx context.Context, start, end string) ([]domain.HydrationDay, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	out := make([]domain.HydrationDay, 0)
	for _, h := range db.hydration {
		if h.Date >= start && h.Date <= end {
			out = append(out, h)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date < out[j].Date })
	return out, nil
}

// Save inserts a record without an ID or replaces the stored one.
func (db *DB) Save(ctx context.Context, day *domain.HydrationDay) (*domain.HydrationDay, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	idx := -1
	for i, h := range db.hydration {
		if h.Date == day.Date && h.ID != day.ID {
			return nil, fmt.Errorf("%w: %s", domain.ErrDayExists, day.Date)
		}
		if day.ID != 0 && h.ID == day.ID {
			idx = i
		}
	}
	if idx >= 0 {
		db.hydration[idx] = *day
		out := *day
		return &out, nil
	}
	if day.ID != 0 {
		return nil, fmt.Errorf("hydration day %d not found", day.ID)
	}

	db.hydrationIDCounter++
	out := *day
	out.ID = db.hydrationIDCounter
	db.hydration = append(db.hydration, out)
	return &out, nil
}

// --- MealRepository ---

// MealRepo exposes the meal table of a DB.
type MealRepo struct {
	db *DB
}

// Meals returns the meal repository view of db.
func (db *DB) Meals() *MealRepo {
	return &MealRepo{db: db}
}

// Save inserts a meal and assigns its ID.
func (r *MealRepo) Save(ctx context.Context, meal *domain.Meal) (*domain.Meal, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	r.db.mealIDCounter++
	out := *meal
	out.ID = r.db.mealIDCounter
	r.db.meals = append(r.db.meals, out)
	return &out, nil
}

// FindByDate returns the meals dated date.
func (r *MealRepo) FindByDate(ctx context.Context, date string) ([]domain.Meal, error) {
	return r.FindByDateBetween(ctx, date, date)
}

// FindByDateBetween returns meals dated within [start, end], ordered by date then ID.
func (r *MealRepo) FindByDateBetween(ctx context.Context, start, end string) ([]domain.Meal, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	out := make([]domain.Meal, 0)
	for _, m := range r.db.meals {
		if m.Date >= start && m.Date <= end {
			out = append(out, m)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Date < out[j].Date })
	return out, nil
}

// --- MealLogRepository ---

// MealLogRepo exposes the meal log table of a DB.
type MealLogRepo struct {
	db *DB
}

// MealLogs returns the meal log repository view of db.
func (db *DB) MealLogs() *MealLogRepo {
	return &MealLogRepo{db: db}
}

// Save inserts a meal log entry and assigns its ID.
func (r *MealLogRepo) Save(ctx context.Context, entry *domain.MealLogEntry) (*domain.MealLogEntry, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	r.db.mealLogIDCounter++
	out := *entry
	out.ID = r.db.mealLogIDCounter
	r.db.mealLogs = append(r.db.mealLogs, out)
	return &out, nil
}

// FindAllByUserIDAndLogDate returns the entries of userID logged on logDate.
func (r *MealLogRepo) FindAllByUserIDAndLogDate(ctx context.Context, userID int64, logDate string) ([]domain.MealLogEntry, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	out := make([]domain.MealLogEntry, 0)
	for _, e := range r.db.mealLogs {
		if e.UserID == userID && e.LogDate == logDate {
			out = append(out, e)
		}
	}
	return out, nil
}

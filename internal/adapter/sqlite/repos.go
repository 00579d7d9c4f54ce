package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"fittrack/internal/domain"
)

// --- HydrationRepository ---

// FindByDate returns the hydration record for a calendar day, or nil.
func (d *DB) FindByDate(ctx context.Context, date string) (*domain.HydrationDay, error) {
	var h domain.HydrationDay
	err := d.sql.QueryRowContext(ctx,
		`SELECT id, day, cups FROM hydration_days WHERE day = ?;`, date,
	).Scan(&h.ID, &h.Date, &h.Cups)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("hydration: find %s: %w", date, err)
	}
	return &h, nil
}

// FindByDateBetween returns hydration records within [start, end], oldest first.
func (d *DB) FindByDateBetween(ctx context.Context, start, end string) ([]domain.HydrationDay, error) {
	rows, err := d.sql.QueryContext(ctx,
		`SELECT id, day, cups FROM hydration_days WHERE day >= ? AND day <= ? ORDER BY day ASC;`, start, end)
	if err != nil {
		return nil, fmt.Errorf("hydration: range: %w", err)
	}
	defer rows.Close() //nolint:errcheck

	out := make([]domain.HydrationDay, 0)
	for rows.Next() {
		var h domain.HydrationDay
		if err := rows.Scan(&h.ID, &h.Date, &h.Cups); err != nil {
			return nil, err
		}
		out = append(out, h)
	}
	return out, rows.Err()
}

// Save inserts a record without an ID, otherwise overwrites the stored cups.
func (d *DB) Save(ctx context.Context, day *domain.HydrationDay) (*domain.HydrationDay, error) {
	out := *day
	if day.ID == 0 {
		res, err := d.sql.ExecContext(ctx,
			`INSERT INTO hydration_days(day, cups) VALUES(?, ?);`, day.Date, day.Cups)
		if isUniqueViolation(err) {
			return nil, fmt.Errorf("hydration: insert %s: %w", day.Date, domain.ErrDayExists)
		}
		if err != nil {
			return nil, fmt.Errorf("hydration: insert %s: %w", day.Date, err)
		}
		if out.ID, err = res.LastInsertId(); err != nil {
			return nil, err
		}
		return &out, nil
	}

	res, err := d.sql.ExecContext(ctx,
		`UPDATE hydration_days SET day = ?, cups = ? WHERE id = ?;`, day.Date, day.Cups, day.ID)
	if isUniqueViolation(err) {
		return nil, fmt.Errorf("hydration: update %d: %w", day.ID, domain.ErrDayExists)
	}
	if err != nil {
		return nil, fmt.Errorf("hydration: update %d: %w", day.ID, err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return nil, fmt.Errorf("hydration: update %d: no such record", day.ID)
	}
	return &out, nil
}

// --- MealRepository ---

const mealColumns = `id, name, calories, carbs, protein, fat, meal_time, meal_type, icon, color, day`

// MealRepo implements meal persistence on DB.
type MealRepo struct {
	db *DB
}

// NewMealRepo wraps a DB as a MealRepository.
func NewMealRepo(db *DB) *MealRepo {
	return &MealRepo{db: db}
}

// Save inserts a meal and returns it with its assigned ID.
func (r *MealRepo) Save(ctx context.Context, meal *domain.Meal) (*domain.Meal, error) {
	res, err := r.db.sql.ExecContext(ctx,
		`INSERT INTO meals(name, calories, carbs, protein, fat, meal_time, meal_type, icon, color, day) VALUES(?, ?, ?, ?, ?, ?, ?, ?, ?, ?);`,
		meal.Name, meal.Calories, meal.Carbs, meal.Protein, meal.Fat,
		meal.Time, meal.MealType, meal.Icon, meal.Color, meal.Date,
	)
	if err != nil {
		return nil, fmt.Errorf("meals: insert: %w", err)
	}
	out := *meal
	if out.ID, err = res.LastInsertId(); err != nil {
		return nil, err
	}
	return &out, nil
}

// FindByDate returns the meals dated date.
func (r *MealRepo) FindByDate(ctx context.Context, date string) ([]domain.Meal, error) {
	rows, err := r.db.sql.QueryContext(ctx,
		`SELECT `+mealColumns+` FROM meals WHERE day = ? ORDER BY id ASC;`, date)
	if err != nil {
		return nil, fmt.Errorf("meals: find %s: %w", date, err)
	}
	return scanMeals(rows)
}

// FindByDateBetween returns meals dated within [start, end], ordered by day then ID.
func (r *MealRepo) FindByDateBetween(ctx context.Context, start, end string) ([]domain.Meal, error) {
	rows, err := r.db.sql.QueryContext(ctx,
		`SELECT `+mealColumns+` FROM meals WHERE day >= ? AND day <= ? ORDER BY day ASC, id ASC;`, start, end)
	if err != nil {
		return nil, fmt.Errorf("meals: range: %w", err)
	}
	return scanMeals(rows)
}

func scanMeals(rows *sql.Rows) ([]domain.Meal, error) {
	defer rows.Close() //nolint:errcheck

	out := make([]domain.Meal, 0)
	for rows.Next() {
		var m domain.Meal
		if err := rows.Scan(&m.ID, &m.Name, &m.Calories, &m.Carbs, &m.Protein, &m.Fat,
			&m.Time, &m.MealType, &m.Icon, &m.Color, &m.Date); err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	return out, rows.Err()
}

// --- MealLogRepository ---

// MealLogRepo implements meal log persistence on DB.
type MealLogRepo struct {
	db *DB
}

// NewMealLogRepo wraps a DB as a MealLogRepository.
func NewMealLogRepo(db *DB) *MealLogRepo {
	return &MealLogRepo{db: db}
}

// Save inserts a meal log entry and returns it with its assigned ID.
func (r *MealLogRepo) Save(ctx context.Context, entry *domain.MealLogEntry) (*domain.MealLogEntry, error) {
	res, err := r.db.sql.ExecContext(ctx,
		`INSERT INTO meal_logs(user_id, meal_name, meal_type, calories, carbs, protein, fat, log_date, log_time) VALUES(?, ?, ?, ?, ?, ?, ?, ?, ?);`,
		entry.UserID, entry.MealName, entry.MealType, entry.Calories, entry.Carbs,
		entry.Protein, entry.Fat, entry.LogDate, entry.LogTime,
	)
	if err != nil {
		return nil, fmt.Errorf("meal logs: insert: %w", err)
	}
	out := *entry
	if out.ID, err = res.LastInsertId(); err != nil {
		return nil, err
	}
	return &out, nil
}

// FindAllByUserIDAndLogDate returns the entries of userID logged on logDate.
func (r *MealLogRepo) FindAllByUserIDAndLogDate(ctx context.Context, userID int64, logDate string) ([]domain.MealLogEntry, error) {
	rows, err := r.db.sql.QueryContext(ctx,
		`SELECT id, user_id, meal_name, meal_type, calories, carbs, protein, fat, log_date, log_time
		 FROM meal_logs WHERE user_id = ? AND log_date = ? ORDER BY id ASC;`,
		userID, logDate)
	if err != nil {
		return nil, fmt.Errorf("meal logs: find user %d: %w", userID, err)
	}
	defer rows.Close() //nolint:errcheck

	out := make([]domain.MealLogEntry, 0)
	for rows.Next() {
		var e domain.MealLogEntry
		if err := rows.Scan(&e.ID, &e.UserID, &e.MealName, &e.MealType, &e.Calories,
			&e.Carbs, &e.Protein, &e.Fat, &e.LogDate, &e.LogTime); err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"fittrack/internal/domain"
)

const mealColumns = "id, name, calories, carbs, protein, fat, meal_time, meal_type, icon, color, day"

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
	out := *meal
	err := r.db.sql.QueryRowContext(ctx,
		"INSERT INTO meals(name, calories, carbs, protein, fat, meal_time, meal_type, icon, color, day) VALUES($1, $2, $3, $4, $5, $6, $7, $8, $9, $10) RETURNING id;",
		meal.Name, meal.Calories, meal.Carbs, meal.Protein, meal.Fat,
		meal.Time, meal.MealType, meal.Icon, meal.Color, meal.Date,
	).Scan(&out.ID)
	if err != nil {
		return nil, fmt.Errorf("meals: insert: %w", err)
	}
	return &out, nil
}

// FindByDate returns the meals dated date.
func (r *MealRepo) FindByDate(ctx context.Context, date string) ([]domain.Meal, error) {
	rows, err := r.db.sql.QueryContext(ctx,
		"SELECT "+mealColumns+" FROM meals WHERE day=$1 ORDER BY id ASC;", date)
	if err != nil {
		return nil, fmt.Errorf("meals: find %s: %w", date, err)
	}
	return scanMeals(rows)
}

// FindByDateBetween returns meals dated within [start, end], ordered by day then ID.
func (r *MealRepo) FindByDateBetween(ctx context.Context, start, end string) ([]domain.Meal, error) {
	rows, err := r.db.sql.QueryContext(ctx,
		"SELECT "+mealColumns+" FROM meals WHERE day >= $1 AND day <= $2 ORDER BY day ASC, id ASC;", start, end)
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

package postgres

import (
	"context"
	"fmt"

	"fittrack/internal/domain"
)

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
	out := *entry
	err := r.db.sql.QueryRowContext(ctx,
		"INSERT INTO meal_logs(user_id, meal_name, meal_type, calories, carbs, protein, fat, log_date, log_time) VALUES($1, $2, $3, $4, $5, $6, $7, $8, $9) RETURNING id;",
		entry.UserID, entry.MealName, entry.MealType, entry.Calories, entry.Carbs,
		entry.Protein, entry.Fat, entry.LogDate, entry.LogTime,
	).Scan(&out.ID)
	if err != nil {
		return nil, fmt.Errorf("meal logs: insert: %w", err)
	}
	return &out, nil
}

// FindAllByUserIDAndLogDate returns the entries of userID logged on logDate.
func (r *MealLogRepo) FindAllByUserIDAndLogDate(ctx context.Context, userID int64, logDate string) ([]domain.MealLogEntry, error) {
	rows, err := r.db.sql.QueryContext(ctx,
		"SELECT id, user_id, meal_name, meal_type, calories, carbs, protein, fat, log_date, log_time FROM meal_logs WHERE user_id=$1 AND log_date=$2 ORDER BY id ASC;",
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

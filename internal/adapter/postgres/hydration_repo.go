package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"fittrack/internal/domain"

	"github.com/lib/pq"
)

const uniqueViolation = "23505"

func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == uniqueViolation
}

// FindByDate returns the hydration record for a calendar day, or nil.
func (d *DB) FindByDate(ctx context.Context, date string) (*domain.HydrationDay, error) {
	var h domain.HydrationDay
	err := d.sql.QueryRowContext(ctx,
		"SELECT id, day, cups FROM hydration_days WHERE day=$1;", date,
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
		"SELECT id, day, cups FROM hydration_days WHERE day >= $1 AND day <= $2 ORDER BY day ASC;", start, end)
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
// The unique day constraint rejects a second insert for the same day.
func (d *DB) Save(ctx context.Context, day *domain.HydrationDay) (*domain.HydrationDay, error) {
	out := *day
	if day.ID == 0 {
		err := d.sql.QueryRowContext(ctx,
			"INSERT INTO hydration_days(day, cups) VALUES($1, $2) RETURNING id;",
			day.Date, day.Cups,
		).Scan(&out.ID)
		if isUniqueViolation(err) {
			return nil, fmt.Errorf("hydration: insert %s: %w", day.Date, domain.ErrDayExists)
		}
		if err != nil {
			return nil, fmt.Errorf("hydration: insert %s: %w", day.Date, err)
		}
		return &out, nil
	}

	res, err := d.sql.ExecContext(ctx,
		"UPDATE hydration_days SET day=$1, cups=$2 WHERE id=$3;", day.Date, day.Cups, day.ID)
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

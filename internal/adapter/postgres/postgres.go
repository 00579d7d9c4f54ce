// Package postgres implements the domain repositories using PostgreSQL.
package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/lib/pq"
)

// DB wraps a *sql.DB and implements domain repository interfaces.
type DB struct {
	sql *sql.DB
}

// Open connects to PostgreSQL, pings, and runs migrations.
func Open(connStr string) (*DB, error) {
	s, err := sql.Open("postgres", connStr)
	if err != nil {
		return nil, err
	}
	s.SetMaxOpenConns(10)
	s.SetMaxIdleConns(5)
	s.SetConnMaxLifetime(5 * time.Minute)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := s.PingContext(ctx); err != nil {
		_ = s.Close()
		return nil, err
	}

	d := &DB{sql: s}
	if err := d.migrate(ctx); err != nil {
		_ = s.Close()
		return nil, err
	}
	return d, nil
}

// Close closes the underlying database connection.
func (d *DB) Close() error {
	return d.sql.Close()
}

// Ping verifies the database is reachable.
func (d *DB) Ping(ctx context.Context) error {
	return d.sql.PingContext(ctx)
}

func (d *DB) migrate(ctx context.Context) error {
	stmts := []string{
		"CREATE TABLE IF NOT EXISTS hydration_days (id BIGSERIAL PRIMARY KEY, day TEXT NOT NULL UNIQUE, cups INTEGER NOT NULL DEFAULT 0 CHECK(cups >= 0));",
		"CREATE TABLE IF NOT EXISTS meals (id BIGSERIAL PRIMARY KEY, name TEXT NOT NULL DEFAULT '', calories INTEGER NOT NULL DEFAULT 0, carbs INTEGER NOT NULL DEFAULT 0, protein INTEGER NOT NULL DEFAULT 0, fat INTEGER NOT NULL DEFAULT 0, meal_time TEXT NOT NULL DEFAULT '', meal_type TEXT NOT NULL DEFAULT '', icon TEXT NOT NULL DEFAULT '', color TEXT NOT NULL DEFAULT '', day TEXT NOT NULL DEFAULT '');",
		"CREATE INDEX IF NOT EXISTS idx_meals_day ON meals(day);",
		"CREATE TABLE IF NOT EXISTS meal_logs (id BIGSERIAL PRIMARY KEY, user_id BIGINT NOT NULL, meal_name TEXT NOT NULL DEFAULT '', meal_type TEXT NOT NULL DEFAULT '', calories INTEGER NOT NULL DEFAULT 0, carbs INTEGER NOT NULL DEFAULT 0, protein INTEGER NOT NULL DEFAULT 0, fat INTEGER NOT NULL DEFAULT 0, log_date TEXT NOT NULL, log_time TEXT NOT NULL);",
		"CREATE INDEX IF NOT EXISTS idx_meal_logs_user_date ON meal_logs(user_id, log_date);",
	}

	for _, stmt := range stmts {
		if _, err := d.sql.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("migrate: %w", err)
		}
	}
	return nil
}

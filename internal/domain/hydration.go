// Package domain contains the core records and repository ports.
package domain

import (
	"context"
	"errors"
)

// ErrDayExists is returned by a store asked to insert a second HydrationDay
// for a date that already has one.
var ErrDayExists = errors.New("hydration day already exists")

// HydrationDay holds the number of cups logged for one calendar day.
type HydrationDay struct {
	ID   int64  `json:"id"`
	Date string `json:"date"`
	Cups int    `json:"cups"`
}

// HydrationRepository is the port for hydration persistence. FindByDate
// returns nil, nil when no record exists for the date.
type HydrationRepository interface {
	FindByDate(ctx context.Context, date string) (*HydrationDay, error)
	FindByDateBetween(ctx context.Context, start, end string) ([]HydrationDay, error)
	Save(ctx context.Context, day *HydrationDay) (*HydrationDay, error)
}

package domain_test

import (
	"testing"
	"time"

	"fittrack/internal/domain"
)

func TestDayWindow(t *testing.T) {
	ref := time.Date(2024, 3, 2, 23, 30, 0, 0, time.UTC)
	tests := []struct {
		name      string
		n         int
		wantStart string
		wantEnd   string
	}{
		{"single day", 1, "2024-03-02", "2024-03-02"},
		{"week across leap day", 7, "2024-02-25", "2024-03-02"},
		{"zero treated as one", 0, "2024-03-02", "2024-03-02"},
		{"negative treated as one", -3, "2024-03-02", "2024-03-02"},
		{"thirty days", 30, "2024-02-02", "2024-03-02"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			start, end := domain.DayWindow(ref, tc.n)
			if start != tc.wantStart || end != tc.wantEnd {
				t.Errorf("DayWindow(%d) = [%s, %s]; want [%s, %s]",
					tc.n, start, end, tc.wantStart, tc.wantEnd)
			}
		})
	}
}

func TestWeekWindow_YearBoundary(t *testing.T) {
	start, end := domain.WeekWindow(time.Date(2024, 1, 3, 8, 0, 0, 0, time.UTC))
	if start != "2023-12-28" || end != "2024-01-03" {
		t.Fatalf("got [%s, %s]", start, end)
	}
}

func TestLocalDayUsesOwnLocation(t *testing.T) {
	loc := time.FixedZone("UTC+10", 10*60*60)
	ts := time.Date(2024, 1, 1, 20, 0, 0, 0, time.UTC).In(loc)
	if got := domain.LocalDay(ts); got != "2024-01-02" {
		t.Fatalf("LocalDay = %s; want 2024-01-02", got)
	}
	if got := domain.ClockTime(ts); got != "06:00:00" {
		t.Fatalf("ClockTime = %s; want 06:00:00", got)
	}
}

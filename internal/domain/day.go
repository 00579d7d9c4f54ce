package domain

import "time"

// Layouts used for dates and times stored as text.
const (
	DayLayout  = "2006-01-02"
	TimeLayout = "15:04:05"
)

// WeekDays is the length of the trailing summary window, today included.
const WeekDays = 7

// LocalDay formats t as a calendar day in t's own location.
func LocalDay(t time.Time) string {
	return t.Format(DayLayout)
}

// ClockTime formats the time-of-day portion of t.
func ClockTime(t time.Time) string {
	return t.Format(TimeLayout)
}

// DayWindow returns the inclusive [start, end] days of the n-day window
// ending on t's calendar day. n < 1 is treated as 1.
func DayWindow(t time.Time, n int) (start, end string) {
	if n < 1 {
		n = 1
	}
	return LocalDay(t.AddDate(0, 0, -(n - 1))), LocalDay(t)
}

// WeekWindow returns the inclusive window [today-6, today].
func WeekWindow(t time.Time) (start, end string) {
	return DayWindow(t, WeekDays)
}

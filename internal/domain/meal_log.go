package domain

import "context"

// MealLogEntry is a per-user meal log. LogDate and LogTime are stamped by
// the server when the entry is written.
type MealLogEntry struct {
	ID       int64  `json:"id"`
	UserID   int64  `json:"userId"`
	MealName string `json:"mealName"`
	MealType string `json:"mealType"`
	Calories int    `json:"calories"`
	Carbs    int    `json:"carbs"`
	Protein  int    `json:"protein"`
	Fat      int    `json:"fat"`
	LogDate  string `json:"logDate"`
	LogTime  string `json:"logTime"`
}

// MealLogRepository is the port for meal log persistence.
type MealLogRepository interface {
	Save(ctx context.Context, entry *MealLogEntry) (*MealLogEntry, error)
	FindAllByUserIDAndLogDate(ctx context.Context, userID int64, logDate string) ([]MealLogEntry, error)
}

package domain

import "context"

// Meal is a meal added to the nutrition diary. Every field, including Date,
// is supplied by the caller.
type Meal struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Calories int    `json:"calories"`
	Carbs    int    `json:"carbs"`
	Protein  int    `json:"protein"`
	Fat      int    `json:"fat"`
	Time     string `json:"time"`
	MealType string `json:"mealType"`
	Icon     string `json:"icon"`
	Color    string `json:"color"`
	Date     string `json:"date"`
}

// MealRepository is the port for meal persistence. Range bounds are
// inclusive and compared as strings.
type MealRepository interface {
	Save(ctx context.Context, meal *Meal) (*Meal, error)
	FindByDate(ctx context.Context, date string) ([]Meal, error)
	FindByDateBetween(ctx context.Context, start, end string) ([]Meal, error)
}

package domain

import (
	"context"
	"time"
)

// Workout represents a single logged training session entry.
type Workout struct {
	ID             string
	UserID         string
	Name           string
	MuscleGroup    string
	Sets           int
	Reps           int
	Weight         float64
	CaloriesBurned int
	Notes          string
	Date           *time.Time
}

// Meal represents a logged meal with its macro breakdown.
type Meal struct {
	ID        string
	UserID    string
	Title     string
	ShortDesc string
	Calories  int
	Protein   int
	Carbs     int
	Fat       int
	Type      string
	Notes     string
	DateTime  *time.Time
}

// MoodEntry represents a logged mood check-in.
type MoodEntry struct {
	ID     string
	UserID string
	Mood   string
	Energy int
	Notes  string
	Date   *time.Time
}

// WorkoutRepository captures workout persistence operations.
type WorkoutRepository interface {
	Create(ctx context.Context, workout Workout) error
	Get(ctx context.Context, workoutID string) (*Workout, error)
	ListByUser(ctx context.Context, userID string) ([]Workout, error)
	Update(ctx context.Context, workout Workout) error
	Delete(ctx context.Context, workoutID string) error
}

// MealRepository captures meal persistence operations.
type MealRepository interface {
	Create(ctx context.Context, meal Meal) error
	Get(ctx context.Context, mealID string) (*Meal, error)
	ListByUser(ctx context.Context, userID string) ([]Meal, error)
	Update(ctx context.Context, meal Meal) error
	Delete(ctx context.Context, mealID string) error
}

// MoodRepository captures mood entry persistence operations.
type MoodRepository interface {
	Create(ctx context.Context, entry MoodEntry) error
	Get(ctx context.Context, entryID string) (*MoodEntry, error)
	ListByUser(ctx context.Context, userID string) ([]MoodEntry, error)
	Delete(ctx context.Context, entryID string) error
}

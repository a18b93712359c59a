// Package events defines the payloads published when records are logged.
package events

import "time"

// WorkoutLogged is emitted when a workout is accepted.
type WorkoutLogged struct {
	WorkoutID      string     `json:"workout_id"`
	UserID         string     `json:"user_id"`
	Name           string     `json:"name"`
	MuscleGroup    string     `json:"muscle_group"`
	CaloriesBurned int        `json:"calories_burned"`
	LoggedAt       *time.Time `json:"logged_at,omitempty"`
}

// MealLogged is emitted when a meal is accepted.
type MealLogged struct {
	MealID   string     `json:"meal_id"`
	UserID   string     `json:"user_id"`
	Title    string     `json:"title"`
	Calories int        `json:"calories"`
	MealType string     `json:"meal_type"`
	LoggedAt *time.Time `json:"logged_at,omitempty"`
}

// MoodLogged is emitted when a mood entry is accepted.
type MoodLogged struct {
	EntryID  string     `json:"entry_id"`
	UserID   string     `json:"user_id"`
	Mood     string     `json:"mood"`
	Energy   int        `json:"energy"`
	LoggedAt *time.Time `json:"logged_at,omitempty"`
}

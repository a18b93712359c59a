package domain

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

type stubWorkoutRepo struct {
	byID map[string]Workout
}

func newStubWorkoutRepo() *stubWorkoutRepo {
	return &stubWorkoutRepo{byID: make(map[string]Workout)}
}

func (r *stubWorkoutRepo) Create(_ context.Context, workout Workout) error {
	r.byID[workout.ID] = workout
	return nil
}

func (r *stubWorkoutRepo) Get(_ context.Context, workoutID string) (*Workout, error) {
	if w, ok := r.byID[workoutID]; ok {
		return &w, nil
	}
	return nil, nil
}

func (r *stubWorkoutRepo) ListByUser(_ context.Context, userID string) ([]Workout, error) {
	out := make([]Workout, 0)
	for _, w := range r.byID {
		if w.UserID == userID {
			out = append(out, w)
		}
	}
	return out, nil
}

func (r *stubWorkoutRepo) Update(_ context.Context, workout Workout) error {
	r.byID[workout.ID] = workout
	return nil
}

func (r *stubWorkoutRepo) Delete(_ context.Context, workoutID string) error {
	delete(r.byID, workoutID)
	return nil
}

type stubMealRepo struct {
	byID map[string]Meal
}

func newStubMealRepo() *stubMealRepo {
	return &stubMealRepo{byID: make(map[string]Meal)}
}

func (r *stubMealRepo) Create(_ context.Context, meal Meal) error {
	r.byID[meal.ID] = meal
	return nil
}

func (r *stubMealRepo) Get(_ context.Context, mealID string) (*Meal, error) {
	if m, ok := r.byID[mealID]; ok {
		return &m, nil
	}
	return nil, nil
}

func (r *stubMealRepo) ListByUser(_ context.Context, userID string) ([]Meal, error) {
	out := make([]Meal, 0)
	for _, m := range r.byID {
		if m.UserID == userID {
			out = append(out, m)
		}
	}
	return out, nil
}

func (r *stubMealRepo) Update(_ context.Context, meal Meal) error {
	r.byID[meal.ID] = meal
	return nil
}

func (r *stubMealRepo) Delete(_ context.Context, mealID string) error {
	delete(r.byID, mealID)
	return nil
}

type stubMoodRepo struct {
	byID map[string]MoodEntry
}

func newStubMoodRepo() *stubMoodRepo {
	return &stubMoodRepo{byID: make(map[string]MoodEntry)}
}

func (r *stubMoodRepo) Create(_ context.Context, entry MoodEntry) error {
	r.byID[entry.ID] = entry
	return nil
}

func (r *stubMoodRepo) Get(_ context.Context, entryID string) (*MoodEntry, error) {
	if e, ok := r.byID[entryID]; ok {
		return &e, nil
	}
	return nil, nil
}

func (r *stubMoodRepo) ListByUser(_ context.Context, userID string) ([]MoodEntry, error) {
	out := make([]MoodEntry, 0)
	for _, e := range r.byID {
		if e.UserID == userID {
			out = append(out, e)
		}
	}
	return out, nil
}

func (r *stubMoodRepo) Delete(_ context.Context, entryID string) error {
	delete(r.byID, entryID)
	return nil
}

func newRecordService() (*RecordService, *stubWorkoutRepo) {
	workouts := newStubWorkoutRepo()
	return NewRecordService(workouts, newStubMealRepo(), newStubMoodRepo()), workouts
}

func TestLogWorkoutDefaultsMissingTimestamp(t *testing.T) {
	service, _ := newRecordService()

	before := time.Now().UTC()
	logged, err := service.LogWorkout(context.Background(), "user-1", Workout{Name: "Squat"})
	require.NoError(t, err)

	require.NotEmpty(t, logged.ID)
	require.Equal(t, "user-1", logged.UserID)
	require.NotNil(t, logged.Date)
	require.False(t, logged.Date.Before(before))
}

func TestLogWorkoutKeepsExplicitTimestamp(t *testing.T) {
	service, _ := newRecordService()

	when := time.Date(2025, time.April, 2, 7, 0, 0, 0, time.UTC)
	logged, err := service.LogWorkout(context.Background(), "user-1", Workout{Name: "Run", Date: &when})
	require.NoError(t, err)

	require.Equal(t, when, *logged.Date)
}

func TestUpdateWorkoutOutcomes(t *testing.T) {
	service, _ := newRecordService()

	logged, err := service.LogWorkout(context.Background(), "owner", Workout{Name: "Squat", Weight: 100})
	require.NoError(t, err)

	_, outcome, err := service.UpdateWorkout(context.Background(), "intruder", logged.ID, Workout{Name: "Squat", Weight: 999})
	require.NoError(t, err)
	require.Equal(t, MutationNotOwner, outcome)

	_, outcome, err = service.UpdateWorkout(context.Background(), "owner", "no-such-id", Workout{})
	require.NoError(t, err)
	require.Equal(t, MutationNotFound, outcome)

	updated, outcome, err := service.UpdateWorkout(context.Background(), "owner", logged.ID, Workout{Name: "Front Squat", Weight: 110})
	require.NoError(t, err)
	require.Equal(t, MutationApplied, outcome)
	require.Equal(t, "Front Squat", updated.Name)
	require.Equal(t, 110.0, updated.Weight)
	// Owner and log timestamp survive updates untouched.
	require.Equal(t, "owner", updated.UserID)
	require.Equal(t, *logged.Date, *updated.Date)
}

func TestDeleteWorkoutRequiresOwnership(t *testing.T) {
	service, workouts := newRecordService()

	logged, err := service.LogWorkout(context.Background(), "owner", Workout{Name: "Squat"})
	require.NoError(t, err)

	outcome, err := service.DeleteWorkout(context.Background(), "intruder", logged.ID)
	require.NoError(t, err)
	require.Equal(t, MutationNotOwner, outcome)
	require.Contains(t, workouts.byID, logged.ID)

	outcome, err = service.DeleteWorkout(context.Background(), "owner", logged.ID)
	require.NoError(t, err)
	require.Equal(t, MutationApplied, outcome)
	require.NotContains(t, workouts.byID, logged.ID)

	outcome, err = service.DeleteWorkout(context.Background(), "owner", logged.ID)
	require.NoError(t, err)
	require.Equal(t, MutationNotFound, outcome)
}

func TestLogMealDefaultsMissingTimestamp(t *testing.T) {
	service, _ := newRecordService()

	logged, err := service.LogMeal(context.Background(), "user-1", Meal{Title: "Oats", Calories: 350})
	require.NoError(t, err)
	require.NotNil(t, logged.DateTime)

	listed, err := service.ListMeals(context.Background(), "user-1")
	require.NoError(t, err)
	require.Len(t, listed, 1)
	require.Equal(t, *logged.DateTime, *listed[0].DateTime)
}

func TestDeleteMoodRequiresOwnership(t *testing.T) {
	service, _ := newRecordService()

	logged, err := service.LogMood(context.Background(), "owner", MoodEntry{Mood: "Good", Energy: 7})
	require.NoError(t, err)

	outcome, err := service.DeleteMood(context.Background(), "intruder", logged.ID)
	require.NoError(t, err)
	require.Equal(t, MutationNotOwner, outcome)

	outcome, err = service.DeleteMood(context.Background(), "owner", logged.ID)
	require.NoError(t, err)
	require.Equal(t, MutationApplied, outcome)
}

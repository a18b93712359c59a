package domain

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// MutationOutcome tells the caller exactly why a mutation did or did not apply,
// instead of silently returning nothing on an ownership mismatch.
type MutationOutcome int

const (
	// MutationApplied means the record was updated or deleted.
	MutationApplied MutationOutcome = iota
	// MutationNotFound means no record exists with the given ID.
	MutationNotFound
	// MutationNotOwner means the record belongs to a different user.
	MutationNotOwner
)

// RecordService handles CRUD for workouts, meals, and mood entries. Every call
// takes the verified user ID explicitly; there is no ambient identity.
type RecordService struct {
	workouts WorkoutRepository
	meals    MealRepository
	moods    MoodRepository
}

// NewRecordService constructs a RecordService.
func NewRecordService(workouts WorkoutRepository, meals MealRepository, moods MoodRepository) *RecordService {
	return &RecordService{workouts: workouts, meals: meals, moods: moods}
}

// LogWorkout persists a new workout owned by userID. A missing timestamp is
// set to the server time at log time and never overwritten afterwards.
func (s *RecordService) LogWorkout(ctx context.Context, userID string, workout Workout) (*Workout, error) {
	workout.ID = uuid.NewString()
	workout.UserID = userID
	if workout.Date == nil {
		now := time.Now().UTC()
		workout.Date = &now
	}
	if err := s.workouts.Create(ctx, workout); err != nil {
		return nil, err
	}
	return &workout, nil
}

// ListWorkouts returns the user's full workout history, newest first.
func (s *RecordService) ListWorkouts(ctx context.Context, userID string) ([]Workout, error) {
	return s.workouts.ListByUser(ctx, userID)
}

// UpdateWorkout applies changes to an owned workout. The stored user ID and
// timestamp are never touched.
func (s *RecordService) UpdateWorkout(ctx context.Context, userID, workoutID string, changes Workout) (*Workout, MutationOutcome, error) {
	existing, err := s.workouts.Get(ctx, workoutID)
	if err != nil {
		return nil, MutationNotFound, err
	}
	if existing == nil {
		return nil, MutationNotFound, nil
	}
	if existing.UserID != userID {
		return nil, MutationNotOwner, nil
	}

	existing.Name = changes.Name
	existing.MuscleGroup = changes.MuscleGroup
	existing.Sets = changes.Sets
	existing.Reps = changes.Reps
	existing.Weight = changes.Weight
	existing.CaloriesBurned = changes.CaloriesBurned
	existing.Notes = changes.Notes

	if err := s.workouts.Update(ctx, *existing); err != nil {
		return nil, MutationNotFound, err
	}
	return existing, MutationApplied, nil
}

// DeleteWorkout removes an owned workout. Deletion requires the same ownership
// check as update; any other caller sees the record as absent.
func (s *RecordService) DeleteWorkout(ctx context.Context, userID, workoutID string) (MutationOutcome, error) {
	existing, err := s.workouts.Get(ctx, workoutID)
	if err != nil {
		return MutationNotFound, err
	}
	if existing == nil {
		return MutationNotFound, nil
	}
	if existing.UserID != userID {
		return MutationNotOwner, nil
	}
	if err := s.workouts.Delete(ctx, workoutID); err != nil {
		return MutationNotFound, err
	}
	return MutationApplied, nil
}

// LogMeal persists a new meal owned by userID, defaulting a missing timestamp.
func (s *RecordService) LogMeal(ctx context.Context, userID string, meal Meal) (*Meal, error) {
	meal.ID = uuid.NewString()
	meal.UserID = userID
	if meal.DateTime == nil {
		now := time.Now().UTC()
		meal.DateTime = &now
	}
	if err := s.meals.Create(ctx, meal); err != nil {
		return nil, err
	}
	return &meal, nil
}

// ListMeals returns the user's full meal history, newest first.
func (s *RecordService) ListMeals(ctx context.Context, userID string) ([]Meal, error) {
	return s.meals.ListByUser(ctx, userID)
}

// UpdateMeal applies changes to an owned meal.
func (s *RecordService) UpdateMeal(ctx context.Context, userID, mealID string, changes Meal) (*Meal, MutationOutcome, error) {
	existing, err := s.meals.Get(ctx, mealID)
	if err != nil {
		return nil, MutationNotFound, err
	}
	if existing == nil {
		return nil, MutationNotFound, nil
	}
	if existing.UserID != userID {
		return nil, MutationNotOwner, nil
	}

	existing.Title = changes.Title
	existing.ShortDesc = changes.ShortDesc
	existing.Calories = changes.Calories
	existing.Protein = changes.Protein
	existing.Carbs = changes.Carbs
	existing.Fat = changes.Fat
	existing.Type = changes.Type
	existing.Notes = changes.Notes

	if err := s.meals.Update(ctx, *existing); err != nil {
		return nil, MutationNotFound, err
	}
	return existing, MutationApplied, nil
}

// DeleteMeal removes an owned meal.
func (s *RecordService) DeleteMeal(ctx context.Context, userID, mealID string) (MutationOutcome, error) {
	existing, err := s.meals.Get(ctx, mealID)
	if err != nil {
		return MutationNotFound, err
	}
	if existing == nil {
		return MutationNotFound, nil
	}
	if existing.UserID != userID {
		return MutationNotOwner, nil
	}
	if err := s.meals.Delete(ctx, mealID); err != nil {
		return MutationNotFound, err
	}
	return MutationApplied, nil
}

// LogMood persists a new mood entry owned by userID, defaulting a missing timestamp.
func (s *RecordService) LogMood(ctx context.Context, userID string, entry MoodEntry) (*MoodEntry, error) {
	entry.ID = uuid.NewString()
	entry.UserID = userID
	if entry.Date == nil {
		now := time.Now().UTC()
		entry.Date = &now
	}
	if err := s.moods.Create(ctx, entry); err != nil {
		return nil, err
	}
	return &entry, nil
}

// ListMoods returns the user's mood history, newest first.
func (s *RecordService) ListMoods(ctx context.Context, userID string) ([]MoodEntry, error) {
	return s.moods.ListByUser(ctx, userID)
}

// DeleteMood removes an owned mood entry.
func (s *RecordService) DeleteMood(ctx context.Context, userID, entryID string) (MutationOutcome, error) {
	existing, err := s.moods.Get(ctx, entryID)
	if err != nil {
		return MutationNotFound, err
	}
	if existing == nil {
		return MutationNotFound, nil
	}
	if existing.UserID != userID {
		return MutationNotOwner, nil
	}
	if err := s.moods.Delete(ctx, entryID); err != nil {
		return MutationNotFound, err
	}
	return MutationApplied, nil
}

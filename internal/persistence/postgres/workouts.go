package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"example.com/echobody/internal/domain"
	"example.com/echobody/internal/events"
	"example.com/echobody/internal/observability"
)

// WorkoutRepository provides Postgres-backed persistence for workouts.
type WorkoutRepository struct {
	pool *pgxpool.Pool
}

// NewWorkoutRepository constructs a WorkoutRepository.
func NewWorkoutRepository(pool *pgxpool.Pool) *WorkoutRepository {
	return &WorkoutRepository{pool: pool}
}

const workoutColumns = `workout_id, user_id, name, muscle_group, sets, reps, weight, calories_burned, notes, logged_at`

// Create persists the workout and records its outbox event inside a single transaction.
func (r *WorkoutRepository) Create(ctx context.Context, workout domain.Workout) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			tx.Rollback(ctx)
		}
	}()

	const stmt = `INSERT INTO workouts (workout_id, user_id, name, muscle_group, sets, reps, weight, calories_burned, notes, logged_at)
        VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10)`

	_, err = tx.Exec(ctx, stmt,
		workout.ID,
		workout.UserID,
		workout.Name,
		workout.MuscleGroup,
		workout.Sets,
		workout.Reps,
		workout.Weight,
		workout.CaloriesBurned,
		workout.Notes,
		workout.Date,
	)
	if err != nil {
		return err
	}

	if err = insertOutbox(ctx, tx, "workout", workout.ID, workout.UserID, "workout.logged", events.WorkoutLogged{
		WorkoutID:      workout.ID,
		UserID:         workout.UserID,
		Name:           workout.Name,
		MuscleGroup:    workout.MuscleGroup,
		CaloriesBurned: workout.CaloriesBurned,
		LoggedAt:       workout.Date,
	}); err != nil {
		return err
	}

	err = tx.Commit(ctx)
	if err != nil {
		return err
	}
	observability.RecordLogged("workout")
	return nil
}

// Get retrieves a workout by ID, nil when absent.
func (r *WorkoutRepository) Get(ctx context.Context, workoutID string) (*domain.Workout, error) {
	const query = `SELECT ` + workoutColumns + ` FROM workouts WHERE workout_id=$1`

	row := r.pool.QueryRow(ctx, query, workoutID)
	var w domain.Workout
	if err := row.Scan(&w.ID, &w.UserID, &w.Name, &w.MuscleGroup, &w.Sets, &w.Reps, &w.Weight, &w.CaloriesBurned, &w.Notes, &w.Date); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &w, nil
}

// ListByUser returns the user's full workout history, newest first.
func (r *WorkoutRepository) ListByUser(ctx context.Context, userID string) ([]domain.Workout, error) {
	const query = `SELECT ` + workoutColumns + ` FROM workouts WHERE user_id=$1 ORDER BY logged_at DESC NULLS LAST, workout_id`

	rows, err := r.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	results := make([]domain.Workout, 0)
	for rows.Next() {
		var w domain.Workout
		if err := rows.Scan(&w.ID, &w.UserID, &w.Name, &w.MuscleGroup, &w.Sets, &w.Reps, &w.Weight, &w.CaloriesBurned, &w.Notes, &w.Date); err != nil {
			return nil, err
		}
		results = append(results, w)
	}
	return results, rows.Err()
}

// Update persists the mutable workout fields. Owner and timestamp stay as stored.
func (r *WorkoutRepository) Update(ctx context.Context, workout domain.Workout) error {
	const stmt = `UPDATE workouts SET name=$2, muscle_group=$3, sets=$4, reps=$5, weight=$6, calories_burned=$7, notes=$8 WHERE workout_id=$1`
	_, err := r.pool.Exec(ctx, stmt,
		workout.ID,
		workout.Name,
		workout.MuscleGroup,
		workout.Sets,
		workout.Reps,
		workout.Weight,
		workout.CaloriesBurned,
		workout.Notes,
	)
	return err
}

// Delete removes a workout by ID.
func (r *WorkoutRepository) Delete(ctx context.Context, workoutID string) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM workouts WHERE workout_id=$1`, workoutID)
	return err
}

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

// MealRepository provides Postgres-backed persistence for meals.
type MealRepository struct {
	pool *pgxpool.Pool
}

// NewMealRepository constructs a MealRepository.
func NewMealRepository(pool *pgxpool.Pool) *MealRepository {
	return &MealRepository{pool: pool}
}

const mealColumns = `meal_id, user_id, title, short_desc, calories, protein, carbs, fat, meal_type, notes, logged_at`

// Create persists the meal and records its outbox event inside a single transaction.
func (r *MealRepository) Create(ctx context.Context, meal domain.Meal) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			tx.Rollback(ctx)
		}
	}()

	const stmt = `INSERT INTO meals (meal_id, user_id, title, short_desc, calories, protein, carbs, fat, meal_type, notes, logged_at)
        VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11)`

	_, err = tx.Exec(ctx, stmt,
		meal.ID,
		meal.UserID,
		meal.Title,
		meal.ShortDesc,
		meal.Calories,
		meal.Protein,
		meal.Carbs,
		meal.Fat,
		meal.Type,
		meal.Notes,
		meal.DateTime,
	)
	if err != nil {
		return err
	}

	if err = insertOutbox(ctx, tx, "meal", meal.ID, meal.UserID, "meal.logged", events.MealLogged{
		MealID:   meal.ID,
		UserID:   meal.UserID,
		Title:    meal.Title,
		Calories: meal.Calories,
		MealType: meal.Type,
		LoggedAt: meal.DateTime,
	}); err != nil {
		return err
	}

	err = tx.Commit(ctx)
	if err != nil {
		return err
	}
	observability.RecordLogged("meal")
	return nil
}

// Get retrieves a meal by ID, nil when absent.
func (r *MealRepository) Get(ctx context.Context, mealID string) (*domain.Meal, error) {
	const query = `SELECT ` + mealColumns + ` FROM meals WHERE meal_id=$1`

	row := r.pool.QueryRow(ctx, query, mealID)
	var m domain.Meal
	if err := row.Scan(&m.ID, &m.UserID, &m.Title, &m.ShortDesc, &m.Calories, &m.Protein, &m.Carbs, &m.Fat, &m.Type, &m.Notes, &m.DateTime); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &m, nil
}

// ListByUser returns the user's full meal history, newest first.
func (r *MealRepository) ListByUser(ctx context.Context, userID string) ([]domain.Meal, error) {
	const query = `SELECT ` + mealColumns + ` FROM meals WHERE user_id=$1 ORDER BY logged_at DESC NULLS LAST, meal_id`

	rows, err := r.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	results := make([]domain.Meal, 0)
	for rows.Next() {
		var m domain.Meal
		if err := rows.Scan(&m.ID, &m.UserID, &m.Title, &m.ShortDesc, &m.Calories, &m.Protein, &m.Carbs, &m.Fat, &m.Type, &m.Notes, &m.DateTime); err != nil {
			return nil, err
		}
		results = append(results, m)
	}
	return results, rows.Err()
}

// Update persists the mutable meal fields. Owner and timestamp stay as stored.
func (r *MealRepository) Update(ctx context.Context, meal domain.Meal) error {
	const stmt = `UPDATE meals SET title=$2, short_desc=$3, calories=$4, protein=$5, carbs=$6, fat=$7, meal_type=$8, notes=$9 WHERE meal_id=$1`
	_, err := r.pool.Exec(ctx, stmt,
		meal.ID,
		meal.Title,
		meal.ShortDesc,
		meal.Calories,
		meal.Protein,
		meal.Carbs,
		meal.Fat,
		meal.Type,
		meal.Notes,
	)
	return err
}

// Delete removes a meal by ID.
func (r *MealRepository) Delete(ctx context.Context, mealID string) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM meals WHERE meal_id=$1`, mealID)
	return err
}

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

// MoodRepository provides Postgres-backed persistence for mood entries.
type MoodRepository struct {
	pool *pgxpool.Pool
}

// NewMoodRepository constructs a MoodRepository.
func NewMoodRepository(pool *pgxpool.Pool) *MoodRepository {
	return &MoodRepository{pool: pool}
}

const moodColumns = `entry_id, user_id, mood, energy, notes, logged_at`

// Create persists the entry and records its outbox event inside a single transaction.
func (r *MoodRepository) Create(ctx context.Context, entry domain.MoodEntry) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			tx.Rollback(ctx)
		}
	}()

	const stmt = `INSERT INTO mood_entries (entry_id, user_id, mood, energy, notes, logged_at)
        VALUES ($1,$2,$3,$4,$5,$6)`

	_, err = tx.Exec(ctx, stmt,
		entry.ID,
		entry.UserID,
		entry.Mood,
		entry.Energy,
		entry.Notes,
		entry.Date,
	)
	if err != nil {
		return err
	}

	if err = insertOutbox(ctx, tx, "mood_entry", entry.ID, entry.UserID, "mood.logged", events.MoodLogged{
		EntryID:  entry.ID,
		UserID:   entry.UserID,
		Mood:     entry.Mood,
		Energy:   entry.Energy,
		LoggedAt: entry.Date,
	}); err != nil {
		return err
	}

	err = tx.Commit(ctx)
	if err != nil {
		return err
	}
	observability.RecordLogged("mood")
	return nil
}

// Get retrieves a mood entry by ID, nil when absent.
func (r *MoodRepository) Get(ctx context.Context, entryID string) (*domain.MoodEntry, error) {
	const query = `SELECT ` + moodColumns + ` FROM mood_entries WHERE entry_id=$1`

	row := r.pool.QueryRow(ctx, query, entryID)
	var e domain.MoodEntry
	if err := row.Scan(&e.ID, &e.UserID, &e.Mood, &e.Energy, &e.Notes, &e.Date); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &e, nil
}

// ListByUser returns the user's mood history, newest first.
func (r *MoodRepository) ListByUser(ctx context.Context, userID string) ([]domain.MoodEntry, error) {
	const query = `SELECT ` + moodColumns + ` FROM mood_entries WHERE user_id=$1 ORDER BY logged_at DESC NULLS LAST, entry_id`

	rows, err := r.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	results := make([]domain.MoodEntry, 0)
	for rows.Next() {
		var e domain.MoodEntry
		if err := rows.Scan(&e.ID, &e.UserID, &e.Mood, &e.Energy, &e.Notes, &e.Date); err != nil {
			return nil, err
		}
		results = append(results, e)
	}
	return results, rows.Err()
}

// Delete removes a mood entry by ID.
func (r *MoodRepository) Delete(ctx context.Context, entryID string) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM mood_entries WHERE entry_id=$1`, entryID)
	return err
}

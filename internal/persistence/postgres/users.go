package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"example.com/echobody/internal/domain"
)

// UserRepository provides Postgres-backed persistence for accounts.
type UserRepository struct {
	pool *pgxpool.Pool
}

// NewUserRepository constructs a UserRepository.
func NewUserRepository(pool *pgxpool.Pool) *UserRepository {
	return &UserRepository{pool: pool}
}

const userColumns = `user_id, name, email, password_hash, age, height_cm, weight_kg, goal, gender, created_at`

// Create persists a new account. A duplicate email maps to domain.ErrEmailTaken.
func (r *UserRepository) Create(ctx context.Context, user domain.User) error {
	const stmt = `INSERT INTO users (user_id, name, email, password_hash, age, height_cm, weight_kg, goal, gender, created_at)
        VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10)`

	_, err := r.pool.Exec(ctx, stmt,
		user.ID,
		user.Name,
		user.Email,
		user.PasswordHash,
		user.Age,
		user.HeightCM,
		user.WeightKG,
		user.Goal,
		user.Gender,
		user.CreatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return domain.ErrEmailTaken
		}
		return err
	}
	return nil
}

// GetByEmail retrieves an account by email, nil when absent.
func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	const query = `SELECT ` + userColumns + ` FROM users WHERE email=$1`
	return r.scanUser(r.pool.QueryRow(ctx, query, email))
}

// GetByID retrieves an account by ID, nil when absent.
func (r *UserRepository) GetByID(ctx context.Context, userID string) (*domain.User, error) {
	const query = `SELECT ` + userColumns + ` FROM users WHERE user_id=$1`
	return r.scanUser(r.pool.QueryRow(ctx, query, userID))
}

// UpdateProfile persists the mutable profile fields.
func (r *UserRepository) UpdateProfile(ctx context.Context, user domain.User) error {
	const stmt = `UPDATE users SET name=$2, age=$3, height_cm=$4, weight_kg=$5, goal=$6, gender=$7 WHERE user_id=$1`
	_, err := r.pool.Exec(ctx, stmt,
		user.ID,
		user.Name,
		user.Age,
		user.HeightCM,
		user.WeightKG,
		user.Goal,
		user.Gender,
	)
	return err
}

func (r *UserRepository) scanUser(row pgx.Row) (*domain.User, error) {
	var user domain.User
	err := row.Scan(&user.ID, &user.Name, &user.Email, &user.PasswordHash, &user.Age, &user.HeightCM, &user.WeightKG, &user.Goal, &user.Gender, &user.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}

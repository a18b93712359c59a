// Package domain defines the business logic for the fitness backend.
package domain

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

var (
	// ErrEmailTaken indicates a registration attempt with an already-used email.
	ErrEmailTaken = errors.New("email already registered")
	// ErrInvalidCredentials indicates that the provided email or password was incorrect.
	ErrInvalidCredentials = errors.New("invalid email or password")
	// ErrUserNotFound is returned when a user cannot be located.
	ErrUserNotFound = errors.New("user not found")
)

// User is the registered account that owns all logged records.
type User struct {
	ID           string
	Name         string
	Email        string
	PasswordHash string
	Age          int
	HeightCM     int
	WeightKG     int
	Goal         string
	Gender       string
	CreatedAt    time.Time
}

// UserRepository captures account persistence operations.
type UserRepository interface {
	Create(ctx context.Context, user User) error
	GetByEmail(ctx context.Context, email string) (*User, error)
	GetByID(ctx context.Context, userID string) (*User, error)
	UpdateProfile(ctx context.Context, user User) error
}

// AccountService handles registration, credential checks, and profile updates.
type AccountService struct {
	users UserRepository
}

// NewAccountService constructs an AccountService.
func NewAccountService(users UserRepository) *AccountService {
	return &AccountService{users: users}
}

// RegisterInput captures the registration payload from the API layer.
type RegisterInput struct {
	Name     string
	Email    string
	Password string
	Age      int
	HeightCM int
	WeightKG int
	Goal     string
	Gender   string
}

// Register creates an account with a bcrypt-hashed password.
func (s *AccountService) Register(ctx context.Context, input RegisterInput) (*User, error) {
	if existing, err := s.users.GetByEmail(ctx, input.Email); err != nil {
		return nil, err
	} else if existing != nil {
		return nil, ErrEmailTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := User{
		ID:           uuid.NewString(),
		Name:         input.Name,
		Email:        input.Email,
		PasswordHash: string(hash),
		Age:          input.Age,
		HeightCM:     input.HeightCM,
		WeightKG:     input.WeightKG,
		Goal:         input.Goal,
		Gender:       input.Gender,
		CreatedAt:    time.Now().UTC(),
	}

	if err := s.users.Create(ctx, user); err != nil {
		return nil, err
	}
	return &user, nil
}

// Authenticate verifies email/password and returns the matching user.
func (s *AccountService) Authenticate(ctx context.Context, email, password string) (*User, error) {
	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}
	return user, nil
}

// GetProfile fetches a user by ID.
func (s *AccountService) GetProfile(ctx context.Context, userID string) (*User, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	return user, nil
}

// ProfileUpdate carries the mutable profile fields. Email and password are
// intentionally not updatable through this path.
type ProfileUpdate struct {
	Name     string
	Age      int
	HeightCM int
	WeightKG int
	Goal     string
	Gender   string
}

// UpdateProfile applies profile changes and returns the updated user.
func (s *AccountService) UpdateProfile(ctx context.Context, userID string, update ProfileUpdate) (*User, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	user.Name = update.Name
	user.Age = update.Age
	user.HeightCM = update.HeightCM
	user.WeightKG = update.WeightKG
	user.Goal = update.Goal
	user.Gender = update.Gender

	if err := s.users.UpdateProfile(ctx, *user); err != nil {
		return nil, err
	}
	return user, nil
}

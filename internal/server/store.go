package server

import (
	"context"
	"errors"

	"github.com/firsthome/firsthome/internal/journey"
)

var (
	ErrNotFound   = errors.New("not found")
	ErrEmailTaken = errors.New("email already registered")
)

// User is an authenticated account.
type User struct {
	ID    string `json:"id"`
	Email string `json:"email"`
}

type Store interface {
	CreateUser(ctx context.Context, email, passwordHash string) (User, error)
	UserByEmail(ctx context.Context, email string) (User, string, error)
	UserByID(ctx context.Context, id string) (User, error)
	UpdatePassword(ctx context.Context, userID, passwordHash string) error
	DeleteUser(ctx context.Context, userID string) error

	FetchJourney(ctx context.Context, userID string) (*journey.PersistedJourney, error)
	UpsertJourney(ctx context.Context, userID string, p journey.PersistedJourney) error
}

package server

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/firsthome/firsthome/internal/journey"
)

type SQLiteStore struct {
	db *sql.DB
}

func NewSQLiteStore(db *sql.DB) *SQLiteStore {
	return &SQLiteStore{db: db}
}

func (s *SQLiteStore) CreateUser(ctx context.Context, email, passwordHash string) (User, error) {
	var u User
	err := s.db.QueryRowContext(ctx, `
		INSERT INTO users (id, email, password_hash)
		VALUES (lower(hex(randomblob(16))), ?, ?)
		RETURNING id, email
	`, email, passwordHash).Scan(&u.ID, &u.Email)
	if err != nil && strings.Contains(err.Error(), "UNIQUE constraint failed") {
		return User{}, ErrEmailTaken
	}
	return u, err
}

func (s *SQLiteStore) UserByEmail(ctx context.Context, email string) (User, string, error) {
	var u User
	var hash string
	err := s.db.QueryRowContext(ctx, `
		SELECT id, email, password_hash FROM users WHERE email = ?
	`, email).Scan(&u.ID, &u.Email, &hash)
	if errors.Is(err, sql.ErrNoRows) {
		return User{}, "", ErrNotFound
	}
	return u, hash, err
}

func (s *SQLiteStore) UserByID(ctx context.Context, id string) (User, error) {
	var u User
	err := s.db.QueryRowContext(ctx, `
		SELECT id, email FROM users WHERE id = ?
	`, id).Scan(&u.ID, &u.Email)
	if errors.Is(err, sql.ErrNoRows) {
		return User{}, ErrNotFound
	}
	return u, err
}

func (s *SQLiteStore) UpdatePassword(ctx context.Context, userID, passwordHash string) error {
	res, err := s.db.ExecContext(ctx, `
		UPDATE users SET password_hash = ? WHERE id = ?
	`, passwordHash, userID)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}

// DeleteUser removes the account; the journey row goes with it via
// ON DELETE CASCADE.
func (s *SQLiteStore) DeleteUser(ctx context.Context, userID string) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM users WHERE id = ?`, userID)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *SQLiteStore) FetchJourney(ctx context.Context, userID string) (*journey.PersistedJourney, error) {
	var raw []byte
	err := s.db.QueryRowContext(ctx, `
		SELECT json(journey_data) FROM user_journeys WHERE user_id = ?
	`, userID).Scan(&raw)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	var p journey.PersistedJourney
	if err := json.Unmarshal(raw, &p); err != nil {
		return nil, fmt.Errorf("decoding journey for user %s: %w", userID, err)
	}
	return &p, nil
}

// UpsertJourney replaces the whole saved journey. Last write wins.
func (s *SQLiteStore) UpsertJourney(ctx context.Context, userID string, p journey.PersistedJourney) error {
	raw, err := json.Marshal(p)
	if err != nil {
		return fmt.Errorf("encoding journey: %w", err)
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO user_journeys (user_id, journey_data)
		VALUES (?, jsonb(?))
		ON CONFLICT (user_id) DO UPDATE SET
			journey_data = excluded.journey_data,
			updated_at = strftime('%Y-%m-%dT%H:%M:%fZ', 'now')
	`, userID, string(raw))
	return err
}

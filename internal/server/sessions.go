package server

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

var errNoSession = errors.New("no valid session")

const sessionTTL = 7 * 24 * time.Hour

// Sessions maps bearer tokens to user IDs.
type Sessions interface {
	Create(ctx context.Context, userID string) (token string, err error)
	User(ctx context.Context, token string) (userID string, err error)
	Delete(ctx context.Context, token string) error
}

// RedisSessions stores session tokens in Redis with a sliding 7-day TTL.
type RedisSessions struct {
	rdb *redis.Client
}

func NewRedisSessions(rdb *redis.Client) *RedisSessions {
	return &RedisSessions{rdb: rdb}
}

func (s *RedisSessions) Create(ctx context.Context, userID string) (string, error) {
	buf := make([]byte, 16)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("generating session token: %w", err)
	}
	token := hex.EncodeToString(buf)

	if err := s.rdb.Set(ctx, "session:"+token, userID, sessionTTL).Err(); err != nil {
		return "", fmt.Errorf("storing session: %w", err)
	}
	return token, nil
}

func (s *RedisSessions) User(ctx context.Context, token string) (string, error) {
	userID, err := s.rdb.GetEx(ctx, "session:"+token, sessionTTL).Result()
	if errors.Is(err, redis.Nil) {
		return "", errNoSession
	}
	if err != nil {
		return "", err
	}
	return userID, nil
}

func (s *RedisSessions) Delete(ctx context.Context, token string) error {
	return s.rdb.Del(ctx, "session:"+token).Err()
}

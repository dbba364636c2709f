package session

import (
	"context"
	"fmt"
	"strconv"
	"time"

	stderrors "errors"

	"github.com/google/uuid"

	"recipebox/internal/infrastructure/redis"
	pkgerrors "recipebox/pkg/errors"
)

const keyPrefix = "session:"

// Store maps an opaque session token to a signed-in user id. Tokens are
// created at signup/login and deleted at logout.
type Store interface {
	Create(ctx context.Context, userID int64) (string, error)
	Get(ctx context.Context, token string) (int64, error)
	Delete(ctx context.Context, token string) error
}

// RedisStore keeps sessions in Redis so they survive process restarts and
// expire on their own.
type RedisStore struct {
	client redis.RedisClient
	ttl    time.Duration
}

func NewRedisStore(client redis.RedisClient, ttl time.Duration) *RedisStore {
	return &RedisStore{client: client, ttl: ttl}
}

func (s *RedisStore) Create(ctx context.Context, userID int64) (string, error) {
	token := uuid.NewString()
	if err := s.client.Set(ctx, keyPrefix+token, userID, s.ttl); err != nil {
		return "", fmt.Errorf("failed to store session: %w", err)
	}
	return token, nil
}

func (s *RedisStore) Get(ctx context.Context, token string) (int64, error) {
	if token == "" {
		return 0, pkgerrors.ErrSessionNotFound
	}
	val, err := s.client.Get(ctx, keyPrefix+token)
	if stderrors.Is(err, redis.ErrKeyNotFound) {
		return 0, pkgerrors.ErrSessionNotFound
	}
	if err != nil {
		return 0, fmt.Errorf("failed to read session: %w", err)
	}
	userID, err := strconv.ParseInt(val, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("corrupt session value %q: %w", val, err)
	}
	return userID, nil
}

func (s *RedisStore) Delete(ctx context.Context, token string) error {
	return s.client.Del(ctx, keyPrefix+token)
}

package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"carmarket/internal/mechanic"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const sessionKeyPrefix = "mechanic:"

// SessionRepository keeps one mechanic.State per visitor session. Every write refreshes the TTL.
type SessionRepository struct {
	rdb    redis.Cmdable
	ttl    time.Duration
	logger *zap.Logger
}

func NewSessionRepository(rdb redis.Cmdable, ttl time.Duration, logger *zap.Logger) *SessionRepository {
	return &SessionRepository{
		rdb:    rdb,
		ttl:    ttl,
		logger: logger,
	}
}

func sessionKey(id uuid.UUID) string {
	return sessionKeyPrefix + id.String()
}

func (r *SessionRepository) Save(ctx context.Context, id uuid.UUID, state mechanic.State) error {
	data, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("encode session state: %w", err)
	}

	return r.rdb.Set(ctx, sessionKey(id), data, r.ttl).Err()
}

func (r *SessionRepository) Get(ctx context.Context, id uuid.UUID) (mechanic.State, error) {
	data, err := r.rdb.Get(ctx, sessionKey(id)).Bytes()
	if errors.Is(err, redis.Nil) {
		return mechanic.State{}, ErrNotFound
	}
	if err != nil {
		return mechanic.State{}, err
	}

	var state mechanic.State
	if err := json.Unmarshal(data, &state); err != nil {
		return mechanic.State{}, fmt.Errorf("decode session state: %w", err)
	}
	return state, nil
}

func (r *SessionRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.rdb.Del(ctx, sessionKey(id)).Err()
}

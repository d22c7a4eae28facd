package repository

import (
	"context"
	"slices"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const favoritesKeyPrefix = "favorites:"

type FavoriteRepository struct {
	rdb    redis.Cmdable
	ttl    time.Duration
	logger *zap.Logger
}

func NewFavoriteRepository(rdb redis.Cmdable, ttl time.Duration, logger *zap.Logger) *FavoriteRepository {
	return &FavoriteRepository{
		rdb:    rdb,
		ttl:    ttl,
		logger: logger,
	}
}

func favoritesKey(sessionID uuid.UUID) string {
	return favoritesKeyPrefix + sessionID.String()
}

func (r *FavoriteRepository) Add(ctx context.Context, sessionID, listingID uuid.UUID) error {
	key := favoritesKey(sessionID)
	_, err := r.rdb.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.SAdd(ctx, key, listingID.String())
		pipe.Expire(ctx, key, r.ttl)
		return nil
	})
	return err
}

func (r *FavoriteRepository) Remove(ctx context.Context, sessionID, listingID uuid.UUID) error {
	return r.rdb.SRem(ctx, favoritesKey(sessionID), listingID.String()).Err()
}

func (r *FavoriteRepository) Contains(ctx context.Context, sessionID, listingID uuid.UUID) (bool, error) {
	return r.rdb.SIsMember(ctx, favoritesKey(sessionID), listingID.String()).Result()
}

// List returns the favorite listing ids in lexical order. Malformed members are skipped.
func (r *FavoriteRepository) List(ctx context.Context, sessionID uuid.UUID) ([]uuid.UUID, error) {
	members, err := r.rdb.SMembers(ctx, favoritesKey(sessionID)).Result()
	if err != nil {
		return nil, err
	}
	slices.Sort(members)

	ids := make([]uuid.UUID, 0, len(members))
	for _, m := range members {
		id, err := uuid.Parse(m)
		if err != nil {
			r.logger.Warn("Skipping malformed favorite", zap.String("member", m))
			continue
		}
		ids = append(ids, id)
	}
	return ids, nil
}

package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"carmarket/internal/models"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const CatalogCacheKey = "catalog:snapshot"

// CatalogCache stores the whole listing snapshot as one JSON value, so readers never see a
// partially written catalog.
type CatalogCache struct {
	rdb    redis.Cmdable
	ttl    time.Duration
	logger *zap.Logger
}

func NewCatalogCache(rdb redis.Cmdable, ttl time.Duration, logger *zap.Logger) *CatalogCache {
	return &CatalogCache{
		rdb:    rdb,
		ttl:    ttl,
		logger: logger,
	}
}

// Get returns ErrNotFound on a cache miss.
func (c *CatalogCache) Get(ctx context.Context) ([]*models.Listing, error) {
	data, err := c.rdb.Get(ctx, CatalogCacheKey).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	var listings []*models.Listing
	if err := json.Unmarshal(data, &listings); err != nil {
		return nil, fmt.Errorf("decode catalog snapshot: %w", err)
	}
	return listings, nil
}

func (c *CatalogCache) Set(ctx context.Context, listings []*models.Listing) error {
	data, err := json.Marshal(listings)
	if err != nil {
		return fmt.Errorf("encode catalog snapshot: %w", err)
	}
	return c.rdb.Set(ctx, CatalogCacheKey, data, c.ttl).Err()
}

func (c *CatalogCache) Invalidate(ctx context.Context) error {
	return c.rdb.Del(ctx, CatalogCacheKey).Err()
}

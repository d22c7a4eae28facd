package service

import (
	"context"
	"errors"
	"fmt"

	"carmarket/internal/mechanic"
	"carmarket/internal/models"
	"carmarket/internal/repository"
	"carmarket/pkg/metrics"

	"go.uber.org/zap"
)

// Snapshot is one consistent read of the whole catalog.
type Snapshot struct {
	Listings []*models.Listing
	byID     map[string]*models.Listing
}

func NewSnapshot(listings []*models.Listing) *Snapshot {
	byID := make(map[string]*models.Listing, len(listings))
	for _, l := range listings {
		byID[l.ID.String()] = l
	}
	return &Snapshot{Listings: listings, byID: byID}
}

func (s *Snapshot) Candidates() []mechanic.Candidate {
	out := make([]mechanic.Candidate, len(s.Listings))
	for i, l := range s.Listings {
		out[i] = l.Candidate()
	}
	return out
}

func (s *Snapshot) Lookup(id string) (*models.Listing, bool) {
	l, ok := s.byID[id]
	return l, ok
}

type CatalogService struct {
	listings ListingStore
	cache    CatalogCache
	logger   *zap.Logger
}

func NewCatalogService(listings ListingStore, cache CatalogCache, logger *zap.Logger) *CatalogService {
	return &CatalogService{
		listings: listings,
		cache:    cache,
		logger:   logger,
	}
}

// Snapshot loads the catalog from the cache, falling back to the store. Cache failures are
// logged and bypassed. A store failure or an empty catalog yields ErrCatalogUnavailable.
func (s *CatalogService) Snapshot(ctx context.Context) (*Snapshot, error) {
	cached, err := s.cache.Get(ctx)
	switch {
	case err == nil && len(cached) > 0:
		metrics.CatalogLoads.WithLabelValues("cache", "hit").Inc()
		return NewSnapshot(cached), nil
	case err != nil && !errors.Is(err, repository.ErrNotFound):
		metrics.CatalogLoads.WithLabelValues("cache", "error").Inc()
		s.logger.Warn("Catalog cache read failed", zap.Error(err))
	}

	listings, err := s.listings.ListAll(ctx)
	if err != nil {
		metrics.CatalogLoads.WithLabelValues("store", "error").Inc()
		s.logger.Error("Failed to load catalog", zap.Error(err))
		return nil, fmt.Errorf("%w: %v", ErrCatalogUnavailable, err)
	}
	if len(listings) == 0 {
		metrics.CatalogLoads.WithLabelValues("store", "empty").Inc()
		s.logger.Warn("Catalog is empty")
		return nil, ErrCatalogUnavailable
	}
	metrics.CatalogLoads.WithLabelValues("store", "ok").Inc()

	if err := s.cache.Set(ctx, listings); err != nil {
		s.logger.Warn("Catalog cache write failed", zap.Error(err))
	}

	s.logger.Debug("Catalog loaded", zap.Int("listings", len(listings)))
	return NewSnapshot(listings), nil
}

package service

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"carmarket/internal/models"
	"carmarket/internal/repository"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap/zaptest"
)

type fakeListingStore struct {
	mu         sync.Mutex
	listings   []*models.Listing
	err        error
	calls      int
	lastFilter models.ListingFilter
}

func (f *fakeListingStore) ListAll(_ context.Context) ([]*models.Listing, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return f.listings, nil
}

func (f *fakeListingStore) GetByID(_ context.Context, id uuid.UUID) (*models.Listing, error) {
	if f.err != nil {
		return nil, f.err
	}
	for _, l := range f.listings {
		if l.ID == id {
			return l, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (f *fakeListingStore) FindByName(_ context.Context, name string) (*models.Listing, error) {
	for _, l := range f.listings {
		if l.Name == name {
			return l, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (f *fakeListingStore) FindByNameLike(_ context.Context, name string) (*models.Listing, error) {
	for _, l := range f.listings {
		if strings.Contains(strings.ToLower(l.Name), strings.ToLower(name)) {
			return l, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (f *fakeListingStore) Search(_ context.Context, filter models.ListingFilter) ([]*models.Listing, int, error) {
	f.lastFilter = filter
	if f.err != nil {
		return nil, 0, f.err
	}
	start := min(filter.Offset(), len(f.listings))
	end := min(start+filter.PageSize, len(f.listings))
	return f.listings[start:end], len(f.listings), nil
}

var errStoreDown = errors.New("connection refused")

func listing(id, name string, price float64, year, mileage int) *models.Listing {
	return &models.Listing{
		ID:        uuid.MustParse(id),
		Name:      name,
		Price:     price,
		Year:      year,
		Mileage:   mileage,
		City:      "Campinas",
		State:     "SP",
		ImageURL:  "https://img.example/" + id + ".jpg",
		CreatedAt: time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC),
	}
}

func testCatalog() []*models.Listing {
	return []*models.Listing{
		listing("00000000-0000-0000-0000-000000000001", "SUV Compass 2020", 95000, 2020, 40000),
		listing("00000000-0000-0000-0000-000000000002", "Onix 1.0 Flex", 45000, 2019, 30000),
		listing("00000000-0000-0000-0000-000000000003", "Fit Hatch 1.3", 52000, 2016, 70000),
		listing("00000000-0000-0000-0000-000000000004", "Gol City", 28000, 2012, 120000),
		listing("00000000-0000-0000-0000-000000000005", "BMW 320i Sport", 140000, 2018, 50000),
		listing("00000000-0000-0000-0000-000000000006", "Sedan Corolla 2019", 89000, 2019, 95000),
	}
}

func newTestRedis(t *testing.T) (*miniredis.Miniredis, *redis.Client) {
	t.Helper()
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })
	return mr, rdb
}

func newTestCatalogService(t *testing.T, store *fakeListingStore) *CatalogService {
	t.Helper()
	_, rdb := newTestRedis(t)
	logger := zaptest.NewLogger(t)
	return NewCatalogService(store, repository.NewCatalogCache(rdb, time.Minute, logger), logger)
}

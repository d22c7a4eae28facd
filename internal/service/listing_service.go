package service

import (
	"context"
	"errors"
	"fmt"

	"carmarket/internal/dto"
	"carmarket/internal/models"
	"carmarket/internal/repository"
	"carmarket/pkg/config"
	"carmarket/pkg/metrics"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type ListingService struct {
	listings ListingStore
	cfg      config.SearchConfig
	logger   *zap.Logger
}

func NewListingService(listings ListingStore, cfg config.SearchConfig, logger *zap.Logger) *ListingService {
	return &ListingService{
		listings: listings,
		cfg:      cfg,
		logger:   logger,
	}
}

// NormalizeFilter applies defaults and bounds to the paging and sorting fields.
func (s *ListingService) NormalizeFilter(filter models.ListingFilter) (models.ListingFilter, error) {
	if filter.Sort == "" {
		filter.Sort = models.SortByPrice
	}
	if !filter.Sort.Valid() {
		return filter, fmt.Errorf("%w: unknown sort field %q", ErrInvalidFilter, filter.Sort)
	}

	switch filter.Direction {
	case "":
		filter.Direction = models.SortAsc
	case models.SortAsc, models.SortDesc:
	default:
		return filter, fmt.Errorf("%w: direction must be asc or desc", ErrInvalidFilter)
	}

	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.PageSize < 1 {
		filter.PageSize = s.cfg.PageSize
	}
	if filter.PageSize > s.cfg.MaxPageSize {
		filter.PageSize = s.cfg.MaxPageSize
	}
	if filter.Page > models.MaxPage(filter.PageSize) {
		filter.Page = models.MaxPage(filter.PageSize)
	}
	return filter, nil
}

func (s *ListingService) Search(ctx context.Context, filter models.ListingFilter) (*dto.ListingPage, error) {
	filter, err := s.NormalizeFilter(filter)
	if err != nil {
		return nil, err
	}

	listings, total, err := s.listings.Search(ctx, filter)
	if err != nil {
		s.logger.Error("Listing search failed", zap.Error(err))
		return nil, err
	}
	metrics.SearchQueries.Inc()

	totalPages := (total + filter.PageSize - 1) / filter.PageSize
	if totalPages < 1 {
		totalPages = 1
	}

	return &dto.ListingPage{
		Items:      dto.NewListingResponses(listings),
		Page:       filter.Page,
		PageSize:   filter.PageSize,
		Total:      total,
		TotalPages: totalPages,
	}, nil
}

// Resolve finds a listing by id. When that fails and name is given, an exact name match is
// tried, then a partial one.
func (s *ListingService) Resolve(ctx context.Context, id, name string) (*models.Listing, error) {
	if parsed, err := uuid.Parse(id); err == nil {
		listing, err := s.listings.GetByID(ctx, parsed)
		if err == nil {
			return listing, nil
		}
		if !errors.Is(err, repository.ErrNotFound) {
			return nil, err
		}
	}

	if name == "" {
		return nil, ErrListingNotFound
	}

	lookups := []func(context.Context, string) (*models.Listing, error){
		s.listings.FindByName,
		s.listings.FindByNameLike,
	}
	for _, find := range lookups {
		listing, err := find(ctx, name)
		if err == nil {
			s.logger.Debug("Listing resolved by name", zap.String("id", id), zap.String("name", name))
			return listing, nil
		}
		if !errors.Is(err, repository.ErrNotFound) {
			return nil, err
		}
	}

	return nil, ErrListingNotFound
}

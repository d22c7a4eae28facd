package service

import (
	"context"
	"errors"

	"carmarket/internal/dto"
	"carmarket/internal/repository"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type FavoriteService struct {
	favorites FavoriteStore
	listings  ListingStore
	logger    *zap.Logger
}

func NewFavoriteService(favorites FavoriteStore, listings ListingStore, logger *zap.Logger) *FavoriteService {
	return &FavoriteService{
		favorites: favorites,
		listings:  listings,
		logger:    logger,
	}
}

// List returns the favorite listings of a session. Listings removed from the catalog are skipped.
func (s *FavoriteService) List(ctx context.Context, sessionID uuid.UUID) ([]dto.ListingResponse, error) {
	ids, err := s.favorites.List(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	out := make([]dto.ListingResponse, 0, len(ids))
	for _, id := range ids {
		listing, err := s.listings.GetByID(ctx, id)
		if errors.Is(err, repository.ErrNotFound) {
			s.logger.Debug("Skipping favorite of removed listing", zap.String("listing_id", id.String()))
			continue
		}
		if err != nil {
			return nil, err
		}
		out = append(out, dto.NewListingResponse(listing))
	}
	return out, nil
}

// Toggle adds the listing to the favorites, or removes it when already present.
func (s *FavoriteService) Toggle(ctx context.Context, sessionID uuid.UUID, rawID string) (*dto.FavoriteToggleResponse, error) {
	listingID, err := uuid.Parse(rawID)
	if err != nil {
		return nil, ErrListingNotFound
	}

	present, err := s.favorites.Contains(ctx, sessionID, listingID)
	if err != nil {
		return nil, err
	}
	if present {
		if err := s.favorites.Remove(ctx, sessionID, listingID); err != nil {
			return nil, err
		}
		return &dto.FavoriteToggleResponse{ListingID: listingID.String(), Favorite: false}, nil
	}

	if err := s.add(ctx, sessionID, listingID); err != nil {
		return nil, err
	}
	return &dto.FavoriteToggleResponse{ListingID: listingID.String(), Favorite: true}, nil
}

func (s *FavoriteService) Remove(ctx context.Context, sessionID uuid.UUID, rawID string) error {
	listingID, err := uuid.Parse(rawID)
	if err != nil {
		return ErrListingNotFound
	}
	return s.favorites.Remove(ctx, sessionID, listingID)
}

func (s *FavoriteService) add(ctx context.Context, sessionID, listingID uuid.UUID) error {
	if _, err := s.listings.GetByID(ctx, listingID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrListingNotFound
		}
		return err
	}
	return s.favorites.Add(ctx, sessionID, listingID)
}

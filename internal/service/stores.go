package service

import (
	"context"

	"carmarket/internal/mechanic"
	"carmarket/internal/models"

	"github.com/google/uuid"
)

// ListingStore is implemented by repository.ListingRepository.
type ListingStore interface {
	ListAll(ctx context.Context) ([]*models.Listing, error)
	GetByID(ctx context.Context, id uuid.UUID) (*models.Listing, error)
	FindByName(ctx context.Context, name string) (*models.Listing, error)
	FindByNameLike(ctx context.Context, name string) (*models.Listing, error)
	Search(ctx context.Context, filter models.ListingFilter) ([]*models.Listing, int, error)
}

type CatalogCache interface {
	Get(ctx context.Context) ([]*models.Listing, error)
	Set(ctx context.Context, listings []*models.Listing) error
}

type SessionStore interface {
	Save(ctx context.Context, id uuid.UUID, state mechanic.State) error
	Get(ctx context.Context, id uuid.UUID) (mechanic.State, error)
}

type FavoriteStore interface {
	Add(ctx context.Context, sessionID, listingID uuid.UUID) error
	Remove(ctx context.Context, sessionID, listingID uuid.UUID) error
	Contains(ctx context.Context, sessionID, listingID uuid.UUID) (bool, error)
	List(ctx context.Context, sessionID uuid.UUID) ([]uuid.UUID, error)
}

type LeadStore interface {
	Create(ctx context.Context, lead *models.Lead) error
}

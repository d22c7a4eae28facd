package dto

import (
	"time"

	"carmarket/internal/models"
)

type ListingResponse struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Price       float64 `json:"price"`
	Year        int     `json:"year"`
	Mileage     int     `json:"mileage"`
	ImageURL    string  `json:"image_url"`
	City        string  `json:"city"`
	State       string  `json:"state"`
	Link        string  `json:"link"`
	Description string  `json:"description,omitempty"`
	CreatedAt   string  `json:"created_at"`
}

func NewListingResponse(l *models.Listing) ListingResponse {
	return ListingResponse{
		ID:          l.ID.String(),
		Name:        l.Name,
		Price:       l.Price,
		Year:        l.Year,
		Mileage:     l.Mileage,
		ImageURL:    l.ImageURL,
		City:        l.City,
		State:       l.State,
		Link:        l.Link,
		Description: l.Description,
		CreatedAt:   l.CreatedAt.Format(time.RFC3339),
	}
}

func NewListingResponses(listings []*models.Listing) []ListingResponse {
	out := make([]ListingResponse, 0, len(listings))
	for _, l := range listings {
		out = append(out, NewListingResponse(l))
	}
	return out
}

type ListingPage struct {
	Items      []ListingResponse `json:"items"`
	Page       int               `json:"page"`
	PageSize   int               `json:"page_size"`
	Total      int               `json:"total"`
	TotalPages int               `json:"total_pages"`
}

type FavoriteToggleResponse struct {
	ListingID string `json:"listing_id"`
	Favorite  bool   `json:"favorite"`
}

package models

import (
	"math"
	"time"

	"carmarket/internal/mechanic"

	"github.com/google/uuid"
)

type Listing struct {
	ID          uuid.UUID `db:"id" json:"id"`
	Name        string    `db:"name" json:"name"`
	Price       float64   `db:"price" json:"price"`
	Year        int       `db:"year" json:"year"`
	Mileage     int       `db:"mileage" json:"mileage"`
	ImageURL    string    `db:"image_url" json:"image_url"`
	City        string    `db:"city" json:"city"`
	State       string    `db:"state" json:"state"`
	Link        string    `db:"link" json:"link"`
	Description string    `db:"description" json:"description"`
	CreatedAt   time.Time `db:"created_at" json:"created_at"`
}

// Candidate reduces the listing to what the recommendation funnel reads.
func (l *Listing) Candidate() mechanic.Candidate {
	return mechanic.Candidate{
		ID:      l.ID.String(),
		Name:    l.Name,
		Price:   l.Price,
		Year:    l.Year,
		Mileage: l.Mileage,
	}
}

type SortField string

const (
	SortByPrice     SortField = "price"
	SortByYear      SortField = "year"
	SortByMileage   SortField = "mileage"
	SortByName      SortField = "name"
	SortByCreatedAt SortField = "created_at"
)

func (f SortField) Valid() bool {
	switch f {
	case SortByPrice, SortByYear, SortByMileage, SortByName, SortByCreatedAt:
		return true
	}
	return false
}

type SortDirection string

const (
	SortAsc  SortDirection = "asc"
	SortDesc SortDirection = "desc"
)

// ListingFilter is a search request. Nil bounds are not applied.
type ListingFilter struct {
	Name       string
	PriceMin   *float64
	PriceMax   *float64
	YearMin    *int
	YearMax    *int
	MileageMin *int
	MileageMax *int
	// StateName matches the state exactly; State is a partial match and is ignored when
	// StateName is set.
	StateName string
	State     string
	City      string

	Sort      SortField
	Direction SortDirection
	Page      int
	PageSize  int
}

// MaxOffset bounds how deep a search can page.
const MaxOffset = math.MaxInt32

// MaxPage is the last page reachable with pageSize rows per page.
func MaxPage(pageSize int) int {
	if pageSize < 1 {
		return 1
	}
	return MaxOffset/pageSize + 1
}

// Offset of the first row of the requested page, never above MaxOffset.
func (f ListingFilter) Offset() int {
	if f.Page < 1 || f.PageSize < 1 {
		return 0
	}
	return (min(f.Page, MaxPage(f.PageSize)) - 1) * f.PageSize
}

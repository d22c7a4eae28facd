package service

import (
	"context"
	"math/rand"
	"time"

	"carmarket/internal/analysis"
	"carmarket/internal/dto"
	"carmarket/internal/models"

	"go.uber.org/zap"
)

// Narrator writes a free-text summary of an analysis sheet.
type Narrator interface {
	Narrate(ctx context.Context, listing *models.Listing, sheet analysis.Sheet) (string, error)
}

type AnalysisService struct {
	listings      *ListingService
	narrator      Narrator
	referenceYear int
	now           func() time.Time
	logger        *zap.Logger
}

// NewAnalysisService builds the service. narrator may be nil; sheets are then returned without
// a narrative. referenceYear 0 means the current year.
func NewAnalysisService(listings *ListingService, narrator Narrator, referenceYear int, logger *zap.Logger) *AnalysisService {
	return &AnalysisService{
		listings:      listings,
		narrator:      narrator,
		referenceYear: referenceYear,
		now:           time.Now,
		logger:        logger,
	}
}

// Analyze resolves the listing like the detail page does and generates its sheet. A nil seed
// draws a fresh one, which is echoed in the response so the sheet can be reproduced.
func (s *AnalysisService) Analyze(ctx context.Context, id, name string, seed *int64) (*dto.AnalysisResponse, error) {
	listing, err := s.listings.Resolve(ctx, id, name)
	if err != nil {
		return nil, err
	}

	var used int64
	if seed != nil {
		used = *seed
	} else {
		used = s.now().UnixNano()
	}

	year := s.referenceYear
	if year <= 0 {
		year = s.now().Year()
	}

	sheet := analysis.Generate(
		rand.New(rand.NewSource(used)),
		analysis.Vehicle{Name: listing.Name, Price: listing.Price, Year: listing.Year},
		year,
	)

	resp := &dto.AnalysisResponse{
		Listing:  dto.NewListingResponse(listing),
		Analysis: sheet,
		Seed:     used,
	}

	if s.narrator != nil {
		narrative, err := s.narrator.Narrate(ctx, listing, sheet)
		if err != nil {
			s.logger.Warn("Narrative generation failed", zap.String("listing_id", listing.ID.String()), zap.Error(err))
		} else {
			resp.Narrative = narrative
		}
	}

	return resp, nil
}

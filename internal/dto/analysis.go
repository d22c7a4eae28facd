package dto

import "carmarket/internal/analysis"

type AnalysisResponse struct {
	Listing   ListingResponse `json:"listing"`
	Analysis  analysis.Sheet  `json:"analysis"`
	Narrative string          `json:"narrative,omitempty"`
	Seed      int64           `json:"seed"`
}

package service

import (
	"context"
	"errors"
	"testing"

	"carmarket/internal/analysis"
	"carmarket/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

type stubNarrator struct {
	text string
	err  error
}

func (s stubNarrator) Narrate(_ context.Context, _ *models.Listing, _ analysis.Sheet) (string, error) {
	return s.text, s.err
}

func newTestAnalysisService(t *testing.T, narrator Narrator) *AnalysisService {
	listings := newTestListingService(t, &fakeListingStore{listings: testCatalog()})
	return NewAnalysisService(listings, narrator, 2024, zaptest.NewLogger(t))
}

func TestAnalysisService_SeedIsReproducible(t *testing.T) {
	svc := newTestAnalysisService(t, nil)
	seed := int64(99)

	a, err := svc.Analyze(context.Background(), "00000000-0000-0000-0000-000000000001", "", &seed)
	require.NoError(t, err)
	b, err := svc.Analyze(context.Background(), "00000000-0000-0000-0000-000000000001", "", &seed)
	require.NoError(t, err)

	assert.Equal(t, a, b)
	assert.Equal(t, seed, a.Seed)
	assert.Equal(t, analysis.TypeSUV, a.Analysis.VehicleType)
	assert.Equal(t, "SUV Compass 2020", a.Listing.Name)
	assert.Empty(t, a.Narrative)
}

func TestAnalysisService_ResolvesByName(t *testing.T) {
	svc := newTestAnalysisService(t, nil)

	resp, err := svc.Analyze(context.Background(), "missing", "Gol", nil)

	require.NoError(t, err)
	assert.Equal(t, "Gol City", resp.Listing.Name)
	assert.Equal(t, analysis.TypeHatchback, resp.Analysis.VehicleType)
}

func TestAnalysisService_NotFound(t *testing.T) {
	_, err := newTestAnalysisService(t, nil).Analyze(context.Background(), "missing", "", nil)

	assert.ErrorIs(t, err, ErrListingNotFound)
}

func TestAnalysisService_Narrative(t *testing.T) {
	seed := int64(1)

	resp, err := newTestAnalysisService(t, stubNarrator{text: "Bom negócio."}).
		Analyze(context.Background(), "00000000-0000-0000-0000-000000000002", "", &seed)
	require.NoError(t, err)
	assert.Equal(t, "Bom negócio.", resp.Narrative)

	resp, err = newTestAnalysisService(t, stubNarrator{err: errors.New("quota exceeded")}).
		Analyze(context.Background(), "00000000-0000-0000-0000-000000000002", "", &seed)
	require.NoError(t, err)
	assert.Empty(t, resp.Narrative)
}

func TestBuildNarrativePrompt(t *testing.T) {
	l := listing("00000000-0000-0000-0000-000000000001", "SUV Compass 2020", 95000, 2020, 40000)
	sheet := analysis.Sheet{
		Specs:        analysis.Specs{Body: analysis.TypeSUV, Engine: "2.0 Flex"},
		CommonIssues: []string{"Recalls pendentes"},
		Competitors:  []analysis.Competitor{{Model: "Honda HR-V"}, {Model: "Hyundai Creta"}},
	}

	prompt := buildNarrativePrompt(l, sheet)

	assert.Contains(t, prompt, "SUV Compass 2020 (2020), 40000 km")
	assert.Contains(t, prompt, "Local: Campinas/SP.")
	assert.Contains(t, prompt, "Motor: 2.0 Flex")
	assert.Contains(t, prompt, "Concorrentes: Honda HR-V, Hyundai Creta.")
}

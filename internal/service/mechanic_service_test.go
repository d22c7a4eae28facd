package service

import (
	"context"
	"testing"
	"time"

	"carmarket/internal/dto"
	"carmarket/internal/mechanic"
	"carmarket/internal/repository"
	"carmarket/pkg/config"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

type mechanicFixture struct {
	svc     *MechanicService
	store   *fakeListingStore
	session uuid.UUID
}

func newMechanicFixture(t *testing.T) *mechanicFixture {
	t.Helper()
	logger := zaptest.NewLogger(t)
	_, rdb := newTestRedis(t)

	store := &fakeListingStore{listings: testCatalog()}
	catalog := NewCatalogService(store, repository.NewCatalogCache(rdb, time.Minute, logger), logger)
	sessions := repository.NewSessionRepository(rdb, time.Hour, logger)

	id := uuid.New()
	require.NoError(t, sessions.Save(context.Background(), id, mechanic.Reset()))

	svc := NewMechanicService(sessions, catalog, config.MechanicConfig{BudgetFloor: 10000, ReferenceYear: 2023}, logger)
	return &mechanicFixture{svc: svc, store: store, session: id}
}

func TestMechanicService_FullFlow(t *testing.T) {
	f := newMechanicFixture(t)
	ctx := context.Background()

	resp, err := f.svc.SubmitBudget(ctx, f.session, dto.Budget{Text: "R$ 100.000"})
	require.NoError(t, err)
	assert.Equal(t, "profile", resp.Stage)
	require.NotNil(t, resp.Budget)
	assert.Equal(t, 100000.0, *resp.Budget)
	assert.Equal(t, 5, resp.Candidates)
	assert.Contains(t, resp.Options, "Família")

	resp, err = f.svc.SubmitProfile(ctx, f.session, "Urbano")
	require.NoError(t, err)
	assert.Equal(t, "priorities", resp.Stage)
	require.NotNil(t, resp.Profile)
	assert.Equal(t, "Urbano", *resp.Profile)
	assert.Contains(t, resp.Options, "Custo-benefício")

	resp, err = f.svc.SubmitPriorities(ctx, f.session, []string{"Economia"})
	require.NoError(t, err)
	assert.Equal(t, "recommendations", resp.Stage)
	assert.Equal(t, []string{"Economia"}, resp.Priorities)
	require.NotEmpty(t, resp.SelectedCars)
	assert.LessOrEqual(t, len(resp.SelectedCars), mechanic.MaxRecommendations)
	assert.Equal(t, "Onix 1.0 Flex", resp.SelectedCars[0].Name)
	assert.Equal(t, "Campinas", resp.SelectedCars[0].City)

	// the stored state matches what was returned
	current, err := f.svc.State(ctx, f.session)
	require.NoError(t, err)
	assert.Equal(t, resp, current)
}

func TestMechanicService_BudgetBelowFloorKeepsStage(t *testing.T) {
	f := newMechanicFixture(t)
	ctx := context.Background()

	_, err := f.svc.SubmitBudget(ctx, f.session, dto.Budget{Text: "5000"})
	require.ErrorIs(t, err, mechanic.ErrBudgetBelowFloor)

	resp, err := f.svc.State(ctx, f.session)
	require.NoError(t, err)
	assert.Equal(t, "budget", resp.Stage)
	assert.Nil(t, resp.Budget)
	assert.Zero(t, f.store.calls, "catalog is not loaded for rejected input")
}

func TestMechanicService_NumericBudget(t *testing.T) {
	tests := []struct {
		name    string
		amount  float64
		wantErr error
	}{
		{"accepted", 60000, nil},
		{"below floor", 9999.99, mechanic.ErrBudgetBelowFloor},
		{"negative", -60000, mechanic.ErrInvalidBudget},
		{"zero", 0, mechanic.ErrInvalidBudget},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newMechanicFixture(t)

			resp, err := f.svc.SubmitBudget(context.Background(), f.session, dto.Budget{Amount: &tt.amount})
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "profile", resp.Stage)
			require.NotNil(t, resp.Budget)
			assert.Equal(t, tt.amount, *resp.Budget)
			assert.Equal(t, 3, resp.Candidates)
		})
	}
}

func TestMechanicService_StageMismatch(t *testing.T) {
	f := newMechanicFixture(t)
	ctx := context.Background()

	_, err := f.svc.SubmitProfile(ctx, f.session, "Luxo")
	assert.ErrorIs(t, err, mechanic.ErrStageMismatch)

	_, err = f.svc.SubmitPriorities(ctx, f.session, []string{"Economia"})
	assert.ErrorIs(t, err, mechanic.ErrStageMismatch)

	_, err = f.svc.SubmitBudget(ctx, f.session, dto.Budget{Text: "60000"})
	require.NoError(t, err)

	// stage is checked before the input is parsed
	_, err = f.svc.SubmitBudget(ctx, f.session, dto.Budget{Text: "abc"})
	assert.ErrorIs(t, err, mechanic.ErrStageMismatch)
}

func TestMechanicService_CatalogUnavailable(t *testing.T) {
	f := newMechanicFixture(t)
	f.store.err = errStoreDown
	ctx := context.Background()

	_, err := f.svc.SubmitBudget(ctx, f.session, dto.Budget{Text: "60000"})
	require.ErrorIs(t, err, ErrCatalogUnavailable)

	resp, err := f.svc.State(ctx, f.session)
	require.NoError(t, err)
	assert.Equal(t, "budget", resp.Stage)
}

func TestMechanicService_UnknownSession(t *testing.T) {
	f := newMechanicFixture(t)

	_, err := f.svc.State(context.Background(), uuid.New())

	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestMechanicService_Reset(t *testing.T) {
	f := newMechanicFixture(t)
	ctx := context.Background()

	_, err := f.svc.SubmitBudget(ctx, f.session, dto.Budget{Text: "60000"})
	require.NoError(t, err)

	first, err := f.svc.Reset(ctx, f.session)
	require.NoError(t, err)
	second, err := f.svc.Reset(ctx, f.session)
	require.NoError(t, err)

	assert.Equal(t, "budget", first.Stage)
	assert.Equal(t, first, second)
	assert.Zero(t, first.Candidates)
}

func TestMechanicService_ReferenceYearDefaultsToNow(t *testing.T) {
	svc := &MechanicService{now: func() time.Time { return time.Date(2031, 1, 1, 0, 0, 0, 0, time.UTC) }}
	assert.Equal(t, 2031, svc.referenceYear())

	svc.cfg.ReferenceYear = 2023
	assert.Equal(t, 2023, svc.referenceYear())
}

package service

import (
	"context"
	"errors"
	"time"

	"carmarket/internal/dto"
	"carmarket/internal/mechanic"
	"carmarket/internal/repository"
	"carmarket/pkg/config"
	"carmarket/pkg/metrics"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// MechanicService runs the recommendation flow of a session. Each call loads the session state,
// applies one transition and stores the result.
type MechanicService struct {
	sessions SessionStore
	catalog  *CatalogService
	cfg      config.MechanicConfig
	now      func() time.Time
	logger   *zap.Logger
}

func NewMechanicService(sessions SessionStore, catalog *CatalogService, cfg config.MechanicConfig, logger *zap.Logger) *MechanicService {
	return &MechanicService{
		sessions: sessions,
		catalog:  catalog,
		cfg:      cfg,
		now:      time.Now,
		logger:   logger,
	}
}

func (s *MechanicService) referenceYear() int {
	if s.cfg.ReferenceYear > 0 {
		return s.cfg.ReferenceYear
	}
	return s.now().Year()
}

func (s *MechanicService) State(ctx context.Context, sessionID uuid.UUID) (*dto.MechanicResponse, error) {
	state, err := s.load(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	return s.respond(ctx, state), nil
}

// SubmitBudget accepts a numeric amount or currency text; text goes through mechanic.ParseBudget.
func (s *MechanicService) SubmitBudget(ctx context.Context, sessionID uuid.UUID, in dto.Budget) (*dto.MechanicResponse, error) {
	state, err := s.load(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if err := state.Expect(mechanic.StageBudget); err != nil {
		return nil, s.reject(state, err)
	}

	budget, err := s.budget(in)
	if err != nil {
		return nil, s.reject(state, err)
	}

	snapshot, err := s.catalog.Snapshot(ctx)
	if err != nil {
		return nil, s.reject(state, err)
	}

	next, err := mechanic.SubmitBudget(state, snapshot.Candidates(), budget, s.cfg.BudgetFloor)
	if err != nil {
		return nil, s.reject(state, err)
	}
	return s.commit(ctx, sessionID, next, zap.Float64("budget", budget), zap.Int("candidates", len(next.Candidates)))
}

func (s *MechanicService) budget(in dto.Budget) (float64, error) {
	if in.Amount != nil {
		return *in.Amount, mechanic.ValidateBudget(*in.Amount, s.cfg.BudgetFloor)
	}
	return mechanic.ParseBudget(in.Text, s.cfg.BudgetFloor)
}

func (s *MechanicService) SubmitProfile(ctx context.Context, sessionID uuid.UUID, profile string) (*dto.MechanicResponse, error) {
	state, err := s.load(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	next, err := mechanic.SubmitProfile(state, mechanic.Profile(profile))
	if err != nil {
		return nil, s.reject(state, err)
	}
	return s.commit(ctx, sessionID, next, zap.String("profile", profile), zap.Int("candidates", len(next.Candidates)))
}

func (s *MechanicService) SubmitPriorities(ctx context.Context, sessionID uuid.UUID, raw []string) (*dto.MechanicResponse, error) {
	state, err := s.load(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	priorities := make([]mechanic.Priority, len(raw))
	for i, p := range raw {
		priorities[i] = mechanic.Priority(p)
	}

	next, err := mechanic.SubmitPriorities(state, priorities, s.referenceYear())
	if err != nil {
		return nil, s.reject(state, err)
	}
	return s.commit(ctx, sessionID, next, zap.Strings("priorities", raw), zap.Int("selected", len(next.SelectedCars)))
}

// Reset returns the session to the budget stage. Resetting a fresh session is a no-op.
func (s *MechanicService) Reset(ctx context.Context, sessionID uuid.UUID) (*dto.MechanicResponse, error) {
	if _, err := s.load(ctx, sessionID); err != nil {
		return nil, err
	}
	return s.commit(ctx, sessionID, mechanic.Reset())
}

func (s *MechanicService) load(ctx context.Context, sessionID uuid.UUID) (mechanic.State, error) {
	state, err := s.sessions.Get(ctx, sessionID)
	if errors.Is(err, repository.ErrNotFound) {
		return mechanic.State{}, ErrSessionNotFound
	}
	return state, err
}

func (s *MechanicService) commit(ctx context.Context, sessionID uuid.UUID, next mechanic.State, fields ...zap.Field) (*dto.MechanicResponse, error) {
	if err := s.sessions.Save(ctx, sessionID, next); err != nil {
		return nil, err
	}
	metrics.MechanicTransitions.WithLabelValues(string(next.Stage)).Inc()

	s.logger.Info("Mechanic stage advanced",
		append([]zap.Field{zap.String("session_id", sessionID.String()), zap.String("stage", string(next.Stage))}, fields...)...,
	)
	return s.respond(ctx, next), nil
}

func (s *MechanicService) reject(state mechanic.State, err error) error {
	metrics.MechanicRejections.WithLabelValues(string(state.Stage), rejectionReason(err)).Inc()
	s.logger.Debug("Mechanic input rejected", zap.String("stage", string(state.Stage)), zap.Error(err))
	return err
}

func rejectionReason(err error) string {
	switch {
	case errors.Is(err, mechanic.ErrStageMismatch):
		return "stage_mismatch"
	case errors.Is(err, ErrCatalogUnavailable):
		return "catalog_unavailable"
	default:
		return "invalid_input"
	}
}

// respond renders the state. Selected cars are enriched from the catalog when it is reachable.
func (s *MechanicService) respond(ctx context.Context, state mechanic.State) *dto.MechanicResponse {
	resp := &dto.MechanicResponse{
		Stage:        string(state.Stage),
		Budget:       state.Budget,
		Priorities:   make([]string, len(state.Priorities)),
		Candidates:   len(state.Candidates),
		SelectedCars: make([]dto.RecommendedCar, len(state.SelectedCars)),
		Options:      stageOptions(state.Stage),
	}
	if state.Profile != nil {
		p := string(*state.Profile)
		resp.Profile = &p
	}
	for i, p := range state.Priorities {
		resp.Priorities[i] = string(p)
	}

	var snapshot *Snapshot
	if len(state.SelectedCars) > 0 {
		var err error
		if snapshot, err = s.catalog.Snapshot(ctx); err != nil {
			s.logger.Warn("Recommendations returned without listing details", zap.Error(err))
		}
	}

	for i, c := range state.SelectedCars {
		car := dto.RecommendedCar{ID: c.ID, Name: c.Name, Price: c.Price, Year: c.Year, Mileage: c.Mileage}
		if snapshot != nil {
			if l, ok := snapshot.Lookup(c.ID); ok {
				car.ImageURL, car.City, car.State, car.Link = l.ImageURL, l.City, l.State, l.Link
			}
		}
		resp.SelectedCars[i] = car
	}
	return resp
}

func stageOptions(stage mechanic.Stage) []string {
	var out []string
	switch stage {
	case mechanic.StageProfile:
		for _, p := range mechanic.Profiles {
			out = append(out, string(p))
		}
	case mechanic.StagePriorities:
		for _, p := range mechanic.Priorities {
			out = append(out, string(p))
		}
	}
	return out
}

// Package mechanic implements the recommendation funnel behind the "mechanic AI" assistant.
//
// The funnel is a forward-only state machine:
//
//	budget -> profile -> priorities -> recommendations -> (Reset) -> budget
//
// Every transition is a pure function from the previous State and the visitor's input to the
// next State, so the whole flow can be exercised without storage or HTTP.
package mechanic

import "errors"

type Stage string

const (
	StageBudget          Stage = "budget"
	StageProfile         Stage = "profile"
	StagePriorities      Stage = "priorities"
	StageRecommendations Stage = "recommendations"
)

var (
	ErrInvalidBudget     = errors.New("budget must be a positive number")
	ErrBudgetBelowFloor  = errors.New("budget is below the minimum")
	ErrStageMismatch     = errors.New("input does not match the current stage")
	ErrUnknownProfile    = errors.New("unknown profile")
	ErrUnknownPriority   = errors.New("unknown priority")
	ErrNoPriorities      = errors.New("at least one priority is required")
	ErrTooManyPriorities = errors.New("too many priorities")
	ErrDuplicatePriority = errors.New("priority selected more than once")
)

const (
	// MaxPriorities bounds the ordered priority list.
	MaxPriorities = 3
	// MaxRecommendations bounds the ranked result.
	MaxRecommendations = 5
	// MinProfileMatches is the smallest narrowed set the classifier accepts before falling back.
	MinProfileMatches = 3
)

// Candidate is a listing reduced to the fields the funnel reads. Name doubles as the
// descriptive text used for keyword matching.
type Candidate struct {
	ID      string  `json:"id"`
	Name    string  `json:"name"`
	Price   float64 `json:"price"`
	Year    int     `json:"year"`
	Mileage int     `json:"mileage"`
}

// State is the conversation state of one visitor. Values are never mutated in place;
// transitions return a new State.
type State struct {
	Stage      Stage      `json:"stage"`
	Budget     *float64   `json:"budget"`
	Profile    *Profile   `json:"profile"`
	Priorities []Priority `json:"priorities"`

	// Candidates is the working set produced by the last completed filtering stage.
	Candidates   []Candidate `json:"candidates"`
	SelectedCars []Candidate `json:"selected_cars"`
}

// Reset returns the initial state.
func Reset() State {
	return State{
		Stage:        StageBudget,
		Priorities:   []Priority{},
		Candidates:   []Candidate{},
		SelectedCars: []Candidate{},
	}
}

// Expect returns ErrStageMismatch unless s is at stage.
func (s State) Expect(stage Stage) error {
	if s.Stage != stage {
		return ErrStageMismatch
	}
	return nil
}

// SubmitBudget validates the ceiling, narrows the catalog to what fits it and moves to the
// profile stage. The returned state is s itself when err != nil.
func SubmitBudget(s State, catalog []Candidate, budget, floor float64) (State, error) {
	if err := s.Expect(StageBudget); err != nil {
		return s, err
	}
	if err := ValidateBudget(budget, floor); err != nil {
		return s, err
	}

	next := Reset()
	next.Stage = StageProfile
	next.Budget = &budget
	next.Candidates = FilterByBudget(budget, catalog)
	return next, nil
}

// SubmitProfile narrows the working set by buyer archetype and moves to the priorities stage.
func SubmitProfile(s State, profile Profile) (State, error) {
	if err := s.Expect(StageProfile); err != nil {
		return s, err
	}
	if !profile.Valid() {
		return s, ErrUnknownProfile
	}

	next := s
	next.Stage = StagePriorities
	next.Profile = &profile
	next.Candidates = ClassifyProfile(profile, s.Candidates, s.budget())
	next.Priorities = []Priority{}
	next.SelectedCars = []Candidate{}
	return next, nil
}

// SubmitPriorities ranks the working set and stores the top results. year is the reference
// year used to compute vehicle age.
func SubmitPriorities(s State, priorities []Priority, year int) (State, error) {
	if err := s.Expect(StagePriorities); err != nil {
		return s, err
	}
	if err := ValidatePriorities(priorities); err != nil {
		return s, err
	}

	next := s
	next.Stage = StageRecommendations
	next.Priorities = append([]Priority(nil), priorities...)
	next.SelectedCars = RankCandidates(priorities, s.Candidates, s.budget(), year)
	return next, nil
}

func (s State) budget() float64 {
	if s.Budget == nil {
		return 0
	}
	return *s.Budget
}

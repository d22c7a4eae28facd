package mechanic

import (
	"cmp"
	"fmt"
	"slices"
)

// Priority is a preference tag; earlier priorities weigh more.
type Priority string

const (
	PriorityEconomy     Priority = "Economia"
	PriorityComfort     Priority = "Conforto"
	PrioritySpace       Priority = "Espaço"
	PriorityPerformance Priority = "Desempenho"
	PriorityValue       Priority = "Custo-benefício"
)

// Priorities lists every preference tag in display order.
var Priorities = []Priority{PriorityEconomy, PriorityComfort, PrioritySpace, PriorityPerformance, PriorityValue}

func (p Priority) Valid() bool {
	_, ok := contributions[p]
	return ok
}

// features are the derived inputs of the contribution functions.
type features struct {
	age     float64
	mileage float64
	// ratio is price / budget
	ratio float64
	name  string
}

var contributions = map[Priority]func(f features) float64{
	PriorityEconomy: func(f features) float64 {
		score := -0.5*f.age - f.mileage/10000
		if containsAny(f.name, []string{"1.0", "flex", "econom"}) {
			score += 10
		}
		return score
	},
	PriorityComfort: func(f features) float64 {
		score := 10 * f.ratio
		if containsAny(f.name, []string{"sedan", "luxury", "comfort"}) {
			score += 10
		}
		return score
	},
	PrioritySpace: func(f features) float64 {
		if containsAny(f.name, []string{"suv", "sw", "wagon", "space"}) {
			return 15
		}
		return 0
	},
	PriorityPerformance: func(f features) float64 {
		score := -f.age
		if containsAny(f.name, []string{"2.0", "turbo", "sport", "gti"}) {
			score += 15
		}
		return score
	},
	PriorityValue: func(f features) float64 {
		return 15*(1-f.ratio) - 5*f.age/10 - 5*f.mileage/100000
	},
}

// ValidatePriorities accepts 1..MaxPriorities distinct known priorities.
func ValidatePriorities(priorities []Priority) error {
	if len(priorities) == 0 {
		return ErrNoPriorities
	}
	if len(priorities) > MaxPriorities {
		return fmt.Errorf("%w: at most %d", ErrTooManyPriorities, MaxPriorities)
	}

	seen := make(map[Priority]bool, len(priorities))
	for _, p := range priorities {
		if !p.Valid() {
			return fmt.Errorf("%w: %q", ErrUnknownPriority, p)
		}
		if seen[p] {
			return fmt.Errorf("%w: %q", ErrDuplicatePriority, p)
		}
		seen[p] = true
	}
	return nil
}

// Weight of the priority at position i.
func Weight(i int) float64 {
	return float64(5 - i)
}

// Score is the weighted sum of the contributions of each priority. Unknown priorities
// contribute nothing. A zero budget makes the price ratio zero.
func Score(c Candidate, priorities []Priority, budget float64, year int) float64 {
	f := features{
		age:     float64(year - c.Year),
		mileage: float64(c.Mileage),
		name:    c.Name,
	}
	if budget > 0 {
		f.ratio = c.Price / budget
	}

	var score float64
	for i, p := range priorities {
		contribution, ok := contributions[p]
		if !ok {
			continue
		}
		score += Weight(i) * contribution(f)
	}
	return score
}

// ScoredCandidate pairs a candidate with its score while ranking.
type ScoredCandidate struct {
	Candidate
	Score float64
}

// ScoreCandidates scores and sorts by score descending; equal scores are ordered by
// candidate id ascending.
func ScoreCandidates(priorities []Priority, candidates []Candidate, budget float64, year int) []ScoredCandidate {
	scored := make([]ScoredCandidate, len(candidates))
	for i, c := range candidates {
		scored[i] = ScoredCandidate{Candidate: c, Score: Score(c, priorities, budget, year)}
	}

	slices.SortStableFunc(scored, func(a, b ScoredCandidate) int {
		if a.Score != b.Score {
			return cmp.Compare(b.Score, a.Score)
		}
		return cmp.Compare(a.ID, b.ID)
	})
	return scored
}

// RankCandidates returns at most MaxRecommendations candidates, best first.
func RankCandidates(priorities []Priority, candidates []Candidate, budget float64, year int) []Candidate {
	scored := ScoreCandidates(priorities, candidates, budget, year)
	if len(scored) > MaxRecommendations {
		scored = scored[:MaxRecommendations]
	}

	out := make([]Candidate, len(scored))
	for i, s := range scored {
		out[i] = s.Candidate
	}
	return out
}

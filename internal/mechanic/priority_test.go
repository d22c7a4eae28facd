package mechanic

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const refYear = 2023

func TestScore_EconomyOutweighsComfort(t *testing.T) {
	priorities := []Priority{PriorityEconomy, PriorityComfort}
	young := Candidate{ID: "young", Name: "Onix 1.0 Flex", Price: 50000, Year: 2021, Mileage: 20000}
	old := Candidate{ID: "old", Name: "Cruze LT", Price: 50000, Year: 2015, Mileage: 90000}

	youngScore := Score(young, priorities, 60000, refYear)
	oldScore := Score(old, priorities, 60000, refYear)

	assert.Greater(t, youngScore, oldScore)
	assert.Equal(t, []string{"young", "old"}, ids(RankCandidates(priorities, []Candidate{old, young}, 60000, refYear)))
}

func TestScore_OrderOfPrioritiesMatters(t *testing.T) {
	roomy := Candidate{ID: "roomy", Name: "Spin Wagon", Price: 60000, Year: 2018, Mileage: 60000}
	fast := Candidate{ID: "fast", Name: "Golf GTI", Price: 60000, Year: 2018, Mileage: 60000}

	spaceFirst := []Priority{PrioritySpace, PriorityPerformance}
	perfFirst := []Priority{PriorityPerformance, PrioritySpace}

	assert.Greater(t, Score(roomy, spaceFirst, 80000, refYear), Score(fast, spaceFirst, 80000, refYear))
	assert.Greater(t, Score(fast, perfFirst, 80000, refYear), Score(roomy, perfFirst, 80000, refYear))
}

func TestScore_Contributions(t *testing.T) {
	c := Candidate{ID: "x", Name: "Sedan Turbo", Price: 40000, Year: 2013, Mileage: 100000}

	tests := []struct {
		priority Priority
		want     float64
	}{
		// age 10, mileage 100000, ratio 0.5
		{PriorityEconomy, -0.5*10 - 10},
		{PriorityComfort, 10*0.5 + 10},
		{PrioritySpace, 0},
		{PriorityPerformance, -10 + 15},
		{PriorityValue, 15*0.5 - 5 - 5},
	}

	for _, tt := range tests {
		t.Run(string(tt.priority), func(t *testing.T) {
			got := Score(c, []Priority{tt.priority}, 80000, refYear)
			assert.InDelta(t, 5*tt.want, got, 1e-9)
		})
	}
}

func TestScore_ZeroBudgetDropsRatio(t *testing.T) {
	c := Candidate{ID: "x", Name: "Uno", Price: 40000, Year: refYear}
	assert.Zero(t, Score(c, []Priority{PriorityComfort}, 0, refYear))
}

func TestRankCandidates_TieBreakByID(t *testing.T) {
	twin := Candidate{Name: "Gol", Price: 30000, Year: 2018, Mileage: 40000}
	b, a, c := twin, twin, twin
	b.ID, a.ID, c.ID = "b", "a", "c"

	got := RankCandidates([]Priority{PriorityValue}, []Candidate{b, c, a}, 50000, refYear)

	assert.Equal(t, []string{"a", "b", "c"}, ids(got))
}

func TestRankCandidates_BoundedAndSorted(t *testing.T) {
	rng := rand.New(rand.NewSource(3))

	for i := 0; i < 200; i++ {
		list := randomCandidates(rng, rng.Intn(15))
		n := rng.Intn(MaxPriorities) + 1
		perm := rng.Perm(len(Priorities))[:n]
		priorities := make([]Priority, n)
		for j, k := range perm {
			priorities[j] = Priorities[k]
		}

		scored := ScoreCandidates(priorities, list, 100000, refYear)
		ranked := RankCandidates(priorities, list, 100000, refYear)

		require.LessOrEqual(t, len(ranked), MaxRecommendations)
		for j := 1; j < len(scored); j++ {
			assert.GreaterOrEqual(t, scored[j-1].Score, scored[j].Score)
		}
		for j := range ranked {
			assert.Equal(t, scored[j].ID, ranked[j].ID)
		}
	}
}

func TestValidatePriorities(t *testing.T) {
	tests := []struct {
		name    string
		in      []Priority
		wantErr error
	}{
		{"single", []Priority{PriorityEconomy}, nil},
		{"three", []Priority{PriorityEconomy, PrioritySpace, PriorityValue}, nil},
		{"empty", nil, ErrNoPriorities},
		{"four", []Priority{PriorityEconomy, PrioritySpace, PriorityValue, PriorityComfort}, ErrTooManyPriorities},
		{"unknown", []Priority{"Velocidade"}, ErrUnknownPriority},
		{"duplicate", []Priority{PriorityEconomy, PriorityEconomy}, ErrDuplicatePriority},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidatePriorities(tt.in)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

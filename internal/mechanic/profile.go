package mechanic

import "strings"

// Profile is a buyer archetype.
type Profile string

const (
	ProfileFamily     Profile = "Família"
	ProfileAdventurer Profile = "Aventureiro"
	ProfileUrban      Profile = "Urbano"
	ProfileLuxury     Profile = "Luxo"
	ProfileSporty     Profile = "Esportivo"
)

// Profiles lists every archetype in display order.
var Profiles = []Profile{ProfileFamily, ProfileAdventurer, ProfileUrban, ProfileLuxury, ProfileSporty}

func (p Profile) Valid() bool {
	_, ok := profileRules[p]
	return ok
}

// profileRule matches a candidate when its name contains any keyword (case-insensitive)
// or, if set, when the field predicate holds.
type profileRule struct {
	keywords []string
	field    func(c Candidate, budget float64) bool
}

func (r profileRule) matches(c Candidate, budget float64) bool {
	if containsAny(c.Name, r.keywords) {
		return true
	}
	return r.field != nil && r.field(c, budget)
}

var profileRules = map[Profile]profileRule{
	ProfileFamily: {
		keywords: []string{"suv", "sw", "wagon", "crossover", "compass", "hr-v", "creta"},
		field:    func(c Candidate, _ float64) bool { return c.Mileage < 80000 },
	},
	ProfileAdventurer: {
		keywords: []string{"suv", "4x4", "trail", "cross", "jeep", "ranger", "hilux", "compass", "toro"},
	},
	ProfileUrban: {
		keywords: []string{"hatch", "1.0", "1.3", "city", "fit", "onix", "gol", "polo"},
		field:    func(c Candidate, _ float64) bool { return c.Year > 2015 },
	},
	ProfileLuxury: {
		keywords: []string{"mercedes", "bmw", "audi", "lexus", "volvo"},
		field:    func(c Candidate, budget float64) bool { return c.Price > budget*0.8 },
	},
	ProfileSporty: {
		keywords: []string{"turbo", "gti", "sport", "rs", "2.0", "golf", "civic si"},
		field:    func(c Candidate, _ float64) bool { return c.Year > 2015 },
	},
}

// ClassifyProfile narrows candidates to those matching the profile. When fewer than
// MinProfileMatches survive, the input is returned unchanged.
func ClassifyProfile(profile Profile, candidates []Candidate, budget float64) []Candidate {
	rule, ok := profileRules[profile]
	if !ok {
		return candidates
	}

	narrowed := make([]Candidate, 0, len(candidates))
	for _, c := range candidates {
		if rule.matches(c, budget) {
			narrowed = append(narrowed, c)
		}
	}

	if len(narrowed) < MinProfileMatches {
		return candidates
	}
	return narrowed
}

func containsAny(name string, keywords []string) bool {
	lower := strings.ToLower(name)
	for _, k := range keywords {
		if strings.Contains(lower, k) {
			return true
		}
	}
	return false
}

package mechanic

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"unicode"
)

// ParseBudget reads a free-form currency string such as "R$ 50.000". Every non-digit is
// discarded, decimal separators included, so "R$ 50.000,50" reads as 5000050.
func ParseBudget(raw string, floor float64) (float64, error) {
	digits := strings.Map(func(r rune) rune {
		if unicode.IsDigit(r) && r < unicode.MaxASCII {
			return r
		}
		return -1
	}, raw)
	if digits == "" {
		return 0, ErrInvalidBudget
	}

	budget, err := strconv.ParseFloat(digits, 64)
	if err != nil {
		return 0, ErrInvalidBudget
	}
	if err := ValidateBudget(budget, floor); err != nil {
		return 0, err
	}
	return budget, nil
}

// ValidateBudget accepts positive finite budgets not below floor.
func ValidateBudget(budget, floor float64) error {
	if math.IsNaN(budget) || math.IsInf(budget, 0) || budget <= 0 {
		return ErrInvalidBudget
	}
	if budget < floor {
		return fmt.Errorf("%w of %.0f", ErrBudgetBelowFloor, floor)
	}
	return nil
}

// FilterByBudget keeps candidates priced at or below the budget, in input order.
func FilterByBudget(budget float64, candidates []Candidate) []Candidate {
	out := make([]Candidate, 0, len(candidates))
	for _, c := range candidates {
		if c.Price <= budget {
			out = append(out, c)
		}
	}
	return out
}

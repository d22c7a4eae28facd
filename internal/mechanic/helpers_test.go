package mechanic

import (
	"fmt"
	"math/rand"
)

var testNames = []string{
	"SUV Compass 2020", "Sedan Corolla 2019", "Onix 1.0 Flex", "Golf GTI", "BMW 320i",
	"Hilux 4x4 Diesel", "Civic Touring", "Fit Hatch 1.3", "Volvo XC60", "Spin Space",
}

func randomCandidates(rng *rand.Rand, n int) []Candidate {
	out := make([]Candidate, n)
	for i := range out {
		out[i] = Candidate{
			ID:      fmt.Sprintf("car-%02d", i),
			Name:    testNames[rng.Intn(len(testNames))],
			Price:   float64(rng.Intn(150000) + 10000),
			Year:    2005 + rng.Intn(19),
			Mileage: rng.Intn(200000),
		}
	}
	return out
}

func ids(cs []Candidate) []string {
	out := make([]string, len(cs))
	for i, c := range cs {
		out[i] = c.ID
	}
	return out
}

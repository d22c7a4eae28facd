// Package analysis builds the buyer's analysis sheet shown on a listing page: plausible technical
// specs, a market value estimate, fuel economy, known issues, competitors and inspection advice.
//
// The figures are illustrative. Every random choice is drawn from the *rand.Rand handed to
// Generate, so a fixed seed always yields the same sheet.
package analysis

import (
	"fmt"
	"math"
	"math/rand"
	"strconv"
	"strings"
)

// Vehicle is the listing data the generator reads.
type Vehicle struct {
	Name  string
	Price float64
	Year  int
}

type Specs struct {
	Body         VehicleType `json:"body"`
	Engine       string      `json:"engine"`
	Power        string      `json:"power"`
	Torque       string      `json:"torque"`
	Transmission string      `json:"transmission"`
	Drivetrain   string      `json:"drivetrain"`
	Fuel         string      `json:"fuel"`
	Doors        int         `json:"doors"`
	Length       string      `json:"length"`
	Wheelbase    string      `json:"wheelbase"`
	// Capacity is the trunk volume, or the payload for pickups.
	Capacity string `json:"capacity"`

	displacement string
}

type MarketValue struct {
	Value      float64 `json:"value"`
	PriceRatio int     `json:"price_ratio"`
	Evaluation string  `json:"evaluation"`
}

// Consumption in km/l. Ethanol is set for flex engines only.
type Consumption struct {
	Gasoline float64  `json:"gasoline"`
	Ethanol  *float64 `json:"ethanol"`
}

type FuelEconomy struct {
	City       Consumption `json:"city"`
	Highway    Consumption `json:"highway"`
	Efficiency string      `json:"efficiency"`
}

type Sheet struct {
	VehicleType     VehicleType  `json:"vehicle_type"`
	Age             int          `json:"age"`
	Specs           Specs        `json:"specs"`
	MarketValue     MarketValue  `json:"market_value"`
	FuelEconomy     FuelEconomy  `json:"fuel_economy"`
	CommonIssues    []string     `json:"common_issues"`
	Competitors     []Competitor `json:"competitors"`
	Recommendations []string     `json:"recommendations"`
}

// DetectVehicleType classifies by name keywords and defaults to Sedan.
func DetectVehicleType(name string) VehicleType {
	lower := strings.ToLower(name)
	for _, t := range typeKeywords {
		for _, k := range t.keywords {
			if strings.Contains(lower, k) {
				return t.vehicleType
			}
		}
	}
	return TypeSedan
}

// Generate builds the sheet for v. refYear is the year used to compute the vehicle age.
func Generate(rng *rand.Rand, v Vehicle, refYear int) Sheet {
	vehicleType := DetectVehicleType(v.Name)
	age := refYear - v.Year

	specs := generateSpecs(rng, vehicleType, v.Name)

	return Sheet{
		VehicleType:     vehicleType,
		Age:             age,
		Specs:           specs,
		MarketValue:     estimateMarketValue(rng, v.Price),
		FuelEconomy:     estimateFuelEconomy(specs, age),
		CommonIssues:    append(pick(rng, issuesByType[vehicleType], 2), pick(rng, issuesByAge(age), 2)...),
		Competitors:     pickCompetitors(rng, vehicleType, v.Name, 3),
		Recommendations: append(recommendationsByAge(age), generalRecommendations...),
	}
}

func generateSpecs(rng *rand.Rand, vehicleType VehicleType, name string) Specs {
	table := specTables[vehicleType]
	lower := strings.ToLower(name)
	i := rng.Intn(len(table.Engine))

	fuel := oneOf(rng, table.Fuel)
	if (vehicleType == TypePickup || vehicleType == TypeSUV) &&
		(strings.Contains(lower, "diesel") || strings.Contains(lower, "turbo d")) {
		fuel = FuelDiesel
	}

	engine := []string{table.Engine[i]}
	if strings.Contains(lower, "turbo") {
		engine = append(engine, "Turbo")
	}
	engine = append(engine, fuel)

	specs := Specs{
		Body:         vehicleType,
		Engine:       strings.Join(engine, " "),
		Power:        fmt.Sprintf("%d cv", table.Power[i]),
		Torque:       strconv.FormatFloat(table.Torque[i], 'f', -1, 64) + " kgfm",
		Transmission: oneOf(rng, table.Transmission),
		Drivetrain:   oneOf(rng, table.Drivetrain),
		Fuel:         fuel,
		Doors:        oneOf(rng, table.Doors),
		Length:       fmt.Sprintf("%d mm", oneOf(rng, table.Length)),
		Wheelbase:    fmt.Sprintf("%d mm", oneOf(rng, table.Wheelbase)),
		displacement: table.Engine[i],
	}
	if len(table.TrunkLitres) > 0 {
		specs.Capacity = fmt.Sprintf("%d litros", oneOf(rng, table.TrunkLitres))
	} else {
		specs.Capacity = fmt.Sprintf("%d kg de carga", oneOf(rng, table.CargoKg))
	}
	return specs
}

// estimateMarketValue places the reference value within ±15% of the asking price.
func estimateMarketValue(rng *rand.Rand, price float64) MarketValue {
	value := price * (1 + rng.Float64()*0.3 - 0.15)

	mv := MarketValue{
		Value:      round(value, 2),
		Evaluation: EvaluationAligned,
	}
	if value > 0 {
		mv.PriceRatio = int(math.Round(price / value * 100))
	}
	switch {
	case price < value*0.9:
		mv.Evaluation = EvaluationBelow
	case price > value*1.1:
		mv.Evaluation = EvaluationAbove
	}
	return mv
}

func estimateFuelEconomy(specs Specs, age int) FuelEconomy {
	base := baseConsumption[specs.Fuel]
	engine, ok := engineMultiplier[specs.displacement]
	if !ok {
		engine = defaultEngineMultiplier
	}
	factor := bodyMultiplier[specs.Body] * engine

	fe := FuelEconomy{
		City:    Consumption{Gasoline: round(base.city*factor, 1)},
		Highway: Consumption{Gasoline: round(base.highway*factor, 1)},
	}
	if specs.Fuel == FuelFlex {
		city := round(fe.City.Gasoline/1.4, 1)
		highway := round(fe.Highway.Gasoline/1.4, 1)
		fe.City.Ethanol = &city
		fe.Highway.Ethanol = &highway
	}

	switch {
	case age <= 5:
		fe.Efficiency = "Boa"
	case age <= 10:
		fe.Efficiency = "Média"
	default:
		fe.Efficiency = "Reduzida"
	}
	return fe
}

// pickCompetitors draws up to n rivals of the same body type, never the car's own model.
func pickCompetitors(rng *rand.Rand, vehicleType VehicleType, name string, n int) []Competitor {
	lower := strings.ToLower(name)
	pool := make([]Competitor, 0, len(competitorsByType[vehicleType]))
	for _, c := range competitorsByType[vehicleType] {
		if !strings.Contains(lower, strings.ToLower(c.Model)) {
			pool = append(pool, c)
		}
	}
	return pick(rng, pool, n)
}

// pick draws up to n distinct elements in draw order.
func pick[T any](rng *rand.Rand, from []T, n int) []T {
	pool := append([]T(nil), from...)
	out := make([]T, 0, min(n, len(pool)))
	for len(out) < n && len(pool) > 0 {
		i := rng.Intn(len(pool))
		out = append(out, pool[i])
		pool = append(pool[:i], pool[i+1:]...)
	}
	return out
}

func oneOf[T any](rng *rand.Rand, from []T) T {
	return from[rng.Intn(len(from))]
}

func round(v float64, places int) float64 {
	p := math.Pow(10, float64(places))
	return math.Round(v*p) / p
}

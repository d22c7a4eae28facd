package analysis

type VehicleType string

const (
	TypeSedan     VehicleType = "Sedan"
	TypeHatchback VehicleType = "Hatchback"
	TypeSUV       VehicleType = "SUV"
	TypePickup    VehicleType = "Picape"
)

const (
	FuelFlex     = "Flex"
	FuelGasoline = "Gasolina"
	FuelDiesel   = "Diesel"
)

// typeKeywords is checked in order; the first type with a matching keyword wins.
var typeKeywords = []struct {
	vehicleType VehicleType
	keywords    []string
}{
	{TypeSUV, []string{"suv", "crossover", "jeep", "compass", "renegade"}},
	{TypeHatchback, []string{"hatch", "gol", "onix", "polo"}},
	{TypePickup, []string{"picape", "pickup", "hilux", "ranger", "toro"}},
}

// specTable holds the technical options of one body type. Engine, Power and Torque share an index.
type specTable struct {
	Engine       []string
	Power        []int
	Torque       []float64
	Transmission []string
	Drivetrain   []string
	Fuel         []string
	Doors        []int
	Length       []int
	Wheelbase    []int
	// TrunkLitres is empty for pickups, which report CargoKg instead.
	TrunkLitres []int
	CargoKg     []int
}

var specTables = map[VehicleType]specTable{
	TypeSedan: {
		Engine:       []string{"1.0", "1.6", "2.0"},
		Power:        []int{75, 120, 170},
		Torque:       []float64{10, 16, 21},
		Transmission: []string{"Manual de 5 marchas", "Automático de 6 marchas", "CVT"},
		Drivetrain:   []string{"Dianteira"},
		Fuel:         []string{FuelFlex, FuelGasoline},
		Doors:        []int{4},
		Length:       []int{4400, 4700},
		Wheelbase:    []int{2550, 2650},
		TrunkLitres:  []int{480, 520},
	},
	TypeHatchback: {
		Engine:       []string{"1.0", "1.4", "1.6"},
		Power:        []int{75, 95, 120},
		Torque:       []float64{9.5, 13, 16},
		Transmission: []string{"Manual de 5 marchas", "Automático de 6 marchas"},
		Drivetrain:   []string{"Dianteira"},
		Fuel:         []string{FuelFlex},
		Doors:        []int{4},
		Length:       []int{3900, 4100},
		Wheelbase:    []int{2450, 2550},
		TrunkLitres:  []int{280, 350},
	},
	TypeSUV: {
		Engine:       []string{"1.6", "2.0", "2.5"},
		Power:        []int{120, 170, 200},
		Torque:       []float64{16, 21, 25},
		Transmission: []string{"Automático de 6 marchas", "CVT", "Automático de 9 marchas"},
		Drivetrain:   []string{"Dianteira", "4x2", "4x4"},
		Fuel:         []string{FuelFlex, FuelGasoline, FuelDiesel},
		Doors:        []int{4, 5},
		Length:       []int{4300, 4600},
		Wheelbase:    []int{2600, 2730},
		TrunkLitres:  []int{420, 580},
	},
	TypePickup: {
		Engine:       []string{"2.0", "2.5", "3.0"},
		Power:        []int{140, 180, 230},
		Torque:       []float64{18, 24, 35},
		Transmission: []string{"Manual de 6 marchas", "Automático de 6 marchas"},
		Drivetrain:   []string{"4x2", "4x4"},
		Fuel:         []string{FuelDiesel, FuelFlex},
		Doors:        []int{2, 4},
		Length:       []int{5100, 5400},
		Wheelbase:    []int{2950, 3100},
		CargoKg:      []int{750, 1100},
	},
}

// km/l before the body and engine multipliers.
var baseConsumption = map[string]struct{ city, highway float64 }{
	FuelDiesel:   {8.5, 11},
	FuelFlex:     {7, 9},
	FuelGasoline: {9, 12},
}

var bodyMultiplier = map[VehicleType]float64{
	TypeSedan:     1.0,
	TypeHatchback: 1.1,
	TypeSUV:       0.85,
	TypePickup:    0.7,
}

var engineMultiplier = map[string]float64{
	"1.0": 1.2,
	"1.4": 1.1,
	"1.6": 1.0,
	"2.0": 0.9,
}

const defaultEngineMultiplier = 0.8

var issuesByType = map[VehicleType][]string{
	TypeSedan: {
		"Falhas no sistema de arrefecimento",
		"Desgaste prematuro de embreagem",
		"Problemas nos rolamentos",
		"Infiltração de água pelo para-brisa",
	},
	TypeHatchback: {
		"Tensores da correia dentada",
		"Barulhos na suspensão",
		"Sistema elétrico das travas",
		"Falhas no alternador",
	},
	TypeSUV: {
		"Consumo excessivo de óleo",
		"Problemas no sistema 4x4",
		"Desgaste prematuro dos amortecedores",
		"Falhas na central eletrônica",
		"Infiltrações no teto solar",
	},
	TypePickup: {
		"Problemas na bomba de combustível",
		"Falhas no sistema de injeção",
		"Desgaste de buchas da suspensão",
		"Corrosão na carroceria/caçamba",
		"Folgas na direção",
	},
}

func issuesByAge(age int) []string {
	switch {
	case age <= 5:
		return []string{
			"Recalls pendentes",
			"Falhas em componentes eletrônicos",
			"Problemas de software",
		}
	case age <= 10:
		return []string{
			"Desgaste natural do sistema de suspensão",
			"Necessidade de troca dos kits de embreagem",
			"Sensores com falha",
			"Deterioração de vedações e mangueiras",
		}
	default:
		return []string{
			"Desgaste avançado de componentes de motor",
			"Possível necessidade de retífica",
			"Sistema de arrefecimento comprometido",
			"Desgaste da suspensão",
			"Corrosão em pontos críticos",
		}
	}
}

type Competitor struct {
	Model     string `json:"model"`
	Highlight string `json:"highlight"`
}

var competitorsByType = map[VehicleType][]Competitor{
	TypeSedan: {
		{"Toyota Corolla", "Referência de mercado em confiabilidade"},
		{"Honda Civic", "Destaque em dirigibilidade e acabamento"},
		{"Volkswagen Jetta", "Bom desempenho e conforto"},
		{"Chevrolet Cruze", "Equilíbrio entre custo-benefício"},
		{"Nissan Sentra", "Espaço interno generoso"},
		{"Hyundai Elantra", "Design moderno e boa garantia"},
	},
	TypeHatchback: {
		{"Volkswagen Golf", "Referência em acabamento e dirigibilidade"},
		{"Ford Focus", "Bom comportamento dinâmico"},
		{"Chevrolet Onix", "Líder de vendas nacional"},
		{"Hyundai HB20", "Design atrativo e boa garantia"},
		{"Fiat Argo", "Bom custo-benefício"},
		{"Renault Sandero", "Espaço interno e robustez"},
	},
	TypeSUV: {
		{"Jeep Compass", "Conforto e capacidade off-road"},
		{"Volkswagen T-Cross", "Boa dirigibilidade e tecnologia"},
		{"Honda HR-V", "Espaço interno e confiabilidade"},
		{"Hyundai Creta", "Bom custo-benefício"},
		{"Chevrolet Equinox", "Performance e tecnologia"},
		{"Toyota RAV4", "Excelente confiabilidade"},
		{"Mitsubishi Outlander", "Robustez e capacidade off-road"},
	},
	TypePickup: {
		{"Toyota Hilux", "Líder em robustez e confiabilidade"},
		{"Chevrolet S10", "Bom desempenho e conforto"},
		{"Ford Ranger", "Capacidade off-road e tecnologia"},
		{"Volkswagen Amarok", "Dirigibilidade e motor potente"},
		{"Mitsubishi L200", "Tradição em resistência"},
		{"Fiat Toro", "Conforto de SUV com praticidade de picape"},
		{"Nissan Frontier", "Boa capacidade de carga e robustez"},
	},
}

func recommendationsByAge(age int) []string {
	switch {
	case age <= 3:
		return []string{
			"Verifique se há recalls pendentes para este modelo",
			"Confira se a garantia de fábrica ainda está vigente",
			"Solicite os registros de manutenção preventiva",
		}
	case age <= 8:
		return []string{
			"Realize uma inspeção detalhada da suspensão e freios",
			"Verifique o estado da correia dentada e tensores",
			"Avalie o sistema de arrefecimento",
			"Teste todos os componentes eletrônicos",
		}
	default:
		return []string{
			"Realize uma inspeção mecânica completa por especialista",
			"Verifique sinais de retífica ou reparos estruturais",
			"Avalie o estado dos componentes de desgaste (embreagem, amortecedores)",
			"Confira o estado da parte elétrica e eletrônica",
			"Verifique pontos de oxidação ou corrosão",
		}
	}
}

var generalRecommendations = []string{
	"Solicite um test-drive em diferentes condições de rodagem",
	"Consulte a situação do veículo no Detran (multas, IPVA, licenciamento)",
	"Verifique o histórico do veículo (acidentes, inundações)",
	"Compare o valor pedido com a tabela FIPE atual",
	"Avalie o custo das revisões e peças de reposição para este modelo",
}

const (
	EvaluationBelow   = "Preço abaixo da média de mercado, potencial boa oportunidade"
	EvaluationAbove   = "Preço acima da média de mercado, negocie com o vendedor"
	EvaluationAligned = "Preço alinhado com a média de mercado para este modelo"
)

package dto

import (
	"bytes"
	"encoding/json"
	"errors"
)

var errBudgetType = errors.New("budget must be a number or a text such as \"R$ 50.000\"")

type BudgetRequest struct {
	Budget Budget `json:"budget" swaggertype:"string" example:"R$ 50.000"`
}

// Budget holds either a plain JSON number or free-form currency text.
type Budget struct {
	Text   string
	Amount *float64
}

func (b *Budget) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	switch {
	case bytes.Equal(data, []byte("null")):
		*b = Budget{}
		return nil
	case len(data) > 0 && data[0] == '"':
		*b = Budget{}
		return json.Unmarshal(data, &b.Text)
	}

	var amount float64
	if err := json.Unmarshal(data, &amount); err != nil {
		return errBudgetType
	}
	*b = Budget{Amount: &amount}
	return nil
}

type ProfileRequest struct {
	Profile string `json:"profile" example:"Família"`
}

type PrioritiesRequest struct {
	Priorities []string `json:"priorities" example:"Economia,Conforto"`
}

// RecommendedCar is a ranked candidate, enriched with listing details when the catalog has them.
type RecommendedCar struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Year     int     `json:"year"`
	Mileage  int     `json:"mileage"`
	ImageURL string  `json:"image_url,omitempty"`
	City     string  `json:"city,omitempty"`
	State    string  `json:"state,omitempty"`
	Link     string  `json:"link,omitempty"`
}

type MechanicResponse struct {
	Stage        string           `json:"stage"`
	Budget       *float64         `json:"budget"`
	Profile      *string          `json:"profile"`
	Priorities   []string         `json:"priorities"`
	Candidates   int              `json:"candidates"`
	SelectedCars []RecommendedCar `json:"selected_cars"`
	// Options lists the accepted answers of the current stage.
	Options []string `json:"options,omitempty"`
}

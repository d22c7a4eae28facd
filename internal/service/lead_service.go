package service

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"
	"time"

	"carmarket/internal/dto"
	"carmarket/internal/models"
	"carmarket/pkg/config"
	"carmarket/pkg/metrics"
	"carmarket/pkg/validation"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

var leadSchema = validation.MustCompile(`{
	"type": "object",
	"required": ["title", "brand", "model", "year", "price", "name", "email", "phone"],
	"properties": {
		"title": {"type": "string", "minLength": 1, "maxLength": 120},
		"brand": {"type": "string", "minLength": 1, "maxLength": 60},
		"model": {"type": "string", "minLength": 1, "maxLength": 60},
		"year":  {"type": "integer", "minimum": 1900, "maximum": 2100},
		"price": {"type": "number", "minimum": 1},
		"name":  {"type": "string", "minLength": 1, "maxLength": 120},
		"email": {"type": "string", "format": "email"},
		"phone": {"type": "string", "minLength": 8, "maxLength": 30},
		"notes": {"type": "string", "maxLength": 1000}
	}
}`)

type LeadService struct {
	leads  LeadStore
	cfg    config.LeadConfig
	now    func() time.Time
	logger *zap.Logger
}

func NewLeadService(leads LeadStore, cfg config.LeadConfig, logger *zap.Logger) *LeadService {
	return &LeadService{
		leads:  leads,
		cfg:    cfg,
		now:    time.Now,
		logger: logger,
	}
}

// Create validates the raw request body, stores the lead and returns the WhatsApp link the
// seller follows to arrange the featured listing. Schema violations come back as *validation.Error.
func (s *LeadService) Create(ctx context.Context, body []byte) (*dto.LeadResponse, error) {
	if err := leadSchema.ValidateBytes(body); err != nil {
		return nil, err
	}

	var req dto.CreateLeadRequest
	if err := json.Unmarshal(body, &req); err != nil {
		return nil, fmt.Errorf("decode lead: %w", err)
	}

	lead := &models.Lead{
		ID:        uuid.New(),
		Title:     cleanLine(req.Title),
		Brand:     cleanLine(req.Brand),
		Model:     cleanLine(req.Model),
		Year:      req.Year,
		Price:     req.Price,
		Name:      cleanLine(req.Name),
		Email:     cleanLine(req.Email),
		Phone:     cleanLine(req.Phone),
		Notes:     cleanNotes(req.Notes),
		CreatedAt: s.now(),
	}

	if err := requireFilled(lead); err != nil {
		return nil, err
	}

	if err := s.leads.Create(ctx, lead); err != nil {
		s.logger.Error("Failed to store lead", zap.Error(err))
		return nil, err
	}
	metrics.LeadsCreated.Inc()

	s.logger.Info("Lead created", zap.String("lead_id", lead.ID.String()), zap.String("title", lead.Title))

	return &dto.LeadResponse{
		ID:           lead.ID.String(),
		WhatsAppLink: WhatsAppLink(s.cfg.WhatsAppNumber, LeadMessage(lead, s.cfg.FeatureFee)),
		CreatedAt:    lead.CreatedAt.Format(time.RFC3339),
	}, nil
}

// requireFilled rejects required fields that only held whitespace or control characters.
func requireFilled(lead *models.Lead) error {
	fields := []struct {
		name  string
		value string
	}{
		{"title", lead.Title},
		{"brand", lead.Brand},
		{"model", lead.Model},
		{"name", lead.Name},
		{"email", lead.Email},
		{"phone", lead.Phone},
	}

	var errs []validation.ValidationError
	for _, f := range fields {
		if f.value == "" {
			errs = append(errs, validation.ValidationError{
				Field:   f.name,
				Message: "must not be blank",
				Code:    "blank",
			})
		}
	}
	if len(errs) > 0 {
		return &validation.Error{Errors: errs}
	}
	return nil
}

// LeadMessage is the WhatsApp text the seller sends to request the featured listing.
func LeadMessage(lead *models.Lead, fee string) string {
	var b strings.Builder
	b.WriteString("Olá, gostaria de destacar meu anúncio no site de carros!\n\n")
	b.WriteString("*Informações do Veículo:*\n")
	fmt.Fprintf(&b, "Título: %s\n", lead.Title)
	fmt.Fprintf(&b, "Marca: %s\n", lead.Brand)
	fmt.Fprintf(&b, "Modelo: %s\n", lead.Model)
	fmt.Fprintf(&b, "Ano: %d\n", lead.Year)
	fmt.Fprintf(&b, "Preço: R$ %s\n\n", formatPrice(lead.Price))
	b.WriteString("*Dados de Contato:*\n")
	fmt.Fprintf(&b, "Nome: %s\n", lead.Name)
	fmt.Fprintf(&b, "Email: %s\n", lead.Email)
	fmt.Fprintf(&b, "Telefone: %s\n\n", lead.Phone)
	if lead.Notes != "" {
		fmt.Fprintf(&b, "Observações: %s\n\n", lead.Notes)
	}
	fmt.Fprintf(&b, "Gostaria de saber como proceder para realizar o pagamento de R$ %s e destacar este anúncio. Obrigado!", fee)
	return b.String()
}

// WhatsAppLink builds a wa.me link. Spaces are encoded as %20, which WhatsApp requires.
func WhatsAppLink(number, message string) string {
	text := strings.ReplaceAll(url.QueryEscape(message), "+", "%20")
	return "https://wa.me/" + number + "?text=" + text
}

func formatPrice(price float64) string {
	if price == float64(int64(price)) {
		return fmt.Sprintf("%d", int64(price))
	}
	return fmt.Sprintf("%.2f", price)
}

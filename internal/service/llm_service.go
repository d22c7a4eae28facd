package service

import (
	"context"
	"fmt"
	"strings"

	"carmarket/internal/analysis"
	"carmarket/internal/models"
	"carmarket/pkg/config"

	"github.com/Role1776/gigago"
	"go.uber.org/zap"
)

const narratorInstruction = `Você é um mecânico experiente que ajuda compradores de carros usados no Brasil.
Escreva em português, em tom direto e cordial, no máximo dois parágrafos curtos.
Use apenas os dados fornecidos. Não invente preços, versões ou itens de série.
Destaque o que o comprador deve verificar antes de fechar negócio.`

// LLMService writes the narrative summary of an analysis sheet with GigaChat.
type LLMService struct {
	client *gigago.Client
	model  *gigago.GenerativeModel
	logger *zap.Logger
}

func NewLLMService(cfg *config.GigaChatConfig, logger *zap.Logger) (*LLMService, error) {
	ctx := context.Background()

	opts := []gigago.Option{
		gigago.WithCustomScope(cfg.Scope),
	}
	if cfg.InsecureSkipVerify {
		opts = append(opts, gigago.WithCustomInsecureSkipVerify(true))
		logger.Warn("GigaChat TLS certificate verification is disabled")
	}

	client, err := gigago.NewClient(ctx, cfg.APIKey, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create GigaChat client: %w", err)
	}

	model := client.GenerativeModel("GigaChat")
	model.SystemInstruction = narratorInstruction
	model.Temperature = 0.4

	logger.Info("GigaChat narrator enabled")

	return &LLMService{
		client: client,
		model:  model,
		logger: logger,
	}, nil
}

func (s *LLMService) Narrate(ctx context.Context, listing *models.Listing, sheet analysis.Sheet) (string, error) {
	messages := []gigago.Message{
		{Role: gigago.RoleUser, Content: buildNarrativePrompt(listing, sheet)},
	}

	resp, err := s.model.Generate(ctx, messages)
	if err != nil {
		return "", fmt.Errorf("failed to generate narrative: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("no response from LLM")
	}

	return strings.TrimSpace(resp.Choices[0].Message.Content), nil
}

func (s *LLMService) Close() error {
	if s.client != nil {
		s.client.Close()
	}
	return nil
}

func buildNarrativePrompt(listing *models.Listing, sheet analysis.Sheet) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Veículo: %s (%d), %d km, anunciado por R$ %.2f.\n", listing.Name, listing.Year, listing.Mileage, listing.Price)
	if listing.City != "" {
		fmt.Fprintf(&b, "Local: %s/%s.\n", listing.City, listing.State)
	}
	fmt.Fprintf(&b, "Carroceria: %s. Motor: %s, %s, %s. Câmbio: %s.\n",
		sheet.Specs.Body, sheet.Specs.Engine, sheet.Specs.Power, sheet.Specs.Torque, sheet.Specs.Transmission)
	fmt.Fprintf(&b, "Valor de referência: R$ %.2f (%d%% do anúncio). %s.\n",
		sheet.MarketValue.Value, sheet.MarketValue.PriceRatio, sheet.MarketValue.Evaluation)
	fmt.Fprintf(&b, "Problemas comuns: %s.\n", strings.Join(sheet.CommonIssues, "; "))

	rivals := make([]string, len(sheet.Competitors))
	for i, c := range sheet.Competitors {
		rivals[i] = c.Model
	}
	fmt.Fprintf(&b, "Concorrentes: %s.\n", strings.Join(rivals, ", "))
	b.WriteString("Resuma se vale a pena e o que inspecionar.")
	return b.String()
}

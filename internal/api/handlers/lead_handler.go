package handlers

import (
	"carmarket/internal/service"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type LeadHandler struct {
	leadService *service.LeadService
	logger      *zap.Logger
}

func NewLeadHandler(leadService *service.LeadService, logger *zap.Logger) *LeadHandler {
	return &LeadHandler{
		leadService: leadService,
		logger:      logger,
	}
}

// Create godoc
// @Summary Request a featured listing
// @Description Stores the seller's request and returns the WhatsApp link to complete it
// @Tags leads
// @Accept json
// @Produce json
// @Param request body dto.CreateLeadRequest true "Vehicle and contact data"
// @Success 201 {object} dto.LeadResponse
// @Failure 400 {object} map[string]interface{}
// @Router /api/v1/leads [post]
func (h *LeadHandler) Create(c *fiber.Ctx) error {
	resp, err := h.leadService.Create(c.Context(), c.Body())
	if err != nil {
		return writeError(c, h.logger, err)
	}
	return c.Status(fiber.StatusCreated).JSON(resp)
}

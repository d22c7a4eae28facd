package handlers

import (
	"carmarket/internal/dto"
	"carmarket/internal/service"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type MechanicHandler struct {
	mechanicService *service.MechanicService
	logger          *zap.Logger
}

func NewMechanicHandler(mechanicService *service.MechanicService, logger *zap.Logger) *MechanicHandler {
	return &MechanicHandler{
		mechanicService: mechanicService,
		logger:          logger,
	}
}

// State godoc
// @Summary Current recommendation flow state
// @Tags mechanic
// @Produce json
// @Security Bearer
// @Success 200 {object} dto.MechanicResponse
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /api/v1/mechanic [get]
func (h *MechanicHandler) State(c *fiber.Ctx) error {
	sessionID, err := getSessionID(c)
	if err != nil {
		return unauthorized(c)
	}

	resp, err := h.mechanicService.State(c.Context(), sessionID)
	if err != nil {
		return writeError(c, h.logger, err)
	}
	return c.JSON(resp)
}

// SubmitBudget godoc
// @Summary Submit the budget
// @Description Accepts a plain number or currency text; in text every non-digit is ignored
// @Tags mechanic
// @Accept json
// @Produce json
// @Param request body dto.BudgetRequest true "Budget"
// @Security Bearer
// @Success 200 {object} dto.MechanicResponse
// @Failure 400 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Failure 503 {object} map[string]interface{}
// @Router /api/v1/mechanic/budget [post]
func (h *MechanicHandler) SubmitBudget(c *fiber.Ctx) error {
	sessionID, err := getSessionID(c)
	if err != nil {
		return unauthorized(c)
	}

	var req dto.BudgetRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	resp, err := h.mechanicService.SubmitBudget(c.Context(), sessionID, req.Budget)
	if err != nil {
		return writeError(c, h.logger, err)
	}
	return c.JSON(resp)
}

// SubmitProfile godoc
// @Summary Submit the buyer profile
// @Tags mechanic
// @Accept json
// @Produce json
// @Param request body dto.ProfileRequest true "Profile"
// @Security Bearer
// @Success 200 {object} dto.MechanicResponse
// @Failure 400 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /api/v1/mechanic/profile [post]
func (h *MechanicHandler) SubmitProfile(c *fiber.Ctx) error {
	sessionID, err := getSessionID(c)
	if err != nil {
		return unauthorized(c)
	}

	var req dto.ProfileRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	resp, err := h.mechanicService.SubmitProfile(c.Context(), sessionID, req.Profile)
	if err != nil {
		return writeError(c, h.logger, err)
	}
	return c.JSON(resp)
}

// SubmitPriorities godoc
// @Summary Submit up to three ordered priorities
// @Tags mechanic
// @Accept json
// @Produce json
// @Param request body dto.PrioritiesRequest true "Priorities, most important first"
// @Security Bearer
// @Success 200 {object} dto.MechanicResponse
// @Failure 400 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /api/v1/mechanic/priorities [post]
func (h *MechanicHandler) SubmitPriorities(c *fiber.Ctx) error {
	sessionID, err := getSessionID(c)
	if err != nil {
		return unauthorized(c)
	}

	var req dto.PrioritiesRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	resp, err := h.mechanicService.SubmitPriorities(c.Context(), sessionID, req.Priorities)
	if err != nil {
		return writeError(c, h.logger, err)
	}
	return c.JSON(resp)
}

// Reset godoc
// @Summary Restart the recommendation flow
// @Tags mechanic
// @Produce json
// @Security Bearer
// @Success 200 {object} dto.MechanicResponse
// @Failure 404 {object} map[string]string
// @Router /api/v1/mechanic/reset [post]
func (h *MechanicHandler) Reset(c *fiber.Ctx) error {
	sessionID, err := getSessionID(c)
	if err != nil {
		return unauthorized(c)
	}

	resp, err := h.mechanicService.Reset(c.Context(), sessionID)
	if err != nil {
		return writeError(c, h.logger, err)
	}
	return c.JSON(resp)
}

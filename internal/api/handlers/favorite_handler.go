package handlers

import (
	"carmarket/internal/service"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type FavoriteHandler struct {
	favoriteService *service.FavoriteService
	logger          *zap.Logger
}

func NewFavoriteHandler(favoriteService *service.FavoriteService, logger *zap.Logger) *FavoriteHandler {
	return &FavoriteHandler{
		favoriteService: favoriteService,
		logger:          logger,
	}
}

// List godoc
// @Summary List favorite listings
// @Tags favorites
// @Produce json
// @Security Bearer
// @Success 200 {array} dto.ListingResponse
// @Failure 401 {object} map[string]string
// @Router /api/v1/favorites [get]
func (h *FavoriteHandler) List(c *fiber.Ctx) error {
	sessionID, err := getSessionID(c)
	if err != nil {
		return unauthorized(c)
	}

	listings, err := h.favoriteService.List(c.Context(), sessionID)
	if err != nil {
		return writeError(c, h.logger, err)
	}
	return c.JSON(listings)
}

// Toggle godoc
// @Summary Add or remove a favorite
// @Tags favorites
// @Produce json
// @Param id path string true "Listing ID"
// @Security Bearer
// @Success 200 {object} dto.FavoriteToggleResponse
// @Failure 404 {object} map[string]string
// @Router /api/v1/favorites/{id} [post]
func (h *FavoriteHandler) Toggle(c *fiber.Ctx) error {
	sessionID, err := getSessionID(c)
	if err != nil {
		return unauthorized(c)
	}

	resp, err := h.favoriteService.Toggle(c.Context(), sessionID, c.Params("id"))
	if err != nil {
		return writeError(c, h.logger, err)
	}
	return c.JSON(resp)
}

// Remove godoc
// @Summary Remove a favorite
// @Tags favorites
// @Param id path string true "Listing ID"
// @Security Bearer
// @Success 204
// @Failure 404 {object} map[string]string
// @Router /api/v1/favorites/{id} [delete]
func (h *FavoriteHandler) Remove(c *fiber.Ctx) error {
	sessionID, err := getSessionID(c)
	if err != nil {
		return unauthorized(c)
	}

	if err := h.favoriteService.Remove(c.Context(), sessionID, c.Params("id")); err != nil {
		return writeError(c, h.logger, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

package handlers

import (
	"errors"

	"carmarket/internal/mechanic"
	"carmarket/internal/service"
	"carmarket/pkg/middleware"
	"carmarket/pkg/validation"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

var mechanicInputErrors = []error{
	mechanic.ErrInvalidBudget,
	mechanic.ErrBudgetBelowFloor,
	mechanic.ErrUnknownProfile,
	mechanic.ErrUnknownPriority,
	mechanic.ErrNoPriorities,
	mechanic.ErrTooManyPriorities,
	mechanic.ErrDuplicatePriority,
}

// writeError maps service and domain errors to HTTP responses. Unknown errors are logged and
// reported as 500 without details.
func writeError(c *fiber.Ctx, logger *zap.Logger, err error) error {
	var verr *validation.Error
	switch {
	case errors.As(err, &verr):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error":  "Validation failed",
			"errors": verr.Errors,
		})
	case errors.Is(err, service.ErrCatalogUnavailable):
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
			"error":     "Catalog is temporarily unavailable, please try again",
			"retryable": true,
		})
	case errors.Is(err, mechanic.ErrStageMismatch):
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{
			"error": err.Error(),
		})
	case errors.Is(err, service.ErrSessionNotFound):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Session not found or expired",
		})
	case errors.Is(err, service.ErrListingNotFound):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Listing not found",
		})
	case errors.Is(err, validation.ErrMalformedDocument), errors.Is(err, service.ErrInvalidFilter):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	for _, target := range mechanicInputErrors {
		if errors.Is(err, target) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": err.Error(),
			})
		}
	}

	logger.Error("Request failed", zap.String("path", c.Path()), zap.Error(err))
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
		"error": "Internal server error",
	})
}

func getSessionID(c *fiber.Ctx) (uuid.UUID, error) {
	sessionIDStr, ok := c.Locals(middleware.LocalSessionID).(string)
	if !ok {
		return uuid.Nil, fiber.ErrUnauthorized
	}

	sessionID, err := uuid.Parse(sessionIDStr)
	if err != nil {
		return uuid.Nil, err
	}

	return sessionID, nil
}

func unauthorized(c *fiber.Ctx) error {
	return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
		"error": "Unauthorized",
	})
}

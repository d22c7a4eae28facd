package handlers

import (
	"fmt"
	"strconv"
	"strings"

	"carmarket/internal/dto"
	"carmarket/internal/models"
	"carmarket/internal/service"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type ListingHandler struct {
	listingService  *service.ListingService
	analysisService *service.AnalysisService
	logger          *zap.Logger
}

func NewListingHandler(listingService *service.ListingService, analysisService *service.AnalysisService, logger *zap.Logger) *ListingHandler {
	return &ListingHandler{
		listingService:  listingService,
		analysisService: analysisService,
		logger:          logger,
	}
}

// Search godoc
// @Summary Search listings
// @Description Filters, sorts and paginates the catalog
// @Tags listings
// @Produce json
// @Param name query string false "Name contains (case-insensitive)"
// @Param price_min query number false "Minimum price"
// @Param price_max query number false "Maximum price"
// @Param year_min query int false "Minimum year"
// @Param year_max query int false "Maximum year"
// @Param mileage_min query int false "Minimum mileage"
// @Param mileage_max query int false "Maximum mileage"
// @Param state_name query string false "Exact state"
// @Param state query string false "State contains"
// @Param city query string false "City contains"
// @Param sort query string false "price, year, mileage, name or created_at" default(price)
// @Param direction query string false "asc or desc" default(asc)
// @Param page query int false "Page, 1-based" default(1)
// @Param page_size query int false "Page size" default(6)
// @Success 200 {object} dto.ListingPage
// @Failure 400 {object} map[string]string
// @Router /api/v1/cars [get]
func (h *ListingHandler) Search(c *fiber.Ctx) error {
	filter, err := parseListingFilter(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	page, err := h.listingService.Search(c.Context(), filter)
	if err != nil {
		return writeError(c, h.logger, err)
	}
	return c.JSON(page)
}

// Get godoc
// @Summary Get a listing
// @Description Looks the listing up by id; when missing, falls back to the name query parameter
// @Tags listings
// @Produce json
// @Param id path string true "Listing ID"
// @Param name query string false "Listing name used as fallback"
// @Success 200 {object} dto.ListingResponse
// @Failure 404 {object} map[string]string
// @Router /api/v1/cars/{id} [get]
func (h *ListingHandler) Get(c *fiber.Ctx) error {
	listing, err := h.listingService.Resolve(c.Context(), c.Params("id"), c.Query("name"))
	if err != nil {
		return writeError(c, h.logger, err)
	}
	return c.JSON(dto.NewListingResponse(listing))
}

// Analysis godoc
// @Summary Analysis sheet of a listing
// @Description Specs, market value, fuel economy, common issues, competitors and advice. Pass seed to reproduce a sheet.
// @Tags listings
// @Produce json
// @Param id path string true "Listing ID"
// @Param name query string false "Listing name used as fallback"
// @Param seed query int false "Random seed"
// @Success 200 {object} dto.AnalysisResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /api/v1/cars/{id}/analysis [get]
func (h *ListingHandler) Analysis(c *fiber.Ctx) error {
	var seed *int64
	if raw := c.Query("seed"); raw != "" {
		v, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "Invalid seed",
			})
		}
		seed = &v
	}

	resp, err := h.analysisService.Analyze(c.Context(), c.Params("id"), c.Query("name"), seed)
	if err != nil {
		return writeError(c, h.logger, err)
	}
	return c.JSON(resp)
}

func parseListingFilter(c *fiber.Ctx) (models.ListingFilter, error) {
	filter := models.ListingFilter{
		Name:      strings.TrimSpace(c.Query("name")),
		StateName: strings.TrimSpace(c.Query("state_name")),
		State:     strings.TrimSpace(c.Query("state")),
		City:      strings.TrimSpace(c.Query("city")),
		Sort:      models.SortField(c.Query("sort")),
		Direction: models.SortDirection(strings.ToLower(c.Query("direction"))),
	}

	var err error
	if filter.PriceMin, err = queryFloat(c, "price_min"); err != nil {
		return filter, err
	}
	if filter.PriceMax, err = queryFloat(c, "price_max"); err != nil {
		return filter, err
	}
	ints := []struct {
		key string
		dst **int
	}{
		{"year_min", &filter.YearMin},
		{"year_max", &filter.YearMax},
		{"mileage_min", &filter.MileageMin},
		{"mileage_max", &filter.MileageMax},
	}
	for _, q := range ints {
		if *q.dst, err = queryInt(c, q.key); err != nil {
			return filter, err
		}
	}

	page, err := queryInt(c, "page")
	if err != nil {
		return filter, err
	}
	if page != nil {
		filter.Page = *page
	}
	pageSize, err := queryInt(c, "page_size")
	if err != nil {
		return filter, err
	}
	if pageSize != nil {
		filter.PageSize = *pageSize
	}

	return filter, nil
}

func queryFloat(c *fiber.Ctx, key string) (*float64, error) {
	raw := c.Query(key)
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid %s", key)
	}
	return &v, nil
}

func queryInt(c *fiber.Ctx, key string) (*int, error) {
	raw := c.Query(key)
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return nil, fmt.Errorf("invalid %s", key)
	}
	return &v, nil
}

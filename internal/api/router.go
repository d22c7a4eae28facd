package api

import (
	"errors"

	"carmarket/docs"
	"carmarket/internal/api/handlers"
	"carmarket/pkg/auth"
	"carmarket/pkg/config"
	"carmarket/pkg/middleware"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/swagger"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

type Handlers struct {
	Session  *handlers.SessionHandler
	Listing  *handlers.ListingHandler
	Mechanic *handlers.MechanicHandler
	Favorite *handlers.FavoriteHandler
	Lead     *handlers.LeadHandler
}

func SetupRouter(h Handlers, server config.ServerConfig, jwtManager *auth.JWTManager, appLogger *zap.Logger) *fiber.App {
	app := fiber.New(fiber.Config{
		ReadTimeout:  server.ReadTimeout,
		WriteTimeout: server.WriteTimeout,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			var e *fiber.Error
			if errors.As(err, &e) {
				code = e.Code
			}
			if code >= fiber.StatusInternalServerError {
				appLogger.Error("Unhandled error", zap.String("path", c.Path()), zap.Error(err))
			}
			return c.Status(code).JSON(fiber.Map{
				"error": err.Error(),
			})
		},
	})

	app.Use(recover.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders: "Origin,Content-Type,Accept,Authorization",
	}))
	app.Use(logger.New())
	app.Use(middleware.Metrics())

	_ = docs.SwaggerInfo // ensure docs init() registers the swagger document
	app.Get("/swagger/*", swagger.HandlerDefault)
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	api := app.Group("/api/v1")

	api.Post("/sessions", h.Session.Create)

	cars := api.Group("/cars")
	cars.Get("", h.Listing.Search)
	cars.Get("/:id", h.Listing.Get)
	cars.Get("/:id/analysis", h.Listing.Analysis)

	api.Post("/leads", h.Lead.Create)

	session := middleware.SessionMiddleware(jwtManager, appLogger)

	mechanic := api.Group("/mechanic", session)
	mechanic.Get("", h.Mechanic.State)
	mechanic.Post("/budget", h.Mechanic.SubmitBudget)
	mechanic.Post("/profile", h.Mechanic.SubmitProfile)
	mechanic.Post("/priorities", h.Mechanic.SubmitPriorities)
	mechanic.Post("/reset", h.Mechanic.Reset)

	favorites := api.Group("/favorites", session)
	favorites.Get("", h.Favorite.List)
	favorites.Post("/:id", h.Favorite.Toggle)
	favorites.Delete("/:id", h.Favorite.Remove)

	return app
}

package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"carmarket/internal/api"
	"carmarket/internal/api/handlers"
	"carmarket/internal/repository"
	"carmarket/internal/service"
	"carmarket/pkg/auth"
	"carmarket/pkg/config"
	"carmarket/pkg/logger"
	"carmarket/pkg/postgres"
	"carmarket/pkg/redis"

	"go.uber.org/zap"
)

// @title Carmarket API
// @version 1.0
// @description Used car marketplace: search, favorites, seller leads and a guided recommendation flow.

// @contact.name API Support

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /api/v1

// @securityDefinitions.apikey Bearer
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and the session token.

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	if err := logger.Init(cfg.Logger.Level, cfg.Logger.Format); err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	appLogger := logger.Get()
	appLogger.Info("Starting carmarket service")

	ctx := context.Background()
	db, err := postgres.NewPool(ctx, &cfg.Database, appLogger)
	if err != nil {
		appLogger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	rdb, err := redis.NewClient(ctx, &cfg.Redis, appLogger)
	if err != nil {
		appLogger.Fatal("Failed to connect to redis", zap.Error(err))
	}
	defer rdb.Close()

	// Repositories
	listingRepo := repository.NewListingRepository(db, logger.Named("listings"))
	leadRepo := repository.NewLeadRepository(db, logger.Named("leads"))
	sessionRepo := repository.NewSessionRepository(rdb, cfg.JWT.Expiration, logger.Named("sessions"))
	favoriteRepo := repository.NewFavoriteRepository(rdb, cfg.JWT.Expiration, logger.Named("favorites"))
	catalogCache := repository.NewCatalogCache(rdb, cfg.Catalog.CacheTTL, logger.Named("catalog"))

	jwtManager := auth.NewJWTManager(cfg.JWT.SecretKey, cfg.JWT.Expiration)

	// Services
	catalogService := service.NewCatalogService(listingRepo, catalogCache, appLogger)
	listingService := service.NewListingService(listingRepo, cfg.Search, appLogger)
	sessionService := service.NewSessionService(sessionRepo, jwtManager, appLogger)
	mechanicService := service.NewMechanicService(sessionRepo, catalogService, cfg.Mechanic, logger.Named("mechanic"))
	favoriteService := service.NewFavoriteService(favoriteRepo, listingRepo, appLogger)
	leadService := service.NewLeadService(leadRepo, cfg.Lead, appLogger)

	var narrator service.Narrator
	if cfg.GigaChat.Enabled() {
		llmService, err := service.NewLLMService(&cfg.GigaChat, logger.Named("llm"))
		if err != nil {
			appLogger.Fatal("Failed to initialize LLM service", zap.Error(err))
		}
		defer llmService.Close()
		narrator = llmService
	} else {
		appLogger.Info("GIGACHAT_API_KEY not set, analysis narratives disabled")
	}
	analysisService := service.NewAnalysisService(listingService, narrator, cfg.Mechanic.ReferenceYear, appLogger)

	app := api.SetupRouter(api.Handlers{
		Session:  handlers.NewSessionHandler(sessionService, appLogger),
		Listing:  handlers.NewListingHandler(listingService, analysisService, appLogger),
		Mechanic: handlers.NewMechanicHandler(mechanicService, appLogger),
		Favorite: handlers.NewFavoriteHandler(favoriteService, appLogger),
		Lead:     handlers.NewLeadHandler(leadService, appLogger),
	}, cfg.Server, jwtManager, appLogger)

	go func() {
		addr := ":" + cfg.Server.Port
		appLogger.Info("Server starting", zap.String("address", addr))
		if err := app.Listen(addr); err != nil {
			appLogger.Fatal("Server failed", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	appLogger.Info("Shutting down server")
	if err := app.Shutdown(); err != nil {
		appLogger.Error("Server shutdown error", zap.Error(err))
	}
}

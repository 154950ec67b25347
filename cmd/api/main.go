package main

// @title Places Catalog API
// @version 1.0.0
// @description Read-only catalog of places ingested from bilingual CSV datasets.
// @description Browse with conjunctive filters, look records up by their name slug,
// @description and inspect the selectable filter values per language.

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /
// @schemes http https

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	_ "github.com/Takahiruma/lejapong/docs/swagger"
	"github.com/Takahiruma/lejapong/internal/config"
	httpDelivery "github.com/Takahiruma/lejapong/internal/delivery/http"
	"github.com/Takahiruma/lejapong/internal/delivery/http/handler"
	"github.com/Takahiruma/lejapong/internal/pkg/logger"
	"github.com/Takahiruma/lejapong/internal/repository/cache"
	"github.com/Takahiruma/lejapong/internal/repository/source"
	"github.com/Takahiruma/lejapong/internal/usecase"
)

func main() {
	// 1. Load configuration
	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	// 2. Initialize logger
	log, err := logger.New(cfg.Log.Level)
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer log.Sync()

	log.Info("Starting Places Catalog")
	log.Info("Configuration loaded",
		zap.String("env", cfg.Server.Env),
		zap.String("server_addr", cfg.GetServerAddr()),
		zap.String("cache_backend", cfg.Cache.Backend),
	)

	// 3. Cache store
	cacheRepo, cacheCloser, err := cache.NewFromConfig(cfg, log)
	if err != nil {
		log.Fatal("Failed to initialize cache store", zap.Error(err))
	}
	defer func() {
		if err := cacheCloser.Close(); err != nil {
			log.Error("Failed to close cache store", zap.Error(err))
		}
	}()

	// 4. CSV source
	sourceRepo := source.NewClient(cfg, log)

	log.Info("Repositories initialized")

	// 5. Use cases
	catalogUC := usecase.NewCatalogUseCase(sourceRepo, cacheRepo, log, cfg.Cache.DatasetTTL)
	placesUC := usecase.NewPlacesUseCase(catalogUC, log)

	log.Info("Use cases initialized")

	// 6. HTTP handlers and server
	placeHandler := handler.NewPlaceHandler(placesUC, log)
	server := httpDelivery.NewServer(cfg, log, placeHandler)

	log.Info("HTTP server initialized")

	// 7. Start server in goroutine
	go func() {
		if err := server.Start(); err != nil {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	log.Info("Server started successfully",
		zap.String("address", cfg.GetServerAddr()),
		zap.String("env", cfg.Server.Env),
	)

	// 8. Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server gracefully...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Error("Server shutdown error", zap.Error(err))
	}

	log.Info("Server stopped successfully")
}

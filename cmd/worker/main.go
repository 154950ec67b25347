package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"github.com/Takahiruma/lejapong/internal/config"
	"github.com/Takahiruma/lejapong/internal/pkg/logger"
	"github.com/Takahiruma/lejapong/internal/repository/cache"
	"github.com/Takahiruma/lejapong/internal/repository/source"
	"github.com/Takahiruma/lejapong/internal/usecase"
	"github.com/Takahiruma/lejapong/internal/worker"
	"github.com/Takahiruma/lejapong/internal/worker/refresh"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	log, err := logger.New(cfg.Log.Level)
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer log.Sync()

	if !cfg.Worker.Enabled {
		log.Info("Worker disabled by configuration, exiting")
		return
	}

	log.Info("Starting dataset refresh worker",
		zap.Duration("interval", cfg.Worker.RefreshInterval),
	)

	cacheRepo, cacheCloser, err := cache.NewFromConfig(cfg, log)
	if err != nil {
		log.Fatal("Failed to initialize cache store", zap.Error(err))
	}
	defer func() {
		if err := cacheCloser.Close(); err != nil {
			log.Error("Failed to close cache store", zap.Error(err))
		}
	}()

	sourceRepo := source.NewClient(cfg, log)
	catalogUC := usecase.NewCatalogUseCase(sourceRepo, cacheRepo, log, cfg.Cache.DatasetTTL)

	manager := worker.NewManager(log)
	manager.Register(refresh.NewWorker(
		catalogUC,
		cfg.Worker.Languages,
		cfg.Worker.RefreshInterval,
		log,
	))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if err := manager.Start(ctx); err != nil {
		log.Fatal("Failed to start workers", zap.Error(err))
	}

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down workers...")
	cancel()

	if err := manager.Stop(); err != nil {
		log.Error("Worker shutdown error", zap.Error(err))
	}

	log.Info("Workers stopped")
}

// Package refresh keeps the language datasets warm ahead of traffic.
package refresh

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/Takahiruma/lejapong/internal/domain"
	"github.com/Takahiruma/lejapong/internal/usecase"
	"github.com/Takahiruma/lejapong/internal/worker"
)

// Worker reloads the configured language datasets on an interval so the
// cache store is populated before the first browse request.
type Worker struct {
	*worker.BaseWorker
	catalog   *usecase.CatalogUseCase
	languages []domain.Language
	interval  time.Duration
}

// NewWorker creates a refresh worker.
func NewWorker(
	catalog *usecase.CatalogUseCase,
	languages []domain.Language,
	interval time.Duration,
	logger *zap.Logger,
) *Worker {
	return &Worker{
		BaseWorker: worker.NewBaseWorker("dataset-refresh", logger),
		catalog:    catalog,
		languages:  languages,
		interval:   interval,
	}
}

// Start refreshes once immediately, then on every tick until stopped.
func (w *Worker) Start(ctx context.Context) error {
	w.refresh(ctx)

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-w.StopChan():
			return nil
		case <-ticker.C:
			w.refresh(ctx)
		}
	}
}

func (w *Worker) refresh(ctx context.Context) {
	for _, lang := range w.languages {
		if err := w.catalog.Invalidate(ctx, lang); err != nil {
			w.Logger().Warn("Failed to invalidate dataset before refresh",
				zap.String("language", lang.String()), zap.Error(err))
			continue
		}

		places, err := w.catalog.Load(ctx, lang)
		if err != nil {
			// A failed refresh leaves the cache empty rather than stale;
			// the next tick or browse request retries.
			w.Logger().Warn("Dataset refresh failed",
				zap.String("language", lang.String()), zap.Error(err))
			continue
		}

		w.Logger().Info("Dataset refreshed",
			zap.String("language", lang.String()),
			zap.Int("places", len(places)))
	}
}

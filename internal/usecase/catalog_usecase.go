package usecase

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/Takahiruma/lejapong/internal/domain"
	"github.com/Takahiruma/lejapong/internal/domain/repository"
	"github.com/Takahiruma/lejapong/internal/ingest"
	"github.com/Takahiruma/lejapong/internal/pkg/errors"
)

// CatalogUseCase owns the per-language datasets: in-memory first, then the
// keyed cache store, then a fetch-and-ingest of the CSV resource. At most one
// fetch happens per language until the dataset is invalidated.
type CatalogUseCase struct {
	sourceRepo repository.SourceRepository
	cacheRepo  repository.CacheRepository
	logger     *zap.Logger
	cacheTTL   time.Duration

	mu       sync.Mutex
	datasets map[domain.Language][]domain.Place
	// gens guards against a slow load finishing after Invalidate: results
	// computed under an older generation are discarded, not committed.
	gens    map[domain.Language]uint64
	dropped map[domain.Language]int
}

// NewCatalogUseCase creates a new CatalogUseCase.
func NewCatalogUseCase(
	sourceRepo repository.SourceRepository,
	cacheRepo repository.CacheRepository,
	logger *zap.Logger,
	cacheTTL time.Duration,
) *CatalogUseCase {
	return &CatalogUseCase{
		sourceRepo: sourceRepo,
		cacheRepo:  cacheRepo,
		logger:     logger,
		cacheTTL:   cacheTTL,
		datasets:   make(map[domain.Language][]domain.Place),
		gens:       make(map[domain.Language]uint64),
		dropped:    make(map[domain.Language]int),
	}
}

// Load returns the dataset for a language. A non-empty in-memory dataset is
// returned without touching the cache or the network; a non-empty cache entry
// skips the fetch. Fetch or parse failure is terminal for the attempt: it is
// logged, reported as ErrDatasetUnavailable and never cached.
func (uc *CatalogUseCase) Load(ctx context.Context, lang domain.Language) ([]domain.Place, error) {
	if !lang.IsValid() {
		return nil, errors.ErrInvalidLanguage
	}

	uc.mu.Lock()
	if places := uc.datasets[lang]; len(places) > 0 {
		uc.mu.Unlock()
		return places, nil
	}
	gen := uc.gens[lang]
	uc.mu.Unlock()

	// Cache store before any fetch.
	cached, err := uc.cacheRepo.GetPlaces(ctx, lang)
	if err != nil {
		// A broken cache degrades to a fetch, it does not fail the load.
		uc.logger.Warn("Cache read failed, falling back to fetch",
			zap.String("language", lang.String()), zap.Error(err))
	}
	if len(cached) > 0 {
		uc.logger.Debug("Dataset served from cache",
			zap.String("language", lang.String()), zap.Int("places", len(cached)))
		return uc.commit(lang, gen, cached), nil
	}

	data, err := uc.sourceRepo.Fetch(ctx, lang)
	if err != nil {
		uc.logger.Error("Dataset fetch failed",
			zap.String("language", lang.String()), zap.Error(err))
		return nil, errors.ErrDatasetUnavailable
	}

	rows, err := ingest.ReadRows(data)
	if err != nil {
		uc.logger.Error("Dataset parse failed",
			zap.String("language", lang.String()), zap.Error(err))
		return nil, errors.ErrDatasetUnavailable
	}

	places, droppedByReason := ingest.NormalizeAll(rows)
	droppedTotal := 0
	for reason, n := range droppedByReason {
		droppedTotal += n
		uc.logger.Debug("Rows dropped during ingestion",
			zap.String("language", lang.String()),
			zap.String("reason", reason),
			zap.Int("count", n))
	}

	uc.logger.Info("Dataset loaded",
		zap.String("language", lang.String()),
		zap.Int("places", len(places)),
		zap.Int("dropped", droppedTotal))

	committed := uc.commitWithDropCount(lang, gen, places, droppedTotal)

	// An empty dataset is never written through: a failed or empty load must
	// not poison the cache and block retries.
	if committed && len(places) > 0 {
		if err := uc.cacheRepo.SetPlaces(ctx, lang, places, uc.cacheTTL); err != nil {
			uc.logger.Warn("Failed to cache dataset",
				zap.String("language", lang.String()), zap.Error(err))
		}
	}

	return places, nil
}

// Invalidate drops the in-memory dataset and the cache entry for a language,
// bumping the generation so in-flight loads started earlier cannot repopulate.
func (uc *CatalogUseCase) Invalidate(ctx context.Context, lang domain.Language) error {
	if !lang.IsValid() {
		return errors.ErrInvalidLanguage
	}

	uc.mu.Lock()
	uc.gens[lang]++
	delete(uc.datasets, lang)
	delete(uc.dropped, lang)
	uc.mu.Unlock()

	if err := uc.cacheRepo.Delete(ctx, lang.CacheKey()); err != nil {
		uc.logger.Error("Failed to clear cached dataset",
			zap.String("language", lang.String()), zap.Error(err))
		return errors.ErrCacheError
	}

	uc.logger.Info("Dataset invalidated", zap.String("language", lang.String()))
	return nil
}

// DroppedRows reports how many rows the most recent load rejected.
func (uc *CatalogUseCase) DroppedRows(lang domain.Language) int {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	return uc.dropped[lang]
}

func (uc *CatalogUseCase) commit(lang domain.Language, gen uint64, places []domain.Place) []domain.Place {
	uc.commitWithDropCount(lang, gen, places, 0)

	uc.mu.Lock()
	defer uc.mu.Unlock()
	if current := uc.datasets[lang]; len(current) > 0 {
		return current
	}
	return places
}

// commitWithDropCount installs a load result unless it was superseded: a
// newer generation, an already-populated dataset or an empty result all leave
// the current state untouched.
func (uc *CatalogUseCase) commitWithDropCount(lang domain.Language, gen uint64, places []domain.Place, dropped int) bool {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	if uc.gens[lang] != gen {
		uc.logger.Debug("Discarding superseded dataset load",
			zap.String("language", lang.String()))
		return false
	}
	if len(uc.datasets[lang]) > 0 {
		return false
	}
	if len(places) == 0 {
		return false
	}

	uc.datasets[lang] = places
	uc.dropped[lang] = dropped
	return true
}

package cache

import (
	"fmt"
	"io"

	"go.uber.org/zap"

	"github.com/Takahiruma/lejapong/internal/config"
	"github.com/Takahiruma/lejapong/internal/domain/repository"
)

// NewFromConfig builds the configured cache backend. The returned closer is
// never nil.
func NewFromConfig(cfg *config.Config, logger *zap.Logger) (repository.CacheRepository, io.Closer, error) {
	switch cfg.Cache.Backend {
	case "redis":
		conn, err := NewRedis(&cfg.Redis, logger)
		if err != nil {
			return nil, nil, err
		}
		return NewRedisRepository(conn), conn, nil

	case "sqlite":
		repo, err := NewSQLiteRepository(cfg.Cache.SQLitePath, logger)
		if err != nil {
			return nil, nil, err
		}
		return repo, repo.(io.Closer), nil

	case "memory":
		logger.Warn("Using in-memory cache backend, datasets will not survive restarts")
		return NewMemoryRepository(), nopCloser{}, nil

	default:
		return nil, nil, fmt.Errorf("unknown cache backend %q", cfg.Cache.Backend)
	}
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

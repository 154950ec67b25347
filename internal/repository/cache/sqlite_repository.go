package cache

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3"
	"go.uber.org/zap"

	"github.com/Takahiruma/lejapong/internal/domain"
	"github.com/Takahiruma/lejapong/internal/domain/repository"
)

const sqliteSchema = `
CREATE TABLE IF NOT EXISTS kv_cache (
	key        TEXT PRIMARY KEY,
	value      BLOB NOT NULL,
	expires_at INTEGER NOT NULL DEFAULT 0
);`

type sqliteRepository struct {
	db     *sqlx.DB
	logger *zap.Logger
}

// NewSQLiteRepository opens (and migrates) an embedded key/value store for
// single-binary deployments that run without Redis.
func NewSQLiteRepository(path string, logger *zap.Logger) (repository.CacheRepository, error) {
	db, err := sqlx.Connect("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open sqlite cache: %w", err)
	}

	if _, err := db.Exec(sqliteSchema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to migrate sqlite cache: %w", err)
	}

	logger.Info("SQLite cache opened", zap.String("path", path))

	return &sqliteRepository{db: db, logger: logger}, nil
}

type kvRow struct {
	Value     []byte `db:"value"`
	ExpiresAt int64  `db:"expires_at"`
}

func (r *sqliteRepository) Get(ctx context.Context, key string) ([]byte, error) {
	var row kvRow
	err := r.db.GetContext(ctx, &row,
		"SELECT value, expires_at FROM kv_cache WHERE key = ?", key)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil // Cache miss
	}
	if err != nil {
		r.logger.Error("Failed to get from cache", zap.String("key", key), zap.Error(err))
		return nil, fmt.Errorf("cache get error: %w", err)
	}

	// Expiry is enforced lazily on read.
	if row.ExpiresAt > 0 && row.ExpiresAt <= time.Now().Unix() {
		if err := r.Delete(ctx, key); err != nil {
			r.logger.Warn("Failed to evict expired key", zap.String("key", key), zap.Error(err))
		}
		return nil, nil
	}

	r.logger.Debug("Cache hit", zap.String("key", key))
	return row.Value, nil
}

func (r *sqliteRepository) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	var expiresAt int64
	if ttl > 0 {
		expiresAt = time.Now().Add(ttl).Unix()
	}

	_, err := r.db.ExecContext(ctx,
		`INSERT INTO kv_cache (key, value, expires_at) VALUES (?, ?, ?)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value, expires_at = excluded.expires_at`,
		key, value, expiresAt)
	if err != nil {
		r.logger.Error("Failed to set cache", zap.String("key", key), zap.Error(err))
		return fmt.Errorf("cache set error: %w", err)
	}

	r.logger.Debug("Cache set", zap.String("key", key), zap.Duration("ttl", ttl))
	return nil
}

func (r *sqliteRepository) Delete(ctx context.Context, key string) error {
	if _, err := r.db.ExecContext(ctx, "DELETE FROM kv_cache WHERE key = ?", key); err != nil {
		r.logger.Error("Failed to delete from cache", zap.String("key", key), zap.Error(err))
		return fmt.Errorf("cache delete error: %w", err)
	}
	return nil
}

func (r *sqliteRepository) Exists(ctx context.Context, key string) (bool, error) {
	val, err := r.Get(ctx, key)
	if err != nil {
		return false, err
	}
	return val != nil, nil
}

func (r *sqliteRepository) GetPlaces(ctx context.Context, lang domain.Language) ([]domain.Place, error) {
	data, err := r.Get(ctx, lang.CacheKey())
	if err != nil {
		return nil, err
	}
	if data == nil {
		return nil, nil // Cache miss
	}

	var places []domain.Place
	if err := json.Unmarshal(data, &places); err != nil {
		r.logger.Error("Failed to unmarshal cached dataset",
			zap.String("language", lang.String()), zap.Error(err))
		return nil, fmt.Errorf("unmarshal places: %w", err)
	}

	return places, nil
}

func (r *sqliteRepository) SetPlaces(ctx context.Context, lang domain.Language, places []domain.Place, ttl time.Duration) error {
	data, err := json.Marshal(places)
	if err != nil {
		r.logger.Error("Failed to marshal dataset",
			zap.String("language", lang.String()), zap.Error(err))
		return fmt.Errorf("marshal places: %w", err)
	}

	return r.Set(ctx, lang.CacheKey(), data, ttl)
}

// Close releases the underlying database handle.
func (r *sqliteRepository) Close() error {
	return r.db.Close()
}

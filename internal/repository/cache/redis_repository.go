package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/Takahiruma/lejapong/internal/domain"
	"github.com/Takahiruma/lejapong/internal/domain/repository"
)

type redisRepository struct {
	client *redis.Client
	logger *zap.Logger
}

// NewRedisRepository wraps a Redis connection as the dataset cache store.
func NewRedisRepository(r *Redis) repository.CacheRepository {
	return &redisRepository{
		client: r.Client(),
		logger: r.logger,
	}
}

func (r *redisRepository) Get(ctx context.Context, key string) ([]byte, error) {
	val, err := r.client.Get(ctx, key).Bytes()
	if err == redis.Nil {
		return nil, nil // Cache miss
	}
	if err != nil {
		r.logger.Error("Failed to get from cache", zap.String("key", key), zap.Error(err))
		return nil, fmt.Errorf("cache get error: %w", err)
	}

	r.logger.Debug("Cache hit", zap.String("key", key))
	return val, nil
}

func (r *redisRepository) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if err := r.client.Set(ctx, key, value, ttl).Err(); err != nil {
		r.logger.Error("Failed to set cache", zap.String("key", key), zap.Error(err))
		return fmt.Errorf("cache set error: %w", err)
	}

	r.logger.Debug("Cache set", zap.String("key", key), zap.Duration("ttl", ttl))
	return nil
}

func (r *redisRepository) Delete(ctx context.Context, key string) error {
	if err := r.client.Del(ctx, key).Err(); err != nil {
		r.logger.Error("Failed to delete from cache", zap.String("key", key), zap.Error(err))
		return fmt.Errorf("cache delete error: %w", err)
	}

	r.logger.Debug("Cache deleted", zap.String("key", key))
	return nil
}

func (r *redisRepository) Exists(ctx context.Context, key string) (bool, error) {
	val, err := r.client.Exists(ctx, key).Result()
	if err != nil {
		r.logger.Error("Failed to check cache existence", zap.String("key", key), zap.Error(err))
		return false, fmt.Errorf("cache exists error: %w", err)
	}

	return val > 0, nil
}

// GetPlaces returns the dataset cached under the language key, nil on a miss.
func (r *redisRepository) GetPlaces(ctx context.Context, lang domain.Language) ([]domain.Place, error) {
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

// SetPlaces stores the dataset under the language key.
func (r *redisRepository) SetPlaces(ctx context.Context, lang domain.Language, places []domain.Place, ttl time.Duration) error {
	data, err := json.Marshal(places)
	if err != nil {
		r.logger.Error("Failed to marshal dataset",
			zap.String("language", lang.String()), zap.Error(err))
		return fmt.Errorf("marshal places: %w", err)
	}

	return r.Set(ctx, lang.CacheKey(), data, ttl)
}

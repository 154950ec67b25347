package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/Takahiruma/lejapong/internal/domain"
	"github.com/Takahiruma/lejapong/internal/domain/repository"
)

type memoryEntry struct {
	value     []byte
	expiresAt time.Time
}

type memoryRepository struct {
	mu      sync.RWMutex
	entries map[string]memoryEntry
}

// NewMemoryRepository returns a process-local store. It backs tests and acts
// as a degraded fallback when no persistent backend is configured.
func NewMemoryRepository() repository.CacheRepository {
	return &memoryRepository{entries: make(map[string]memoryEntry)}
}

func (r *memoryRepository) Get(_ context.Context, key string) ([]byte, error) {
	r.mu.RLock()
	entry, ok := r.entries[key]
	r.mu.RUnlock()

	if !ok {
		return nil, nil // Cache miss
	}
	if !entry.expiresAt.IsZero() && time.Now().After(entry.expiresAt) {
		r.mu.Lock()
		delete(r.entries, key)
		r.mu.Unlock()
		return nil, nil
	}
	return entry.value, nil
}

func (r *memoryRepository) Set(_ context.Context, key string, value []byte, ttl time.Duration) error {
	entry := memoryEntry{value: value}
	if ttl > 0 {
		entry.expiresAt = time.Now().Add(ttl)
	}

	r.mu.Lock()
	r.entries[key] = entry
	r.mu.Unlock()
	return nil
}

func (r *memoryRepository) Delete(_ context.Context, key string) error {
	r.mu.Lock()
	delete(r.entries, key)
	r.mu.Unlock()
	return nil
}

func (r *memoryRepository) Exists(ctx context.Context, key string) (bool, error) {
	val, err := r.Get(ctx, key)
	return val != nil, err
}

func (r *memoryRepository) GetPlaces(ctx context.Context, lang domain.Language) ([]domain.Place, error) {
	data, err := r.Get(ctx, lang.CacheKey())
	if err != nil || data == nil {
		return nil, err
	}

	var places []domain.Place
	if err := json.Unmarshal(data, &places); err != nil {
		return nil, fmt.Errorf("unmarshal places: %w", err)
	}
	return places, nil
}

func (r *memoryRepository) SetPlaces(ctx context.Context, lang domain.Language, places []domain.Place, ttl time.Duration) error {
	data, err := json.Marshal(places)
	if err != nil {
		return fmt.Errorf("marshal places: %w", err)
	}
	return r.Set(ctx, lang.CacheKey(), data, ttl)
}

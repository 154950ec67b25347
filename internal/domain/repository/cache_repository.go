package repository

import (
	"context"
	"time"

	"github.com/Takahiruma/lejapong/internal/domain"
)

// CacheRepository is the keyed persistent store backing the place catalog.
type CacheRepository interface {
	// Get returns the raw value for a key; nil without error means a miss
	Get(ctx context.Context, key string) ([]byte, error)

	// Set stores a value under a key with a TTL (0 = no expiry)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error

	// Delete removes a key
	Delete(ctx context.Context, key string) error

	// Exists reports whether a key is present
	Exists(ctx context.Context, key string) (bool, error)

	// GetPlaces returns the cached dataset for a language; nil means a miss
	GetPlaces(ctx context.Context, lang domain.Language) ([]domain.Place, error)

	// SetPlaces stores the dataset under the language-scoped key
	SetPlaces(ctx context.Context, lang domain.Language, places []domain.Place, ttl time.Duration) error
}

package repository

import (
	"context"

	"github.com/Takahiruma/lejapong/internal/domain"
)

// SourceRepository fetches the raw CSV resource for a dataset language.
type SourceRepository interface {
	// Fetch returns the CSV document for the given language
	Fetch(ctx context.Context, lang domain.Language) ([]byte, error)
}

// Package source fetches the raw CSV datasets the catalog is built from.
package source

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"

	"go.uber.org/zap"

	"github.com/Takahiruma/lejapong/internal/config"
	"github.com/Takahiruma/lejapong/internal/domain"
	"github.com/Takahiruma/lejapong/internal/domain/repository"
)

type client struct {
	httpClient *http.Client
	cfg        *config.Config
	logger     *zap.Logger
}

// NewClient builds the CSV source. Resources resolve against
// DATASET_BASE_URL; plain paths are read from the local filesystem, which
// keeps development setups free of a file server.
func NewClient(cfg *config.Config, logger *zap.Logger) repository.SourceRepository {
	return &client{
		httpClient: &http.Client{
			Timeout: cfg.Dataset.RequestTimeout,
		},
		cfg:    cfg,
		logger: logger,
	}
}

// Fetch returns the CSV document for the given language.
func (c *client) Fetch(ctx context.Context, lang domain.Language) ([]byte, error) {
	resource := c.cfg.GetDatasetResource(lang)

	if strings.HasPrefix(resource, "http://") || strings.HasPrefix(resource, "https://") {
		return c.fetchHTTP(ctx, resource)
	}
	return c.fetchFile(resource)
}

func (c *client) fetchHTTP(ctx context.Context, url string) ([]byte, error) {
	c.logger.Debug("Fetching dataset", zap.String("url", url))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("build dataset request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch dataset: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("fetch dataset: unexpected status %d for %s", resp.StatusCode, url)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read dataset body: %w", err)
	}

	return data, nil
}

func (c *client) fetchFile(path string) ([]byte, error) {
	c.logger.Debug("Reading dataset file", zap.String("path", path))

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read dataset file: %w", err)
	}
	return data, nil
}

package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/Takahiruma/lejapong/internal/domain"
)

type Config struct {
	Server  ServerConfig
	Redis   RedisConfig
	Cache   CacheConfig
	Dataset DatasetConfig
	Log     LogConfig
	Worker  WorkerConfig
}

type ServerConfig struct {
	Host string
	Port int
	Env  string
}

type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
}

type CacheConfig struct {
	// Backend selects the keyed store implementation: redis or sqlite
	Backend    string
	SQLitePath string
	DatasetTTL time.Duration
}

type DatasetConfig struct {
	// BaseURL of the CSV resources; a local directory path works as well
	BaseURL        string
	FileFR         string
	FileEN         string
	RequestTimeout time.Duration
}

type LogConfig struct {
	Level string
}

type WorkerConfig struct {
	Enabled         bool
	RefreshInterval time.Duration
	Languages       []domain.Language
}

func Load() (*Config, error) {
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		// A missing .env is fine in containerized deployments where
		// everything comes from the environment.
		if !errors.Is(err, os.ErrNotExist) {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, fmt.Errorf("failed to read config: %w", err)
			}
		}
	}

	cfg := &Config{
		Server: ServerConfig{
			Host: viper.GetString("API_HOST"),
			Port: viper.GetInt("API_PORT"),
			Env:  viper.GetString("API_ENV"),
		},
		Redis: RedisConfig{
			Host:     viper.GetString("REDIS_HOST"),
			Port:     viper.GetInt("REDIS_PORT"),
			Password: viper.GetString("REDIS_PASSWORD"),
			DB:       viper.GetInt("REDIS_DB"),
		},
		Cache: CacheConfig{
			Backend:    viper.GetString("CACHE_BACKEND"),
			SQLitePath: viper.GetString("CACHE_SQLITE_PATH"),
			DatasetTTL: time.Duration(viper.GetInt("CACHE_DATASET_TTL")) * time.Second,
		},
		Dataset: DatasetConfig{
			BaseURL:        viper.GetString("DATASET_BASE_URL"),
			FileFR:         viper.GetString("DATASET_FILE_FR"),
			FileEN:         viper.GetString("DATASET_FILE_EN"),
			RequestTimeout: time.Duration(viper.GetInt("DATASET_REQUEST_TIMEOUT")) * time.Second,
		},
		Log: LogConfig{
			Level: viper.GetString("LOG_LEVEL"),
		},
		Worker: WorkerConfig{
			Enabled:         viper.GetBool("WORKER_ENABLED"),
			RefreshInterval: time.Duration(viper.GetInt("WORKER_REFRESH_INTERVAL")) * time.Second,
			Languages:       parseLanguages(viper.GetString("WORKER_LANGUAGES")),
		},
	}

	// Set default values if not provided
	if cfg.Server.Port == 0 {
		cfg.Server.Port = 8080
	}
	if cfg.Cache.Backend == "" {
		cfg.Cache.Backend = "redis"
	}
	if cfg.Cache.SQLitePath == "" {
		cfg.Cache.SQLitePath = "places_cache.db"
	}
	if cfg.Dataset.FileFR == "" {
		cfg.Dataset.FileFR = "Places_fr.csv"
	}
	if cfg.Dataset.FileEN == "" {
		cfg.Dataset.FileEN = "Places_en.csv"
	}
	if cfg.Dataset.RequestTimeout == 0 {
		cfg.Dataset.RequestTimeout = 10 * time.Second
	}
	if cfg.Worker.RefreshInterval == 0 {
		cfg.Worker.RefreshInterval = 15 * time.Minute
	}
	if len(cfg.Worker.Languages) == 0 {
		cfg.Worker.Languages = []domain.Language{domain.LanguageFR, domain.LanguageEN}
	}

	return cfg, nil
}

func parseLanguages(s string) []domain.Language {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	result := make([]domain.Language, 0, len(parts))
	for _, p := range parts {
		lang := domain.Language(strings.TrimSpace(p))
		if lang.IsValid() {
			result = append(result, lang)
		}
	}
	return result
}

func (c *Config) GetServerAddr() string {
	return fmt.Sprintf("%s:%d", c.Server.Host, c.Server.Port)
}

func (c *Config) GetRedisAddr() string {
	return fmt.Sprintf("%s:%d", c.Redis.Host, c.Redis.Port)
}

// GetDatasetResource resolves the CSV resource location for a language.
func (c *Config) GetDatasetResource(lang domain.Language) string {
	file := c.Dataset.FileEN
	if lang == domain.LanguageFR {
		file = c.Dataset.FileFR
	}
	base := strings.TrimRight(c.Dataset.BaseURL, "/")
	if base == "" {
		return file
	}
	return base + "/" + file
}

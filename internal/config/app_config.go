package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

const (
	DatasetSourceCSV      = "csv"
	DatasetSourceS3       = "s3"
	DatasetSourcePostgres = "postgres"
)

// AppConfig holds the process settings. Keys are the lower-cased names of
// the environment variables that override them.
type AppConfig struct {
	Port               string        `koanf:"app_port" validate:"required,numeric"`
	Env                string        `koanf:"app_env" validate:"oneof=development production test"`
	DefaultLanguage    string        `koanf:"default_language" validate:"oneof=en hi te"`
	DatasetSource      string        `koanf:"dataset_source" validate:"oneof=csv s3 postgres"`
	DatasetDir         string        `koanf:"dataset_dir" validate:"required_if=DatasetSource csv"`
	AWSBucketName      string        `koanf:"aws_bucket_name" validate:"required_if=DatasetSource s3"`
	DatabaseURL        string        `koanf:"database_url" validate:"required_if=DatasetSource postgres"`
	ClassifierVariant  string        `koanf:"classifier_variant" validate:"oneof=single ensemble"`
	ClassifierSeed     int64         `koanf:"classifier_seed"`
	RedisAddress       string        `koanf:"redis_address"`
	PredictionCacheTTL time.Duration `koanf:"prediction_cache_ttl" validate:"gte=0"`
	SessionTTL         time.Duration `koanf:"session_ttl" validate:"gt=0"`
	RateLimitPerSecond float64       `koanf:"rate_limit_per_second" validate:"gt=0"`
	RateLimitBurst     int           `koanf:"rate_limit_burst" validate:"gt=0"`
}

func DefaultAppConfig() *AppConfig {
	return &AppConfig{
		Port:               "3000",
		Env:                "development",
		DefaultLanguage:    "en",
		DatasetSource:      DatasetSourceCSV,
		DatasetDir:         "data",
		ClassifierVariant:  "single",
		ClassifierSeed:     42,
		PredictionCacheTTL: 10 * time.Minute,
		SessionTTL:         30 * time.Minute,
		RateLimitPerSecond: 50,
		RateLimitBurst:     100,
	}
}

// LoadAppConfig reads the optional YAML file at path, overlays the
// environment and validates the result.
func LoadAppConfig(path string, validate *validator.Validate) (*AppConfig, error) {
	k := koanf.New(".")
	cfg := DefaultAppConfig()

	if path != "" {
		if _, err := os.Stat(path); err == nil {
			if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
				return nil, fmt.Errorf("reading config %s: %w", path, err)
			}
		} else if !os.IsNotExist(err) {
			return nil, fmt.Errorf("accessing config %s: %w", path, err)
		}
	}

	if err := k.Load(env.Provider("", ".", func(s string) string {
		key := strings.ToLower(s)
		if !knownKeys[key] {
			return ""
		}
		return key
	}), nil); err != nil {
		return nil, fmt.Errorf("loading env overrides: %w", err)
	}

	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("unmarshalling config: %w", err)
	}

	if err := validate.Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

var knownKeys = map[string]bool{
	"app_port":              true,
	"app_env":               true,
	"default_language":      true,
	"dataset_source":        true,
	"dataset_dir":           true,
	"aws_bucket_name":       true,
	"database_url":          true,
	"classifier_variant":    true,
	"classifier_seed":       true,
	"redis_address":         true,
	"prediction_cache_ttl":  true,
	"session_ttl":           true,
	"rate_limit_per_second": true,
	"rate_limit_burst":      true,
}

package config

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// Load builds a Config by layering defaults, optional file, and env vars.
// Order of precedence (low -> high):
//  1. defaults (New())
//  2. file (YAML) if RISKBOARD_CONFIG is set
//  3. env (prefix RISKBOARD_), with a .env file loaded first when present
func Load(_ context.Context) (*Config, error) {
	base := New()

	// A .env file, when present, seeds the process environment before the
	// env provider runs. Missing file is not an error.
	_ = godotenv.Load()

	k := koanf.New(".")

	if path := os.Getenv("RISKBOARD_CONFIG"); path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrLoadConfig, err)
		}
	}

	// Environment variables: RISKBOARD_ADDR, RISKBOARD_DATASET_PATH, ...
	// Underscores are preserved to match koanf tags on the struct.
	envProvider := env.Provider("RISKBOARD_", ".", func(s string) string {
		s = strings.ToLower(s)
		s = strings.TrimPrefix(s, "riskboard_")
		return s
	})
	if err := k.Load(envProvider, nil); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLoadConfig, err)
	}

	cfg := *base
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLoadConfig, err)
	}

	switch {
	case cfg.Addr == "":
		return nil, fmt.Errorf("%w: addr must not be empty", ErrInvalidConfig)
	case cfg.DatasetPath == "":
		return nil, fmt.Errorf("%w: dataset_path must not be empty", ErrInvalidConfig)
	case cfg.MaxScatterPoints < 0:
		return nil, fmt.Errorf("%w: max_scatter_points must not be negative", ErrInvalidConfig)
	}
	return &cfg, nil
}

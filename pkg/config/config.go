// Package config loads engine configuration from YAML files with
// environment-variable overrides.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config is the top-level configuration.
type Config struct {
	Engine  EngineConfig  `yaml:"engine"`
	Logging LoggingConfig `yaml:"logging"`
	Metrics MetricsConfig `yaml:"metrics"`
}

// EngineConfig controls text normalization and query parsing.
type EngineConfig struct {
	// IgnoreCase folds indexed text, query text and lookup words to lower case.
	IgnoreCase bool `yaml:"ignoreCase"`
	// Delimiters switches index-time tokenization from the query lexer to a
	// delimiter splitter. Each entry is a regexp character-class fragment.
	Delimiters []string `yaml:"delimiters"`
	// StrictQueries rejects malformed queries instead of dropping fragments.
	StrictQueries bool `yaml:"strictQueries"`
}

// LoggingConfig controls structured logging level and output format.
type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// MetricsConfig controls the Prometheus metrics server.
type MetricsConfig struct {
	Enabled bool `yaml:"enabled"`
	Port    int  `yaml:"port"`
}

// Load reads a YAML config file (if provided) and applies environment-variable
// overrides on top of the defaults.
func Load(path string) (*Config, error) {
	cfg := defaultConfig()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config file %s: %w", path, err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file %s: %w", path, err)
		}
	}
	applyEnvOverrides(cfg)
	return cfg, nil
}

func defaultConfig() *Config {
	return &Config{
		Engine: EngineConfig{
			IgnoreCase: false,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "text",
		},
		Metrics: MetricsConfig{
			Enabled: false,
			Port:    9090,
		},
	}
}

// applyEnvOverrides reads FT_* environment variables and overrides the
// corresponding config fields.
func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("FT_ENGINE_IGNORE_CASE"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.Engine.IgnoreCase = b
		}
	}
	if v, ok := os.LookupEnv("FT_ENGINE_DELIMITERS"); ok {
		if v == "" {
			cfg.Engine.Delimiters = nil
		} else {
			cfg.Engine.Delimiters = strings.Split(v, ",")
		}
	}
	if v := os.Getenv("FT_ENGINE_STRICT_QUERIES"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.Engine.StrictQueries = b
		}
	}
	if v := os.Getenv("FT_LOGGING_LEVEL"); v != "" {
		cfg.Logging.Level = v
	}
	if v := os.Getenv("FT_LOGGING_FORMAT"); v != "" {
		cfg.Logging.Format = v
	}
	if v := os.Getenv("FT_METRICS_ENABLED"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.Metrics.Enabled = b
		}
	}
	if v := os.Getenv("FT_METRICS_PORT"); v != "" {
		if port, err := strconv.Atoi(v); err == nil {
			cfg.Metrics.Port = port
		}
	}
}

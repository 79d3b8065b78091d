// Package config loads runtime configuration from an optional YAML file,
// with environment-variable overrides for deployment settings.
package config

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/nutricheck/labelscan/pkg/labelscan/classify"
	"github.com/nutricheck/labelscan/pkg/labelscan/internalerr"
	"github.com/nutricheck/labelscan/pkg/labelscan/taxonomy"
)

// Server holds HTTP listener settings.
type Server struct {
	Addr           string `yaml:"addr"`
	MaxUploadBytes int64  `yaml:"max_upload_bytes"`
	MaxConns       int    `yaml:"max_conns"`
	LogLevel       string `yaml:"log_level"`
}

// Extractor selects the text-extraction backend.
type Extractor struct {
	Engine    string   `yaml:"engine"` // "canned" or "tesseract"
	Languages []string `yaml:"languages"`
}

// Config is the full runtime configuration.
type Config struct {
	Server       Server          `yaml:"server"`
	StorePath    string          `yaml:"store_path"` // empty disables persistence
	Extractor    Extractor       `yaml:"extractor"`
	Confidence   classify.Config `yaml:"confidence"`
	TaxonomyPath string          `yaml:"taxonomy_path"` // optional overlay entries
}

// Default returns the configuration used when no file is present.
func Default() Config {
	return Config{
		Server: Server{
			Addr:           ":8001",
			MaxUploadBytes: 10 << 20,
			MaxConns:       256,
			LogLevel:       "info",
		},
		Extractor:  Extractor{Engine: "canned"},
		Confidence: classify.DefaultConfig(),
	}
}

// Load reads the YAML file at path (missing file falls back to defaults),
// then applies environment overrides. A .env file in the working directory
// is honored first.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			if !os.IsNotExist(err) {
				return Config{}, fmt.Errorf("read config: %w", err)
			}
		} else if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("parse config: %w", err)
		}
	}

	// Best-effort: load .env from current directory
	_ = godotenv.Load()
	applyEnv(&cfg)

	if cfg.Server.MaxUploadBytes <= 0 {
		return Config{}, fmt.Errorf("%w: max_upload_bytes must be positive", internalerr.ErrInvalidConfig)
	}
	switch cfg.Extractor.Engine {
	case "canned", "tesseract":
	default:
		return Config{}, fmt.Errorf("%w: unknown extractor engine %q", internalerr.ErrInvalidConfig, cfg.Extractor.Engine)
	}

	return cfg, nil
}

func applyEnv(cfg *Config) {
	if v := strings.TrimSpace(os.Getenv("LABELSCAN_ADDR")); v != "" {
		cfg.Server.Addr = v
	}
	if v := strings.TrimSpace(os.Getenv("LABELSCAN_DB")); v != "" {
		cfg.StorePath = v
	}
	if v := strings.TrimSpace(os.Getenv("LABELSCAN_EXTRACTOR")); v != "" {
		cfg.Extractor.Engine = v
	}
	if v := strings.TrimSpace(os.Getenv("LABELSCAN_LOG_LEVEL")); v != "" {
		cfg.Server.LogLevel = v
	}
	if v := strings.TrimSpace(os.Getenv("LABELSCAN_MAX_UPLOAD_BYTES")); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil {
			cfg.Server.MaxUploadBytes = n
		}
	}
}

// taxonomyFile is the overlay file shape: a flat list of entries.
type taxonomyFile struct {
	Ingredients []taxonomy.Entry `yaml:"ingredients"`
}

// LoadTaxonomyOverlay reads extra reference entries from a YAML file. They
// are appended after the built-in set, so built-in entries keep winning ties.
func LoadTaxonomyOverlay(path string) ([]taxonomy.Entry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var tf taxonomyFile
	if err := yaml.Unmarshal(data, &tf); err != nil {
		return nil, fmt.Errorf("parse taxonomy overlay: %w", err)
	}

	for i, e := range tf.Ingredients {
		if e.Name == "" {
			return nil, fmt.Errorf("%w: taxonomy entry %d has no name", internalerr.ErrInvalidConfig, i)
		}
		if !e.RiskLevel.Valid() {
			return nil, fmt.Errorf("%w: taxonomy entry %q has unknown risk level %q", internalerr.ErrInvalidConfig, e.Name, e.RiskLevel)
		}
	}
	return tf.Ingredients, nil
}

// ParseLevel converts a string ("debug", "info", "warn", "error") to
// slog.Level. Unknown strings default to LevelInfo.
func ParseLevel(s string) slog.Level {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// Package config holds the settings of the topcorr command: built-in
// defaults, an optional YAML file on top, then environment overrides.
// Command-line flags are applied last by the command itself.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/topcorr/converters"
	"github.com/katalvlaran/topcorr/filter"
	"github.com/katalvlaran/topcorr/logging"
	"github.com/katalvlaran/topcorr/prim_kruskal"
)

// EnvLogLevel overrides LogLevel when set.
const EnvLogLevel = "TOPCORR_LOG_LEVEL"

// ErrInvalid indicates a configuration value outside its allowed set.
var ErrInvalid = errors.New("config: invalid value")

// Config holds every tunable of a topcorr run.
type Config struct {
	Method         string   `yaml:"method"`
	Absolute       bool     `yaml:"absolute"`
	SeedCandidates int      `yaml:"seed_candidates"`
	MSTMethod      string   `yaml:"mst_method"`
	KNNK           int      `yaml:"knn_k"`
	Threshold      *float64 `yaml:"threshold,omitempty"`
	Partial        bool     `yaml:"partial"`
	Verify         bool     `yaml:"verify"`
	InputFormat    string   `yaml:"input_format"`
	Header         bool     `yaml:"header"`
	OutputFormat   string   `yaml:"output_format"`
	LogLevel       string   `yaml:"log_level"`
	LogFormat      string   `yaml:"log_format"`
	MetricsFile    string   `yaml:"metrics_file"`
}

// Default returns the built-in settings.
func Default() *Config {
	return &Config{
		Method:       string(filter.TMFG),
		MSTMethod:    prim_kruskal.MethodKruskal,
		KNNK:         filter.DefaultK,
		InputFormat:  converters.FormatCSV,
		OutputFormat: converters.FormatJSON,
		LogLevel:     "info",
		LogFormat:    logging.FormatText,
	}
}

// Read returns Default overlaid with the YAML file at path (skipped when
// path is empty) and the environment. The result is not validated, so a
// caller can layer flags on top before calling Validate.
func Read(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("config: reading %s: %w", path, err)
		}
		if err = yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("config: parsing %s: %w", path, err)
		}
	}

	cfg.LogLevel = envOrDefault(EnvLogLevel, cfg.LogLevel)

	return cfg, nil
}

// Load is Read followed by Validate.
func Load(path string) (*Config, error) {
	cfg, err := Read(path)
	if err != nil {
		return nil, err
	}
	if err = cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks every enumerated field and numeric bound.
func (c *Config) Validate() error {
	if c.Method != "all" {
		if _, err := filter.ParseMethod(c.Method); err != nil {
			return fmt.Errorf("%w: method: %w", ErrInvalid, err)
		}
	}
	switch strings.ToLower(c.MSTMethod) {
	case prim_kruskal.MethodKruskal, prim_kruskal.MethodPrim:
	default:
		return fmt.Errorf("%w: mst_method %q", ErrInvalid, c.MSTMethod)
	}
	if c.KNNK < 1 {
		return fmt.Errorf("%w: knn_k must be positive, got %d", ErrInvalid, c.KNNK)
	}
	if c.SeedCandidates < 0 {
		return fmt.Errorf("%w: seed_candidates must not be negative, got %d", ErrInvalid, c.SeedCandidates)
	}
	if c.SeedCandidates > 0 && c.SeedCandidates < 4 {
		return fmt.Errorf("%w: seed_candidates must be 0 or at least 4, got %d", ErrInvalid, c.SeedCandidates)
	}
	if c.Threshold != nil && (*c.Threshold < -1 || *c.Threshold > 1) {
		return fmt.Errorf("%w: threshold %v outside [-1, 1]", ErrInvalid, *c.Threshold)
	}
	if _, err := converters.ParseFormat(c.InputFormat); err != nil {
		return fmt.Errorf("%w: input_format: %w", ErrInvalid, err)
	}
	if _, err := converters.ParseFormat(c.OutputFormat); err != nil {
		return fmt.Errorf("%w: output_format: %w", ErrInvalid, err)
	}
	if _, err := logrus.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("%w: log_level: %w", ErrInvalid, err)
	}
	switch strings.ToLower(c.LogFormat) {
	case logging.FormatText, logging.FormatJSON:
	default:
		return fmt.Errorf("%w: log_format %q", ErrInvalid, c.LogFormat)
	}

	return nil
}

// FilterOptions translates c into options for filter.Build.
func (c *Config) FilterOptions() []filter.Option {
	opts := []filter.Option{
		filter.WithK(c.KNNK),
		filter.WithMSTOptions(prim_kruskal.WithMethod(strings.ToLower(c.MSTMethod))),
	}
	if c.Absolute {
		opts = append(opts, filter.WithAbsolute())
	}
	if c.SeedCandidates > 0 {
		opts = append(opts, filter.WithSeedCandidates(c.SeedCandidates))
	}
	if c.Verify {
		opts = append(opts, filter.WithVerify())
	}

	return opts
}

func envOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}

	return fallback
}

// Package config defines service configuration structures and loading hooks.
//
// Conventions:
// - Provide New() to build a Config with defaults.
// - Load layers a YAML file and environment variables over the defaults.
// - External errors are wrapped with this package's sentinel kinds.
package config

import (
	"fmt"
	"runtime"
)

// Config contains process configuration.
type Config struct {
	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`

	// LogFormat selects the log encoding: text or json.
	LogFormat string `koanf:"log_format"`

	// Addr configures the HTTP listen address, e.g. ":9080".
	Addr string `koanf:"addr"`

	// CatalogPath points at a YAML catalog of projects and employees.
	// Empty means the embedded demo catalog.
	CatalogPath string `koanf:"catalog_path"`

	// BatchConcurrency bounds how many projects are staffed in parallel
	// by a batch run.
	BatchConcurrency int `koanf:"batch_concurrency"`

	// HighConfidenceScore and MediumConfidenceScore are the minimum top
	// scores for high and medium recommendation confidence.
	HighConfidenceScore   int `koanf:"high_confidence_score"`
	MediumConfidenceScore int `koanf:"medium_confidence_score"`

	// KnowledgeTransferURL is used when a project has no link of its own.
	KnowledgeTransferURL string `koanf:"knowledge_transfer_url"`
}

// New creates a Config with default values.
func New() *Config {
	return &Config{
		LogLevel:              "info",
		LogFormat:             "text",
		Addr:                  ":9080",
		BatchConcurrency:      runtime.NumCPU(),
		HighConfidenceScore:   75,
		MediumConfidenceScore: 50,
		KnowledgeTransferURL:  "https://docs.example.com/knowledge-transfer",
	}
}

// Validate reports the first invalid setting.
func (c *Config) Validate() error {
	if c.Addr == "" {
		return fmt.Errorf("%w: addr must not be empty", ErrInvalidConfig)
	}
	switch c.LogFormat {
	case "text", "json":
	default:
		return fmt.Errorf("%w: unknown log_format %q", ErrInvalidConfig, c.LogFormat)
	}
	if c.BatchConcurrency < 1 {
		return fmt.Errorf("%w: batch_concurrency must be positive", ErrInvalidConfig)
	}
	if c.MediumConfidenceScore <= 0 || c.HighConfidenceScore < c.MediumConfidenceScore || c.HighConfidenceScore > 100 {
		return fmt.Errorf("%w: confidence thresholds must satisfy 0 < medium <= high <= 100", ErrInvalidConfig)
	}
	return nil
}

// Package config holds the user-facing configuration for arclogs.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

//go:generate go run ../tools/schema-generator

// OutputConfig defines where analysis artifacts are written.
type OutputConfig struct {
	// Dir is the output directory for the JSONL artifacts and the
	// summary report. Defaults to "./output".
	Dir string `yaml:"dir,omitempty"`
}

// ReportConfig defines settings for the summary report.
type ReportConfig struct {
	// TopConversations controls how many conversations are listed in the
	// summary report. Defaults to 10.
	TopConversations int `yaml:"top_conversations,omitempty"`
}

// RateConfig overrides the per-1K-token USD rates for one model.
type RateConfig struct {
	Input  float64 `yaml:"input"`
	Output float64 `yaml:"output"`
}

// Config is the top-level configuration structure for arclogs.
type Config struct {
	Output OutputConfig `yaml:"output,omitempty"`
	Report ReportConfig `yaml:"report,omitempty"`

	// Pricing entries are merged over the built-in table, keyed by
	// canonical model name.
	Pricing map[string]RateConfig `yaml:"pricing,omitempty"`
}

// Default returns the configuration used when no config file is given.
func Default() Config {
	return Config{
		Output: OutputConfig{Dir: "./output"},
		Report: ReportConfig{TopConversations: 10},
	}
}

// Load reads a YAML config file and fills unset fields with defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config: %w", err)
	}
	if cfg.Output.Dir == "" {
		cfg.Output.Dir = "./output"
	}
	if cfg.Report.TopConversations == 0 {
		cfg.Report.TopConversations = 10
	}
	return cfg, nil
}

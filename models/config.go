// Package models defines configuration and shared data structures.
package models

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// DefaultElements is the fixed set of FLEX element types analyzed when
// neither the config file nor the --elements flag overrides it. Order is
// report order.
var DefaultElements = []string{"Trade", "OpenPosition", "CashTransaction", "CorporateAction"}

// Config is the optional YAML config file for flexfield.
type Config struct {
	// Elements overrides DefaultElements when non-empty.
	Elements []string `yaml:"elements"`
}

// LoadConfig reads and parses a YAML config file. Missing files are the
// caller's call: the default config path may be absent, an explicit --config
// path may not.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	return &cfg, nil
}

// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package config loads the application configuration: output defaults plus
// overrides for the heuristic rule tables (currency markers, issuer rules,
// phone exclusion counts).
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"fieldscan/internal/patterns"

	"gopkg.in/yaml.v3"
)

// Config represents the application configuration
type Config struct {
	// Default settings, overridable by command line flags
	Defaults struct {
		Format  string `yaml:"format"`
		Checks  string `yaml:"checks"`
		Verbose bool   `yaml:"verbose"`
		NoColor bool   `yaml:"no_color"`
	} `yaml:"defaults"`

	// Rule table extensions. These feed the pattern library; the pipeline
	// itself never changes shape.
	Rules struct {
		Currency struct {
			ExtraCodes []string `yaml:"extra_codes"`
		} `yaml:"currency"`
		CreditCard struct {
			ExtraIssuers []patterns.IssuerRule `yaml:"extra_issuers"`
		} `yaml:"credit_card"`
		Phone struct {
			// Nil keeps the built-in default of [16].
			ExcludedDigitCounts []int `yaml:"excluded_digit_counts"`
		} `yaml:"phone"`
	} `yaml:"rules"`
}

// LoadConfig loads configuration from the specified file path. An empty path
// returns the default configuration.
func LoadConfig(configPath string) (*Config, error) {
	config := &Config{}
	config.Defaults.Format = "text"
	config.Defaults.Checks = "all"

	if configPath == "" {
		return config, nil
	}

	cleanPath := filepath.Clean(configPath)
	data, err := os.ReadFile(cleanPath)
	if err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("error parsing config file: %w", err)
	}

	if config.Defaults.Format == "" {
		config.Defaults.Format = "text"
	}
	if config.Defaults.Checks == "" {
		config.Defaults.Checks = "all"
	}

	return config, nil
}

// FindConfigFile looks for a configuration file in standard locations and
// returns the first one found, or an empty string.
func FindConfigFile() string {
	if fileExists("fieldscan.yaml") {
		return "fieldscan.yaml"
	}
	if fileExists("fieldscan.yml") {
		return "fieldscan.yml"
	}
	if fileExists(".fieldscan.yaml") {
		return ".fieldscan.yaml"
	}

	if home, err := os.UserHomeDir(); err == nil {
		candidate := filepath.Join(home, ".config", "fieldscan", "config.yaml")
		if fileExists(candidate) {
			return candidate
		}
	}
	return ""
}

// Overrides converts the rule table extensions into pattern library
// overrides.
func (c *Config) Overrides() patterns.Overrides {
	return patterns.Overrides{
		ExtraCurrencyCodes:       c.Rules.Currency.ExtraCodes,
		ExtraIssuers:             c.Rules.CreditCard.ExtraIssuers,
		PhoneExcludedDigitCounts: c.Rules.Phone.ExcludedDigitCounts,
	}
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}

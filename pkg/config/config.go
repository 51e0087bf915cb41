/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/ssargent/rockcheck/pkg/store"
)

// Config represents the rockcheck configuration
type Config struct {
	// Backend names the storage engine; empty means autodetect.
	Backend string `yaml:"backend"`
	// ColumnFamilies is the set of families the store is opened with.
	ColumnFamilies []string `yaml:"column_families"`
	// DefaultFamily is used when a command names no column family.
	DefaultFamily string `yaml:"default_family"`
}

// DefaultConfig returns a default configuration
func DefaultConfig() *Config {
	return &Config{
		ColumnFamilies: []string{store.CFMerkleRecords, store.CFDataRecords},
		DefaultFamily:  store.DefaultColumnFamily,
	}
}

// Load loads configuration from the specified path, filling unset fields
// from the defaults.
func Load(configPath string) (*Config, error) {
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return nil, fmt.Errorf("config file does not exist: %s", configPath)
	}

	// Validate path to prevent directory traversal
	if !filepath.IsAbs(configPath) {
		absPath, err := filepath.Abs(configPath)
		if err != nil {
			return nil, fmt.Errorf("invalid config path: %w", err)
		}
		configPath = absPath
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	config := DefaultConfig()
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}
	if config.DefaultFamily == "" {
		config.DefaultFamily = store.DefaultColumnFamily
	}
	if len(config.ColumnFamilies) == 0 {
		config.ColumnFamilies = DefaultConfig().ColumnFamilies
	}

	return config, nil
}

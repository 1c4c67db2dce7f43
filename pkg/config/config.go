/*
Package config manages TOML configuration for the solver's server and CLI
shells.

InitConfig handles automatic config file creation and loading with
fallback to defaults. LoadConfig and SaveConfig provide direct access for
runtime changes. Update allows targeted parameter changes with
persistence.
*/
package config

import (
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/charmbracelet/log"
)

// Config holds the entire config structure.
type Config struct {
	Solver SolverConfig `toml:"solver"`
	Server ServerConfig `toml:"server"`
	CLI    CliConfig    `toml:"cli"`
}

// SolverConfig has the enumerator/solver tunables from spec.md §6.
type SolverConfig struct {
	MinLen           int `toml:"min_len"`
	MaxLen           int `toml:"max_len"`
	MaxAttempts      int `toml:"max_attempts"`
	ProgressInterval int `toml:"progress_interval"`
}

// ServerConfig has IPC server related options.
type ServerConfig struct {
	MaxAttemptsCap   int `toml:"max_attempts_cap"`
	RequestTimeoutMs int `toml:"request_timeout_ms"`
}

// CliConfig holds interactive CLI defaults.
type CliConfig struct {
	DefaultMinLen int `toml:"default_min_len"`
	DefaultMaxLen int `toml:"default_max_len"`
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() *Config {
	return &Config{
		Solver: SolverConfig{
			MinLen:           4,
			MaxLen:           15,
			MaxAttempts:      100000,
			ProgressInterval: 1000,
		},
		Server: ServerConfig{
			MaxAttemptsCap:   1000000,
			RequestTimeoutMs: 30000,
		},
		CLI: CliConfig{
			DefaultMinLen: 4,
			DefaultMaxLen: 15,
		},
	}
}

// InitConfig loads config from file or creates default if missing.
func InitConfig(configPath string) (*Config, error) {
	configDir := filepath.Dir(configPath)
	if err := os.MkdirAll(configDir, 0755); err != nil {
		return nil, err
	}
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		cfg := DefaultConfig()
		if err := SaveConfig(cfg, configPath); err != nil {
			return nil, err
		}
		log.Debugf("created default config file at: ( %s )", configPath)
		return cfg, nil
	}
	cfg, err := LoadConfig(configPath)
	if err != nil {
		log.Warnf("failed to load config, using defaults: %v", err)
		return DefaultConfig(), nil
	}
	return cfg, nil
}

// LoadConfig loads from a TOML file.
func LoadConfig(configPath string) (*Config, error) {
	var cfg Config
	if _, err := toml.DecodeFile(configPath, &cfg); err != nil {
		log.Errorf("failed to decode config file: %v", err)
		return nil, err
	}
	return &cfg, nil
}

// SaveConfig saves into a TOML file.
func SaveConfig(cfg *Config, configPath string) error {
	file, err := os.Create(configPath)
	if err != nil {
		log.Errorf("failed to create config file: %v", err)
		return err
	}
	defer file.Close()
	encoder := toml.NewEncoder(file)
	return encoder.Encode(cfg)
}

// Update changes solver config values and saves to file.
func (c *Config) Update(configPath string, minLen, maxLen, maxAttempts *int) error {
	solver := &c.Solver
	if minLen != nil {
		solver.MinLen = *minLen
	}
	if maxLen != nil {
		solver.MaxLen = *maxLen
	}
	if maxAttempts != nil {
		solver.MaxAttempts = *maxAttempts
	}
	return SaveConfig(c, configPath)
}

package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config represents the top-level bursar.yaml configuration.
type Config struct {
	School SchoolConfig `yaml:"school"`
	Store  StoreConfig  `yaml:"store"`
	Server ServerConfig `yaml:"server"`
	Log    LogConfig    `yaml:"log"`
	Ledger LedgerConfig `yaml:"ledger"`
}

// SchoolConfig identifies the school.
type SchoolConfig struct {
	Name string `yaml:"name"`
	Type string `yaml:"type"` // "day" or "boarding"; selects the default chart
}

// StoreConfig selects where entries and accounts are persisted.
type StoreConfig struct {
	Driver   string        `yaml:"driver"` // "sqlite" or "memory"
	DSN      string        `yaml:"dsn"`
	CacheTTL time.Duration `yaml:"cache_ttl,omitempty"` // 0 disables the read cache
}

// ServerConfig controls the HTTP API.
type ServerConfig struct {
	Addr      string  `yaml:"addr"`
	RateLimit float64 `yaml:"rate_limit,omitempty"` // requests per second; 0 is unlimited
	Burst     int     `yaml:"burst,omitempty"`
}

// LogConfig controls logger construction.
type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"` // "json" or "console"
}

// LedgerConfig controls entry validation.
type LedgerConfig struct {
	StrictAccounts bool `yaml:"strict_accounts"`
}

// Environment variables that override file settings.
const (
	EnvStoreDriver = "BURSAR_STORE_DRIVER"
	EnvStoreDSN    = "BURSAR_STORE_DSN"
	EnvLogLevel    = "BURSAR_LOG_LEVEL"
	EnvServerAddr  = "BURSAR_SERVER_ADDR"
)

// Load reads a bursar.yaml file from disk.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	return &cfg, nil
}

// Save writes a Config to a YAML file.
func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}

// Default returns a Config with sensible defaults for a new school.
func Default(schoolName, schoolType string) *Config {
	return &Config{
		School: SchoolConfig{
			Name: schoolName,
			Type: schoolType,
		},
		Store: StoreConfig{
			Driver: "sqlite",
			DSN:    "bursar.db",
		},
		Server: ServerConfig{
			Addr:      ":8080",
			RateLimit: 10,
			Burst:     30,
		},
		Log: LogConfig{
			Level:  "info",
			Format: "console",
		},
	}
}

// LoadDotEnv loads variables from a .env file into the process environment.
// A missing file is not an error. Variables already set are kept.
func LoadDotEnv(path string) error {
	if err := godotenv.Load(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("loading %s: %w", path, err)
	}
	return nil
}

// ApplyEnv overrides cfg with any BURSAR_* variables set in the environment.
func ApplyEnv(cfg *Config) {
	if v := os.Getenv(EnvStoreDriver); v != "" {
		cfg.Store.Driver = v
	}
	if v := os.Getenv(EnvStoreDSN); v != "" {
		cfg.Store.DSN = v
	}
	if v := os.Getenv(EnvLogLevel); v != "" {
		cfg.Log.Level = v
	}
	if v := os.Getenv(EnvServerAddr); v != "" {
		cfg.Server.Addr = v
	}
}

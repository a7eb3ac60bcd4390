package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
)

// Environment variables that override config file values.
const (
	StoreDirEnvVar = "TODO_STORE_DIR"
	StoreKeyEnvVar = "TODO_STORE_KEY"
	LogLevelEnvVar = "TODO_LOG_LEVEL"
	LogFileEnvVar  = "TODO_LOG_FILE"
)

// LoadDotEnv loads dir/.env into the process environment when it exists.
// Variables already set in the environment are left alone.
func LoadDotEnv(dir string) error {
	path := filepath.Join(dir, ".env")
	if err := godotenv.Load(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("load %s: %w", path, err)
	}
	return nil
}

// ApplyEnv overrides cfg with any TODO_* variables that are set and non-empty.
func ApplyEnv(cfg *Config) {
	if value := os.Getenv(StoreDirEnvVar); value != "" {
		cfg.Store.Dir = value
	}
	if value := os.Getenv(StoreKeyEnvVar); value != "" {
		cfg.Store.Key = value
	}
	if value := os.Getenv(LogLevelEnvVar); value != "" {
		cfg.Log.Level = value
	}
	if value := os.Getenv(LogFileEnvVar); value != "" {
		cfg.Log.File = value
	}
}

// Resolve loads dir/.env, the config files, and environment overrides.
func Resolve(dir string) (*Config, error) {
	if err := LoadDotEnv(dir); err != nil {
		return nil, err
	}

	cfg, err := Load(dir)
	if err != nil {
		return nil, err
	}
	ApplyEnv(cfg)
	return cfg, nil
}

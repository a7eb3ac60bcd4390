// Package config handles loading todo.toml configuration files.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/al-prieto/todo-list-app/internal/paths"
	"github.com/al-prieto/todo-list-app/todo"
)

// ProjectFileName is the name of the project-local config file.
const ProjectFileName = "todo.toml"

// DefaultProjectName is the project created when the store is empty.
const DefaultProjectName = "Inbox"

// DefaultLogLevel is used when no level is configured.
const DefaultLogLevel = "warn"

// Config represents the todo.toml configuration file.
type Config struct {
	Store   Store   `toml:"store"`
	Project Project `toml:"project"`
	Log     Log     `toml:"log"`
}

// Store contains persistence configuration.
type Store struct {
	// Dir holds the persisted project collection.
	// Defaults to ~/.local/state/todo-list.
	Dir string `toml:"dir"`

	// Key names the record the collection is stored under.
	Key string `toml:"key"`
}

// Project contains project defaults.
type Project struct {
	// Default is the name of the project created on first run.
	// An explicitly empty value disables default creation.
	Default string `toml:"default"`
}

// Log contains logging configuration.
type Log struct {
	// Level is a logrus level name (debug, info, warn, error).
	Level string `toml:"level"`

	// File sends logs to a rotating file instead of stderr.
	File string `toml:"file"`

	MaxSizeMB  int `toml:"max-size-mb"`
	MaxBackups int `toml:"max-backups"`
}

// Load loads configuration from dir and the global config file, then
// applies defaults. Returns the defaults if no config files exist.
func Load(dir string) (*Config, error) {
	globalPath, err := paths.GlobalConfigPath()
	if err != nil {
		return nil, err
	}

	globalCfg, globalMeta, err := loadConfigFile(globalPath)
	if err != nil {
		return nil, err
	}

	projectCfg, projectMeta, err := loadConfigFile(filepath.Join(dir, ProjectFileName))
	if err != nil {
		return nil, err
	}

	merged := mergeConfigs(globalCfg, projectCfg, globalMeta, projectMeta)
	if err := applyDefaults(merged, globalMeta, projectMeta); err != nil {
		return nil, err
	}
	return merged, nil
}

func loadConfigFile(path string) (*Config, toml.MetaData, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return &Config{}, toml.MetaData{}, nil
	}
	if err != nil {
		return nil, toml.MetaData{}, fmt.Errorf("read config file %s: %w", path, err)
	}

	var cfg Config
	meta, err := toml.Decode(string(data), &cfg)
	if err != nil {
		return nil, toml.MetaData{}, fmt.Errorf("parse config file %s: %w", path, err)
	}

	return &cfg, meta, nil
}

func mergeConfigs(globalCfg, projectCfg *Config, globalMeta, projectMeta toml.MetaData) *Config {
	if globalCfg == nil {
		globalCfg = &Config{}
	}
	if projectCfg == nil {
		projectCfg = &Config{}
	}

	merged := Config{}
	merged.Store.Dir = mergeString(projectMeta.IsDefined("store", "dir"), projectCfg.Store.Dir, globalCfg.Store.Dir)
	merged.Store.Key = mergeString(projectMeta.IsDefined("store", "key"), projectCfg.Store.Key, globalCfg.Store.Key)
	merged.Project.Default = mergeString(projectMeta.IsDefined("project", "default"), projectCfg.Project.Default, globalCfg.Project.Default)
	merged.Log.Level = mergeString(projectMeta.IsDefined("log", "level"), projectCfg.Log.Level, globalCfg.Log.Level)
	merged.Log.File = mergeString(projectMeta.IsDefined("log", "file"), projectCfg.Log.File, globalCfg.Log.File)
	merged.Log.MaxSizeMB = mergeInt(projectMeta.IsDefined("log", "max-size-mb"), projectCfg.Log.MaxSizeMB, globalCfg.Log.MaxSizeMB)
	merged.Log.MaxBackups = mergeInt(projectMeta.IsDefined("log", "max-backups"), projectCfg.Log.MaxBackups, globalCfg.Log.MaxBackups)

	return &merged
}

func mergeString(projectDefined bool, projectValue, globalValue string) string {
	value := globalValue
	if projectDefined {
		value = projectValue
	}
	return strings.TrimSpace(value)
}

func mergeInt(projectDefined bool, projectValue, globalValue int) int {
	if projectDefined {
		return projectValue
	}
	return globalValue
}

func applyDefaults(cfg *Config, globalMeta, projectMeta toml.MetaData) error {
	if cfg.Store.Dir == "" {
		dir, err := paths.DefaultStateDir()
		if err != nil {
			return err
		}
		cfg.Store.Dir = dir
	}
	if cfg.Store.Key == "" {
		cfg.Store.Key = todo.DefaultStoreKey
	}
	if !projectMeta.IsDefined("project", "default") && !globalMeta.IsDefined("project", "default") {
		cfg.Project.Default = DefaultProjectName
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = DefaultLogLevel
	}
	return nil
}

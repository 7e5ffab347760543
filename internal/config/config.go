// Package config holds the viper-backed application configuration.
package config

import (
	"errors"
	"fmt"

	"github.com/spf13/viper"
)

// Config holds the complete application configuration.
type Config struct {
	Scan     ScanConfig     `mapstructure:"scan"`
	Snapshot SnapshotConfig `mapstructure:"snapshot"`
	Sync     SyncConfig     `mapstructure:"sync"`
	Log      LogConfig      `mapstructure:"log"`
}

// ScanConfig holds stats-collection configuration.
type ScanConfig struct {
	// ExcludedDirs names directory segments whose declarations are
	// skipped entirely (vendor and dependency trees).
	ExcludedDirs []string `mapstructure:"excluded_dirs"`
	// CrossLinks maps named type references to documentation link
	// targets for rendered type text.
	CrossLinks map[string]string `mapstructure:"cross_links"`
}

// SnapshotConfig holds the snapshot file location.
type SnapshotConfig struct {
	Path string `mapstructure:"path"`
}

// SyncConfig holds issue-block synchronizer configuration.
type SyncConfig struct {
	// BaseDir is the directory snapshot-relative paths resolve against.
	BaseDir string `mapstructure:"base_dir"`
	// StripPrefix is the known package-relative prefix removed from
	// snapshot paths before resolution.
	StripPrefix string `mapstructure:"strip_prefix"`
	// Targets lists fixture files that always receive a block, even
	// when the snapshot has no entries for them.
	Targets []string `mapstructure:"targets"`
}

// LogConfig holds logging configuration.
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// New creates a new Config instance from Viper.
func New(v *viper.Viper) *Config {
	var config Config

	if err := v.Unmarshal(&config); err != nil {
		panic(fmt.Errorf("unable to decode config: %w", err))
	}
	if err := config.Validate(); err != nil {
		panic(fmt.Errorf("invalid configuration: %w", err))
	}
	return &config
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if c.Snapshot.Path == "" {
		return errors.New("snapshot.path is required")
	}
	if c.Sync.BaseDir == "" {
		return errors.New("sync.base_dir is required")
	}

	switch c.Log.Level {
	case "", "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("log.level must be one of debug, info, warn, error, got %q", c.Log.Level)
	}
	switch c.Log.Format {
	case "", "json", "text":
	default:
		return fmt.Errorf("log.format must be json or text, got %q", c.Log.Format)
	}
	return nil
}

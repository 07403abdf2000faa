package config

import (
	"errors"
	"fmt"

	pathiter "github.com/Ning0612/Pathiter"
)

// Config errors
var (
	// ErrConfigNotFound indicates config file not found
	ErrConfigNotFound = errors.New("config file not found")

	// ErrConfigInvalid indicates config file is malformed
	ErrConfigInvalid = errors.New("invalid config")
)

// Config represents the complete configuration for the pathiter CLI.
// Every field is a default that the corresponding command-line flag can
// override.
type Config struct {
	// Walk holds the traversal defaults
	Walk WalkConfig `mapstructure:"walk"`

	// Log holds the logging defaults
	Log LogConfig `mapstructure:"log"`
}

// WalkConfig mirrors the traversal options that make sense as file
// defaults
type WalkConfig struct {
	// BottomUp yields directories after their contents
	BottomUp bool `mapstructure:"bottom_up"`

	// IncludeRoot yields the root directory itself
	IncludeRoot bool `mapstructure:"include_root"`

	// FilesOnly suppresses directory paths from the output
	FilesOnly bool `mapstructure:"files_only"`

	// Sort orders each directory's children by name
	Sort bool `mapstructure:"sort"`

	// SortReverse reverses the sort order
	SortReverse bool `mapstructure:"sort_reverse"`

	// FollowSymlinks descends into symlinked directories
	FollowSymlinks bool `mapstructure:"follow_symlinks"`

	// Relative yields paths relative to the root
	Relative bool `mapstructure:"relative"`

	// Exclude glob patterns rejecting files and directories alike
	Exclude []string `mapstructure:"exclude"`

	// ExcludeDirs glob patterns rejecting directories only
	ExcludeDirs []string `mapstructure:"exclude_dirs"`

	// NoVCS excludes version control directories and files
	NoVCS bool `mapstructure:"no_vcs"`

	// NoDots excludes dotfiles and dot-directories
	NoDots bool `mapstructure:"no_dots"`

	// Strict aborts the walk on the first listing error instead of
	// logging and skipping
	Strict bool `mapstructure:"strict"`
}

// LogConfig mirrors the logger settings
type LogConfig struct {
	Level      string `mapstructure:"level"`
	Format     string `mapstructure:"format"`
	File       string `mapstructure:"file"`
	MaxSizeMB  int    `mapstructure:"max_size_mb"`
	MaxAgeDays int    `mapstructure:"max_age_days"`
	MaxBackups int    `mapstructure:"max_backups"`
}

// Validate checks if the configuration is complete and consistent
func (c *Config) Validate() error {
	// Exclude and ExcludeDirs feed mutually exclusive walker options
	if len(c.Walk.Exclude) > 0 && len(c.Walk.ExcludeDirs) > 0 {
		return fmt.Errorf("%w: exclude and exclude_dirs are mutually exclusive", ErrConfigInvalid)
	}

	for _, pattern := range c.Walk.Exclude {
		if _, err := pathiter.Glob(pattern); err != nil {
			return fmt.Errorf("%w: exclude pattern: %v", ErrConfigInvalid, err)
		}
	}
	for _, pattern := range c.Walk.ExcludeDirs {
		if _, err := pathiter.Glob(pattern); err != nil {
			return fmt.Errorf("%w: exclude_dirs pattern: %v", ErrConfigInvalid, err)
		}
	}

	switch c.Log.Format {
	case "", "text", "json":
	default:
		return fmt.Errorf("%w: unknown log format: %s", ErrConfigInvalid, c.Log.Format)
	}

	return nil
}

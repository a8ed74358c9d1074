// Package config loads settings from TODO_* environment variables and
// decides which todo file a command operates on.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/kelseyhightower/envconfig"
	"github.com/rs/zerolog"
)

// FileName is the document name looked up in the working directory.
const FileName = "todo.yaml"

// HomeFileName is the fallback document in the user's home directory.
const HomeFileName = ".todo.yaml"

// Config holds all application configuration loaded from environment
// variables. Keys come from split field names so that unprefixed variables
// such as FILE are never consulted.
type Config struct {
	File         string
	LogLevel     string `split_words:"true" default:"warn"`
	WorkDuration int    `split_words:"true" default:"25"` // minutes
	NoColor      bool   `split_words:"true" default:"false"`
}

// Load reads configuration from TODO_ prefixed environment variables.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("todo", &cfg); err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) Validate() error {
	if c.WorkDuration <= 0 {
		return fmt.Errorf("TODO_WORK_DURATION must be positive, got %d", c.WorkDuration)
	}
	if _, err := zerolog.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("TODO_LOG_LEVEL: %w", err)
	}
	return nil
}

// Level is the configured log level, warn when unset or invalid.
func (c *Config) Level() zerolog.Level {
	level, err := zerolog.ParseLevel(c.LogLevel)
	if err != nil || level == zerolog.NoLevel {
		return zerolog.WarnLevel
	}
	return level
}

// WorkLength is the default length of a work session.
func (c *Config) WorkLength() time.Duration {
	return time.Duration(c.WorkDuration) * time.Minute
}

// Source names where a resolved path came from.
type Source string

const (
	SourceExplicit Source = "explicit"
	SourceCwd      Source = "cwd"
	SourceHome     Source = "home"
	SourceDefault  Source = "default"
)

// ResolvePath picks the todo file. An explicit path wins; otherwise an
// existing ./todo.yaml, then an existing ~/.todo.yaml, and finally
// ./todo.yaml, which is created on first save.
func ResolvePath(explicit, cwd, home string) (string, Source) {
	if explicit != "" {
		if !filepath.IsAbs(explicit) && cwd != "" {
			explicit = filepath.Join(cwd, explicit)
		}
		return explicit, SourceExplicit
	}
	local := filepath.Join(cwd, FileName)
	if fileExists(local) {
		return local, SourceCwd
	}
	if home != "" {
		homeFile := filepath.Join(home, HomeFileName)
		if fileExists(homeFile) {
			return homeFile, SourceHome
		}
	}
	return local, SourceDefault
}

// Path resolves the todo file for this process, with flag taking
// precedence over TODO_FILE.
func (c *Config) Path(flag string) (string, Source, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return "", "", fmt.Errorf("get working directory: %w", err)
	}
	// A missing home directory only disables the home fallback.
	home, _ := os.UserHomeDir()
	explicit := flag
	if explicit == "" {
		explicit = c.File
	}
	path, src := ResolvePath(explicit, cwd, home)
	return path, src, nil
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}

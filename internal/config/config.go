// Package config handles the XDG configuration directory and the credential store.
package config

import (
	"io"
	"os"
	"path/filepath"

	"github.com/hashicorp/go-hclog"
)

const (
	// AppName is the application directory name.
	AppName = "linear-cli"

	// ConfigFile is the credential store filename.
	ConfigFile = "config.yaml"
)

// Config holds configuration paths, settings and the credential store.
type Config struct {
	// Dir is the configuration directory path.
	Dir string

	// Debug enables debug logging.
	Debug bool

	// Quiet suppresses informational output.
	Quiet bool

	// Logger is the process logger. Never nil after New.
	Logger hclog.Logger

	// Store holds the persisted credential.
	Store *Store
}

// New creates a new Config with the default or specified config directory.
// If configDir is empty, uses XDG_CONFIG_HOME/linear-cli or $HOME/.config/linear-cli.
// The credential store is loaded eagerly; environment overrides apply.
func New(configDir string) (*Config, error) {
	dir := configDir
	if dir == "" {
		dir = DefaultConfigDir()
	}
	store, err := OpenStore(filepath.Join(dir, ConfigFile))
	if err != nil {
		return nil, err
	}
	return &Config{
		Dir:    dir,
		Logger: hclog.NewNullLogger(),
		Store:  store,
	}, nil
}

// DefaultConfigDir returns the default configuration directory.
// Uses XDG_CONFIG_HOME if set, otherwise $HOME/.config.
func DefaultConfigDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, AppName)
	}
	home, err := os.UserHomeDir()
	if err != nil {
		// Fallback to current directory if home can't be determined
		return AppName
	}
	return filepath.Join(home, ".config", AppName)
}

// Path returns the path to the credential store file.
func (c *Config) Path() string {
	return filepath.Join(c.Dir, ConfigFile)
}

// NewLogger builds the process logger writing to w.
// Debug raises the level from Warn to Debug.
func NewLogger(w io.Writer, debug bool) hclog.Logger {
	level := hclog.Warn
	if debug {
		level = hclog.Debug
	}
	return hclog.New(&hclog.LoggerOptions{
		Name:   "linear",
		Level:  level,
		Output: w,
	})
}

// Package config provides configuration management for githelper.
package config

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const (
	// ConfigDir is the directory holding the githelper configuration
	ConfigDir = ".githelper"
	// ConfigFile is the configuration filename inside ConfigDir
	ConfigFile = "config.yaml"
)

// ErrNotFound is returned by FindConfig when no configuration file exists
var ErrNotFound = errors.New("no .githelper/config.yaml found")

// Manager loads and saves one configuration file
type Manager struct {
	configPath string
}

// NewManager creates a manager for the configuration file at configPath
func NewManager(configPath string) *Manager {
	return &Manager{configPath: configPath}
}

// NewManagerForDir creates a manager for dir/.githelper/config.yaml
func NewManagerForDir(dir string) *Manager {
	return NewManager(filepath.Join(dir, ConfigDir, ConfigFile))
}

// Load reads, validates and defaults the configuration
func (m *Manager) Load() (*Config, error) {
	cfg, err := LoadWithValidation(m.configPath)
	if err != nil {
		return nil, err
	}

	applyDefaults(cfg)

	if err := ValidateConfig(cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// LoadOrDefault loads the configuration, or returns DefaultConfig when the
// file does not exist. Any other error is returned.
func (m *Manager) LoadOrDefault() (*Config, error) {
	if !m.Exists() {
		return DefaultConfig(), nil
	}
	return m.Load()
}

// Save writes cfg to disk under the file lock, creating the directory if needed
func (m *Manager) Save(cfg *Config) error {
	return withLock(context.Background(), m.configPath, DefaultLockTimeout, func() error {
		return m.write(cfg)
	})
}

// Update loads the configuration (or the defaults when the file does not
// exist), applies fn and writes the result. The file stays locked
// throughout so concurrent updates are not lost.
func (m *Manager) Update(ctx context.Context, fn func(cfg *Config) error) error {
	return withLock(ctx, m.configPath, DefaultLockTimeout, func() error {
		cfg, err := m.LoadOrDefault()
		if err != nil {
			return err
		}
		if err := fn(cfg); err != nil {
			return err
		}
		return m.write(cfg)
	})
}

func (m *Manager) write(cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	return writeAtomic(m.configPath, data)
}

// Exists reports whether the configuration file exists
func (m *Manager) Exists() bool {
	_, err := os.Stat(m.configPath)
	return err == nil
}

// Path returns the configuration file path
func (m *Manager) Path() string {
	return m.configPath
}

// FindConfig walks up from dir looking for .githelper/config.yaml and
// returns its path.
func FindConfig(dir string) (string, error) {
	dir, err := filepath.Abs(dir)
	if err != nil {
		return "", err
	}

	for {
		candidate := filepath.Join(dir, ConfigDir, ConfigFile)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", ErrNotFound
		}
		dir = parent
	}
}

func applyDefaults(cfg *Config) {
	defaults := DefaultConfig()

	if cfg.Version == "" {
		cfg.Version = defaults.Version
	}
	if cfg.Repository.Remote == "" {
		cfg.Repository.Remote = defaults.Repository.Remote
	}
	if cfg.Repository.Branch == "" {
		cfg.Repository.Branch = defaults.Repository.Branch
	}
	if cfg.Repository.DefaultCommitMessage == "" {
		cfg.Repository.DefaultCommitMessage = defaults.Repository.DefaultCommitMessage
	}
	if cfg.Git.Binary == "" {
		cfg.Git.Binary = defaults.Git.Binary
	}
	if cfg.Git.Timeout == "" {
		cfg.Git.Timeout = defaults.Git.Timeout
	}
	if cfg.MCP.Transport.Type == "" {
		cfg.MCP.Transport.Type = defaults.MCP.Transport.Type
	}
	if cfg.MCP.Transport.HTTP.Port == 0 {
		cfg.MCP.Transport.HTTP.Port = defaults.MCP.Transport.HTTP.Port
	}
}

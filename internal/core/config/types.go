package config

import (
	"fmt"
	"time"
)

// Config is the githelper configuration file
type Config struct {
	Version    string           `yaml:"version"`
	Repository RepositoryConfig `yaml:"repository"`
	Git        GitConfig        `yaml:"git"`
	MCP        MCPConfig        `yaml:"mcp"`
}

// RepositoryConfig describes the repository the tools operate on
type RepositoryConfig struct {
	// Path is the initial repository location. Empty means the working directory.
	Path                 string `yaml:"path,omitempty"`
	Remote               string `yaml:"remote,omitempty"`
	Branch               string `yaml:"branch,omitempty"`
	DefaultCommitMessage string `yaml:"default_commit_message,omitempty"`
}

// GitConfig controls how the git binary is invoked
type GitConfig struct {
	Binary string `yaml:"binary,omitempty"`
	// Timeout bounds one git invocation, as a Go duration string
	Timeout string `yaml:"timeout,omitempty"`
}

// MCPConfig represents MCP server configuration
type MCPConfig struct {
	Transport TransportConfig `yaml:"transport"`
}

// TransportConfig selects the MCP transport
type TransportConfig struct {
	Type string     `yaml:"type"`
	HTTP HTTPConfig `yaml:"http,omitempty"`
}

// HTTPConfig represents HTTP transport configuration
type HTTPConfig struct {
	Port int        `yaml:"port"`
	Auth AuthConfig `yaml:"auth,omitempty"`
}

// AuthConfig represents HTTP authentication configuration
type AuthConfig struct {
	Type   string `yaml:"type"`
	Bearer string `yaml:"bearer,omitempty"`
	Basic  struct {
		Username string `yaml:"username"`
		Password string `yaml:"password"`
	} `yaml:"basic,omitempty"`
}

// Transport types
const (
	TransportStdio = "stdio"
	TransportHTTP  = "http"
)

// Auth types
const (
	AuthNone   = "none"
	AuthBearer = "bearer"
	AuthBasic  = "basic"
)

// Defaults
const (
	DefaultVersion       = "1.0"
	DefaultRemote        = "origin"
	DefaultBranch        = "main"
	DefaultCommitMessage = "auto commit"
	DefaultGitBinary     = "git"
	DefaultGitTimeout    = "2m"
	DefaultHTTPPort      = 3000
)

// DefaultConfig returns the configuration used when no file exists
func DefaultConfig() *Config {
	return &Config{
		Version: DefaultVersion,
		Repository: RepositoryConfig{
			Remote:               DefaultRemote,
			Branch:               DefaultBranch,
			DefaultCommitMessage: DefaultCommitMessage,
		},
		Git: GitConfig{
			Binary:  DefaultGitBinary,
			Timeout: DefaultGitTimeout,
		},
		MCP: MCPConfig{
			Transport: TransportConfig{
				Type: TransportStdio,
				HTTP: HTTPConfig{Port: DefaultHTTPPort},
			},
		},
	}
}

// GitTimeout parses Git.Timeout, falling back to the default when unset
func (c *Config) GitTimeout() (time.Duration, error) {
	raw := c.Git.Timeout
	if raw == "" {
		raw = DefaultGitTimeout
	}
	d, err := time.ParseDuration(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid git timeout %q: %w", raw, err)
	}
	return d, nil
}

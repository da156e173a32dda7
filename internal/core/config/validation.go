package config

import (
	"fmt"
)

// ValidateConfig checks the constraints the JSON schema cannot express
func ValidateConfig(cfg *Config) error {
	if cfg == nil {
		return fmt.Errorf("config is nil")
	}

	if _, err := cfg.GitTimeout(); err != nil {
		return err
	}

	return ValidateTransport(&cfg.MCP.Transport)
}

// ValidateTransport validates the MCP transport and its authentication
func ValidateTransport(t *TransportConfig) error {
	switch t.Type {
	case TransportStdio:
		return nil
	case TransportHTTP:
	default:
		return fmt.Errorf("unsupported transport: %s", t.Type)
	}

	if t.HTTP.Port <= 0 || t.HTTP.Port > 65535 {
		return fmt.Errorf("invalid http port: %d", t.HTTP.Port)
	}

	switch t.HTTP.Auth.Type {
	case "", AuthNone:
	case AuthBearer:
		if t.HTTP.Auth.Bearer == "" {
			return fmt.Errorf("bearer token required for bearer authentication")
		}
	case AuthBasic:
		if t.HTTP.Auth.Basic.Username == "" || t.HTTP.Auth.Basic.Password == "" {
			return fmt.Errorf("username and password required for basic authentication")
		}
	default:
		return fmt.Errorf("unsupported auth type: %s", t.HTTP.Auth.Type)
	}

	return nil
}

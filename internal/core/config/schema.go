package config

import (
	"bytes"
	_ "embed"
	"fmt"
	"os"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v5"
	"gopkg.in/yaml.v3"
)

//go:embed schemas/config.schema.json
var configSchema []byte

var (
	schemaOnce     sync.Once
	compiledSchema *jsonschema.Schema
	schemaErr      error
)

func compileSchema() (*jsonschema.Schema, error) {
	schemaOnce.Do(func() {
		compiler := jsonschema.NewCompiler()
		compiler.Draft = jsonschema.Draft2020

		if err := compiler.AddResource("config.schema.json", bytes.NewReader(configSchema)); err != nil {
			schemaErr = fmt.Errorf("failed to add schema resource: %w", err)
			return
		}

		compiledSchema, schemaErr = compiler.Compile("config.schema.json")
		if schemaErr != nil {
			schemaErr = fmt.Errorf("failed to compile schema: %w", schemaErr)
		}
	})
	return compiledSchema, schemaErr
}

// ValidateYAML validates YAML content against the embedded JSON schema
func ValidateYAML(content []byte) error {
	schema, err := compileSchema()
	if err != nil {
		return err
	}

	var data interface{}
	if err := yaml.Unmarshal(content, &data); err != nil {
		return fmt.Errorf("failed to parse YAML: %w", err)
	}
	// An empty file is a valid, fully defaulted configuration
	if data == nil {
		data = map[string]interface{}{}
	}

	if err := schema.Validate(data); err != nil {
		return fmt.Errorf("schema validation failed: %w", err)
	}

	return nil
}

// LoadWithValidation reads path, validates it against the schema and
// decodes it. Defaults are not applied.
func LoadWithValidation(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("configuration file not found: %s", path)
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	if err := ValidateYAML(data); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return &cfg, nil
}

// ValidateFile validates a configuration file without loading it
func ValidateFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("configuration file not found: %s", path)
		}
		return fmt.Errorf("failed to read config file: %w", err)
	}

	if err := ValidateYAML(data); err != nil {
		return err
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return fmt.Errorf("failed to unmarshal config: %w", err)
	}
	applyDefaults(&cfg)

	return ValidateConfig(&cfg)
}

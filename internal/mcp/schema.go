// Package mcp exposes the repository operations as Model Context Protocol tools.
package mcp

import (
	"encoding/json"
	"fmt"
	"reflect"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
)

// StructToToolOptions converts a parameter struct into mcp-go tool options.
// Fields are named by their json tag; `mcp:"required"` marks a required
// field, `description:"..."` documents it and `default:"..."` sets the
// default of a string field.
func StructToToolOptions(structType interface{}) ([]mcp.ToolOption, error) {
	t := reflect.TypeOf(structType)
	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	if t.Kind() != reflect.Struct {
		return nil, fmt.Errorf("expected struct type, got %v", t.Kind())
	}

	var toolOptions []mcp.ToolOption

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)

		jsonTag := field.Tag.Get("json")
		if jsonTag == "" || jsonTag == "-" {
			continue
		}
		fieldName, _, _ := strings.Cut(jsonTag, ",")

		description := field.Tag.Get("description")
		if description == "" {
			description = fmt.Sprintf("%s field", fieldName)
		}

		opts := []mcp.PropertyOption{mcp.Description(description)}
		if field.Tag.Get("mcp") == "required" {
			opts = append(opts, mcp.Required())
		}

		switch field.Type.Kind() { //nolint:exhaustive // Only handling types we support
		case reflect.String:
			if def, ok := field.Tag.Lookup("default"); ok {
				opts = append(opts, mcp.DefaultString(def))
			}
			toolOptions = append(toolOptions, mcp.WithString(fieldName, opts...))
		case reflect.Int, reflect.Int64:
			toolOptions = append(toolOptions, mcp.WithNumber(fieldName, opts...))
		case reflect.Bool:
			toolOptions = append(toolOptions, mcp.WithBoolean(fieldName, opts...))
		default:
			return nil, fmt.Errorf("unsupported field type %v for %s", field.Type.Kind(), fieldName)
		}
	}

	return toolOptions, nil
}

// WithStructOptions prepends a description to the struct-derived options
func WithStructOptions(description string, structType interface{}) ([]mcp.ToolOption, error) {
	structOpts, err := StructToToolOptions(structType)
	if err != nil {
		return nil, err
	}
	return append([]mcp.ToolOption{mcp.WithDescription(description)}, structOpts...), nil
}

// UnmarshalArgs decodes CallToolRequest arguments into target
func UnmarshalArgs[T any](request mcp.CallToolRequest, target *T) error {
	args := request.GetArguments()

	jsonBytes, err := json.Marshal(args)
	if err != nil {
		return fmt.Errorf("failed to marshal arguments: %w", err)
	}

	if err := json.Unmarshal(jsonBytes, target); err != nil {
		return fmt.Errorf("failed to unmarshal arguments to struct: %w", err)
	}

	return nil
}

// PushParams are the arguments of push_to_github
type PushParams struct {
	CommitMessage string `json:"commit_message,omitempty" description:"The commit message to use" default:"auto commit"`
}

// StatusParams are the arguments of git_status
type StatusParams struct{}

// SetRepoPathParams are the arguments of set_repo_path
type SetRepoPathParams struct {
	NewPath string `json:"new_path" mcp:"required" description:"The new path to the git repository"`
}

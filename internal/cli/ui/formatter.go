package ui

import (
	"encoding/json"
	"fmt"
)

// OutputFormat represents the output format type
type OutputFormat string

const (
	// FormatPretty represents human-readable output format
	FormatPretty OutputFormat = "pretty"
	// FormatJSON represents JSON output format
	FormatJSON OutputFormat = "json"
)

// ParseFormat converts a string to OutputFormat
func ParseFormat(s string) (OutputFormat, error) {
	switch s {
	case "pretty", "":
		return FormatPretty, nil
	case "json":
		return FormatJSON, nil
	default:
		return "", fmt.Errorf("unsupported format: %s", s)
	}
}

// Formatter renders command results
type Formatter interface {
	// Output formats and displays data
	Output(data interface{}) error
	IsJSON() bool
}

type prettyFormatter struct{}

// NewPrettyFormatter creates a formatter for human-readable output
func NewPrettyFormatter() Formatter {
	return &prettyFormatter{}
}

func (f *prettyFormatter) Output(data interface{}) error {
	switch v := data.(type) {
	case string:
		fmt.Fprint(Stdout, v)
	case fmt.Stringer:
		fmt.Fprintln(Stdout, v.String())
	default:
		fmt.Fprintln(Stdout, v)
	}
	return nil
}

func (f *prettyFormatter) IsJSON() bool {
	return false
}

type jsonFormatter struct{}

// NewJSONFormatter creates a formatter writing indented JSON to Stdout
func NewJSONFormatter() Formatter {
	return &jsonFormatter{}
}

func (f *jsonFormatter) Output(data interface{}) error {
	encoder := json.NewEncoder(Stdout)
	encoder.SetIndent("", "  ")
	return encoder.Encode(data)
}

func (f *jsonFormatter) IsJSON() bool {
	return true
}

// GlobalFormatter is the formatter selected by the --format flag
var GlobalFormatter Formatter = NewPrettyFormatter()

// SetGlobalFormatter sets the global formatter
func SetGlobalFormatter(format OutputFormat) error {
	switch format {
	case FormatPretty:
		GlobalFormatter = NewPrettyFormatter()
	case FormatJSON:
		GlobalFormatter = NewJSONFormatter()
	default:
		return fmt.Errorf("unsupported format: %s", format)
	}
	return nil
}

package mcp

import (
	"fmt"
	"strings"

	"github.com/aki/githelper/internal/core/repo"
)

// ErrorWithSuggestions is an error message followed by tools that may help
type ErrorWithSuggestions struct {
	Message     string
	Suggestions []string
}

// Error returns the message with the suggestions appended
func (e *ErrorWithSuggestions) Error() string {
	if len(e.Suggestions) == 0 {
		return e.Message
	}

	var sb strings.Builder
	sb.WriteString(e.Message)
	sb.WriteString("\n\nDid you mean to use one of these tools instead?\n")
	for _, suggestion := range e.Suggestions {
		sb.WriteString("  - ")
		sb.WriteString(suggestion)
		sb.WriteString("\n")
	}
	return sb.String()
}

// NewErrorWithSuggestions creates a new error with tool suggestions
func NewErrorWithSuggestions(message string, suggestions ...string) error {
	return &ErrorWithSuggestions{
		Message:     message,
		Suggestions: suggestions,
	}
}

// InvalidParameterError returns an error for a missing or malformed argument
func InvalidParameterError(param string, expected string) error {
	return NewErrorWithSuggestions(
		fmt.Sprintf("invalid %s: expected %s", param, expected),
		"Use the tool descriptions to understand parameter requirements",
	)
}

// ReportError decorates an error report with suggestions for its category
func ReportError(report repo.Report) error {
	switch report.Category {
	case repo.CategoryPathNotFound, repo.CategoryNotARepository:
		return NewErrorWithSuggestions(report.Text(),
			ToolSetRepoPath+" - Point the tools at an existing git repository",
		)
	case repo.CategoryInvalidPath:
		return NewErrorWithSuggestions(report.Text(),
			ToolSetRepoPath+" - Retry with a directory that contains .git",
			ToolStatus+" - Check the repository currently in use",
		)
	case repo.CategoryCommandFailed:
		if report.Step == repo.StepPush {
			return NewErrorWithSuggestions(report.Text(),
				ToolStatus+" - The commit was created locally; check the status before retrying",
			)
		}
		return NewErrorWithSuggestions(report.Text())
	default:
		return NewErrorWithSuggestions(report.Text())
	}
}

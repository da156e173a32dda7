package mcp

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/aki/githelper/internal/core/repo"
)

func TestErrorWithSuggestions(t *testing.T) {
	err := NewErrorWithSuggestions("boom", "a - first", "b - second")
	text := err.Error()

	assert.True(t, strings.HasPrefix(text, "boom\n\nDid you mean"))
	assert.Contains(t, text, "  - a - first\n")
	assert.Contains(t, text, "  - b - second\n")

	assert.Equal(t, "plain", NewErrorWithSuggestions("plain").Error())
}

func TestReportError(t *testing.T) {
	tests := []struct {
		name        string
		report      repo.Report
		wantPrefix  string
		wantSuggest []string
	}{
		{
			name:        "path not found",
			report:      repo.Report{Kind: repo.KindError, Category: repo.CategoryPathNotFound, Message: "Repository path does not exist: /x"},
			wantPrefix:  "❌ Error: Repository path does not exist: /x",
			wantSuggest: []string{ToolSetRepoPath},
		},
		{
			name:        "invalid path",
			report:      repo.Report{Kind: repo.KindError, Category: repo.CategoryInvalidPath, Message: "Invalid repository path: /y"},
			wantPrefix:  "❌ Invalid repository path: /y",
			wantSuggest: []string{ToolSetRepoPath, ToolStatus},
		},
		{
			name:        "push failed",
			report:      repo.Report{Kind: repo.KindError, Category: repo.CategoryCommandFailed, Step: repo.StepPush, Message: "fatal: no remote"},
			wantPrefix:  "❌ Git error: fatal: no remote",
			wantSuggest: []string{ToolStatus},
		},
		{
			name:       "commit failed",
			report:     repo.Report{Kind: repo.KindError, Category: repo.CategoryCommandFailed, Step: repo.StepCommit, Message: "nope"},
			wantPrefix: "❌ Git error: nope",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			text := ReportError(tt.report).Error()
			assert.True(t, strings.HasPrefix(text, tt.wantPrefix), text)
			for _, s := range tt.wantSuggest {
				assert.Contains(t, text, s)
			}
			if len(tt.wantSuggest) == 0 {
				assert.Equal(t, tt.wantPrefix, text)
			}
		})
	}
}

func TestToolSummaries(t *testing.T) {
	summaries := ToolSummaries()
	assert.Len(t, summaries, 3)
	assert.Equal(t, ToolPush, summaries[0].Name)
	assert.Equal(t, "Stage, commit, and push local changes to GitHub", summaries[0].Summary)
	assert.NotEmpty(t, GetEnhancedDescription(ToolStatus))
	assert.Empty(t, GetEnhancedDescription("unknown"))
}

package mcp

import (
	"testing"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/aki/githelper/internal/core/git"
	"github.com/aki/githelper/internal/core/repo"
	"github.com/aki/githelper/internal/tests/helpers"
)

// setupTestServer creates a server whose executor points at a fresh
// temporary repository.
func setupTestServer(t *testing.T) (*Server, string) {
	t.Helper()

	repoPath := helpers.CreateTestRepo(t)

	executor, err := repo.New(repoPath, git.NewExecRunner())
	if err != nil {
		t.Fatalf("failed to create executor: %v", err)
	}

	server, err := NewServer(executor, "test")
	if err != nil {
		t.Fatalf("failed to create server: %v", err)
	}

	return server, repoPath
}

func callRequest(name string, args map[string]interface{}) mcp.CallToolRequest {
	return mcp.CallToolRequest{
		Params: mcp.CallToolParams{
			Name:      name,
			Arguments: args,
		},
	}
}

func resultText(t *testing.T, result *mcp.CallToolResult) string {
	t.Helper()

	if result == nil || len(result.Content) != 1 {
		t.Fatalf("expected exactly one content item, got %+v", result)
	}
	text, ok := result.Content[0].(mcp.TextContent)
	if !ok {
		t.Fatalf("expected text content, got %T", result.Content[0])
	}
	return text.Text
}

package mcp

import (
	"testing"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStructToToolOptions(t *testing.T) {
	t.Run("required string", func(t *testing.T) {
		opts, err := WithStructOptions("desc", SetRepoPathParams{})
		require.NoError(t, err)

		tool := mcp.NewTool("set_repo_path", opts...)
		assert.Equal(t, "desc", tool.Description)
		assert.Equal(t, []string{"new_path"}, tool.InputSchema.Required)

		prop, ok := tool.InputSchema.Properties["new_path"].(map[string]interface{})
		require.True(t, ok)
		assert.Equal(t, "string", prop["type"])
		assert.Equal(t, "The new path to the git repository", prop["description"])
	})

	t.Run("optional string with default", func(t *testing.T) {
		opts, err := StructToToolOptions(&PushParams{})
		require.NoError(t, err)

		tool := mcp.NewTool("push_to_github", opts...)
		assert.Empty(t, tool.InputSchema.Required)

		prop, ok := tool.InputSchema.Properties["commit_message"].(map[string]interface{})
		require.True(t, ok)
		assert.Equal(t, "auto commit", prop["default"])
	})

	t.Run("no fields", func(t *testing.T) {
		opts, err := StructToToolOptions(StatusParams{})
		require.NoError(t, err)
		assert.Empty(t, opts)
	})

	t.Run("mixed kinds", func(t *testing.T) {
		type params struct {
			Name    string `json:"name" mcp:"required"`
			Count   int    `json:"count,omitempty"`
			Enabled bool   `json:"enabled,omitempty"`
			Skipped string `json:"-"`
		}

		opts, err := StructToToolOptions(params{})
		require.NoError(t, err)

		tool := mcp.NewTool("mixed", opts...)
		assert.Len(t, tool.InputSchema.Properties, 3)
		assert.Equal(t, "number", tool.InputSchema.Properties["count"].(map[string]interface{})["type"])
		assert.Equal(t, "boolean", tool.InputSchema.Properties["enabled"].(map[string]interface{})["type"])
	})

	t.Run("rejects non struct", func(t *testing.T) {
		_, err := StructToToolOptions("nope")
		assert.Error(t, err)
	})

	t.Run("rejects unsupported field types", func(t *testing.T) {
		type params struct {
			Paths []string `json:"paths"`
		}
		_, err := StructToToolOptions(params{})
		assert.Error(t, err)
	})
}

func TestUnmarshalArgs(t *testing.T) {
	var params SetRepoPathParams
	err := UnmarshalArgs(callRequest(ToolSetRepoPath, map[string]interface{}{"new_path": "/repo"}), &params)
	require.NoError(t, err)
	assert.Equal(t, "/repo", params.NewPath)

	var push PushParams
	err = UnmarshalArgs(callRequest(ToolPush, map[string]interface{}{"commit_message": true}), &push)
	assert.Error(t, err)
}

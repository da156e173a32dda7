package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, dir, content string) string {
	t.Helper()

	path := filepath.Join(dir, ConfigDir, ConfigFile)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestManagerLoad(t *testing.T) {
	t.Run("applies defaults to a partial file", func(t *testing.T) {
		dir := t.TempDir()
		writeConfig(t, dir, "repository:\n  path: /srv/project\n")

		cfg, err := NewManagerForDir(dir).Load()
		require.NoError(t, err)

		assert.Equal(t, "/srv/project", cfg.Repository.Path)
		assert.Equal(t, DefaultRemote, cfg.Repository.Remote)
		assert.Equal(t, DefaultBranch, cfg.Repository.Branch)
		assert.Equal(t, DefaultCommitMessage, cfg.Repository.DefaultCommitMessage)
		assert.Equal(t, DefaultGitBinary, cfg.Git.Binary)
		assert.Equal(t, TransportStdio, cfg.MCP.Transport.Type)
		assert.Equal(t, DefaultHTTPPort, cfg.MCP.Transport.HTTP.Port)

		timeout, err := cfg.GitTimeout()
		require.NoError(t, err)
		assert.Equal(t, 2*time.Minute, timeout)
	})

	t.Run("empty file is valid", func(t *testing.T) {
		dir := t.TempDir()
		writeConfig(t, dir, "")

		cfg, err := NewManagerForDir(dir).Load()
		require.NoError(t, err)
		assert.Equal(t, DefaultVersion, cfg.Version)
	})

	t.Run("rejects unknown keys", func(t *testing.T) {
		dir := t.TempDir()
		writeConfig(t, dir, "repository:\n  pth: /typo\n")

		_, err := NewManagerForDir(dir).Load()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "schema validation failed")
	})

	t.Run("rejects a remote that looks like a flag", func(t *testing.T) {
		dir := t.TempDir()
		writeConfig(t, dir, "repository:\n  remote: --force\n")

		_, err := NewManagerForDir(dir).Load()
		assert.Error(t, err)
	})

	t.Run("rejects a malformed timeout", func(t *testing.T) {
		dir := t.TempDir()
		writeConfig(t, dir, "git:\n  timeout: soon\n")

		_, err := NewManagerForDir(dir).Load()
		assert.Error(t, err)
	})

	t.Run("rejects bearer auth without a token", func(t *testing.T) {
		dir := t.TempDir()
		writeConfig(t, dir, `mcp:
  transport:
    type: http
    http:
      port: 8080
      auth:
        type: bearer
`)

		_, err := NewManagerForDir(dir).Load()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "bearer token required")
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := NewManagerForDir(t.TempDir()).Load()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "configuration file not found")
	})
}

func TestManagerLoadOrDefault(t *testing.T) {
	cfg, err := NewManagerForDir(t.TempDir()).LoadOrDefault()
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestManagerSaveRoundTrip(t *testing.T) {
	dir := t.TempDir()
	m := NewManagerForDir(dir)
	assert.False(t, m.Exists())

	cfg := DefaultConfig()
	cfg.Repository.Path = "/work/repo"
	cfg.Git.Timeout = "45s"
	require.NoError(t, m.Save(cfg))
	assert.True(t, m.Exists())
	assert.Equal(t, filepath.Join(dir, ConfigDir, ConfigFile), m.Path())

	loaded, err := m.Load()
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
	require.NoError(t, ValidateFile(m.Path()))
}

func TestFindConfig(t *testing.T) {
	root := t.TempDir()
	want := writeConfig(t, root, "version: \"1.0\"\n")
	nested := filepath.Join(root, "a", "b")
	require.NoError(t, os.MkdirAll(nested, 0o755))

	got, err := FindConfig(nested)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestValidateTransport(t *testing.T) {
	tests := []struct {
		name    string
		t       TransportConfig
		wantErr bool
	}{
		{name: "stdio", t: TransportConfig{Type: TransportStdio}},
		{name: "http without auth", t: TransportConfig{Type: TransportHTTP, HTTP: HTTPConfig{Port: 3000}}},
		{name: "unknown transport", t: TransportConfig{Type: "grpc"}, wantErr: true},
		{name: "https is not served", t: TransportConfig{Type: "https", HTTP: HTTPConfig{Port: 443}}, wantErr: true},
		{name: "bad port", t: TransportConfig{Type: TransportHTTP, HTTP: HTTPConfig{Port: 0}}, wantErr: true},
		{
			name:    "unknown auth",
			t:       TransportConfig{Type: TransportHTTP, HTTP: HTTPConfig{Port: 1, Auth: AuthConfig{Type: "oauth"}}},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateTransport(&tt.t)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}

	basic := TransportConfig{Type: TransportHTTP, HTTP: HTTPConfig{Port: 8443, Auth: AuthConfig{Type: AuthBasic}}}
	assert.Error(t, ValidateTransport(&basic))
	basic.HTTP.Auth.Basic.Username = "u"
	basic.HTTP.Auth.Basic.Password = "p"
	assert.NoError(t, ValidateTransport(&basic))
}

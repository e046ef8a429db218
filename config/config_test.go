package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDefaults(t *testing.T) {
	Reset()
	t.Cleanup(Reset)

	cfg, err := Load()
	require.NoError(t, err)

	require.Equal(t, "owlet.db", cfg.Database.Path)
	require.Equal(t, ":5002", cfg.Server.Addr)
	require.Equal(t, "*", cfg.Server.CORSOrigin)
	require.False(t, cfg.Log.JSON)
	require.False(t, cfg.Seed.Demo)
}

func TestLoadFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "owlet.toml")
	content := `
[database]
path = "/tmp/test-owlet.db"

[server]
addr = ":9090"
cors_origin = "http://localhost:3000"

[log]
json = true

[seed]
demo = true
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := LoadFromFile(path)
	require.NoError(t, err)

	require.Equal(t, "/tmp/test-owlet.db", cfg.Database.Path)
	require.Equal(t, ":9090", cfg.Server.Addr)
	require.Equal(t, "http://localhost:3000", cfg.Server.CORSOrigin)
	require.True(t, cfg.Log.JSON)
	require.True(t, cfg.Seed.Demo)
}

func TestLoadFromFileMissing(t *testing.T) {
	_, err := LoadFromFile(filepath.Join(t.TempDir(), "nope.toml"))
	require.Error(t, err)
}

func TestPartialFileKeepsDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "owlet.toml")
	require.NoError(t, os.WriteFile(path, []byte("[server]\naddr = \":8080\"\n"), 0o644))

	cfg, err := LoadFromFile(path)
	require.NoError(t, err)

	require.Equal(t, ":8080", cfg.Server.Addr)
	require.Equal(t, "owlet.db", cfg.Database.Path)
}

package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// isolateConfigDir points the user config directory at a temp dir so tests
// never touch the real one.
func isolateConfigDir(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	t.Setenv("HOME", dir)
	return dir
}

func TestDefault(t *testing.T) {
	cfg := Default()
	assert.Equal(t, "file", cfg.AuthMode)
	assert.Equal(t, "Sheet1", cfg.ReadRange)
	assert.Equal(t, "Sheet1!A1", cfg.WriteRange)
	assert.Equal(t, 30*time.Second, cfg.HTTPTimeout)
}

func TestLoad_Defaults(t *testing.T) {
	isolateConfigDir(t)

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, Default().ReadRange, cfg.ReadRange)
	assert.Equal(t, Default().WriteRange, cfg.WriteRange)
	assert.Equal(t, Default().SheetsBaseURL, cfg.SheetsBaseURL)
}

func TestLoad_EnvironmentOverrides(t *testing.T) {
	isolateConfigDir(t)
	t.Setenv("TABSHELL_AUTH_MODE", "env")
	t.Setenv("TABSHELL_TOKEN", `{"token":"abc"}`)
	t.Setenv("TABSHELL_READ_RANGE", "Data!A1:Z100")
	t.Setenv("TABSHELL_WRITE_RANGE", "Data!A1")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "env", cfg.AuthMode)
	assert.Equal(t, `{"token":"abc"}`, cfg.Token)
	assert.Equal(t, "Data!A1:Z100", cfg.ReadRange)
	assert.Equal(t, "Data!A1", cfg.WriteRange)
}

func TestLoad_WritesDefaultConfigFile(t *testing.T) {
	isolateConfigDir(t)

	_, err := Load()
	require.NoError(t, err)

	path, err := ConfigFilePath()
	require.NoError(t, err)
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "read_range: Sheet1")
	assert.Contains(t, string(data), "write_range: Sheet1!A1")
}

func TestLoad_ReadsConfigFile(t *testing.T) {
	dir := isolateConfigDir(t)

	configDir := filepath.Join(dir, "tabshell")
	require.NoError(t, os.MkdirAll(configDir, 0750))
	content := "read_range: Custom!A1:B2\nsheets_url: http://localhost:9999\n"
	require.NoError(t, os.WriteFile(filepath.Join(configDir, "config.yaml"), []byte(content), 0600))

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "Custom!A1:B2", cfg.ReadRange)
	assert.Equal(t, "http://localhost:9999", cfg.SheetsBaseURL)
	// Keys absent from the file keep their defaults.
	assert.Equal(t, Default().WriteRange, cfg.WriteRange)
}

func TestLoad_EnvBeatsConfigFile(t *testing.T) {
	dir := isolateConfigDir(t)

	configDir := filepath.Join(dir, "tabshell")
	require.NoError(t, os.MkdirAll(configDir, 0750))
	require.NoError(t, os.WriteFile(filepath.Join(configDir, "config.yaml"), []byte("read_range: FromFile\n"), 0600))
	t.Setenv("TABSHELL_READ_RANGE", "FromEnv")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "FromEnv", cfg.ReadRange)
}

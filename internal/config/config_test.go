package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "swapdesk.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadFromPath_ValidConfig(t *testing.T) {
	path := writeConfigFile(t, `
apiBaseURL: https://api.example.com
sessionFile: /tmp/session.yaml
`)

	cfg, err := LoadFromPath(path)

	require.NoError(t, err)
	assert.Equal(t, "https://api.example.com", cfg.APIBaseURL)
	assert.Equal(t, "/tmp/session.yaml", cfg.SessionFile)
}

func TestLoadFromPath_MissingBaseURL(t *testing.T) {
	path := writeConfigFile(t, `sessionFile: /tmp/session.yaml`)

	_, err := LoadFromPath(path)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "validation failed")
}

func TestLoadFromPath_InvalidURL(t *testing.T) {
	path := writeConfigFile(t, `apiBaseURL: not a url`)

	_, err := LoadFromPath(path)

	assert.Error(t, err)
}

func TestLoadFromPath_EnvOverridesFile(t *testing.T) {
	path := writeConfigFile(t, `apiBaseURL: https://file.example.com`)
	t.Setenv("SWAPDESK_API_BASE_URL", "https://env.example.com")
	t.Setenv("SWAPDESK_SESSION_FILE", "/tmp/env-session.yaml")

	cfg, err := LoadFromPath(path)

	require.NoError(t, err)
	assert.Equal(t, "https://env.example.com", cfg.APIBaseURL)
	assert.Equal(t, "/tmp/env-session.yaml", cfg.SessionFile)
}

func TestLoadFromPath_MissingFile(t *testing.T) {
	_, err := LoadFromPath(filepath.Join(t.TempDir(), "absent.yaml"))

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read config file")
}

func TestLoadFromPath_MalformedYAML(t *testing.T) {
	path := writeConfigFile(t, "apiBaseURL: [unclosed")

	_, err := LoadFromPath(path)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse config file")
}

func TestValidate(t *testing.T) {
	assert.NoError(t, Validate(&Config{APIBaseURL: "https://api.example.com"}))
	assert.Error(t, Validate(&Config{}))
}

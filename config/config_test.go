package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "testmo_config.json5")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, `{
		// instance to scrape
		url: "https://example.testmo.net",
		token: "secret",
	}`)
	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, "https://example.testmo.net", cfg.URL)
	require.Equal(t, "secret", cfg.Token)
}

func TestLoadMissingToken(t *testing.T) {
	path := writeConfig(t, `{url: "https://example.testmo.net"}`)
	_, err := Load(path)
	require.ErrorContains(t, err, "token is required")
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.json5"))
	require.Error(t, err)
}

func TestRestrictToOwner(t *testing.T) {
	path := writeConfig(t, `{url: "u", token: "t"}`)
	require.NoError(t, RestrictToOwner(path))
	info, err := os.Stat(path)
	require.NoError(t, err)
	require.Equal(t, os.FileMode(0o600), info.Mode().Perm())
}

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadMissingFileGivesDefaults(t *testing.T) {
	t.Setenv("ROOT_URL", "")
	t.Setenv("UID_DOMAIN", "")

	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadFileAndEnvironment(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	err := os.WriteFile(path, []byte("root_url: https://cal.example.org\nproduct: Example Export\n"), 0o600)
	require.NoError(t, err)

	t.Setenv("ROOT_URL", "")
	t.Setenv("UID_DOMAIN", "events.example.org")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "https://cal.example.org", cfg.RootURL)
	assert.Equal(t, "Example Export", cfg.Product)
	assert.Equal(t, "events.example.org", cfg.UIDDomain)

	t.Setenv("ROOT_URL", "https://override.example.org")
	cfg, err = Load(path)
	require.NoError(t, err)
	assert.Equal(t, "https://override.example.org", cfg.RootURL)

	x := cfg.Exporter()
	assert.Equal(t, cfg.Product, x.Product)
	assert.Equal(t, cfg.RootURL, x.RootURL)
	assert.Equal(t, cfg.UIDDomain, x.UIDDomain)
}

func TestLoadRejectsBadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("root_url: [unterminated\n"), 0o600))

	_, err := Load(path)
	assert.Error(t, err)
}

package config

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadServerConfig_Defaults(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("SKIP_DATA_DIR", "")

	cfg, err := LoadServerConfig(nil)
	require.NoError(t, err)
	require.NotNil(t, cfg)
	require.Equal(t, 3000, cfg.Port)
	require.Equal(t, "skip", cfg.DataDir)
	require.Equal(t, ":3000", cfg.Addr())
}

func TestLoadServerConfig_FromEnv(t *testing.T) {
	t.Setenv("PORT", "8080")
	t.Setenv("SKIP_DATA_DIR", "/srv/skip")

	cfg, err := LoadServerConfig(nil)
	require.NoError(t, err)
	require.Equal(t, 8080, cfg.Port)
	require.Equal(t, "/srv/skip", cfg.DataDir)
}

func TestLoadServerConfig_InvalidPort(t *testing.T) {
	t.Setenv("PORT", "70000")

	cfg, err := LoadServerConfig(nil)
	require.Error(t, err)
	require.Nil(t, cfg)
}

func TestLoadServerConfig_NonNumericPort(t *testing.T) {
	t.Setenv("PORT", "http")

	cfg, err := LoadServerConfig(nil)
	require.Error(t, err)
	require.Nil(t, cfg)
}

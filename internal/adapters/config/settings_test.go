package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/starter/internal/adapters/config"
	"go.trai.ch/starter/internal/core/domain"
)

func clearSettingsEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{config.EnvMetadata, config.EnvStoreDir, config.EnvLogJSON, config.EnvVersionCache, config.EnvTrace} {
		t.Setenv(key, "")
	}
}

func TestLoadSettings_Defaults(t *testing.T) {
	clearSettingsEnv(t)

	s, err := config.LoadSettings(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)
	assert.Equal(t, config.DefaultSettings(), s)
	assert.Equal(t, domain.MetadataFileName, s.MetadataPath)
	assert.Equal(t, filepath.Join(".starter", "store"), s.StoreDir)
}

func TestLoadSettings_FromEnvironment(t *testing.T) {
	clearSettingsEnv(t)
	t.Setenv(config.EnvMetadata, "catalog.toml")
	t.Setenv(config.EnvStoreDir, "/tmp/results")
	t.Setenv(config.EnvLogJSON, "true")
	t.Setenv(config.EnvVersionCache, "32")
	t.Setenv(config.EnvTrace, "1")

	s, err := config.LoadSettings("")
	require.NoError(t, err)
	assert.Equal(t, config.Settings{
		MetadataPath:     "catalog.toml",
		StoreDir:         "/tmp/results",
		JSONLogs:         true,
		VersionCacheSize: 32,
		Trace:            true,
	}, s)
}

func TestLoadSettings_DotEnv(t *testing.T) {
	clearSettingsEnv(t)
	// godotenv only sets variables that are absent from the environment.
	require.NoError(t, os.Unsetenv(config.EnvMetadata))
	require.NoError(t, os.Unsetenv(config.EnvVersionCache))
	t.Cleanup(func() {
		_ = os.Unsetenv(config.EnvMetadata)
		_ = os.Unsetenv(config.EnvVersionCache)
	})

	envFile := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(envFile, []byte("STARTER_METADATA=from-dotenv.yaml\nSTARTER_VERSION_CACHE=8\n"), 0o600))

	s, err := config.LoadSettings(envFile)
	require.NoError(t, err)
	assert.Equal(t, "from-dotenv.yaml", s.MetadataPath)
	assert.Equal(t, 8, s.VersionCacheSize)
}

func TestLoadSettings_Invalid(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
	}{
		{name: "bad boolean", key: config.EnvLogJSON, value: "sometimes"},
		{name: "bad trace flag", key: config.EnvTrace, value: "loud"},
		{name: "bad cache size", key: config.EnvVersionCache, value: "many"},
		{name: "negative cache size", key: config.EnvVersionCache, value: "-1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearSettingsEnv(t)
			t.Setenv(tt.key, tt.value)

			_, err := config.LoadSettings("")
			require.Error(t, err)
			assert.Contains(t, err.Error(), "invalid")
		})
	}
}

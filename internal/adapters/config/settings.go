package config

import (
	"errors"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"go.trai.ch/starter/internal/core/domain"
	"go.trai.ch/zerr"
)

// Environment variables read by LoadSettings.
const (
	EnvMetadata     = "STARTER_METADATA"
	EnvStoreDir     = "STARTER_STORE_DIR"
	EnvLogJSON      = "STARTER_LOG_JSON"
	EnvVersionCache = "STARTER_VERSION_CACHE"
	EnvTrace        = "STARTER_TRACE"

	// DotEnvFile is loaded before the environment is read, when present.
	DotEnvFile = ".env"
)

// Settings holds process-level configuration.
type Settings struct {
	// MetadataPath is the catalog file used when no --metadata flag is given.
	MetadataPath string
	// StoreDir is the result store directory.
	StoreDir string
	// JSONLogs switches the logger to JSON output.
	JSONLogs bool
	// VersionCacheSize bounds the version parser cache. Zero selects the default.
	VersionCacheSize int
	// Trace logs every finished span.
	Trace bool
}

// DefaultSettings returns the settings used when nothing is configured.
func DefaultSettings() Settings {
	return Settings{
		MetadataPath: domain.MetadataFileName,
		StoreDir:     domain.DefaultStorePath(),
	}
}

// LoadSettings loads envFile into the process environment (existing variables win)
// and reads the STARTER_* variables on top of DefaultSettings.
// A missing envFile is not an error.
func LoadSettings(envFile string) (Settings, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Settings{}, zerr.With(zerr.Wrap(err, "failed to load env file"), "path", envFile)
		}
	}

	s := DefaultSettings()

	if v := strings.TrimSpace(os.Getenv(EnvMetadata)); v != "" {
		s.MetadataPath = v
	}
	if v := strings.TrimSpace(os.Getenv(EnvStoreDir)); v != "" {
		s.StoreDir = v
	}
	var err error
	if s.JSONLogs, err = boolEnv(EnvLogJSON); err != nil {
		return Settings{}, err
	}
	if s.Trace, err = boolEnv(EnvTrace); err != nil {
		return Settings{}, err
	}
	if v := strings.TrimSpace(os.Getenv(EnvVersionCache)); v != "" {
		size, err := strconv.Atoi(v)
		if err != nil || size < 0 {
			return Settings{}, zerr.With(zerr.With(zerr.New("invalid cache size"), "variable", EnvVersionCache), "value", v)
		}
		s.VersionCacheSize = size
	}

	return s, nil
}

func boolEnv(key string) (bool, error) {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return false, nil
	}
	enabled, err := strconv.ParseBool(v)
	if err != nil {
		return false, zerr.With(zerr.Wrap(err, "invalid boolean"), "variable", key)
	}
	return enabled, nil
}

package config

import (
	"os"
	"strconv"
	"time"

	"fairdex/internal/errors"
)

// Config represents the complete application configuration
type Config struct {
	Server   ServerConfig
	Sources  SourceConfig
	Fetch    FetchConfig
	Cache    CacheConfig
	Database DatabaseConfig
}

// ServerConfig holds web server settings
type ServerConfig struct {
	Port string
}

// SourceConfig holds the upstream API endpoints and the shared HTTP deadline
type SourceConfig struct {
	WorldBankURL   string
	IMFURL         string
	DataCommonsURL string
	Timeout        time.Duration
}

// FetchConfig holds facade dispatch settings
type FetchConfig struct {
	// StrictDispatch makes an unknown indicator prefix an error instead of
	// an empty-table-plus-notification.
	StrictDispatch bool
	// TranslateLegacyCodes rewrites embedded '-' to '/' in native indicator
	// codes (UN-style two-part codes).
	TranslateLegacyCodes bool
}

// CacheConfig holds fetch memoization settings
type CacheConfig struct {
	TTL        time.Duration
	MaxEntries int
}

// DatabaseConfig holds optional snapshot persistence settings. Empty URL
// disables persistence.
type DatabaseConfig struct {
	URL string
}

// Load reads configuration from environment variables and validates it
func Load() (*Config, error) {
	config := &Config{
		Server: ServerConfig{
			Port: getEnvOrDefault("PORT", "8080"),
		},
		Sources: SourceConfig{
			WorldBankURL:   getEnvOrDefault("WORLDBANK_API_URL", "https://api.worldbank.org/v2"),
			IMFURL:         getEnvOrDefault("IMF_API_URL", "https://www.imf.org/external/datamapper/api/v1"),
			DataCommonsURL: getEnvOrDefault("DATACOMMONS_API_URL", "https://api.datacommons.org"),
			Timeout:        getEnvDurationOrDefault("SOURCE_TIMEOUT", 30*time.Second),
		},
		Fetch: FetchConfig{
			StrictDispatch:       getEnvBoolOrDefault("STRICT_DISPATCH", false),
			TranslateLegacyCodes: getEnvBoolOrDefault("TRANSLATE_LEGACY_CODES", false),
		},
		Cache: CacheConfig{
			TTL:        getEnvDurationOrDefault("FETCH_CACHE_TTL", 15*time.Minute),
			MaxEntries: getEnvIntOrDefault("FETCH_CACHE_MAX_ENTRIES", 256),
		},
		Database: DatabaseConfig{
			URL: getEnvOrDefault("DATABASE_URL", ""),
		},
	}

	if err := validateConfig(config); err != nil {
		return nil, errors.Wrap(err, "configuration validation failed")
	}

	return config, nil
}

func validateConfig(config *Config) error {
	if config.Server.Port == "" {
		return errors.ConfigInvalid("PORT must not be empty")
	}
	if config.Sources.WorldBankURL == "" || config.Sources.IMFURL == "" || config.Sources.DataCommonsURL == "" {
		return errors.ConfigInvalid("source API URLs must not be empty")
	}
	if config.Sources.Timeout <= 0 {
		return errors.ConfigInvalid("SOURCE_TIMEOUT must be positive")
	}
	if config.Cache.TTL < 0 {
		return errors.ConfigInvalid("FETCH_CACHE_TTL must not be negative")
	}
	if config.Cache.MaxEntries <= 0 {
		return errors.ConfigInvalid("FETCH_CACHE_MAX_ENTRIES must be positive")
	}
	return nil
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.Atoi(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}

func getEnvBoolOrDefault(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.ParseBool(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}

func getEnvDurationOrDefault(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if parsed, err := time.ParseDuration(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}

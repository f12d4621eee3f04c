package config

import (
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// defaultRateLimit is the geocoding request budget applied when none is configured.
const defaultRateLimit = 10

// Config holds the configuration settings for the find-store tool.
// It includes the environment, the geocoding API key, the request rate
// limit, and an optional store catalog path.
//
// Fields:
// - Env: The current environment (e.g., local, development, production).
// - APIKey: The API key for the Google Maps geocoding backend.
// - RateLimit: The geocoding request budget, in requests per second.
// - StoresFile: An optional store catalog CSV path replacing the built-in catalog.
type Config struct {
	Env        string // Env is the current environment: local, development, production.
	APIKey     string // The API key for accessing the geocoding backend.
	RateLimit  int    // The request rate limit for the geocoding client.
	StoresFile string // Path to a store catalog CSV; empty means the built-in catalog.
}

// MustLoad loads the configuration from the environment and returns a Config struct.
// A .env file is read first when present, then FINDSTORE_-prefixed environment
// variables are applied over the defaults. It panics if a value cannot be used.
func MustLoad() *Config {
	_ = godotenv.Load()

	vpr := viper.New()
	vpr.SetEnvPrefix("FINDSTORE")
	vpr.AutomaticEnv()

	vpr.SetDefault("env", "production")
	vpr.SetDefault("rate_limit", defaultRateLimit)

	// The Google Maps key is commonly exported under its own name.
	_ = vpr.BindEnv("api_key", "FINDSTORE_API_KEY", "GOOGLE_MAPS_API_KEY")

	rateLimit := vpr.GetInt("rate_limit")
	if rateLimit <= 0 {
		panic("failed to parse rate limit from configuration, must be a positive integer")
	}

	return &Config{
		Env:        vpr.GetString("env"),
		APIKey:     vpr.GetString("api_key"),
		RateLimit:  rateLimit,
		StoresFile: vpr.GetString("stores_file"),
	}
}

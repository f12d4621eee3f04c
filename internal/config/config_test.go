package config_test

import (
	"testing"

	"github.com/nearstore/find-store/internal/config"
	"github.com/stretchr/testify/assert"
)

func TestMustLoad(t *testing.T) {
	t.Setenv("FINDSTORE_ENV", "local")
	t.Setenv("FINDSTORE_API_KEY", "testAPIKey")
	t.Setenv("FINDSTORE_RATE_LIMIT", "25")
	t.Setenv("FINDSTORE_STORES_FILE", "testdata/stores.csv")

	cfg := config.MustLoad()

	assert.Equal(t, "local", cfg.Env)
	assert.Equal(t, "testAPIKey", cfg.APIKey)
	assert.Equal(t, 25, cfg.RateLimit)
	assert.Equal(t, "testdata/stores.csv", cfg.StoresFile)
}

func TestMustLoad_Defaults(t *testing.T) {
	t.Setenv("FINDSTORE_ENV", "")
	t.Setenv("FINDSTORE_API_KEY", "")
	t.Setenv("FINDSTORE_RATE_LIMIT", "")
	t.Setenv("FINDSTORE_STORES_FILE", "")
	t.Setenv("GOOGLE_MAPS_API_KEY", "")

	cfg := config.MustLoad()

	assert.Equal(t, "production", cfg.Env)
	assert.Empty(t, cfg.APIKey)
	assert.Equal(t, 10, cfg.RateLimit)
	assert.Empty(t, cfg.StoresFile)
}

func TestMustLoad_APIKeyAlias(t *testing.T) {
	t.Setenv("FINDSTORE_API_KEY", "")
	t.Setenv("GOOGLE_MAPS_API_KEY", "mapsKey")

	cfg := config.MustLoad()

	assert.Equal(t, "mapsKey", cfg.APIKey)
}

func TestMustLoad_APIKeyPrecedence(t *testing.T) {
	t.Setenv("FINDSTORE_API_KEY", "findstoreKey")
	t.Setenv("GOOGLE_MAPS_API_KEY", "mapsKey")

	cfg := config.MustLoad()

	assert.Equal(t, "findstoreKey", cfg.APIKey)
}

func TestMustLoad_RateLimitError(t *testing.T) {
	t.Setenv("FINDSTORE_RATE_LIMIT", "error_value")

	assert.PanicsWithValue(t, "failed to parse rate limit from configuration, must be a positive integer", func() {
		config.MustLoad()
	})
}

func TestMustLoad_RateLimitNotPositive(t *testing.T) {
	t.Setenv("FINDSTORE_RATE_LIMIT", "-3")

	assert.PanicsWithValue(t, "failed to parse rate limit from configuration, must be a positive integer", func() {
		config.MustLoad()
	})
}

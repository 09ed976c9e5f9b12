package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testConfig = `
[development]
port = 9000
log_level = "trace"
log_to_stdout = true
data_source = "./data/dashboard_data.json"
allowed_origins = ["http://localhost:5173"]

[production]
host = "0.0.0.0"
port = 9100
prometheus_metrics_port = "2113"
logs_path = "/var/log/fitstats/service.log"
data_source = "https://fitstats.example.org/dashboard_data.json"
data_load_timeout_seconds = 5
dashboard_cache_size_mb = 20
dashboard_cache_ttl_seconds = 120
redis_host = "redis"
preferences_rate_limit_per_min = 10
sentry_enabled = true
`

func TestParse_Development(t *testing.T) {
	cfg, err := Parse("dev", testConfig)
	require.NoError(t, err)

	assert.Equal(t, "dev", cfg.Environment)
	assert.Equal(t, 9000, cfg.Port)
	assert.Equal(t, "localhost", cfg.Host)
	assert.Equal(t, "trace", cfg.LogLevel)
	assert.True(t, cfg.LogToStdout)
	assert.Equal(t, "./data/dashboard_data.json", cfg.DataSource)
	assert.Equal(t, []string{"http://localhost:5173"}, cfg.AllowedOrigins)

	// defaults
	assert.Equal(t, "2112", cfg.PrometheusMetricsPort)
	assert.Equal(t, 30, cfg.DataLoadTimeoutSeconds)
	assert.Equal(t, 10, cfg.DashboardCacheSizeMB)
	assert.Equal(t, 3600, cfg.DashboardCacheTTLSeconds)
	assert.Equal(t, "6379", cfg.RedisPort)
	assert.Equal(t, 30, cfg.PreferencesRateLimitPerMin)
}

func TestParse_Production(t *testing.T) {
	cfg, err := Parse("Production", testConfig)
	require.NoError(t, err)

	assert.Equal(t, "production", cfg.Environment)
	assert.Equal(t, "0.0.0.0", cfg.Host)
	assert.Equal(t, 9100, cfg.Port)
	assert.Equal(t, "2113", cfg.PrometheusMetricsPort)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, 5, cfg.DataLoadTimeoutSeconds)
	assert.Equal(t, 20, cfg.DashboardCacheSizeMB)
	assert.Equal(t, 120, cfg.DashboardCacheTTLSeconds)
	assert.Equal(t, "redis", cfg.RedisHost)
	assert.Equal(t, 10, cfg.PreferencesRateLimitPerMin)
	assert.True(t, cfg.SentryEnabled)
}

func TestParse_Errors(t *testing.T) {
	_, err := Parse("staging", testConfig)
	assert.EqualError(t, err, "unknown env: staging")

	_, err = Parse("prod", "[development]\nport = 9000\ndata_source = \"x\"\n")
	assert.EqualError(t, err, "no config section for env: prod")

	_, err = Parse("dev", "[development]\nport = 9000\n")
	assert.ErrorContains(t, err, "data_source not set")

	_, err = Parse("dev", "[development]\nport = 0\ndata_source = \"x\"\n")
	assert.ErrorContains(t, err, "port out of range")

	_, err = Parse("dev", "[development\n")
	assert.ErrorContains(t, err, "decode toml config")
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(testConfig), 0o644))

	cfg, err := Load("development", path)
	require.NoError(t, err)
	assert.Equal(t, 9000, cfg.Port)

	_, err = Load("development", filepath.Join(t.TempDir(), "missing.toml"))
	assert.Error(t, err)
}

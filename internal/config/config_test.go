package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setRequiredEnv populates every required COMMERCE_ variable so that
// New can load a complete config. Individual tests override what they
// need on top.
func setRequiredEnv(t *testing.T) {
	t.Helper()

	vars := map[string]string{
		"COMMERCE_PRIMARY.ENV":                 "local",
		"COMMERCE_SERVER.PORT":                 "8080",
		"COMMERCE_SERVER.READ_TIMEOUT":         "15",
		"COMMERCE_SERVER.WRITE_TIMEOUT":        "15",
		"COMMERCE_SERVER.IDLE_TIMEOUT":         "60",
		"COMMERCE_SERVER.CORS_ALLOWED_ORIGINS": "http://localhost:3000,https://shop.example.com",
		"COMMERCE_DATABASE.HOST":               "localhost",
		"COMMERCE_DATABASE.PORT":               "5432",
		"COMMERCE_DATABASE.USER":               "postgres",
		"COMMERCE_DATABASE.PASSWORD":           "postgres",
		"COMMERCE_DATABASE.NAME":               "commerce",
		"COMMERCE_DATABASE.SSL_MODE":           "disable",
		"COMMERCE_DATABASE.MAX_OPEN_CONNS":     "10",
		"COMMERCE_DATABASE.MIN_IDLE_CONNS":     "2",
		"COMMERCE_DATABASE.CONN_MAX_LIFETIME":  "300",
		"COMMERCE_DATABASE.CONN_MAX_IDLE_TIME": "60",
	}
	for key, value := range vars {
		t.Setenv(key, value)
	}
}

func TestNew(t *testing.T) {
	setRequiredEnv(t)

	cfg, err := New()
	require.NoError(t, err)

	assert.Equal(t, "local", cfg.Primary.Env)
	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, 15, cfg.Server.ReadTimeout)
	assert.Equal(t, "localhost", cfg.Database.Host)
	assert.Equal(t, 5432, cfg.Database.Port)
	assert.Equal(t, "disable", cfg.Database.SSLMode)
	assert.Equal(t,
		[]string{"http://localhost:3000", "https://shop.example.com"},
		cfg.Server.CORSAllowedOrigins,
	)
}

func TestNewAppliesLoggingDefaults(t *testing.T) {
	setRequiredEnv(t)

	cfg, err := New()
	require.NoError(t, err)

	require.NotNil(t, cfg.Logging)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, "json", cfg.Logging.Format)
}

func TestNewReadsLoggingOverrides(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("COMMERCE_LOGGING.LEVEL", "debug")
	t.Setenv("COMMERCE_LOGGING.FORMAT", "console")

	cfg, err := New()
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "console", cfg.Logging.Format)
}

func TestIsProduction(t *testing.T) {
	assert.True(t, (&Config{Primary: Primary{Env: "production"}}).IsProduction())
	assert.False(t, (&Config{Primary: Primary{Env: "local"}}).IsProduction())
}

func TestLoggingConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     LoggingConfig
		wantErr bool
	}{
		{name: "valid json", cfg: LoggingConfig{Level: "info", Format: "json"}},
		{name: "valid console", cfg: LoggingConfig{Level: "debug", Format: "console"}},
		{name: "bad level", cfg: LoggingConfig{Level: "verbose", Format: "json"}, wantErr: true},
		{name: "bad format", cfg: LoggingConfig{Level: "info", Format: "text"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

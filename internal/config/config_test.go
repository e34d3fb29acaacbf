package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mhoo999/mail-maker/internal/config"
	"github.com/mhoo999/mail-maker/internal/domains"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := config.Load(writeConfig(t, "env: local\n"))
	require.NoError(t, err)

	assert.Equal(t, "local", cfg.Env)
	assert.Equal(t, config.DriverSQLite, cfg.Storage.Driver)
	assert.Equal(t, "./mail-maker.db", cfg.Storage.SQLitePath)
	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, []string{"http://localhost:3000"}, cfg.Server.AllowedOrigins)
	assert.False(t, cfg.Auth.Enabled)
	assert.Equal(t, 12*time.Hour, cfg.Auth.TokenTTL)
	assert.Equal(t, domains.DefaultLayout(), cfg.Layout)
}

func TestLoadFile(t *testing.T) {
	cfg, err := config.Load(writeConfig(t, `
env: prod
storage:
  driver: memory
rest:
  port: "9090"
  allowed_origins:
    - https://mail.example.com
layout:
  max_width: 720
  alignment: left
  padding: 16
`))
	require.NoError(t, err)

	assert.Equal(t, config.DriverMemory, cfg.Storage.Driver)
	assert.Equal(t, "9090", cfg.Server.Port)
	assert.Equal(t, []string{"https://mail.example.com"}, cfg.Server.AllowedOrigins)
	assert.Equal(t, domains.LayoutSettings{MaxWidth: 720, Alignment: domains.AlignLeft, Padding: 16}, cfg.Layout)
}

func TestLoadValidation(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "postgres without url", body: "storage:\n  driver: postgres\n"},
		{name: "unknown driver", body: "storage:\n  driver: mongo\n"},
		{name: "auth without secret", body: "auth:\n  enabled: true\n  operator_email: ops@example.com\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := config.Load(writeConfig(t, tt.body))
			assert.Error(t, err)
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := config.Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

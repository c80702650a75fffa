package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/sethvargo/go-envconfig"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := load(context.Background(), envconfig.MapLookuper(map[string]string{}))
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, 24*time.Hour, cfg.TokenTTL)
	assert.Equal(t, "worklog", cfg.Mongo.Database)
	assert.Equal(t, "admin", cfg.Bootstrap.Name)
	assert.Equal(t, int64(10485760), cfg.Documents.MaxBytes)
	assert.Equal(t, "dev-secret", cfg.JWTSecret)
}

func TestLoad_Overrides(t *testing.T) {
	cfg, err := load(context.Background(), envconfig.MapLookuper(map[string]string{
		"ENV":              "production",
		"JWT_SECRET":       "s3cret",
		"TOKEN_TTL":        "2h",
		"EXPORT_FONT_PATH": "/fonts/DejaVuSans.ttf",
		"REDIS_DB":         "3",
	}))
	require.NoError(t, err)

	assert.False(t, cfg.IsDevelopment())
	assert.Equal(t, "s3cret", cfg.JWTSecret)
	assert.Equal(t, 2*time.Hour, cfg.TokenTTL)
	assert.Equal(t, "/fonts/DejaVuSans.ttf", cfg.Export.FontPath)
	assert.Equal(t, 3, cfg.Redis.DB)
}

func TestLoad_RequiresSecretInProduction(t *testing.T) {
	_, err := load(context.Background(), envconfig.MapLookuper(map[string]string{"ENV": "production"}))
	assert.Error(t, err)
}

func TestLoad_EnvFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("EXPORT_TITLE=Weekly hours\n"), 0o600))
	t.Setenv("EXPORT_TITLE", "")
	require.NoError(t, os.Unsetenv("EXPORT_TITLE"))

	cfg, err := Load(context.Background(), path)
	require.NoError(t, err)
	assert.Equal(t, "Weekly hours", cfg.Export.Title)

	_, err = Load(context.Background(), filepath.Join(t.TempDir(), "missing.env"))
	assert.NoError(t, err)
}

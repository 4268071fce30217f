package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Chdir(t.TempDir())

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "cultivos.db", cfg.DBPath)
	assert.Equal(t, 12*time.Hour, cfg.SessionTTL)
	assert.Equal(t, "admin", cfg.AdminUsername)
	assert.Len(t, cfg.SessionSecret, 64, "a random secret is generated when none is configured")
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("DB_PATH", "/tmp/other.db")
	t.Setenv("SESSION_TTL", "30m")
	t.Setenv("SESSION_SECRET", "s3cret")
	t.Setenv("CROP_RULES_CSV", "rules.csv")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "/tmp/other.db", cfg.DBPath)
	assert.Equal(t, 30*time.Minute, cfg.SessionTTL)
	assert.Equal(t, "s3cret", cfg.SessionSecret)
	assert.Equal(t, "rules.csv", cfg.CropRulesCSV)
}

func TestLoadYAMLAndDotEnv(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	require.NoError(t, os.WriteFile("cultivos.yaml", []byte("PORT: \"9090\"\nLOG_LEVEL: debug\n"), 0o644))
	require.NoError(t, os.WriteFile(".env", []byte("ADMIN_USERNAME=root\n"), 0o644))
	t.Cleanup(func() { os.Unsetenv("ADMIN_USERNAME") })

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "root", cfg.AdminUsername)
}

func TestLoadRejectsBadTTL(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("SESSION_TTL", "-1h")

	_, err := Load()
	assert.ErrorContains(t, err, "SESSION_TTL")
}

func TestRedacted(t *testing.T) {
	cfg := AppConfig{SessionSecret: "x", AdminPassword: "y", Port: "1"}
	r := cfg.Redacted()
	assert.Equal(t, "***", r.SessionSecret)
	assert.Equal(t, "***", r.AdminPassword)
	assert.Equal(t, "1", r.Port)
	assert.Equal(t, "x", cfg.SessionSecret)
}

package config

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type AppConfig struct {
	Port          string
	Timezone      string
	DBPath        string
	LogLevel      string
	LogFormat     string
	SessionSecret string
	SessionTTL    time.Duration
	CropRulesCSV  string
	CropRulesXLSX string
	AdminUsername string
	AdminPassword string
}

// Load reads .env (if present), then cultivos.yaml (if present), then the
// process environment. Later sources win.
func Load() (AppConfig, error) {
	// .env is optional
	_ = godotenv.Load()

	v := viper.New()
	v.SetConfigName("cultivos")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AutomaticEnv()

	defaults := map[string]any{
		"PORT":            "8080",
		"TZ":              "America/Bogota",
		"DB_PATH":         "cultivos.db",
		"LOG_LEVEL":       "info",
		"LOG_FORMAT":      "json",
		"SESSION_SECRET":  "",
		"SESSION_TTL":     "12h",
		"CROP_RULES_CSV":  "",
		"CROP_RULES_XLSX": "",
		"ADMIN_USERNAME":  "admin",
		"ADMIN_PASSWORD":  "admin123",
	}
	for k, d := range defaults {
		v.SetDefault(k, d)
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return AppConfig{}, fmt.Errorf("read cultivos.yaml: %w", err)
		}
	}

	cfg := AppConfig{
		Port:          v.GetString("PORT"),
		Timezone:      v.GetString("TZ"),
		DBPath:        v.GetString("DB_PATH"),
		LogLevel:      v.GetString("LOG_LEVEL"),
		LogFormat:     v.GetString("LOG_FORMAT"),
		SessionSecret: v.GetString("SESSION_SECRET"),
		SessionTTL:    v.GetDuration("SESSION_TTL"),
		CropRulesCSV:  v.GetString("CROP_RULES_CSV"),
		CropRulesXLSX: v.GetString("CROP_RULES_XLSX"),
		AdminUsername: v.GetString("ADMIN_USERNAME"),
		AdminPassword: v.GetString("ADMIN_PASSWORD"),
	}
	if cfg.SessionTTL <= 0 {
		return AppConfig{}, fmt.Errorf("SESSION_TTL must be positive, got %q", v.GetString("SESSION_TTL"))
	}
	if cfg.SessionSecret == "" {
		// sessions do not survive a restart without a configured secret
		b := make([]byte, 32)
		if _, err := rand.Read(b); err != nil {
			return AppConfig{}, fmt.Errorf("generate session secret: %w", err)
		}
		cfg.SessionSecret = hex.EncodeToString(b)
	}
	return cfg, nil
}

// Redacted is safe to log.
func (c AppConfig) Redacted() AppConfig {
	c.SessionSecret = "***"
	c.AdminPassword = "***"
	return c
}

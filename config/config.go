package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/Zachkp/wildsme/background"
	"github.com/Zachkp/wildsme/contact"
)

// Config is the server configuration, read from the environment (a .env
// file is loaded first when present).
type Config struct {
	Port           string
	GinMode        string
	DatabasePath   string
	ContentFile    string
	AdminUsername  string
	AdminPassword  string
	AllowedOrigins []string
	SubmitDelay    time.Duration
	TrackVisitors  bool
	Background     background.Config
}

// Default returns the configuration used when nothing is set.
func Default() Config {
	return Config{
		Port:           "8080",
		GinMode:        "debug",
		DatabasePath:   "wildsme.db",
		AdminUsername:  "admin",
		AdminPassword:  "admin123",
		AllowedOrigins: []string{"http://localhost:8080"},
		SubmitDelay:    contact.DefaultDelay,
		TrackVisitors:  true,
		Background:     background.DefaultConfig(),
	}
}

// Load reads the configuration from the environment over the defaults.
func Load() (Config, error) {
	cfg := Default()
	cfg.Port = getEnvOrDefault("PORT", cfg.Port)
	cfg.GinMode = getEnvOrDefault("GIN_MODE", cfg.GinMode)
	cfg.DatabasePath = getEnvOrDefault("DATABASE_PATH", cfg.DatabasePath)
	cfg.ContentFile = getEnvOrDefault("CONTENT_FILE", cfg.ContentFile)
	cfg.AdminUsername = getEnvOrDefault("ADMIN_USERNAME", cfg.AdminUsername)
	cfg.AdminPassword = getEnvOrDefault("ADMIN_PASSWORD", cfg.AdminPassword)

	if origins := splitList(os.Getenv("ALLOWED_ORIGINS")); len(origins) > 0 {
		cfg.AllowedOrigins = origins
	}
	if v := os.Getenv("SUBMIT_DELAY"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil || d < 0 {
			return Config{}, fmt.Errorf("invalid SUBMIT_DELAY %q", v)
		}
		cfg.SubmitDelay = d
	}
	if v := os.Getenv("TRACK_VISITORS"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return Config{}, fmt.Errorf("invalid TRACK_VISITORS %q: %w", v, err)
		}
		cfg.TrackVisitors = b
	}
	if v := os.Getenv("BACKGROUND_SEED"); v != "" {
		seed, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			return Config{}, fmt.Errorf("invalid BACKGROUND_SEED %q: %w", v, err)
		}
		cfg.Background.Seed = seed
	}
	return cfg, nil
}

// Addr is the listen address.
func (c Config) Addr() string {
	return ":" + c.Port
}

// UsingDefaultAdmin reports whether the built-in admin credentials are in
// effect.
func (c Config) UsingDefaultAdmin() bool {
	d := Default()
	return c.AdminUsername == d.AdminUsername || c.AdminPassword == d.AdminPassword
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

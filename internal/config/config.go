// Package config resolves the storefront configuration once at startup.
package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds every setting the storefront reads from the environment.
// It is built once by Load and passed explicitly to the components that need it.
type Config struct {
	Port        string
	Environment string

	// --- Storefront ---
	StoreName     string
	Theme         string
	DefaultLocale string
	MinStock      int

	// --- Commerce API ---
	CommerceAPIURL string
	CommerceAPIKey string
	APITimeout     time.Duration

	// --- Storage ---
	DBDSN    string
	RedisURL string
	CacheTTL time.Duration

	// --- Sessions & CORS ---
	SessionSecret  string
	AllowedOrigins []string

	// --- Assistant (optional) ---
	GeminiAPIKey string
	GeminiModel  string

	// Interval of the background settings refresh.
	SettingsRefresh time.Duration
}

// IsProduction reports whether the storefront runs in production.
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

// LoadEnv reads a .env file if present. Missing files are not an error.
func LoadEnv() {
	if err := godotenv.Load(); err != nil {
		log.Println("WARNING: Could not find or load .env file. Relying on system environment variables.")
	}
}

// Load builds the Config from the environment.
func Load() (*Config, error) {
	cfg := &Config{
		Port:           getEnv("PORT", "8080"),
		Environment:    getEnv("ENVIRONMENT", "development"),
		StoreName:      getEnv("STORE_NAME", "TapToSell"),
		Theme:          strings.ToLower(getEnv("STORE_THEME", "classic")),
		DefaultLocale:  strings.ToLower(getEnv("DEFAULT_LOCALE", "en")),
		CommerceAPIURL: strings.TrimRight(os.Getenv("COMMERCE_API_URL"), "/"),
		CommerceAPIKey: os.Getenv("COMMERCE_API_KEY"),
		DBDSN:          os.Getenv("DB_DSN_PRIMARY"),
		RedisURL:       os.Getenv("REDIS_URL"),
		SessionSecret:  os.Getenv("SESSION_SECRET"),
		AllowedOrigins: splitList(getEnv("ALLOWED_ORIGINS", "http://localhost:5173")),
		GeminiAPIKey:   os.Getenv("GEMINI_API_KEY"),
		GeminiModel:    getEnv("GEMINI_MODEL", "gemini-1.5-flash"),
	}

	var err error
	if cfg.MinStock, err = intEnv("MIN_STOCK", 0); err != nil {
		return nil, err
	}
	if cfg.APITimeout, err = durationEnv("COMMERCE_API_TIMEOUT", 10*time.Second); err != nil {
		return nil, err
	}
	if cfg.CacheTTL, err = durationEnv("CACHE_TTL", 5*time.Minute); err != nil {
		return nil, err
	}
	if cfg.SettingsRefresh, err = durationEnv("SETTINGS_REFRESH", time.Minute); err != nil {
		return nil, err
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	if c.CommerceAPIURL == "" {
		return fmt.Errorf("COMMERCE_API_URL is not set")
	}
	if c.SettingsRefresh <= 0 {
		return fmt.Errorf("SETTINGS_REFRESH must be positive, got %s", c.SettingsRefresh)
	}
	if c.MinStock < 0 {
		return fmt.Errorf("MIN_STOCK must be >= 0, got %d", c.MinStock)
	}
	if c.SessionSecret == "" {
		if c.IsProduction() {
			return fmt.Errorf("SESSION_SECRET is not set")
		}
		c.SessionSecret = "dev-session-secret"
		log.Println("WARNING: SESSION_SECRET not set, using a development secret.")
	}
	return nil
}

func getEnv(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}

func intEnv(key string, def int) (int, error) {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return def, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%s: invalid integer %q", key, raw)
	}
	return n, nil
}

func durationEnv(key string, def time.Duration) (time.Duration, error) {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return def, nil
	}
	d, err := time.ParseDuration(raw)
	if err != nil {
		return 0, fmt.Errorf("%s: invalid duration %q", key, raw)
	}
	return d, nil
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}

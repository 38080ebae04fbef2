package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("COMMERCE_API_URL", "https://api.example.com/")
	t.Setenv("STORE_THEME", "")
	t.Setenv("MIN_STOCK", "")
	t.Setenv("ENVIRONMENT", "")
	t.Setenv("SESSION_SECRET", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.CommerceAPIURL != "https://api.example.com" {
		t.Errorf("trailing slash not trimmed: %q", cfg.CommerceAPIURL)
	}
	if cfg.Theme != "classic" || cfg.DefaultLocale != "en" || cfg.MinStock != 0 {
		t.Errorf("unexpected defaults: %+v", cfg)
	}
	if cfg.CacheTTL != 5*time.Minute {
		t.Errorf("CacheTTL = %s", cfg.CacheTTL)
	}
	if cfg.SessionSecret == "" {
		t.Error("development secret should be filled in")
	}
	if cfg.StoreName == "" || cfg.SettingsRefresh != time.Minute {
		t.Errorf("unexpected defaults: store %q, refresh %s", cfg.StoreName, cfg.SettingsRefresh)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("COMMERCE_API_URL", "https://api.example.com")
	t.Setenv("STORE_THEME", "Modern")
	t.Setenv("DEFAULT_LOCALE", "AR")
	t.Setenv("MIN_STOCK", "2")
	t.Setenv("ALLOWED_ORIGINS", "https://a.example, https://b.example ,")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.Theme != "modern" || cfg.DefaultLocale != "ar" || cfg.MinStock != 2 {
		t.Errorf("overrides not applied: %+v", cfg)
	}
	if len(cfg.AllowedOrigins) != 2 || cfg.AllowedOrigins[1] != "https://b.example" {
		t.Errorf("AllowedOrigins = %v", cfg.AllowedOrigins)
	}
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
	}{
		{"missing api url", map[string]string{"COMMERCE_API_URL": ""}},
		{"bad min stock", map[string]string{"COMMERCE_API_URL": "http://x", "MIN_STOCK": "many"}},
		{"negative min stock", map[string]string{"COMMERCE_API_URL": "http://x", "MIN_STOCK": "-1"}},
		{"bad timeout", map[string]string{"COMMERCE_API_URL": "http://x", "COMMERCE_API_TIMEOUT": "soon"}},
		{"zero refresh", map[string]string{"COMMERCE_API_URL": "http://x", "SETTINGS_REFRESH": "0s"}},
		{"production without secret", map[string]string{"COMMERCE_API_URL": "http://x", "ENVIRONMENT": "production", "SESSION_SECRET": ""}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			if _, err := Load(); err == nil {
				t.Fatal("expected an error")
			}
		})
	}
}

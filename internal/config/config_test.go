package config

import (
	"testing"
	"time"
)

func TestLoadRequiresJWTSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "")
	if _, err := Load(); err == nil {
		t.Fatal("Load succeeded without JWT_SECRET")
	}
}

func TestLoadDefaults(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.ServerPort != 8080 {
		t.Errorf("ServerPort = %d, want 8080", cfg.ServerPort)
	}
	if cfg.DBName != "sprout_track" {
		t.Errorf("DBName = %q, want sprout_track", cfg.DBName)
	}
	if cfg.AccessTokenTTL != 15*time.Minute {
		t.Errorf("AccessTokenTTL = %v, want 15m", cfg.AccessTokenTTL)
	}
	if cfg.SetupInviteTTL != 7*24*time.Hour {
		t.Errorf("SetupInviteTTL = %v, want 168h", cfg.SetupInviteTTL)
	}
	if cfg.DefaultPIN != "111222" {
		t.Errorf("DefaultPIN = %q, want 111222", cfg.DefaultPIN)
	}
	if !cfg.RateLimit.Enabled {
		t.Error("rate limiting disabled by default")
	}
	if cfg.Validation.MaxRequestBodySize != 1<<20 {
		t.Errorf("MaxRequestBodySize = %d, want 1MB", cfg.Validation.MaxRequestBodySize)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("ACCESS_TOKEN_TTL", "1h")
	t.Setenv("RATE_LIMIT_ENABLED", "false")
	t.Setenv("APP_BASE_URL", "https://track.example.com")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.ServerPort != 9090 {
		t.Errorf("ServerPort = %d, want 9090", cfg.ServerPort)
	}
	if cfg.AccessTokenTTL != time.Hour {
		t.Errorf("AccessTokenTTL = %v, want 1h", cfg.AccessTokenTTL)
	}
	if cfg.RateLimit.Enabled {
		t.Error("rate limiting not disabled")
	}
	if cfg.AppBaseURL != "https://track.example.com" {
		t.Errorf("AppBaseURL = %q", cfg.AppBaseURL)
	}
}

func TestLoadIgnoresMalformedValues(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	t.Setenv("SERVER_PORT", "not-a-number")
	t.Setenv("ACCESS_TOKEN_TTL", "soon")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.ServerPort != 8080 {
		t.Errorf("ServerPort = %d, want default 8080", cfg.ServerPort)
	}
	if cfg.AccessTokenTTL != 15*time.Minute {
		t.Errorf("AccessTokenTTL = %v, want default 15m", cfg.AccessTokenTTL)
	}
}

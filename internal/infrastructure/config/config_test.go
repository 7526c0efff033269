package config

import (
	"context"
	"testing"
	"time"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	cfg, err := Load(context.Background())
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	if cfg.Port != "8080" {
		t.Fatalf("expected default port 8080, got %q", cfg.Port)
	}
	if cfg.TokenTTL != 24*time.Hour {
		t.Fatalf("expected default TTL 24h, got %v", cfg.TokenTTL)
	}
	if cfg.StoreBackend != "memory" {
		t.Fatalf("expected default backend memory, got %q", cfg.StoreBackend)
	}
	if cfg.Users.AdminUsername != "admin" || cfg.Users.UserUsername != "user" {
		t.Fatalf("unexpected seeded usernames: %+v", cfg.Users)
	}
	if cfg.Redis.Addr != "" {
		t.Fatalf("redis must be disabled by default, got %q", cfg.Redis.Addr)
	}
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	t.Setenv("PORT", "9999")
	t.Setenv("TOKEN_TTL", "45m")
	t.Setenv("STORE_BACKEND", "mongo")
	t.Setenv("ADMIN_PASSWORD", "better-secret")

	cfg, err := Load(context.Background())
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	if cfg.Port != "9999" {
		t.Fatalf("expected port 9999, got %q", cfg.Port)
	}
	if cfg.TokenTTL != 45*time.Minute {
		t.Fatalf("expected TTL 45m, got %v", cfg.TokenTTL)
	}
	if cfg.StoreBackend != "mongo" {
		t.Fatalf("expected backend mongo, got %q", cfg.StoreBackend)
	}
	if cfg.Users.AdminPassword != "better-secret" {
		t.Fatalf("expected overridden admin password")
	}
}

func TestLoad_MissingSecret(t *testing.T) {
	if _, err := Load(context.Background()); err == nil {
		t.Fatalf("expected error when JWT_SECRET is unset")
	}
}

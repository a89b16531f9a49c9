package config

import (
	"testing"
	"time"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Server.Port != 8080 {
		t.Fatalf("expected port 8080, got %d", cfg.Server.Port)
	}
	if cfg.Wizard.Store != WizardStoreRedis || cfg.Wizard.TTL != 2*time.Hour {
		t.Fatalf("unexpected wizard config: %+v", cfg.Wizard)
	}
	if cfg.DynamoDB.BookingsTable != "bookings" {
		t.Fatalf("unexpected bookings table %q", cfg.DynamoDB.BookingsTable)
	}
	if cfg.Payments.Currency != "eur" {
		t.Fatalf("unexpected currency %q", cfg.Payments.Currency)
	}
}

func TestLoad_FromEnv(t *testing.T) {
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("WIZARD_STORE", " Memory ")
	t.Setenv("WIZARD_TTL", "30m")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://monhajj.fr, https://www.monhajj.fr,")
	t.Setenv("PAYMENT_GATEWAY_MOCK", "true")
	t.Setenv("TRUSTED_PROXIES", "10.0.0.0/8, 192.0.2.1")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Server.Port != 9090 {
		t.Fatalf("expected port 9090, got %d", cfg.Server.Port)
	}
	if cfg.Wizard.Store != WizardStoreMemory || cfg.Wizard.TTL != 30*time.Minute {
		t.Fatalf("unexpected wizard config: %+v", cfg.Wizard)
	}
	if len(cfg.Server.AllowedOrigins) != 2 || cfg.Server.AllowedOrigins[1] != "https://www.monhajj.fr" {
		t.Fatalf("unexpected origins: %v", cfg.Server.AllowedOrigins)
	}
	if !cfg.Payments.Mock {
		t.Fatalf("expected mock payments")
	}
	if len(cfg.Server.TrustedProxies) != 2 || cfg.Server.TrustedProxies[0] != "10.0.0.0/8" {
		t.Fatalf("unexpected trusted proxies: %v", cfg.Server.TrustedProxies)
	}
}

func TestLoad_Errors(t *testing.T) {
	t.Run("bad duration", func(t *testing.T) {
		t.Setenv("WIZARD_TTL", "soon")
		if _, err := Load(); err == nil {
			t.Fatalf("expected error")
		}
	})

	t.Run("bad trusted proxy", func(t *testing.T) {
		t.Setenv("TRUSTED_PROXIES", "proxy.local")
		if _, err := Load(); err == nil {
			t.Fatalf("expected error")
		}
	})

	t.Run("unknown store", func(t *testing.T) {
		t.Setenv("WIZARD_STORE", "postgres")
		if _, err := Load(); err == nil {
			t.Fatalf("expected error")
		}
	})
}

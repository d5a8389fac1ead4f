package config

import (
	"testing"
	"time"
)

func TestLoad_Defaults(t *testing.T) {
	cfg := Load()

	if cfg.Port != "8080" {
		t.Errorf("expected default port 8080, got %q", cfg.Port)
	}
	if cfg.MongoURI != "mongodb://localhost:27017" {
		t.Errorf("unexpected default mongo uri: %q", cfg.MongoURI)
	}
	if cfg.RequestTimeout != 5*time.Second {
		t.Errorf("unexpected default timeout: %v", cfg.RequestTimeout)
	}
	if cfg.ConnectRetries != 5 {
		t.Errorf("unexpected default retries: %d", cfg.ConnectRetries)
	}
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("PORT_SERVER", "9090")
	t.Setenv("MONGO_LOCAL_URL", "mongodb://db:27017")
	t.Setenv("REQUEST_TIMEOUT", "2s")
	t.Setenv("MONGO_CONNECT_RETRIES", "3")

	cfg := Load()

	if cfg.Port != "9090" {
		t.Errorf("expected port 9090, got %q", cfg.Port)
	}
	if cfg.MongoURI != "mongodb://db:27017" {
		t.Errorf("unexpected mongo uri: %q", cfg.MongoURI)
	}
	if cfg.RequestTimeout != 2*time.Second {
		t.Errorf("unexpected timeout: %v", cfg.RequestTimeout)
	}
	if cfg.ConnectRetries != 3 {
		t.Errorf("unexpected retries: %d", cfg.ConnectRetries)
	}
}

func TestLoad_InvalidValuesFallBack(t *testing.T) {
	t.Setenv("REQUEST_TIMEOUT", "soon")
	t.Setenv("MONGO_CONNECT_RETRIES", "many")

	cfg := Load()

	if cfg.RequestTimeout != 5*time.Second {
		t.Errorf("invalid duration should fall back to default, got %v", cfg.RequestTimeout)
	}
	if cfg.ConnectRetries != 5 {
		t.Errorf("invalid int should fall back to default, got %d", cfg.ConnectRetries)
	}
}

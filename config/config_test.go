package config

import (
	"testing"
	"time"
)

func TestLoadConfigDefaults(t *testing.T) {
	t.Setenv("LOG_LEVEL", "")
	t.Setenv("HTTP_ADDR", "")
	t.Setenv("API_TIMEOUT", "not-a-number")
	t.Setenv("SHIPMENT_SYNC_SCHEDULE", "")
	t.Setenv("API_URL", "https://fleet.example.com")

	cfg := LoadConfig()
	if cfg.LogLevel != "info" {
		t.Errorf("LogLevel: got %q, want info", cfg.LogLevel)
	}
	if cfg.HTTPAddr != ":8080" {
		t.Errorf("HTTPAddr: got %q, want :8080", cfg.HTTPAddr)
	}
	if cfg.ShipmentSyncSchedule != "*/30 * * * *" {
		t.Errorf("ShipmentSyncSchedule: got %q", cfg.ShipmentSyncSchedule)
	}
	if cfg.Api.Timeout != 20*time.Second {
		t.Errorf("Api.Timeout: got %v, want 20s", cfg.Api.Timeout)
	}
	if cfg.Api.BaseUri != "https://fleet.example.com" {
		t.Errorf("Api.BaseUri: got %q", cfg.Api.BaseUri)
	}
}

func TestLoadConfigOverrides(t *testing.T) {
	t.Setenv("API_TIMEOUT", "5")
	t.Setenv("HTTP_ADDR", "127.0.0.1:9000")

	cfg := LoadConfig()
	if cfg.Api.Timeout != 5*time.Second {
		t.Errorf("Api.Timeout: got %v, want 5s", cfg.Api.Timeout)
	}
	if cfg.HTTPAddr != "127.0.0.1:9000" {
		t.Errorf("HTTPAddr: got %q", cfg.HTTPAddr)
	}
}

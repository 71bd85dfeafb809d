package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Watch.SampleInterval != 5*time.Second {
		t.Errorf("SampleInterval: expected 5s, got %s", cfg.Watch.SampleInterval)
	}
	if cfg.Watch.SummaryInterval != 10*time.Second {
		t.Errorf("SummaryInterval: expected 10s, got %s", cfg.Watch.SummaryInterval)
	}
	if cfg.Inspector.URL != "http://127.0.0.1:8750" {
		t.Errorf("Inspector.URL default wrong: %s", cfg.Inspector.URL)
	}
	if cfg.Otel.Enabled {
		t.Error("Otel should be disabled by default")
	}
	if cfg.Log.Level != "info" {
		t.Errorf("Log.Level: expected info, got %s", cfg.Log.Level)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("DESKFLOW_SUMMARY_INTERVAL", "30s")
	t.Setenv("DESKFLOW_OTEL_ENABLED", "true")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Watch.SummaryInterval != 30*time.Second {
		t.Errorf("SummaryInterval override: expected 30s, got %s", cfg.Watch.SummaryInterval)
	}
	if !cfg.Otel.Enabled {
		t.Error("Otel override not applied")
	}
}

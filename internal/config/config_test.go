package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.Dump.Limit != 16 {
		t.Errorf("expected dump limit 16, got %d", cfg.Dump.Limit)
	}
	if !cfg.Dump.ShowBounds {
		t.Error("expected show_bounds to be true by default")
	}
	if cfg.Logging.Level != "info" {
		t.Errorf("expected log level 'info', got %s", cfg.Logging.Level)
	}
	if cfg.Logging.LogFile != "" {
		t.Errorf("expected empty log file, got %s", cfg.Logging.LogFile)
	}
}

func TestLoadFromFile(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "meshdump.yaml")

	yamlContent := `
dump:
  limit: 100
  show_bounds: false
logging:
  level: debug
`
	if err := os.WriteFile(configPath, []byte(yamlContent), 0644); err != nil {
		t.Fatalf("writing config: %v", err)
	}

	cfg := Default()
	if err := loadFromFile(cfg, configPath); err != nil {
		t.Fatalf("loadFromFile failed: %v", err)
	}
	if cfg.Dump.Limit != 100 {
		t.Errorf("expected limit 100, got %d", cfg.Dump.Limit)
	}
	if cfg.Dump.ShowBounds {
		t.Error("expected show_bounds false")
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("expected level 'debug', got %s", cfg.Logging.Level)
	}
}

func TestSaveRoundTrip(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.yaml")

	orig := Default()
	orig.Dump.Limit = 7
	orig.Logging.Level = "warn"
	if err := orig.SaveTo(configPath); err != nil {
		t.Fatalf("SaveTo failed: %v", err)
	}

	cfg := Default()
	if err := loadFromFile(cfg, configPath); err != nil {
		t.Fatalf("loadFromFile on saved config failed: %v", err)
	}
	if cfg.Dump.Limit != 7 {
		t.Errorf("round-tripped limit = %d, want 7", cfg.Dump.Limit)
	}
	if cfg.Logging.Level != "warn" {
		t.Errorf("round-tripped level = %s, want warn", cfg.Logging.Level)
	}
}

func TestLoadMissingFile(t *testing.T) {
	cfg := Default()
	if err := loadFromFile(cfg, filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("expected an error for a missing config file")
	}
}

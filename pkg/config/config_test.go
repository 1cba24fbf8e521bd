package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoad_NoConfigFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	if err != nil {
		t.Fatalf("Load with missing file failed: %v", err)
	}

	if cfg.Logging.Level != DefaultLogLevel {
		t.Errorf("Expected default log level %q, got %q", DefaultLogLevel, cfg.Logging.Level)
	}
	if cfg.Fridge.Workers != DefaultWorkers {
		t.Errorf("Expected default workers %d, got %d", DefaultWorkers, cfg.Fridge.Workers)
	}
	if cfg.ShutdownTimeout != DefaultShutdownTimeout {
		t.Errorf("Expected default shutdown timeout %v, got %v", DefaultShutdownTimeout, cfg.ShutdownTimeout)
	}
}

func TestLoad_ConfigFile(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "upcall.yaml")

	configContent := `
logging:
  level: "DEBUG"
  format: "json"

fridge:
  workers: 16
  queue_size: 4096

shutdown_timeout: 45s
`
	if err := os.WriteFile(configPath, []byte(configContent), 0644); err != nil {
		t.Fatalf("Failed to write config file: %v", err)
	}

	cfg, err := Load(configPath)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Logging.Level != "DEBUG" {
		t.Errorf("Expected log level DEBUG, got %q", cfg.Logging.Level)
	}
	if cfg.Logging.Format != "json" {
		t.Errorf("Expected log format json, got %q", cfg.Logging.Format)
	}
	if cfg.Fridge.Workers != 16 {
		t.Errorf("Expected 16 workers, got %d", cfg.Fridge.Workers)
	}
	if cfg.Fridge.QueueSize != 4096 {
		t.Errorf("Expected queue size 4096, got %d", cfg.Fridge.QueueSize)
	}
	if cfg.ShutdownTimeout != 45*time.Second {
		t.Errorf("Expected shutdown timeout 45s, got %v", cfg.ShutdownTimeout)
	}
	// Output was omitted in the file, so the default applies
	if cfg.Logging.Output != DefaultLogOutput {
		t.Errorf("Expected default log output, got %q", cfg.Logging.Output)
	}
}

func TestLoad_InvalidYAML(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "upcall.yaml")

	if err := os.WriteFile(configPath, []byte("logging: [not: valid"), 0644); err != nil {
		t.Fatalf("Failed to write config file: %v", err)
	}

	if _, err := Load(configPath); err == nil {
		t.Error("Expected error for malformed YAML, got nil")
	}
}

func TestValidate_ValidConfig(t *testing.T) {
	cfg := GetDefaultConfig()
	if err := Validate(cfg); err != nil {
		t.Errorf("Default config failed validation: %v", err)
	}
}

func TestValidate_InvalidLogLevel(t *testing.T) {
	cfg := GetDefaultConfig()
	cfg.Logging.Level = "VERBOSE"

	if err := Validate(cfg); err == nil {
		t.Error("Expected validation error for invalid log level, got nil")
	}
}

func TestValidate_InvalidLogFormat(t *testing.T) {
	cfg := GetDefaultConfig()
	cfg.Logging.Format = "xml"

	if err := Validate(cfg); err == nil {
		t.Error("Expected validation error for invalid log format, got nil")
	}
}

func TestValidate_ZeroWorkers(t *testing.T) {
	cfg := GetDefaultConfig()
	cfg.Fridge.Workers = 0

	if err := Validate(cfg); err == nil {
		t.Error("Expected validation error for zero workers, got nil")
	}
}

func TestValidate_NegativeShutdownTimeout(t *testing.T) {
	cfg := GetDefaultConfig()
	cfg.ShutdownTimeout = -time.Second

	if err := Validate(cfg); err == nil {
		t.Error("Expected validation error for negative shutdown timeout, got nil")
	}
}

func TestApplyDefaults_PartialConfig(t *testing.T) {
	cfg := &Config{
		Fridge: FridgeConfig{Workers: 8},
	}
	ApplyDefaults(cfg)

	if cfg.Fridge.Workers != 8 {
		t.Errorf("ApplyDefaults clobbered explicit workers: got %d", cfg.Fridge.Workers)
	}
	if cfg.Fridge.QueueSize != DefaultQueueSize {
		t.Errorf("Expected default queue size, got %d", cfg.Fridge.QueueSize)
	}
	if cfg.Logging.Level != DefaultLogLevel {
		t.Errorf("Expected default log level, got %q", cfg.Logging.Level)
	}
}

func TestPoolConfig_Conversion(t *testing.T) {
	fc := FridgeConfig{Workers: 12, QueueSize: 256}
	pc := fc.PoolConfig()

	if pc.Workers != 12 || pc.QueueSize != 256 {
		t.Errorf("PoolConfig conversion mismatch: %+v", pc)
	}
}

func TestSaveConfig_RoundTrip(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "sub", "upcall.yaml")

	cfg := GetDefaultConfig()
	cfg.Fridge.Workers = 7

	if err := SaveConfig(cfg, configPath); err != nil {
		t.Fatalf("SaveConfig failed: %v", err)
	}

	loaded, err := Load(configPath)
	if err != nil {
		t.Fatalf("Load of saved config failed: %v", err)
	}

	if loaded.Fridge.Workers != 7 {
		t.Errorf("Expected 7 workers after round trip, got %d", loaded.Fridge.Workers)
	}
}

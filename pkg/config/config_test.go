package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadFromEnv_Defaults(t *testing.T) {
	t.Setenv("LSBATTACK_CONFIG", "")
	t.Setenv("LSBATTACK_OUTPUT_DIR", "")
	t.Setenv("LSBATTACK_THRESHOLD", "")
	t.Setenv("LSBATTACK_WORKERS", "")
	t.Setenv("LOG_LEVEL", "")

	cfg, err := LoadFromEnv()
	if err != nil {
		t.Fatalf("LoadFromEnv: %v", err)
	}
	if cfg.OutputDir != "." || cfg.Threshold != DefaultThreshold || cfg.Workers <= 0 || cfg.LogLevel != "info" {
		t.Fatalf("unexpected defaults: %+v", cfg)
	}
}

func TestLoadFromEnv_Overrides(t *testing.T) {
	t.Setenv("LSBATTACK_CONFIG", "")
	t.Setenv("LSBATTACK_OUTPUT_DIR", "/tmp/planes")
	t.Setenv("LSBATTACK_THRESHOLD", "0.05")
	t.Setenv("LSBATTACK_WORKERS", "2")
	t.Setenv("LOG_LEVEL", "debug")

	cfg, err := LoadFromEnv()
	if err != nil {
		t.Fatalf("LoadFromEnv: %v", err)
	}
	if cfg.OutputDir != "/tmp/planes" || cfg.Threshold != 0.05 || cfg.Workers != 2 || cfg.LogLevel != "debug" {
		t.Fatalf("overrides not applied: %+v", cfg)
	}
}

func TestLoadFromEnv_YAMLFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "lsbattack.yaml")
	data := []byte("output_dir: planes\nthreshold: 0.1\nworkers: 3\n")
	if err := os.WriteFile(path, data, 0644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	t.Setenv("LSBATTACK_CONFIG", path)
	t.Setenv("LSBATTACK_OUTPUT_DIR", "")
	t.Setenv("LSBATTACK_THRESHOLD", "")
	t.Setenv("LSBATTACK_WORKERS", "4")
	t.Setenv("LOG_LEVEL", "")

	cfg, err := LoadFromEnv()
	if err != nil {
		t.Fatalf("LoadFromEnv: %v", err)
	}
	if cfg.OutputDir != "planes" || cfg.Threshold != 0.1 {
		t.Fatalf("file values not applied: %+v", cfg)
	}
	if cfg.Workers != 4 {
		t.Fatalf("workers = %d, want env value 4", cfg.Workers)
	}
}

func TestLoadFromEnv_Invalid(t *testing.T) {
	for _, tc := range []struct {
		name, key, value string
	}{
		{name: "threshold_not_number", key: "LSBATTACK_THRESHOLD", value: "abc"},
		{name: "threshold_too_large", key: "LSBATTACK_THRESHOLD", value: "0.9"},
		{name: "threshold_zero", key: "LSBATTACK_THRESHOLD", value: "0"},
		{name: "workers_negative", key: "LSBATTACK_WORKERS", value: "-1"},
		{name: "missing_file", key: "LSBATTACK_CONFIG", value: "/nonexistent/lsbattack.yaml"},
	} {
		t.Run(tc.name, func(t *testing.T) {
			t.Setenv("LSBATTACK_CONFIG", "")
			t.Setenv("LSBATTACK_THRESHOLD", "")
			t.Setenv("LSBATTACK_WORKERS", "")
			t.Setenv(tc.key, tc.value)

			if _, err := LoadFromEnv(); err == nil {
				t.Fatalf("expected error for %s=%q", tc.key, tc.value)
			}
		})
	}
}

package config

import (
	"fmt"
	"os"
	"runtime"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// DefaultThreshold is the change-rate above which a channel is reported as carrying hidden data
const DefaultThreshold = 0.025

// Config holds the runtime settings of the tool
type Config struct {
	OutputDir string  `yaml:"output_dir"`
	Threshold float64 `yaml:"threshold"`
	Workers   int     `yaml:"workers"`
	LogLevel  string  `yaml:"log_level"`
}

// Default returns the built-in configuration
func Default() *Config {
	return &Config{
		OutputDir: ".",
		Threshold: DefaultThreshold,
		Workers:   runtime.NumCPU(),
		LogLevel:  "info",
	}
}

// LoadFromEnv builds the configuration from defaults, an optional YAML file named by
// LSBATTACK_CONFIG, and environment overrides, in that order.
func LoadFromEnv() (*Config, error) {
	cfg := Default()

	if path := strings.TrimSpace(os.Getenv("LSBATTACK_CONFIG")); path != "" {
		if err := cfg.loadFile(path); err != nil {
			return nil, err
		}
	}

	cfg.OutputDir = getEnvOrDefault("LSBATTACK_OUTPUT_DIR", cfg.OutputDir)
	cfg.LogLevel = getEnvOrDefault("LOG_LEVEL", cfg.LogLevel)

	threshold, err := parseFloatOrDefault("LSBATTACK_THRESHOLD", cfg.Threshold)
	if err != nil {
		return nil, err
	}
	cfg.Threshold = threshold

	workers, err := parseIntOrDefault("LSBATTACK_WORKERS", cfg.Workers)
	if err != nil {
		return nil, err
	}
	cfg.Workers = workers

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks that every setting is usable
func (c *Config) Validate() error {
	if c.Threshold <= 0 || c.Threshold > 0.5 {
		return fmt.Errorf("threshold must be in (0, 0.5] (got %g)", c.Threshold)
	}
	if c.Workers <= 0 {
		return fmt.Errorf("workers must be > 0 (got %d)", c.Workers)
	}
	if strings.TrimSpace(c.OutputDir) == "" {
		return fmt.Errorf("output directory must not be empty")
	}
	return nil
}

func (c *Config) loadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("failed to parse config file %s: %w", path, err)
	}
	return nil
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		return value
	}
	return defaultValue
}

func parseFloatOrDefault(key string, defaultValue float64) (float64, error) {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return defaultValue, nil
	}
	f, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %q", key, value)
	}
	return f, nil
}

func parseIntOrDefault(key string, defaultValue int) (int, error) {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return defaultValue, nil
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %q", key, value)
	}
	return n, nil
}

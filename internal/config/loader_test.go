package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

// isolate keeps the real search paths and .env out of a test
func isolate(t *testing.T) *Loader {
	t.Helper()
	for _, name := range []string{
		"SUPABASE_URL", "SUPABASE_ANON_KEY",
		"GAMENATIVE_SUPABASE_URL", "GAMENATIVE_SUPABASE_ANON_KEY", "GAMENATIVE_SUPABASE_TABLE",
		"GAMENATIVE_SUPABASE_TIMEOUT", "GAMENATIVE_SPLASH_TIP_INTERVAL", "GAMENATIVE_SPLASH_THEME",
		"GAMENATIVE_OUTPUT_VERBOSE", "GAMENATIVE_OUTPUT_DEFAULT_FORMAT",
	} {
		t.Setenv(name, "")
	}

	loader := NewLoader().WithEnvFiles()
	loader.configPaths = []string{filepath.Join(t.TempDir(), "missing.yaml")}
	return loader
}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("Failed to write %s: %v", name, err)
	}
	return path
}

func TestNewLoader(t *testing.T) {
	loader := NewLoader()
	if loader == nil {
		t.Fatal("NewLoader returned nil")
	}
	if len(loader.configPaths) != 3 {
		t.Errorf("Expected 3 config paths, got %d", len(loader.configPaths))
	}
	if len(loader.envFiles) != 1 || loader.envFiles[0] != ".env" {
		t.Errorf("Expected .env to be loaded by default, got %v", loader.envFiles)
	}
}

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := isolate(t).LoadConfig("")
	if err != nil {
		t.Fatalf("Failed to load default config: %v", err)
	}

	if cfg.Supabase.Table != "kofi_supporters" {
		t.Errorf("Expected default table, got %s", cfg.Supabase.Table)
	}
	if cfg.Output.DefaultFormat != "text" {
		t.Errorf("Expected default output format text, got %s", cfg.Output.DefaultFormat)
	}
}

func TestLoadConfigFromFile(t *testing.T) {
	configPath := writeFile(t, t.TempDir(), "test-config.yaml", `version: "1.0"
supabase:
  url: "https://abc.supabase.co"
  anon_key: "anon"
  timeout: 5s
splash:
  tip_interval: 2s
  theme: minimal
output:
  default_format: "json"
  verbose: true
`)

	cfg, err := isolate(t).LoadConfig(configPath)
	if err != nil {
		t.Fatalf("Failed to load config from file: %v", err)
	}

	if cfg.Supabase.URL != "https://abc.supabase.co" || cfg.Supabase.AnonKey != "anon" {
		t.Errorf("Supabase settings not loaded: %+v", cfg.Supabase)
	}
	if cfg.Supabase.Table != "kofi_supporters" {
		t.Errorf("Unset table should keep the default, got %s", cfg.Supabase.Table)
	}
	if cfg.Supabase.Timeout != 5*time.Second {
		t.Errorf("Expected timeout 5s, got %v", cfg.Supabase.Timeout)
	}
	if cfg.Splash.TipInterval != 2*time.Second || cfg.Splash.Theme != "minimal" {
		t.Errorf("Splash settings not loaded: %+v", cfg.Splash)
	}
	if cfg.Output.DefaultFormat != "json" || !cfg.Output.Verbose {
		t.Errorf("Output settings not loaded: %+v", cfg.Output)
	}
}

func TestLoadConfigSearchPathPriority(t *testing.T) {
	dir := t.TempDir()
	high := writeFile(t, dir, "high.yaml", "splash:\n  theme: minimal\n")
	low := writeFile(t, dir, "low.yaml", "splash:\n  theme: high-contrast\nsupabase:\n  table: from_low\n")

	loader := isolate(t)
	loader.configPaths = []string{high, low}

	cfg, err := loader.LoadConfig("")
	if err != nil {
		t.Fatalf("LoadConfig() error: %v", err)
	}
	if cfg.Splash.Theme != "minimal" {
		t.Errorf("Higher priority file should win, got theme %s", cfg.Splash.Theme)
	}
	if cfg.Supabase.Table != "from_low" {
		t.Errorf("Lower priority values should survive when not overridden, got %s", cfg.Supabase.Table)
	}
}

func TestLoadConfigInvalidYAML(t *testing.T) {
	configPath := writeFile(t, t.TempDir(), "invalid-config.yaml", `version: "1.0"
output:
  default_format: "json
  verbose: true
`)

	if _, err := isolate(t).LoadConfig(configPath); err == nil {
		t.Error("Expected error loading invalid YAML config, but got none")
	}
}

func TestLoadConfigInvalidValues(t *testing.T) {
	configPath := writeFile(t, t.TempDir(), "bad.yaml", "splash:\n  theme: neon\n")

	_, err := isolate(t).LoadConfig(configPath)
	if err == nil || !strings.Contains(err.Error(), "configuration validation failed") {
		t.Errorf("Expected validation error, got %v", err)
	}
}

func TestApplyEnvOverrides(t *testing.T) {
	loader := isolate(t)
	t.Setenv("SUPABASE_URL", "https://bare.supabase.co")
	t.Setenv("SUPABASE_ANON_KEY", "bare-key")
	t.Setenv("GAMENATIVE_SUPABASE_TABLE", "supporters_v2")
	t.Setenv("GAMENATIVE_SPLASH_TIP_INTERVAL", "1500ms")
	t.Setenv("GAMENATIVE_OUTPUT_VERBOSE", "true")

	cfg := DefaultConfig()
	if err := loader.applyEnvOverrides(cfg); err != nil {
		t.Fatalf("Failed to apply env overrides: %v", err)
	}

	if cfg.Supabase.URL != "https://bare.supabase.co" || cfg.Supabase.AnonKey != "bare-key" {
		t.Errorf("Bare Supabase variables not applied: %+v", cfg.Supabase)
	}
	if cfg.Supabase.Table != "supporters_v2" {
		t.Errorf("Expected table supporters_v2, got %s", cfg.Supabase.Table)
	}
	if cfg.Splash.TipInterval != 1500*time.Millisecond {
		t.Errorf("Expected interval 1.5s, got %v", cfg.Splash.TipInterval)
	}
	if !cfg.Output.Verbose {
		t.Error("Expected verbose to be true")
	}
}

func TestApplyEnvOverridesPrefixedWins(t *testing.T) {
	loader := isolate(t)
	t.Setenv("SUPABASE_URL", "https://bare.supabase.co")
	t.Setenv("GAMENATIVE_SUPABASE_URL", "https://prefixed.supabase.co")

	cfg := DefaultConfig()
	if err := loader.applyEnvOverrides(cfg); err != nil {
		t.Fatalf("Failed to apply env overrides: %v", err)
	}
	if cfg.Supabase.URL != "https://prefixed.supabase.co" {
		t.Errorf("Expected prefixed variable to win, got %s", cfg.Supabase.URL)
	}
}

func TestApplyEnvOverridesInvalidValues(t *testing.T) {
	tests := []struct {
		name   string
		envVar string
		value  string
	}{
		{"invalid bool", "GAMENATIVE_OUTPUT_VERBOSE", "not-a-bool"},
		{"invalid duration", "GAMENATIVE_SUPABASE_TIMEOUT", "not-a-duration"},
		{"invalid interval", "GAMENATIVE_SPLASH_TIP_INTERVAL", "4"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			loader := isolate(t)
			t.Setenv(tt.envVar, tt.value)

			if err := loader.applyEnvOverrides(DefaultConfig()); err == nil {
				t.Error("Expected error for invalid env var value, but got none")
			}
		})
	}
}

func TestLoadConfigEnvFile(t *testing.T) {
	loader := isolate(t)
	// godotenv does not override variables that are already set
	_ = os.Unsetenv("SUPABASE_URL")
	_ = os.Unsetenv("SUPABASE_ANON_KEY")
	t.Cleanup(func() {
		_ = os.Unsetenv("SUPABASE_URL")
		_ = os.Unsetenv("SUPABASE_ANON_KEY")
	})

	envFile := writeFile(t, t.TempDir(), ".env", "SUPABASE_URL=https://dotenv.supabase.co\nSUPABASE_ANON_KEY=dotenv-key\n")
	loader.WithEnvFiles(envFile, filepath.Join(t.TempDir(), "absent.env"))

	cfg, err := loader.LoadConfig("")
	if err != nil {
		t.Fatalf("LoadConfig() error: %v", err)
	}
	if cfg.Supabase.URL != "https://dotenv.supabase.co" || cfg.Supabase.AnonKey != "dotenv-key" {
		t.Errorf("Expected values from .env, got %+v", cfg.Supabase)
	}
}

func TestParseDuration(t *testing.T) {
	var duration time.Duration

	if err := parseDuration("30s", &duration); err != nil {
		t.Errorf("Failed to parse duration: %v", err)
	}
	if duration != 30*time.Second {
		t.Errorf("Expected 30s, got %v", duration)
	}
	if err := parseDuration("invalid", &duration); err == nil {
		t.Error("Expected error for invalid duration, but got none")
	}
}

func TestParseBool(t *testing.T) {
	var value bool

	if err := parseBool("true", &value); err != nil || !value {
		t.Errorf("parseBool(true) = %v, %v", value, err)
	}
	if err := parseBool("false", &value); err != nil || value {
		t.Errorf("parseBool(false) = %v, %v", value, err)
	}
	if err := parseBool("not-a-bool", &value); err == nil {
		t.Error("Expected error for invalid bool, but got none")
	}
}

func TestFileExists(t *testing.T) {
	if fileExists("/path/that/does/not/exist") {
		t.Error("Expected file to not exist, but fileExists returned true")
	}

	tempFile := writeFile(t, t.TempDir(), "test-file", "test")
	if !fileExists(tempFile) {
		t.Error("Expected file to exist, but fileExists returned false")
	}
}

func TestValidateConfigPath(t *testing.T) {
	tests := []struct {
		name    string
		path    string
		wantErr bool
		errMsg  string
	}{
		{name: "valid yaml file", path: "config.yaml"},
		{name: "valid yml file", path: "config.yml"},
		{name: "relative path with valid extension", path: "./configs/app.yaml"},
		{name: "path traversal attempt", path: "../../../etc/passwd", wantErr: true, errMsg: "path traversal not allowed"},
		{name: "non-yaml file", path: "config.txt", wantErr: true, errMsg: "config file must have .yaml or .yml extension"},
		{name: "proc filesystem access", path: "/proc/version.yaml", wantErr: true, errMsg: "access to system files not allowed"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateConfigPath(tt.path)
			if tt.wantErr {
				if err == nil {
					t.Error("Expected error but got none")
				} else if !strings.Contains(err.Error(), tt.errMsg) {
					t.Errorf("Expected error message to contain '%s', got '%s'", tt.errMsg, err.Error())
				}
			} else if err != nil {
				t.Errorf("Unexpected error: %v", err)
			}
		})
	}
}

func TestGetConfigPaths(t *testing.T) {
	paths := GetConfigPaths()
	if len(paths) != 3 {
		t.Fatalf("Expected 3 paths, got %d", len(paths))
	}
	for _, p := range paths {
		if strings.HasPrefix(p, "~") {
			t.Errorf("Expected home to be expanded, got %s", p)
		}
	}
}

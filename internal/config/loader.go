package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/gamenative/gamenative-tui/internal/logger"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// ConfigPaths defines the config file search paths in priority order
var ConfigPaths = []string{
	"./.gamenative.yaml",               // Project-specific config (highest priority)
	"~/.config/gamenative/config.yaml", // User config
	"/etc/gamenative/config.yaml",      // System config (lowest priority)
}

// DefaultEnvFile is read before environment overrides are applied
const DefaultEnvFile = ".env"

// Loader handles configuration loading with priority merging
type Loader struct {
	configPaths []string
	envFiles    []string
	log         *logger.Logger
}

// NewLoader creates a new config loader
func NewLoader() *Loader {
	return &Loader{
		configPaths: ConfigPaths,
		envFiles:    []string{DefaultEnvFile},
		log:         logger.Discard(),
	}
}

// WithLogger sets the logger used for skipped config files
func (l *Loader) WithLogger(log *logger.Logger) *Loader {
	if log != nil {
		l.log = log.WithComponent("config")
	}
	return l
}

// WithEnvFiles replaces the dotenv files read by LoadConfig
func (l *Loader) WithEnvFiles(files ...string) *Loader {
	l.envFiles = files
	return l
}

// LoadConfig loads configuration from multiple sources with priority order:
// 1. Command line flags (handled by caller)
// 2. Environment variables, including those from .env
// 3. ./.gamenative.yaml
// 4. ~/.config/gamenative/config.yaml
// 5. /etc/gamenative/config.yaml
// 6. Built-in defaults
func (l *Loader) LoadConfig(customPath string) (*Config, error) {
	config := DefaultConfig()

	if customPath != "" {
		if err := validateConfigPath(customPath); err != nil {
			return nil, fmt.Errorf("invalid config path: %w", err)
		}
		if err := l.loadFromFile(config, customPath); err != nil {
			return nil, fmt.Errorf("failed to load config from %s: %w", customPath, err)
		}
	} else {
		// lowest priority first so later files win
		for i := len(l.configPaths) - 1; i >= 0; i-- {
			expandedPath := expandPath(l.configPaths[i])
			if !fileExists(expandedPath) {
				continue
			}
			if err := l.loadFromFile(config, expandedPath); err != nil {
				l.log.Warn("failed to load config from %s: %v", expandedPath, err)
			}
		}
	}

	if err := l.loadEnvFiles(); err != nil {
		return nil, err
	}

	if err := l.applyEnvOverrides(config); err != nil {
		return nil, fmt.Errorf("failed to apply environment overrides: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return config, nil
}

// loadEnvFiles exports dotenv values that are not already set. Missing files
// are skipped.
func (l *Loader) loadEnvFiles() error {
	for _, file := range l.envFiles {
		if !fileExists(file) {
			continue
		}
		if err := godotenv.Load(file); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return fmt.Errorf("failed to load %s: %w", file, err)
		}
		l.log.Debug("loaded environment from %s", file)
	}
	return nil
}

// loadFromFile loads configuration from a YAML file and merges it with existing config
func (l *Loader) loadFromFile(config *Config, path string) error {
	// #nosec G304 - path is validated by validateConfigPath() before reaching here
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read file: %w", err)
	}

	var fileConfig Config
	if err := yaml.Unmarshal(data, &fileConfig); err != nil {
		return fmt.Errorf("failed to parse YAML: %w", err)
	}

	mergeConfigs(config, &fileConfig)
	return nil
}

// applyEnvOverrides applies environment variable overrides to the config
func (l *Loader) applyEnvOverrides(config *Config) error {
	envMappings := []struct {
		name   string
		setter func(string) error
	}{
		// Supabase project settings, under the names the app build uses
		{"SUPABASE_URL", func(v string) error { config.Supabase.URL = v; return nil }},
		{"SUPABASE_ANON_KEY", func(v string) error { config.Supabase.AnonKey = v; return nil }},

		// Supabase Config
		{"GAMENATIVE_SUPABASE_URL", func(v string) error { config.Supabase.URL = v; return nil }},
		{"GAMENATIVE_SUPABASE_ANON_KEY", func(v string) error { config.Supabase.AnonKey = v; return nil }},
		{"GAMENATIVE_SUPABASE_TABLE", func(v string) error { config.Supabase.Table = v; return nil }},
		{"GAMENATIVE_SUPABASE_TIMEOUT", func(v string) error { return parseDuration(v, &config.Supabase.Timeout) }},

		// Splash Config
		{"GAMENATIVE_SPLASH_TIP_INTERVAL", func(v string) error { return parseDuration(v, &config.Splash.TipInterval) }},
		{"GAMENATIVE_SPLASH_TIPS_FILE", func(v string) error { config.Splash.TipsFile = v; return nil }},
		{"GAMENATIVE_SPLASH_READY_FILE", func(v string) error { config.Splash.ReadyFile = v; return nil }},
		{"GAMENATIVE_SPLASH_THEME", func(v string) error { config.Splash.Theme = v; return nil }},

		// Output Config
		{"GAMENATIVE_OUTPUT_DEFAULT_FORMAT", func(v string) error { config.Output.DefaultFormat = v; return nil }},
		{"GAMENATIVE_OUTPUT_COLOR_MODE", func(v string) error { config.Output.ColorMode = v; return nil }},
		{"GAMENATIVE_OUTPUT_VERBOSE", func(v string) error { return parseBool(v, &config.Output.Verbose) }},
		{"GAMENATIVE_OUTPUT_NO_EMOJI", func(v string) error { return parseBool(v, &config.Output.NoEmoji) }},
		{"GAMENATIVE_OUTPUT_LOG_FILE", func(v string) error { config.Output.LogFile = v; return nil }},
	}

	// ordered so the GAMENATIVE_ names win over the bare Supabase ones
	for _, m := range envMappings {
		if value := os.Getenv(m.name); value != "" {
			if err := m.setter(value); err != nil {
				return fmt.Errorf("invalid value for %s: %w", m.name, err)
			}
		}
	}

	return nil
}

// GetConfigPaths returns the list of configuration file paths that will be searched
func GetConfigPaths() []string {
	paths := make([]string, 0, len(ConfigPaths))
	for _, path := range ConfigPaths {
		paths = append(paths, expandPath(path))
	}
	return paths
}

// FindConfigFile finds the first existing config file in the search paths
func FindConfigFile() (string, bool) {
	for _, path := range ConfigPaths {
		expandedPath := expandPath(path)
		if fileExists(expandedPath) {
			return expandedPath, true
		}
	}
	return "", false
}

// validateConfigPath validates that a config path is safe to read
func validateConfigPath(path string) error {
	cleanPath := filepath.Clean(path)

	if strings.Contains(cleanPath, "..") {
		return fmt.Errorf("path traversal not allowed")
	}

	ext := strings.ToLower(filepath.Ext(cleanPath))
	if ext != ".yaml" && ext != ".yml" {
		return fmt.Errorf("config file must have .yaml or .yml extension")
	}

	absPath, err := filepath.Abs(cleanPath)
	if err != nil {
		return fmt.Errorf("failed to resolve absolute path: %w", err)
	}

	if strings.HasPrefix(absPath, "/proc/") || strings.HasPrefix(absPath, "/sys/") {
		return fmt.Errorf("access to system files not allowed")
	}

	return nil
}

// expandPath expands ~ to home directory
func expandPath(path string) string {
	if strings.HasPrefix(path, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, path[2:])
		}
	}
	return path
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// mergeConfigs merges source config into destination config.
// Only non-zero values from source overwrite destination.
func mergeConfigs(dst, src *Config) {
	if src.Version != "" {
		dst.Version = src.Version
	}

	mergeSupabaseConfig(&dst.Supabase, &src.Supabase)
	mergeSplashConfig(&dst.Splash, &src.Splash)
	mergeOutputConfig(&dst.Output, &src.Output)
}

func mergeSupabaseConfig(dst, src *SupabaseConfig) {
	if src.URL != "" {
		dst.URL = src.URL
	}
	if src.AnonKey != "" {
		dst.AnonKey = src.AnonKey
	}
	if src.Table != "" {
		dst.Table = src.Table
	}
	if src.Timeout != 0 {
		dst.Timeout = src.Timeout
	}
}

func mergeSplashConfig(dst, src *SplashConfig) {
	if src.TipInterval != 0 {
		dst.TipInterval = src.TipInterval
	}
	if src.TipsFile != "" {
		dst.TipsFile = src.TipsFile
	}
	if src.ReadyFile != "" {
		dst.ReadyFile = src.ReadyFile
	}
	if src.Theme != "" {
		dst.Theme = src.Theme
	}
}

// mergeOutputConfig merges output configuration. Booleans can only be
// switched on by a file; env vars and flags switch them off.
func mergeOutputConfig(dst, src *OutputConfig) {
	if src.DefaultFormat != "" {
		dst.DefaultFormat = src.DefaultFormat
	}
	if src.ColorMode != "" {
		dst.ColorMode = src.ColorMode
	}
	if src.LogFile != "" {
		dst.LogFile = src.LogFile
	}
	dst.Verbose = dst.Verbose || src.Verbose
	dst.NoEmoji = dst.NoEmoji || src.NoEmoji
}

// Type conversion helpers

func parseBool(s string, dst *bool) error {
	val, err := strconv.ParseBool(s)
	if err != nil {
		return err
	}
	*dst = val
	return nil
}

func parseDuration(s string, dst *time.Duration) error {
	val, err := time.ParseDuration(s)
	if err != nil {
		return err
	}
	*dst = val
	return nil
}

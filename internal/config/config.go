package config

import (
	"fmt"
	"net/url"
	"time"

	"github.com/gamenative/gamenative-tui/internal/supporters"
	"github.com/gamenative/gamenative-tui/internal/tips"
)

// Config holds the complete application configuration
type Config struct {
	Version  string         `yaml:"version" json:"version"`
	Supabase SupabaseConfig `yaml:"supabase" json:"supabase"`
	Splash   SplashConfig   `yaml:"splash" json:"splash"`
	Output   OutputConfig   `yaml:"output" json:"output"`
}

// SupabaseConfig points at the project holding the supporter table
type SupabaseConfig struct {
	URL     string        `yaml:"url" json:"url"`
	AnonKey string        `yaml:"anon_key" json:"anon_key"` // public anon key, still kept out of logs
	Table   string        `yaml:"table" json:"table"`
	Timeout time.Duration `yaml:"timeout" json:"timeout"`
}

// SplashConfig configures the boot splash
type SplashConfig struct {
	TipInterval time.Duration `yaml:"tip_interval" json:"tip_interval"`
	TipsFile    string        `yaml:"tips_file" json:"tips_file"`   // replaces the built-in tips
	ReadyFile   string        `yaml:"ready_file" json:"ready_file"` // created by the runtime once booted
	Theme       string        `yaml:"theme" json:"theme"`           // default|high-contrast|minimal
}

// OutputConfig configures output formatting and display
type OutputConfig struct {
	DefaultFormat string `yaml:"default_format" json:"default_format"` // json|text|markdown|csv
	ColorMode     string `yaml:"color_mode" json:"color_mode"`         // auto|always|never
	Verbose       bool   `yaml:"verbose" json:"verbose"`
	NoEmoji       bool   `yaml:"no_emoji" json:"no_emoji"`
	LogFile       string `yaml:"log_file" json:"log_file"` // where logs go while a TUI is running
}

// DefaultConfig returns a configuration with sensible defaults
func DefaultConfig() *Config {
	return &Config{
		Version: "1.0",
		Supabase: SupabaseConfig{
			Table:   supporters.DefaultTable,
			Timeout: supporters.DefaultTimeout,
		},
		Splash: SplashConfig{
			TipInterval: tips.DefaultInterval,
			Theme:       "default",
		},
		Output: OutputConfig{
			DefaultFormat: "text",
			ColorMode:     "auto",
		},
	}
}

// ClientConfig returns the settings for the supporter client
func (s SupabaseConfig) ClientConfig() *supporters.ClientConfig {
	return &supporters.ClientConfig{
		BaseURL: s.URL,
		APIKey:  s.AnonKey,
		Table:   s.Table,
		Timeout: s.Timeout,
	}
}

// Validate validates the configuration. Missing Supabase credentials are not
// an error here; commands that fetch check them.
func (c *Config) Validate() error {
	if err := c.validateSupabaseConfig(); err != nil {
		return err
	}
	if err := c.validateSplashConfig(); err != nil {
		return err
	}
	if err := c.validateOutputConfig(); err != nil {
		return err
	}
	return nil
}

func (c *Config) validateSupabaseConfig() error {
	if c.Supabase.URL != "" {
		u, err := url.Parse(c.Supabase.URL)
		if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
			return fmt.Errorf("invalid supabase url: %q (must be an http or https URL)", c.Supabase.URL)
		}
	}
	if c.Supabase.Timeout < 0 {
		return fmt.Errorf("supabase timeout must be non-negative")
	}
	return nil
}

func (c *Config) validateSplashConfig() error {
	if c.Splash.TipInterval < 0 {
		return fmt.Errorf("tip_interval must be non-negative")
	}
	if c.Splash.Theme != "" {
		validThemes := map[string]bool{
			"default":       true,
			"high-contrast": true,
			"minimal":       true,
		}
		if !validThemes[c.Splash.Theme] {
			return fmt.Errorf("invalid theme: %s (must be one of: default, high-contrast, minimal)", c.Splash.Theme)
		}
	}
	return nil
}

// validateOutputConfig validates output-related configuration
func (c *Config) validateOutputConfig() error {
	if c.Output.DefaultFormat != "" {
		validFormats := map[string]bool{
			"json":     true,
			"text":     true,
			"markdown": true,
			"csv":      true,
		}
		if !validFormats[c.Output.DefaultFormat] {
			return fmt.Errorf("invalid output format: %s (must be one of: json, text, markdown, csv)", c.Output.DefaultFormat)
		}
	}
	if c.Output.ColorMode != "" {
		validColorModes := map[string]bool{
			"auto":   true,
			"always": true,
			"never":  true,
		}
		if !validColorModes[c.Output.ColorMode] {
			return fmt.Errorf("invalid color mode: %s (must be one of: auto, always, never)", c.Output.ColorMode)
		}
	}
	return nil
}

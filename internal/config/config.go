// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package config

import (
	"bytes"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/jeranaias/muse-tui/internal/session"
	"github.com/jeranaias/muse-tui/internal/util"
)

// =============================================================================
// CONFIG STRUCTURES
// =============================================================================

// Config represents the complete muse configuration.
type Config struct {
	// Backend configuration
	Backend BackendConfig `toml:"backend"`

	// Chat configuration
	Chat ChatConfig `toml:"chat"`

	// Storage configuration
	Storage StorageConfig `toml:"storage"`

	// UI configuration
	UI UIConfig `toml:"ui"`
}

// BackendConfig contains backend gateway configuration.
type BackendConfig struct {
	// BaseURL is the backend API base URL
	BaseURL string `toml:"base_url"`
	// TimeoutSeconds for chat requests
	TimeoutSeconds int `toml:"timeout_seconds"`
	// ImageTimeoutSeconds for generation and edit requests
	ImageTimeoutSeconds int `toml:"image_timeout_seconds"`
	// PrimaryProvider for image generation
	PrimaryProvider string `toml:"primary_provider"`
	// FallbackProvider tried when the primary fails
	FallbackProvider string `toml:"fallback_provider"`
	// Style applied to generation and edit requests
	Style string `toml:"style"`
	// AspectRatio applied to generation and edit requests
	AspectRatio string `toml:"aspect_ratio"`
}

// ChatConfig contains chat configuration.
type ChatConfig struct {
	// DefaultModel used when no stored preference exists
	DefaultModel string `toml:"default_model"`
}

// StorageConfig contains persistence configuration.
type StorageConfig struct {
	// Path to the SQLite store (empty = ~/.muse/muse.db)
	Path string `toml:"path"`
}

// UIConfig contains UI configuration.
type UIConfig struct {
	// Theme is the UI theme: "dark", "light", "auto"
	Theme string `toml:"theme"`
}

// =============================================================================
// DEFAULT CONFIGURATION
// =============================================================================

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Backend: BackendConfig{
			BaseURL:             "http://127.0.0.1:5000",
			TimeoutSeconds:      60,
			ImageTimeoutSeconds: 120,
			PrimaryProvider:     "gemini",
			FallbackProvider:    "pollinations",
			Style:               "photorealistic",
			AspectRatio:         "1:1",
		},
		Chat: ChatConfig{
			DefaultModel: session.DefaultModel,
		},
		Storage: StorageConfig{
			Path: "",
		},
		UI: UIConfig{
			Theme: "auto",
		},
	}
}

// =============================================================================
// CONFIG PATH HELPERS
// =============================================================================

// Dir returns the muse configuration directory path.
func Dir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("could not determine home directory: %w", err)
	}
	return filepath.Join(home, ".muse"), nil
}

// Path returns the path to the TOML config file.
func Path() (string, error) {
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.toml"), nil
}

// StorePath resolves the SQLite store path, defaulting under the
// config directory.
func (c *Config) StorePath() (string, error) {
	if c.Storage.Path != "" {
		return c.Storage.Path, nil
	}
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "muse.db"), nil
}

// =============================================================================
// LOAD FUNCTIONS
// =============================================================================

// Load loads configuration from the default file, falling back to
// defaults when it does not exist. Environment overrides are applied
// last.
func Load() (*Config, error) {
	path, err := Path()
	if err != nil {
		return nil, err
	}
	return LoadFromPath(path)
}

// LoadFromPath loads configuration from a specific file path with full
// validation. A missing file is not an error; defaults apply.
func LoadFromPath(path string) (*Config, error) {
	cfg := Default()

	if _, err := os.Stat(path); err == nil {
		if _, err := toml.DecodeFile(path, cfg); err != nil {
			return nil, fmt.Errorf("failed to decode config file: %w", err)
		}
	}

	cfg.ApplyEnvOverrides()
	cfg.SetDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// SetDefaults fills in any missing values with defaults.
func (c *Config) SetDefaults() {
	defaults := Default()

	if c.Backend.BaseURL == "" {
		c.Backend.BaseURL = defaults.Backend.BaseURL
	}
	if c.Backend.TimeoutSeconds == 0 {
		c.Backend.TimeoutSeconds = defaults.Backend.TimeoutSeconds
	}
	if c.Backend.ImageTimeoutSeconds == 0 {
		c.Backend.ImageTimeoutSeconds = defaults.Backend.ImageTimeoutSeconds
	}
	if c.Backend.PrimaryProvider == "" {
		c.Backend.PrimaryProvider = defaults.Backend.PrimaryProvider
	}
	if c.Backend.FallbackProvider == "" {
		c.Backend.FallbackProvider = defaults.Backend.FallbackProvider
	}
	if c.Backend.Style == "" {
		c.Backend.Style = defaults.Backend.Style
	}
	if c.Backend.AspectRatio == "" {
		c.Backend.AspectRatio = defaults.Backend.AspectRatio
	}
	if c.Chat.DefaultModel == "" {
		c.Chat.DefaultModel = defaults.Chat.DefaultModel
	}
	if c.UI.Theme == "" {
		c.UI.Theme = defaults.UI.Theme
	}
}

// =============================================================================
// VALIDATION
// =============================================================================

// ValidationError represents a configuration validation error.
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// Validate validates the configuration and returns any errors.
func (c *Config) Validate() error {
	if _, err := url.Parse(c.Backend.BaseURL); err != nil {
		return ValidationError{
			Field:   "backend.base_url",
			Message: fmt.Sprintf("invalid URL: %v", err),
		}
	}

	if c.Backend.TimeoutSeconds < 0 {
		return ValidationError{
			Field:   "backend.timeout_seconds",
			Message: "must be non-negative",
		}
	}
	if c.Backend.ImageTimeoutSeconds < 0 {
		return ValidationError{
			Field:   "backend.image_timeout_seconds",
			Message: "must be non-negative",
		}
	}

	validThemes := map[string]bool{"dark": true, "light": true, "auto": true}
	if !validThemes[strings.ToLower(c.UI.Theme)] {
		return ValidationError{
			Field:   "ui.theme",
			Message: fmt.Sprintf("invalid theme '%s', must be one of: dark, light, auto", c.UI.Theme),
		}
	}

	if !session.IsKnownModel(c.Chat.DefaultModel) {
		return ValidationError{
			Field:   "chat.default_model",
			Message: fmt.Sprintf("unknown model '%s'", c.Chat.DefaultModel),
		}
	}

	return nil
}

// =============================================================================
// ENVIRONMENT OVERRIDES
// =============================================================================

// ApplyEnvOverrides applies environment variable overrides to the
// config.
//
// Supported environment variables:
//   - MUSE_BACKEND_URL: overrides backend.base_url
//   - MUSE_MODEL: overrides chat.default_model
//   - MUSE_THEME: overrides ui.theme
//   - MUSE_STORAGE_PATH: overrides storage.path
//   - MUSE_TIMEOUT_SECS: overrides backend.timeout_seconds
func (c *Config) ApplyEnvOverrides() {
	if u := os.Getenv("MUSE_BACKEND_URL"); u != "" {
		c.Backend.BaseURL = u
	}
	if model := os.Getenv("MUSE_MODEL"); model != "" {
		c.Chat.DefaultModel = model
	}
	if theme := os.Getenv("MUSE_THEME"); theme != "" {
		c.UI.Theme = theme
	}
	if path := os.Getenv("MUSE_STORAGE_PATH"); path != "" {
		c.Storage.Path = path
	}
	if secs := os.Getenv("MUSE_TIMEOUT_SECS"); secs != "" {
		if n, err := strconv.Atoi(secs); err == nil && n > 0 {
			c.Backend.TimeoutSeconds = n
		}
	}
}

// =============================================================================
// SAVE
// =============================================================================

// Save writes the configuration to the default TOML file atomically.
func Save(cfg *Config) error {
	path, err := Path()
	if err != nil {
		return err
	}
	return SaveToPath(cfg, path)
}

// SaveToPath writes the configuration to path atomically.
func SaveToPath(cfg *Config, path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	var buf bytes.Buffer
	fmt.Fprintln(&buf, "# muse configuration file")
	fmt.Fprintln(&buf, "# Generated by muse - edit with care")
	fmt.Fprintln(&buf, "")

	if err := toml.NewEncoder(&buf).Encode(cfg); err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}

	if err := util.AtomicWriteFile(path, buf.Bytes(), 0600); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

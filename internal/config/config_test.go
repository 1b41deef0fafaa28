// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/jeranaias/muse-tui/internal/session"
)

func TestDefaultIsValid(t *testing.T) {
	cfg := Default()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config fails validation: %v", err)
	}
	if cfg.Backend.BaseURL != "http://127.0.0.1:5000" {
		t.Errorf("default base URL = %q", cfg.Backend.BaseURL)
	}
	if cfg.Backend.PrimaryProvider != "gemini" || cfg.Backend.FallbackProvider != "pollinations" {
		t.Errorf("default providers = %q/%q", cfg.Backend.PrimaryProvider, cfg.Backend.FallbackProvider)
	}
	if cfg.Chat.DefaultModel != session.DefaultModel {
		t.Errorf("default model = %q, want %q", cfg.Chat.DefaultModel, session.DefaultModel)
	}
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := LoadFromPath(filepath.Join(t.TempDir(), "nope.toml"))
	if err != nil {
		t.Fatalf("LoadFromPath with missing file: %v", err)
	}
	if cfg.Backend.BaseURL != Default().Backend.BaseURL {
		t.Errorf("missing file did not fall back to defaults")
	}
}

func TestLoadPartialFileFillsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	content := "[backend]\nbase_url = \"http://10.0.0.1:8080\"\n"
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadFromPath(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Backend.BaseURL != "http://10.0.0.1:8080" {
		t.Errorf("base URL = %q", cfg.Backend.BaseURL)
	}
	// Unset fields fall back.
	if cfg.Backend.Style != "photorealistic" {
		t.Errorf("style = %q, want photorealistic", cfg.Backend.Style)
	}
	if cfg.UI.Theme != "auto" {
		t.Errorf("theme = %q, want auto", cfg.UI.Theme)
	}
}

func TestValidateRejectsBadTheme(t *testing.T) {
	cfg := Default()
	cfg.UI.Theme = "neon"
	err := cfg.Validate()
	if err == nil {
		t.Fatal("expected validation error for bad theme")
	}
	if !strings.Contains(err.Error(), "ui.theme") {
		t.Errorf("error does not name the field: %v", err)
	}
}

func TestValidateRejectsUnknownModel(t *testing.T) {
	cfg := Default()
	cfg.Chat.DefaultModel = "gpt-9000"
	if cfg.Validate() == nil {
		t.Fatal("expected validation error for unknown model")
	}
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("MUSE_BACKEND_URL", "http://192.168.1.5:5000")
	t.Setenv("MUSE_THEME", "dark")
	t.Setenv("MUSE_TIMEOUT_SECS", "30")

	cfg := Default()
	cfg.ApplyEnvOverrides()

	if cfg.Backend.BaseURL != "http://192.168.1.5:5000" {
		t.Errorf("base URL override not applied: %q", cfg.Backend.BaseURL)
	}
	if cfg.UI.Theme != "dark" {
		t.Errorf("theme override not applied: %q", cfg.UI.Theme)
	}
	if cfg.Backend.TimeoutSeconds != 30 {
		t.Errorf("timeout override not applied: %d", cfg.Backend.TimeoutSeconds)
	}
}

func TestSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")

	cfg := Default()
	cfg.Backend.BaseURL = "http://example.test:9999"
	cfg.UI.Theme = "light"
	if err := SaveToPath(cfg, path); err != nil {
		t.Fatal(err)
	}

	loaded, err := LoadFromPath(path)
	if err != nil {
		t.Fatal(err)
	}
	if loaded.Backend.BaseURL != "http://example.test:9999" {
		t.Errorf("round-tripped base URL = %q", loaded.Backend.BaseURL)
	}
	if loaded.UI.Theme != "light" {
		t.Errorf("round-tripped theme = %q", loaded.UI.Theme)
	}
}

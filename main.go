// muse TUI - A terminal chat client for the muse backend.
//
// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later
package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sync"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jeranaias/muse-tui/internal/app"
	"github.com/jeranaias/muse-tui/internal/config"
	"github.com/jeranaias/muse-tui/internal/gateway"
	"github.com/jeranaias/muse-tui/internal/session"
	"github.com/jeranaias/muse-tui/internal/storage"
	"github.com/jeranaias/muse-tui/internal/ui"
	"github.com/jeranaias/muse-tui/internal/ui/styles"
)

// Version information (set at build time)
var (
	Version   = "0.1.0"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

// Global program reference for async reply delivery
var (
	programRef *tea.Program
	programMu  sync.Mutex
)

func sendToProgram(msg tea.Msg) {
	programMu.Lock()
	p := programRef
	programMu.Unlock()
	if p != nil {
		p.Send(msg)
	}
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	storePath, err := cfg.StorePath()
	if err != nil {
		return err
	}
	store, err := storage.OpenLocalStore(storePath)
	if err != nil {
		return err
	}
	defer store.Close()

	state := session.NewState()
	state.SetModel(cfg.Chat.DefaultModel)

	// Eviction notices can fire from the monitor goroutine, so they go
	// through the program reference.
	guard := storage.NewGuard(store, state, func(notice string) {
		sendToProgram(ui.NoticeMsg{Text: notice})
	})
	if err := guard.Load(); err != nil {
		return err
	}

	gw := gateway.NewClientWithConfig(&gateway.ClientConfig{
		BaseURL:          cfg.Backend.BaseURL,
		Timeout:          time.Duration(cfg.Backend.TimeoutSeconds) * time.Second,
		ImageTimeout:     time.Duration(cfg.Backend.ImageTimeoutSeconds) * time.Second,
		PrimaryProvider:  cfg.Backend.PrimaryProvider,
		FallbackProvider: cfg.Backend.FallbackProvider,
		Style:            cfg.Backend.Style,
		AspectRatio:      cfg.Backend.AspectRatio,
	})

	engine := app.NewEngine(state, gw, guard)

	// A dead backend is reported but not fatal; the TUI still opens and
	// individual requests surface their own errors.
	healthCtx, healthCancel := context.WithTimeout(context.Background(), 3*time.Second)
	if err := gw.Health(healthCtx); err != nil {
		log.Printf("backend health check failed: %v", err)
	}
	healthCancel()

	theme := styles.NewTheme(resolveDark(cfg, guard))

	model := ui.New(engine, state, guard, theme, filepath.Dir(storePath))

	p := tea.NewProgram(model, tea.WithAltScreen())
	programMu.Lock()
	programRef = p
	programMu.Unlock()
	model.SetSend(sendToProgram)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	guard.StartMonitor(ctx)

	// Live config reload: a changed default model applies immediately
	// when the user has no stored selection; other fields apply on the
	// next start.
	if configPath, err := config.Path(); err == nil {
		go func() {
			err := config.Watch(ctx, configPath, func(next *config.Config) {
				if _, err := store.Get(storage.KeyModel); err != nil {
					state.SetModel(next.Chat.DefaultModel)
				}
			})
			if err != nil {
				log.Printf("config watch stopped: %v", err)
			}
		}()
	}

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("error running muse: %w", err)
	}
	return nil
}

// resolveDark picks the theme: stored preference first, then the
// configured theme, then terminal background detection for "auto".
func resolveDark(cfg *config.Config, guard *storage.Guard) bool {
	if dark, ok := guard.DarkMode(); ok {
		return dark
	}
	switch cfg.UI.Theme {
	case "dark":
		return true
	case "light":
		return false
	default:
		return styles.DetectDark()
	}
}

// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/jeranaias/muse-tui/internal/session"
	"github.com/jeranaias/muse-tui/internal/transcript"
)

// =============================================================================
// POLICY CONSTANTS
// =============================================================================

const (
	// MaxStorageBytes is the store ceiling: the summed length of all
	// keys and values may not exceed 20 MiB.
	MaxStorageBytes = 20 << 20

	// MarkupCharLimit is the persisted-markup size past which only the
	// most recent turns are kept.
	MarkupCharLimit = 50000

	// MarkupKeepTurns is how many trailing turns survive a markup
	// truncation.
	MarkupKeepTurns = 10

	// HistoryTurnCap bounds the structured history.
	HistoryTurnCap = 20

	// MonitorInterval is how often the background monitor re-measures
	// the store.
	MonitorInterval = 10 * time.Second
)

// Storage keys. Names are kept from the original web client so an
// exported session remains recognizable.
const (
	KeyHistoryHTML = "chat-history-html"
	KeyHistoryData = "chat-history-data"
	KeyModel       = "selected-model"
	KeyDarkMode    = "dark-mode"
)

// EvictionNotice is shown to the user when the guard clears the store.
const EvictionNotice = "Storage limit reached (20MB). All chat history and cache have been automatically cleared to free up space."

// =============================================================================
// PERSISTENCE GUARD
// =============================================================================

// Guard enforces the storage ceiling around a LocalStore and keeps the
// persisted view of a session.State in sync with it.
type Guard struct {
	store   *LocalStore
	state   *session.State
	limit   int64
	onEvict func(notice string)
}

// NewGuard wires a guard over store and state. onEvict, if non-nil, is
// called with the user-facing notice whenever the guard clears the
// store; it may be invoked from the monitor goroutine.
func NewGuard(store *LocalStore, state *session.State, onEvict func(notice string)) *Guard {
	return &Guard{
		store:   store,
		state:   state,
		limit:   MaxStorageBytes,
		onEvict: onEvict,
	}
}

// CheckSize measures the store and, when at or over the ceiling,
// clears everything and resets the in-memory conversation. Returns
// whether an eviction happened.
func (g *Guard) CheckSize() (bool, error) {
	size, err := g.store.TotalSize()
	if err != nil {
		return false, err
	}
	if size < g.limit {
		return false, nil
	}
	if err := g.evict(); err != nil {
		return false, err
	}
	return true, nil
}

// evict clears the store and the in-memory conversation, then notifies.
func (g *Guard) evict() error {
	if err := g.store.Clear(); err != nil {
		return fmt.Errorf("eviction failed: %w", err)
	}
	g.state.Reset()
	if g.onEvict != nil {
		g.onEvict(EvictionNotice)
	}
	return nil
}

// Save persists the current conversation: structured history, rendered
// markup, and the selected model. The history is capped first; markup
// that still exceeds the character limit is re-rendered from only the
// trailing turns. A quota failure from the store triggers a full
// eviction rather than a partial write. A pre-write eviction aborts
// the save so the freshly cleared store stays empty.
func (g *Guard) Save() error {
	evicted, err := g.CheckSize()
	if err != nil {
		return err
	}
	if evicted {
		return nil
	}

	g.state.TruncateHistory(HistoryTurnCap)
	turns := g.state.History()

	markup := transcript.Render(turns)
	if len(markup) > MarkupCharLimit {
		keep := turns
		if len(keep) > MarkupKeepTurns {
			keep = keep[len(keep)-MarkupKeepTurns:]
		}
		markup = transcript.Render(keep)
	}

	data, err := json.Marshal(turns)
	if err != nil {
		return fmt.Errorf("failed to encode history: %w", err)
	}

	writes := []struct{ key, value string }{
		{KeyHistoryData, string(data)},
		{KeyHistoryHTML, markup},
		{KeyModel, g.state.Model()},
	}
	for _, w := range writes {
		if err := g.store.Set(w.key, w.value); err != nil {
			if IsQuotaErr(err) {
				return g.evict()
			}
			return err
		}
	}

	// A single oversized write can push the store past the ceiling
	// without tripping the database's own quota.
	_, err = g.CheckSize()
	return err
}

// Load restores the conversation and model selection from the store.
// Missing keys leave the corresponding state untouched; an unknown
// stored model falls back to the default.
func (g *Guard) Load() error {
	if data, err := g.store.Get(KeyHistoryData); err == nil {
		var turns []session.Turn
		if err := json.Unmarshal([]byte(data), &turns); err != nil {
			// Corrupt history is dropped, not fatal.
			_ = g.store.Delete(KeyHistoryData)
			_ = g.store.Delete(KeyHistoryHTML)
		} else {
			g.state.SetHistory(turns)
		}
	}

	if model, err := g.store.Get(KeyModel); err == nil {
		g.state.SetModel(model)
	}

	return nil
}

// Markup returns the persisted transcript markup, or "" when none.
func (g *Guard) Markup() string {
	markup, err := g.store.Get(KeyHistoryHTML)
	if err != nil {
		return ""
	}
	return markup
}

// DarkMode returns the stored theme preference. ok is false when no
// preference has been saved.
func (g *Guard) DarkMode() (dark, ok bool) {
	v, err := g.store.Get(KeyDarkMode)
	if err != nil {
		return false, false
	}
	return v == "true", true
}

// SetDarkMode persists the theme preference.
func (g *Guard) SetDarkMode(dark bool) error {
	v := "false"
	if dark {
		v = "true"
	}
	return g.store.Set(KeyDarkMode, v)
}

// StartMonitor re-measures the store every MonitorInterval until ctx
// is done. Evictions surface through the onEvict callback.
func (g *Guard) StartMonitor(ctx context.Context) {
	go func() {
		ticker := time.NewTicker(MonitorInterval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				_, _ = g.CheckSize()
			}
		}
	}()
}

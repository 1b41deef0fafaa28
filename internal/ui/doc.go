// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package ui implements the muse chat TUI: a viewport transcript over
// a text input, backed by the app engine.
//
// Replies arrive asynchronously through the engine's sequencer and are
// injected into the Bubble Tea loop via the send hook, so the input
// stays live while a request is in flight. Slash commands (/help,
// /model, /theme, /attach, /markedit, /clear) are handled locally and
// never reach the backend.
package ui

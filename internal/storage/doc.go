// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package storage provides the bounded key-value persistence layer for
// muse: a SQLite-backed store plus the Guard that keeps its footprint
// under a fixed ceiling.
//
// The store is a flat string-to-string table. The Guard owns the
// eviction policy: when the summed size of all keys and values crosses
// the ceiling, the whole conversation state is cleared at once rather
// than trimmed piecemeal, and the user is told so. Oversized markup
// and over-long histories are truncated on the way in.
package storage

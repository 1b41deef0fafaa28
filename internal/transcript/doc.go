// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package transcript renders conversation turns into the HTML markup
// that gets persisted alongside the structured history. The markup is
// what a restored session displays, so it must round-trip through
// storage byte-for-byte.
//
// Plain text is escaped; fenced code blocks are syntax-highlighted
// with chroma's HTML formatter; image parts become <img> tags carrying
// their data URLs (which is why persisted markup can grow past the
// guard's character limit).
package transcript

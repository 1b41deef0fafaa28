// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package gateway provides the HTTP client for the muse backend API:
// chat, vision chat, image generation with provider fallback, image
// editing, and health checks.
//
// Two error shapes come back to callers. A BackendError wraps a
// message the backend itself produced (its "status":"error" body) and
// is shown to the user verbatim. A ClientError is a transport-level
// failure (connection refused, timeout, malformed response) and gets a
// generic user-facing message instead.
package gateway

// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package session holds the mutable conversation state: the turn
// history sent to the backend, the last generated image, any pending
// upload marked for editing, and the selected model.
//
// All access goes through State, which is safe for concurrent use.
// The history wire shape (role + typed parts) is exactly what the
// backend's chat endpoints consume, so History() output marshals
// straight into request bodies.
package session

// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package session

import "time"

// ============================================================================
// WIRE TYPES
// ============================================================================

// Part is one piece of a turn: text, an image data URL, or both.
// Field names match the backend's expected history shape.
type Part struct {
	Text  string `json:"text,omitempty"`
	Image string `json:"image,omitempty"`
}

// Turn is one conversation turn as sent to the backend.
type Turn struct {
	// Role is "user" or "model".
	Role  string `json:"role"`
	Parts []Part `json:"parts"`
}

// Role values for Turn.
const (
	RoleUser  = "user"
	RoleModel = "model"
)

// UserTurn builds a user turn from a message and an optional image
// data URL.
func UserTurn(text, imageDataURL string) Turn {
	parts := []Part{{Text: text}}
	if imageDataURL != "" {
		parts = append(parts, Part{Image: imageDataURL})
	}
	return Turn{Role: RoleUser, Parts: parts}
}

// ModelTurn builds a model turn from a response text and an optional
// image data URL.
func ModelTurn(text, imageDataURL string) Turn {
	parts := []Part{{Text: text}}
	if imageDataURL != "" {
		parts = append(parts, Part{Image: imageDataURL})
	}
	return Turn{Role: RoleModel, Parts: parts}
}

// ============================================================================
// IMAGES
// ============================================================================

// GeneratedImage records the most recent backend-produced image so a
// later edit request can target it.
type GeneratedImage struct {
	DataURL   string    `json:"dataUrl"`
	Prompt    string    `json:"prompt"`
	Timestamp time.Time `json:"timestamp"`
}

// PendingUpload is a previously uploaded image the user explicitly
// marked for editing.
type PendingUpload struct {
	// ID is a unique handle for the upload, used to correlate the
	// transcript entry with the stored bytes.
	ID string
	// DataURL is the uploaded image as a data URL.
	DataURL string
}

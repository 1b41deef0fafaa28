// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package session

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// ============================================================================
// CONVERSATION STATE
// ============================================================================

// State is the mutable conversation state. Safe for concurrent use.
type State struct {
	mu sync.Mutex

	history       []Turn
	lastGenerated *GeneratedImage
	pendingUpload *PendingUpload
	model         string
}

// NewState returns an empty state with the default model selected.
func NewState() *State {
	return &State{model: DefaultModel}
}

// ============================================================================
// HISTORY
// ============================================================================

// AppendTurn adds a turn to the history.
func (s *State) AppendTurn(t Turn) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.history = append(s.history, t)
}

// History returns a copy of the turn history.
func (s *State) History() []Turn {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Turn, len(s.history))
	copy(out, s.history)
	return out
}

// SetHistory replaces the history, e.g. after loading a persisted
// session.
func (s *State) SetHistory(turns []Turn) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.history = make([]Turn, len(turns))
	copy(s.history, turns)
}

// TurnCount returns the number of turns in the history.
func (s *State) TurnCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.history)
}

// TruncateHistory keeps only the most recent n turns.
func (s *State) TruncateHistory(n int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.history) > n {
		s.history = append([]Turn(nil), s.history[len(s.history)-n:]...)
	}
}

// ============================================================================
// IMAGES
// ============================================================================

// SetLastGenerated records the most recent generated image.
func (s *State) SetLastGenerated(dataURL, prompt string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lastGenerated = &GeneratedImage{
		DataURL:   dataURL,
		Prompt:    prompt,
		Timestamp: time.Now(),
	}
}

// LastGenerated returns the most recent generated image, or nil.
func (s *State) LastGenerated() *GeneratedImage {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.lastGenerated == nil {
		return nil
	}
	img := *s.lastGenerated
	return &img
}

// MarkPendingUpload registers an uploaded image as the edit target and
// returns its generated ID.
func (s *State) MarkPendingUpload(dataURL string) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := uuid.NewString()
	s.pendingUpload = &PendingUpload{ID: id, DataURL: dataURL}
	return id
}

// PendingUpload returns the marked upload, or nil.
func (s *State) PendingUpload() *PendingUpload {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.pendingUpload == nil {
		return nil
	}
	up := *s.pendingUpload
	return &up
}

// ClearPendingUpload drops the marked upload. Called after a
// successful edit, never on failure, so the user can retry.
func (s *State) ClearPendingUpload() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.pendingUpload = nil
}

// ============================================================================
// MODEL SELECTION
// ============================================================================

// Model returns the selected model.
func (s *State) Model() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.model
}

// SetModel selects a model. Unknown names fall back to the default.
func (s *State) SetModel(name string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !IsKnownModel(name) {
		name = DefaultModel
	}
	s.model = name
}

// ============================================================================
// RESET
// ============================================================================

// Reset clears the conversation: history, images, pending upload, and
// the model selection, which returns to the default.
func (s *State) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.history = nil
	s.lastGenerated = nil
	s.pendingUpload = nil
	s.model = DefaultModel
}

// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package router

import "fmt"

// ============================================================================
// HANDLER KIND
// ============================================================================

// Kind identifies the handler selected for an utterance.
type Kind int

const (
	// KindTimeAnswer is a locally answered time/date question. The
	// Decision carries the final response text; classification and
	// execution are fused for this branch only.
	KindTimeAnswer Kind = iota
	// KindGenerate is an image-generation request.
	KindGenerate
	// KindEdit is an image-edit request; see EditSource.
	KindEdit
	// KindVision is a chat about an attached image.
	KindVision
	// KindChat is plain text chat, the default.
	KindChat
)

// String returns the human-readable name of the handler kind.
func (k Kind) String() string {
	switch k {
	case KindTimeAnswer:
		return "TimeAnswer"
	case KindGenerate:
		return "Generate"
	case KindEdit:
		return "Edit"
	case KindVision:
		return "Vision"
	case KindChat:
		return "Chat"
	default:
		return fmt.Sprintf("Kind(%d)", k)
	}
}

// ============================================================================
// EDIT SOURCE
// ============================================================================

// EditSource identifies which image an edit request targets.
type EditSource int

const (
	// SourceNone means the decision is not an edit.
	SourceNone EditSource = iota
	// SourceAttached edits the image attached to this very message.
	SourceAttached
	// SourcePendingUpload edits a previously uploaded image the user
	// explicitly marked for editing.
	SourcePendingUpload
	// SourceLastGenerated edits the most recently generated image.
	SourceLastGenerated
)

// String returns the human-readable name of the edit source.
func (s EditSource) String() string {
	switch s {
	case SourceNone:
		return "None"
	case SourceAttached:
		return "Attached"
	case SourcePendingUpload:
		return "PendingUpload"
	case SourceLastGenerated:
		return "LastGenerated"
	default:
		return fmt.Sprintf("EditSource(%d)", s)
	}
}

// ============================================================================
// DECISION
// ============================================================================

// Decision is the outcome of classifying one utterance: exactly one
// handler plus the payload extracted for it.
type Decision struct {
	// Kind is the selected handler.
	Kind Kind
	// Answer is the final response text for KindTimeAnswer.
	Answer string
	// Prompt is the extracted payload: the generation prompt, the edit
	// instruction, or the chat message.
	Prompt string
	// EditSource identifies the edit target for KindEdit.
	EditSource EditSource
	// Rule names the cascade rule that matched, for logging.
	Rule string
}

// String returns a short summary of the decision.
func (d Decision) String() string {
	if d.Kind == KindEdit {
		return fmt.Sprintf("%s[%s] (rule=%s)", d.Kind, d.EditSource, d.Rule)
	}
	return fmt.Sprintf("%s (rule=%s)", d.Kind, d.Rule)
}

// ============================================================================
// CLASSIFICATION CONTEXT
// ============================================================================

// Context is the ephemeral state the cascade consults besides the
// utterance itself.
type Context struct {
	// HasAttachedImage is true when an image accompanies this message.
	HasAttachedImage bool
	// HasPendingUpload is true when a previously uploaded image has
	// been marked for editing.
	HasPendingUpload bool
	// HasGeneratedImage is true when a last-generated image exists.
	HasGeneratedImage bool
}

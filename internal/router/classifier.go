// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package router

import (
	"time"

	"github.com/jeranaias/muse-tui/internal/clock"
)

// DefaultVisionPrompt is substituted when an image arrives with an
// empty or whitespace-only message.
const DefaultVisionPrompt = "Describe this image in detail."

// ============================================================================
// CLASSIFIER
// ============================================================================

// Classifier evaluates the handler cascade. The zero value is not
// usable; construct with NewClassifier.
type Classifier struct {
	// Now supplies the current instant for the fused time branch.
	Now func() time.Time
	// Location is the user's zone for local-time answers.
	Location *time.Location
}

// NewClassifier returns a classifier using wall-clock time and the
// process-local zone.
func NewClassifier() *Classifier {
	return &Classifier{
		Now:      time.Now,
		Location: time.Local,
	}
}

// rule is one (predicate, handler) pair of the cascade. match returns
// the decision and true when the rule claims the utterance.
type rule struct {
	name  string
	match func(c *Classifier, utterance string, ctx Context) (Decision, bool)
}

// rules is the cascade in evaluation order. First match wins; later
// rules are not evaluated.
var rules = []rule{
	{
		// Time and date questions are answered locally, but only when
		// no image is attached - an attached image always means the
		// message is about the image.
		name: "time-query",
		match: func(c *Classifier, utterance string, ctx Context) (Decision, bool) {
			if ctx.HasAttachedImage {
				return Decision{}, false
			}
			answer, ok := clock.HandleTimeQuery(utterance, c.Now(), c.Location)
			if !ok {
				return Decision{}, false
			}
			return Decision{Kind: KindTimeAnswer, Answer: answer}, true
		},
	},
	{
		name: "image-generate",
		match: func(c *Classifier, utterance string, ctx Context) (Decision, bool) {
			if ctx.HasAttachedImage || !IsImageGenerationRequest(utterance) {
				return Decision{}, false
			}
			return Decision{Kind: KindGenerate, Prompt: ExtractImagePrompt(utterance)}, true
		},
	},
	{
		// Edit wording plus a freshly attached image beats generic
		// vision chat, even when a last-generated image also exists.
		name: "edit-attached",
		match: func(c *Classifier, utterance string, ctx Context) (Decision, bool) {
			if !ctx.HasAttachedImage || !IsImageEditRequest(utterance) {
				return Decision{}, false
			}
			return Decision{
				Kind:       KindEdit,
				EditSource: SourceAttached,
				Prompt:     ExtractEditPrompt(utterance),
			}, true
		},
	},
	{
		// An explicitly marked upload takes priority over a stale
		// generated image, so this rule precedes edit-last-generated.
		name: "edit-pending-upload",
		match: func(c *Classifier, utterance string, ctx Context) (Decision, bool) {
			if ctx.HasAttachedImage || !ctx.HasPendingUpload || !IsImageEditRequest(utterance) {
				return Decision{}, false
			}
			return Decision{
				Kind:       KindEdit,
				EditSource: SourcePendingUpload,
				Prompt:     ExtractEditPrompt(utterance),
			}, true
		},
	},
	{
		name: "edit-last-generated",
		match: func(c *Classifier, utterance string, ctx Context) (Decision, bool) {
			if ctx.HasAttachedImage || !ctx.HasGeneratedImage || !IsImageEditRequest(utterance) {
				return Decision{}, false
			}
			return Decision{
				Kind:       KindEdit,
				EditSource: SourceLastGenerated,
				Prompt:     ExtractEditPrompt(utterance),
			}, true
		},
	},
	{
		name: "vision-chat",
		match: func(c *Classifier, utterance string, ctx Context) (Decision, bool) {
			if !ctx.HasAttachedImage {
				return Decision{}, false
			}
			prompt := utterance
			if isBlank(prompt) {
				prompt = DefaultVisionPrompt
			}
			return Decision{Kind: KindVision, Prompt: prompt}, true
		},
	},
	{
		name: "plain-chat",
		match: func(c *Classifier, utterance string, ctx Context) (Decision, bool) {
			return Decision{Kind: KindChat, Prompt: utterance}, true
		},
	},
}

// Classify selects exactly one handler for the utterance. The final
// plain-chat rule always matches, so a decision is always returned.
func (c *Classifier) Classify(utterance string, ctx Context) Decision {
	for _, r := range rules {
		if d, ok := r.match(c, utterance, ctx); ok {
			d.Rule = r.name
			return d
		}
	}
	// Unreachable: the last rule is a catch-all.
	return Decision{Kind: KindChat, Prompt: utterance, Rule: "plain-chat"}
}

func isBlank(s string) bool {
	for _, r := range s {
		if r != ' ' && r != '\t' && r != '\n' && r != '\r' {
			return false
		}
	}
	return true
}

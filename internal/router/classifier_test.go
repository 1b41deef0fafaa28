// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package router

import (
	"strings"
	"testing"
	"time"
)

func testClassifier() *Classifier {
	return &Classifier{
		Now:      func() time.Time { return time.Date(2025, time.January, 15, 20, 30, 5, 0, time.UTC) },
		Location: time.UTC,
	}
}

func TestClassifyCascadeOrder(t *testing.T) {
	c := testClassifier()

	tests := []struct {
		name       string
		utterance  string
		ctx        Context
		wantKind   Kind
		wantSource EditSource
	}{
		{
			name:      "plain_chat_default",
			utterance: "tell me about go interfaces",
			wantKind:  KindChat,
		},
		{
			name:      "time_query",
			utterance: "what time is it",
			wantKind:  KindTimeAnswer,
		},
		{
			name:      "international_time_query",
			utterance: "what time is it in Tokyo",
			wantKind:  KindTimeAnswer,
		},
		{
			// Step 1 precedes step 2: a time question that also carries
			// a generation command is still a time question.
			name:      "time_beats_generation",
			utterance: "what time is it /img a clock",
			wantKind:  KindTimeAnswer,
		},
		{
			name:      "generation_command",
			utterance: "/img a red bicycle",
			wantKind:  KindGenerate,
		},
		{
			name:      "generation_natural_language",
			utterance: "please generate an image of a sunset",
			wantKind:  KindGenerate,
		},
		{
			// Generation is only eligible without an attached image.
			name:      "attached_image_suppresses_generation",
			utterance: "/img something",
			ctx:       Context{HasAttachedImage: true},
			wantKind:  KindVision,
		},
		{
			// Attached image plus edit wording routes to edit-attached,
			// never vision chat, even with a generated image present.
			name:       "edit_attached_beats_vision",
			utterance:  "/edit make the sky purple",
			ctx:        Context{HasAttachedImage: true, HasGeneratedImage: true},
			wantKind:   KindEdit,
			wantSource: SourceAttached,
		},
		{
			// A marked upload outranks a stale generated image.
			name:       "pending_upload_beats_last_generated",
			utterance:  "/edit add a hat",
			ctx:        Context{HasPendingUpload: true, HasGeneratedImage: true},
			wantKind:   KindEdit,
			wantSource: SourcePendingUpload,
		},
		{
			name:       "edit_last_generated",
			utterance:  "/edit add a hat",
			ctx:        Context{HasGeneratedImage: true},
			wantKind:   KindEdit,
			wantSource: SourceLastGenerated,
		},
		{
			// Edit wording with no target at all falls through to chat.
			name:      "edit_without_target_is_chat",
			utterance: "/edit add a hat",
			wantKind:  KindChat,
		},
		{
			name:      "vision_chat",
			utterance: "what breed is this dog",
			ctx:       Context{HasAttachedImage: true},
			wantKind:  KindVision,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := c.Classify(tt.utterance, tt.ctx)
			if d.Kind != tt.wantKind {
				t.Fatalf("Classify(%q, %+v).Kind = %s, want %s (rule=%s)",
					tt.utterance, tt.ctx, d.Kind, tt.wantKind, d.Rule)
			}
			if tt.wantKind == KindEdit && d.EditSource != tt.wantSource {
				t.Errorf("EditSource = %s, want %s", d.EditSource, tt.wantSource)
			}
		})
	}
}

func TestClassifyPayloads(t *testing.T) {
	c := testClassifier()

	d := c.Classify("/img a red bicycle", Context{})
	if d.Prompt != "a red bicycle" {
		t.Errorf("generation payload = %q, want %q", d.Prompt, "a red bicycle")
	}

	d = c.Classify("/edit make the sky purple", Context{HasGeneratedImage: true})
	if d.Prompt != "make the sky purple" {
		t.Errorf("edit payload = %q, want %q", d.Prompt, "make the sky purple")
	}

	// Whitespace-only message with an image gets the default
	// instruction substituted.
	d = c.Classify("   ", Context{HasAttachedImage: true})
	if d.Kind != KindVision || d.Prompt != DefaultVisionPrompt {
		t.Errorf("blank vision payload = %q, want default instruction", d.Prompt)
	}

	// Time answers carry the final text directly.
	d = c.Classify("what time is it in Tokyo", Context{})
	if d.Answer == "" || !strings.Contains(d.Answer, "Japan Standard Time") {
		t.Errorf("time answer = %q, want Tokyo zone name", d.Answer)
	}
}

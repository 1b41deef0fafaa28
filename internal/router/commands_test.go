// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package router

import "testing"

func TestIsImageGenerationRequest(t *testing.T) {
	tests := []struct {
		name     string
		prompt   string
		expected bool
	}{
		{"slash_img", "/img a cat", true},
		{"slash_gen_uppercase", "/GEN a cat", true},
		{"natural_language", "please generate an image of a cat", true},
		{"make_picture", "make picture of a boat", true},
		{"plain_text", "how are you today", false},
		{"embedded_substring_quirk", "look at /image.png", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsImageGenerationRequest(tt.prompt); got != tt.expected {
				t.Errorf("IsImageGenerationRequest(%q) = %v, want %v", tt.prompt, got, tt.expected)
			}
		})
	}
}

func TestIsImageEditRequest(t *testing.T) {
	tests := []struct {
		name     string
		prompt   string
		expected bool
	}{
		{"slash_edit", "/edit add a hat", true},
		{"natural_language", "change the image to night time", true},
		{"enhance_phrase", "enhance the image please", true},
		{"plain_text", "what is the weather", false},
		{"embedded_substring_quirk", "my credit score", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsImageEditRequest(tt.prompt); got != tt.expected {
				t.Errorf("IsImageEditRequest(%q) = %v, want %v", tt.prompt, got, tt.expected)
			}
		})
	}
}

func TestExtractImagePrompt(t *testing.T) {
	tests := []struct {
		name     string
		prompt   string
		expected string
	}{
		{"slash_command", "/img a red bicycle", "a red bicycle"},
		{"longest_phrase_first", "generate an image of a sunset", "a sunset"},
		{"case_insensitive", "Generate An Image Of a sunset", "a sunset"},
		{"multiple_occurrences", "/img /img twice", "twice"},
		{"bare_command_falls_back_to_original", "/img", "/img"},
		{"no_command_unchanged", "a quiet forest", "a quiet forest"},
		// U+0130 grows by a byte under full Unicode lowercasing;
		// stripping must not shift offsets around it.
		{"multibyte_fold_before_command", "İ/img sunset", "İ sunset"},
		{"multibyte_fold_in_payload", "draw an image of İstanbul", "İstanbul"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ExtractImagePrompt(tt.prompt); got != tt.expected {
				t.Errorf("ExtractImagePrompt(%q) = %q, want %q", tt.prompt, got, tt.expected)
			}
		})
	}
}

func TestExtractEditPrompt(t *testing.T) {
	tests := []struct {
		name     string
		prompt   string
		expected string
	}{
		{"slash_command", "/edit add a hat", "add a hat"},
		{"phrase_with_colon", "edit the image: brighter colors", "brighter colors"},
		{"phrase_without_colon", "change the image to night", "to night"},
		{"bare_command_falls_back_to_original", "/edit", "/edit"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ExtractEditPrompt(tt.prompt); got != tt.expected {
				t.Errorf("ExtractEditPrompt(%q) = %q, want %q", tt.prompt, got, tt.expected)
			}
		})
	}
}

// Extraction must be idempotent: running it again on an already
// command-free payload returns the same string unchanged.
func TestExtractionIdempotence(t *testing.T) {
	once := ExtractImagePrompt("/img a red bicycle")
	twice := ExtractImagePrompt(once)
	if once != twice {
		t.Errorf("image extraction not idempotent: %q -> %q", once, twice)
	}

	once = ExtractEditPrompt("/edit add a hat")
	twice = ExtractEditPrompt(once)
	if once != twice {
		t.Errorf("edit extraction not idempotent: %q -> %q", once, twice)
	}
}

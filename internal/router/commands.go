// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package router

import (
	"strings"

	"github.com/jeranaias/muse-tui/internal/lang"
)

// ============================================================================
// COMMAND VOCABULARY
// ============================================================================

// imageCommands detect an image-generation request.
var imageCommands = []string{
	"/img",
	"/gen",
	"/generate",
	"/image",
	"generate an image",
	"generate image",
	"create an image",
	"create image",
	"make an image",
	"make image",
	"draw an image",
	"draw image",
	"i want an image",
	"i want image",
	"i need an image",
	"i need image",
	"show me an image",
	"show me image",
	"generate picture",
	"create picture",
	"make picture",
	"draw picture",
	"generate photo",
	"create photo",
}

// editCommands detect an image-edit request. The bare "edit" token is
// part of the vocabulary, so any utterance containing it as a
// substring matches - including words like "credit". Documented quirk.
var editCommands = []string{
	"/edit",
	"/modify",
	"/change",
	"edit",
	"edit the image",
	"edit image",
	"modify the image",
	"modify image",
	"change the image",
	"change image",
	"update the image",
	"update image",
	"improve the image",
	"improve image",
	"enhance the image",
	"enhance image",
}

// IsImageGenerationRequest reports whether the utterance contains any
// generation command token or phrasing.
func IsImageGenerationRequest(prompt string) bool {
	return lang.ContainsAny(prompt, imageCommands)
}

// IsImageEditRequest reports whether the utterance contains any edit
// command token or phrasing. Target availability is the cascade's
// concern, not this predicate's.
func IsImageEditRequest(prompt string) bool {
	return lang.ContainsAny(prompt, editCommands)
}

// ============================================================================
// PAYLOAD EXTRACTION
// ============================================================================

// Extraction phrase lists are ordered longest-first per category so a
// longer phrase is consumed before any of its prefixes, e.g.
// "generate an image of" before "generate an image" before
// "generate image". Removal is case-insensitive and strips every
// occurrence.

var imagePromptPhrases = []string{
	"generate an image of",
	"show me an image of",
	"generate picture of",
	"i want an image of",
	"i need an image of",
	"create an image of",
	"generate image of",
	"generate photo of",
	"create picture of",
	"make an image of",
	"draw an image of",
	"show me image of",
	"generate an image",
	"generate picture",
	"i want image of",
	"i need image of",
	"create an image",
	"create image of",
	"create photo of",
	"make picture of",
	"draw picture of",
	"generate image",
	"generate photo",
	"create picture",
	"make an image",
	"draw an image",
	"make image of",
	"draw image of",
	"create image",
	"create photo",
	"make picture",
	"draw picture",
	"make image",
	"draw image",
	"/generate",
	"/image",
	"/img",
	"/gen",
}

var editPromptPhrases = []string{
	"modify the image:",
	"change the image:",
	"update the image:",
	"modify the image",
	"change the image",
	"update the image",
	"edit the image:",
	"edit the image",
	"modify image:",
	"change image:",
	"update image:",
	"modify image",
	"change image",
	"update image",
	"edit image:",
	"edit image",
	"/modify",
	"/change",
	"/edit",
}

// lowerASCII lowercases only the ASCII letters of s. Unlike
// strings.ToLower it never changes byte length, so offsets into the
// result are valid in s even when s contains runes like U+0130 whose
// full lowercase form grows.
func lowerASCII(s string) string {
	return strings.Map(func(r rune) rune {
		if r >= 'A' && r <= 'Z' {
			return r + ('a' - 'A')
		}
		return r
	}, s)
}

// removeAllFold strips every case-insensitive occurrence of phrase
// from s. Phrases are ASCII.
func removeAllFold(s, phrase string) string {
	folded := lowerASCII(phrase)
	for {
		idx := strings.Index(lowerASCII(s), folded)
		if idx < 0 {
			return s
		}
		s = s[:idx] + s[idx+len(phrase):]
	}
}

func stripPhrases(prompt string, phrases []string) string {
	clean := prompt
	for _, phrase := range phrases {
		clean = removeAllFold(clean, phrase)
	}
	clean = strings.TrimSpace(clean)
	if clean == "" {
		// Nothing left after stripping; hand the backend the original
		// utterance rather than an empty prompt.
		return prompt
	}
	return clean
}

// ExtractImagePrompt strips generation command phrases from the
// utterance and returns the remaining prompt. Idempotent on an
// already-clean payload.
func ExtractImagePrompt(prompt string) string {
	return stripPhrases(prompt, imagePromptPhrases)
}

// ExtractEditPrompt strips edit command phrases from the utterance and
// returns the remaining instruction. Idempotent on an already-clean
// payload.
func ExtractEditPrompt(prompt string) string {
	return stripPhrases(prompt, editPromptPhrases)
}

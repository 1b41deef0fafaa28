// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package lang

import (
	"strings"

	"golang.org/x/text/language"
)

// ============================================================================
// SUBSTRING MEMBERSHIP
// ============================================================================

// ContainsAny reports whether the lower-cased form of s contains any of
// the given patterns. Patterns are folded too, so callers may mix case.
func ContainsAny(s string, patterns []string) bool {
	lower := strings.ToLower(s)
	for _, p := range patterns {
		if strings.Contains(lower, strings.ToLower(p)) {
			return true
		}
	}
	return false
}

// ============================================================================
// LANGUAGE DETECTION
// ============================================================================

// bengaliPatterns are the script-specific keywords whose presence marks
// an utterance as Bengali. Responses are then rendered in Bengali.
var bengaliPatterns = []string{
	"কয়টা বাজে",
	"কত বাজে",
	"সময় কত",
	"সময় কি",
	"এখন কয়টা",
	"বর্তমান সময়",
	"এখনকার সময়",
	"এখন কত বজে",
	"টাইম কত",
	"কত টাইম",
	"সময় বলো",
	"সময় জানতে চাই",
	"সময়",
	"ঘন্টা",
	"মিনিট",
	"বাজে",
	"কয়টা",
	"কত",
	"এখন",
}

// supported is the set of response languages, English first so the
// matcher falls back to it.
var supported = []language.Tag{
	language.English,
	language.Bengali,
}

// Matcher matches arbitrary BCP 47 tags against the supported set.
var Matcher = language.NewMatcher(supported)

// IsBengali reports whether the utterance contains any Bengali keyword.
func IsBengali(prompt string) bool {
	return ContainsAny(prompt, bengaliPatterns)
}

// Detect returns the response language for an utterance: Bengali when a
// script-specific keyword is present, English otherwise.
func Detect(prompt string) language.Tag {
	if IsBengali(prompt) {
		return language.Bengali
	}
	return language.English
}

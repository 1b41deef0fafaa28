// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package router classifies user utterances into exactly one handler.
//
// The classifier is an ordered cascade of predicates evaluated in a
// single pass; the first matching rule wins and later rules are never
// consulted. Evaluation order is fixed and significant:
//
//  1. Time/date question (no image attached) - answered locally
//  2. Image generation command
//  3. Edit of a freshly attached image
//  4. Edit of a previously marked upload
//  5. Edit of the last generated image
//  6. Vision chat (image attached, no edit wording)
//  7. Plain chat (default)
//
// The result is a tagged Decision value, not a side effect, so the
// cascade can be tested without a UI or a network.
//
// Command matching is pure substring containment after case folding:
// no tokenization, no word boundaries. A command token embedded inside
// a longer word still matches. That is a documented quirk of the
// vocabulary, kept deliberately.
package router

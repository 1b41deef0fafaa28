// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package lang provides the keyword membership tests used by every
// classifier in muse.
//
// Matching is deliberately crude: lower-cased substring containment,
// no tokenization, no word boundaries. A keyword embedded inside a
// longer word still matches. This mirrors how the classifiers are
// specified and keeps behavior predictable across both supported
// languages (English and Bengali).
package lang

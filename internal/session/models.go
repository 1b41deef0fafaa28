// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package session

// ============================================================================
// MODEL CATALOG
// ============================================================================

// DefaultModel is selected when no stored preference exists or the
// stored value is not in the catalog.
const DefaultModel = "gemini-2.0-flash"

// Models is the selectable model catalog, in display order.
var Models = []string{
	"gemini-2.0-flash",
	"gemini-2.5-flash",
	"gemini-2.5-flash-lite",
	"gemini-2.5-pro",
	"gemini-1.5-flash",
	"gemini-1.5-flash-8b",
}

// IsKnownModel reports whether name is in the catalog.
func IsKnownModel(name string) bool {
	for _, m := range Models {
		if m == name {
			return true
		}
	}
	return false
}

// NextModel returns the catalog entry after name, wrapping around.
// An unknown name yields the first entry.
func NextModel(name string) string {
	for i, m := range Models {
		if m == name {
			return Models[(i+1)%len(Models)]
		}
	}
	return Models[0]
}

// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package clock

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
	"time"

	// Embedded zone database so the place table resolves even on hosts
	// without system zoneinfo.
	_ "time/tzdata"

	"golang.org/x/text/language"

	"github.com/jeranaias/muse-tui/internal/lang"
)

// ============================================================================
// QUERY PREDICATES
// ============================================================================

// IsTimeQuery reports whether the utterance asks for the current time.
func IsTimeQuery(prompt string) bool {
	return lang.ContainsAny(prompt, timePatterns)
}

// IsDateQuery reports whether the utterance asks for a date calculation.
func IsDateQuery(prompt string) bool {
	return lang.ContainsAny(prompt, datePatterns)
}

// IsInternationalTimeQuery reports whether the utterance asks for the
// time at a recognized place: a place keyword must be present together
// with either a time-query keyword or the literal substring "time".
func IsInternationalTimeQuery(prompt string) bool {
	if !lang.ContainsAny(prompt, placeKeywords) {
		return false
	}
	return IsTimeQuery(prompt) || strings.Contains(strings.ToLower(prompt), "time")
}

// ============================================================================
// INTERNATIONAL TIME
// ============================================================================

// ResolveInternational maps the first place name contained in the
// utterance to its zone and renders the current time there. The second
// return is false when no table entry matches.
func ResolveInternational(prompt string, now time.Time) (string, bool) {
	lower := strings.ToLower(prompt)
	for _, entry := range zoneTable {
		if !strings.Contains(lower, entry.Place) {
			continue
		}
		loc, err := time.LoadLocation(entry.Zone)
		if err != nil {
			// Zone database entry missing on this host; try the next match.
			continue
		}
		local := now.In(loc)
		tag := lang.Detect(prompt)
		formatted := formatDateTime(local, tag, false) + " " + ZoneName(local)
		if tag == language.Bengali {
			return fmt.Sprintf("এখন %s এর সময়: %s", entry.Place, formatted), true
		}
		return fmt.Sprintf("Current time in %s: %s", entry.Place, formatted), true
	}
	return "", false
}

// ============================================================================
// DATE ARITHMETIC
// ============================================================================

var firstIntRe = regexp.MustCompile(`(\d+)`)

// firstInt extracts the first integer literal in the utterance, 0 if none.
func firstInt(prompt string) int {
	m := firstIntRe.FindString(prompt)
	if m == "" {
		return 0
	}
	n, err := strconv.Atoi(m)
	if err != nil {
		return 0
	}
	return n
}

type dateUnit int

const (
	unitNone dateUnit = iota
	unitDay
	unitMonth
	unitYear
)

// detectUnit picks the offset unit by first keyword match, in
// day -> month -> year priority order.
func detectUnit(lower string) dateUnit {
	switch {
	case strings.Contains(lower, "দিন") || strings.Contains(lower, "day"):
		return unitDay
	case strings.Contains(lower, "মাস") || strings.Contains(lower, "month"):
		return unitMonth
	case strings.Contains(lower, "বছর") || strings.Contains(lower, "year"):
		return unitYear
	default:
		return unitNone
	}
}

func (u dateUnit) english() string {
	switch u {
	case unitMonth:
		return "month"
	case unitYear:
		return "year"
	default:
		return "day"
	}
}

func (u dateUnit) bengali() string {
	switch u {
	case unitMonth:
		return "মাস"
	case unitYear:
		return "বছর"
	default:
		return "দিন"
	}
}

// CalculateDate computes a calendar-aware date offset described by the
// utterance and renders it as a sentence with a day-count annotation.
//
// When neither a forward nor a backward direction keyword is present
// the date is deliberately left unchanged and the answer reads
// "Today: ..." - ambiguous intent resolves to a no-op, not an error.
func CalculateDate(prompt string, now time.Time) string {
	lower := strings.ToLower(prompt)
	num := firstInt(prompt)
	unit := detectUnit(lower)

	forward := strings.Contains(lower, "পর") ||
		strings.Contains(lower, "from now") ||
		strings.Contains(lower, "after")
	backward := strings.Contains(lower, "আগে") ||
		strings.Contains(lower, "ago") ||
		strings.Contains(lower, "before")

	result := now
	if unit != unitNone {
		sign := 0
		if forward {
			sign = 1
		} else if backward {
			sign = -1
		}
		switch unit {
		case unitDay:
			result = now.AddDate(0, 0, sign*num)
		case unitMonth:
			// AddDate normalizes overflow the same way Date.setMonth
			// does: Jan 31 + 1 month lands in early March.
			result = now.AddDate(0, sign*num, 0)
		case unitYear:
			result = now.AddDate(sign*num, 0, 0)
		}
	}

	daysDiff := int(math.Floor(result.Sub(now).Hours() / 24))
	tag := lang.Detect(prompt)
	formatted := formatDate(result, tag)

	if tag == language.Bengali {
		switch {
		case daysDiff == 0:
			return "আজ: " + formatted
		case daysDiff > 0:
			return fmt.Sprintf("%s %s পর: %s (আজ থেকে %s দিন পর)",
				bengaliNumber(num), unit.bengali(), formatted, bengaliNumber(daysDiff))
		default:
			return fmt.Sprintf("%s %s আগে: %s (আজ থেকে %s দিন আগে)",
				bengaliNumber(num), unit.bengali(), formatted, bengaliNumber(-daysDiff))
		}
	}

	unitWord := unit.english()
	if num > 1 {
		unitWord += "s"
	}
	switch {
	case daysDiff == 0:
		return "Today: " + formatted
	case daysDiff > 0:
		return fmt.Sprintf("%d %s from now: %s (%d days from today)",
			num, unitWord, formatted, daysDiff)
	default:
		return fmt.Sprintf("%d %s ago: %s (%d days ago)",
			num, unitWord, formatted, -daysDiff)
	}
}

// ============================================================================
// LOCAL CURRENT TIME
// ============================================================================

// CurrentTime renders the current instant in the caller's zone, with
// seconds and the long zone name.
func CurrentTime(prompt string, now time.Time, loc *time.Location) string {
	local := now.In(loc)
	tag := lang.Detect(prompt)
	formatted := formatDateTime(local, tag, true) + " " + ZoneName(local)
	if tag == language.Bengali {
		return "আপনার বর্তমান সময়: " + formatted
	}
	return "Current time: " + formatted
}

// ============================================================================
// FUSED TIME-QUERY HANDLER
// ============================================================================

// HandleTimeQuery runs the time sub-cascade: international time, then
// date arithmetic, then plain current time. First sub-match wins. The
// second return is false when the utterance is not a time question at
// all and classification should move on.
func HandleTimeQuery(prompt string, now time.Time, loc *time.Location) (string, bool) {
	if IsInternationalTimeQuery(prompt) {
		if resp, ok := ResolveInternational(prompt, now); ok {
			return resp, true
		}
	}
	if IsDateQuery(prompt) {
		return CalculateDate(prompt, now), true
	}
	if IsTimeQuery(prompt) {
		return CurrentTime(prompt, now, loc), true
	}
	return "", false
}

// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package clock

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"golang.org/x/text/language"
)

// ============================================================================
// BENGALI RENDERING TABLES
// ============================================================================

// Indexed by time.Month - 1.
var bengaliMonths = [12]string{
	"জানুয়ারি", "ফেব্রুয়ারি", "মার্চ", "এপ্রিল", "মে", "জুন",
	"জুলাই", "আগস্ট", "সেপ্টেম্বর", "অক্টোবর", "নভেম্বর", "ডিসেম্বর",
}

// Indexed by time.Weekday (Sunday = 0).
var bengaliWeekdays = [7]string{
	"রবিবার", "সোমবার", "মঙ্গলবার", "বুধবার", "বৃহস্পতিবার", "শুক্রবার", "শনিবার",
}

// toBengaliDigits converts ASCII digits to Bengali numerals.
func toBengaliDigits(s string) string {
	var sb strings.Builder
	sb.Grow(len(s) * 3)
	for _, r := range s {
		if r >= '0' && r <= '9' {
			sb.WriteRune('০' + (r - '0'))
			continue
		}
		sb.WriteRune(r)
	}
	return sb.String()
}

func bengaliNumber(n int) string {
	return toBengaliDigits(strconv.Itoa(n))
}

// bengaliDayPart returns the Bengali part-of-day word for an hour.
func bengaliDayPart(hour int) string {
	switch {
	case hour >= 4 && hour < 12:
		return "সকাল"
	case hour >= 12 && hour < 16:
		return "দুপুর"
	case hour >= 16 && hour < 20:
		return "বিকাল"
	default:
		return "রাত"
	}
}

// ============================================================================
// DATE / TIME FORMATTING
// ============================================================================

// formatDate renders a full weekday-and-date string in the given
// response language, e.g. "Wednesday, January 15, 2025" or
// "বুধবার, ১৫ জানুয়ারি ২০২৫".
func formatDate(t time.Time, tag language.Tag) string {
	if tag == language.Bengali {
		return fmt.Sprintf("%s, %s %s %s",
			bengaliWeekdays[t.Weekday()],
			bengaliNumber(t.Day()),
			bengaliMonths[t.Month()-1],
			bengaliNumber(t.Year()))
	}
	return t.Format("Monday, January 2, 2006")
}

// formatDateTime renders weekday, date and clock time in the given
// response language. Seconds are included only when withSeconds is set
// (the local current-time answer carries them, the international one
// does not).
func formatDateTime(t time.Time, tag language.Tag, withSeconds bool) string {
	if tag == language.Bengali {
		hour12 := t.Hour() % 12
		if hour12 == 0 {
			hour12 = 12
		}
		clock := fmt.Sprintf("%s %s:%s", bengaliDayPart(t.Hour()),
			bengaliNumber(hour12), toBengaliDigits(fmt.Sprintf("%02d", t.Minute())))
		if withSeconds {
			clock += ":" + toBengaliDigits(fmt.Sprintf("%02d", t.Second()))
		}
		return formatDate(t, tag) + ", " + clock
	}
	layout := "Monday, January 2, 2006 at 3:04 PM"
	if withSeconds {
		layout = "Monday, January 2, 2006 at 3:04:05 PM"
	}
	return t.Format(layout)
}

// ZoneName returns the long display name for a zone, falling back to
// the abbreviation in effect at t.
func ZoneName(t time.Time) string {
	if name, ok := longZoneNames[t.Location().String()]; ok {
		return name
	}
	return t.Format("MST")
}

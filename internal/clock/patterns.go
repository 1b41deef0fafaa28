// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package clock

// ============================================================================
// QUERY PATTERN TABLES
// ============================================================================

// timePatterns mark an utterance as a current-time question.
var timePatterns = []string{
	// Bengali
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

	// English
	"what time is it",
	"current time",
	"what's the time",
	"tell me the time",
	"time now",
	"what time",
	"show time",
	"display time",
	"get time",
	"what is the time right now",
	"what is on the clock",
	"tell me time",
	"show me the time",
	"current local time",
}

// datePatterns mark an utterance as a date-arithmetic question.
var datePatterns = []string{
	// Bengali
	"দিন পর",
	"মাস পর",
	"বছর পর",
	"দিন আগে",
	"মাস আগে",
	"বছর আগে",
	"তারিখ",
	"বার",
	"কি বার",
	"কোন বার",
	"কোন দিন",
	"কোন মাস",
	"থেকে",
	"পর্যন্ত",
	"কত দিন",
	"কত মাস",
	"কত বছর",

	// English
	"days from now",
	"months from now",
	"years from now",
	"days ago",
	"months ago",
	"years ago",
	"what day",
	"which day",
	"what date",
	"calculate date",
	"from today",
	"after today",
	"before today",
}

// placeKeywords gate the international-time branch. The set is wider
// than the zone table below: a place mentioned here without a zone
// entry falls through to the generic time handling.
var placeKeywords = []string{
	// Countries in Bengali
	"আমেরিকা",
	"যুক্তরাষ্ট্র",
	"ব্রিটেন",
	"ইংল্যান্ড",
	"জার্মানি",
	"ফ্রান্স",
	"ভারত",
	"চীন",
	"জাপান",
	"অস্ট্রেলিয়া",
	"কানাডা",
	"রাশিয়া",
	"সৌদি আরব",
	"দুবাই",
	"সিঙ্গাপুর",
	"মালয়েশিয়া",
	"থাইল্যান্ড",

	// Countries in English
	"america",
	"usa",
	"united states",
	"britain",
	"england",
	"uk",
	"germany",
	"france",
	"india",
	"china",
	"japan",
	"australia",
	"canada",
	"russia",
	"saudi arabia",
	"dubai",
	"singapore",
	"malaysia",
	"thailand",
	"pakistan",
	"turkey",
	"italy",
	"spain",

	// Cities
	"new york",
	"london",
	"paris",
	"tokyo",
	"sydney",
	"toronto",
	"moscow",
	"kuala lumpur",
	"bangkok",
	"delhi",
	"mumbai",
	"beijing",
	"shanghai",
	"dhaka",
	"ঢাকা",
	"চট্টগ্রাম",
	"কক্সবাজার",
}

// zoneEntry maps one lower-cased place name to an IANA zone.
type zoneEntry struct {
	Place string
	Zone  string
}

// zoneTable is an ordered list, not a map: iteration order IS the
// match-priority order. When several place names are substrings of the
// same utterance, the earliest entry here governs.
var zoneTable = []zoneEntry{
	// USA
	{"america", "America/New_York"},
	{"usa", "America/New_York"},
	{"united states", "America/New_York"},
	{"আমেরিকা", "America/New_York"},
	{"যুক্তরাষ্ট্র", "America/New_York"},
	{"new york", "America/New_York"},
	{"california", "America/Los_Angeles"},

	// UK
	{"britain", "Europe/London"},
	{"england", "Europe/London"},
	{"uk", "Europe/London"},
	{"ব্রিটেন", "Europe/London"},
	{"ইংল্যান্ড", "Europe/London"},
	{"london", "Europe/London"},

	// Europe
	{"germany", "Europe/Berlin"},
	{"জার্মানি", "Europe/Berlin"},
	{"france", "Europe/Paris"},
	{"ফ্রান্স", "Europe/Paris"},
	{"paris", "Europe/Paris"},
	{"italy", "Europe/Rome"},
	{"spain", "Europe/Madrid"},

	// Asia
	{"india", "Asia/Kolkata"},
	{"ভারত", "Asia/Kolkata"},
	{"delhi", "Asia/Kolkata"},
	{"mumbai", "Asia/Kolkata"},
	{"china", "Asia/Shanghai"},
	{"চীন", "Asia/Shanghai"},
	{"beijing", "Asia/Shanghai"},
	{"shanghai", "Asia/Shanghai"},
	{"japan", "Asia/Tokyo"},
	{"জাপান", "Asia/Tokyo"},
	{"tokyo", "Asia/Tokyo"},
	{"singapore", "Asia/Singapore"},
	{"সিঙ্গাপুর", "Asia/Singapore"},
	{"malaysia", "Asia/Kuala_Lumpur"},
	{"মালয়েশিয়া", "Asia/Kuala_Lumpur"},
	{"kuala lumpur", "Asia/Kuala_Lumpur"},
	{"thailand", "Asia/Bangkok"},
	{"থাইল্যান্ড", "Asia/Bangkok"},
	{"bangkok", "Asia/Bangkok"},

	// Middle East
	{"dubai", "Asia/Dubai"},
	{"দুবাই", "Asia/Dubai"},
	{"saudi arabia", "Asia/Riyadh"},
	{"সৌদি আরব", "Asia/Riyadh"},

	// Others
	{"australia", "Australia/Sydney"},
	{"অস্ট্রেলিয়া", "Australia/Sydney"},
	{"sydney", "Australia/Sydney"},
	{"canada", "America/Toronto"},
	{"কানাডা", "America/Toronto"},
	{"toronto", "America/Toronto"},
	{"russia", "Europe/Moscow"},
	{"রাশিয়া", "Europe/Moscow"},
	{"moscow", "Europe/Moscow"},

	// Bangladesh
	{"bangladesh", "Asia/Dhaka"},
	{"বাংলাদেশ", "Asia/Dhaka"},
	{"dhaka", "Asia/Dhaka"},
	{"ঢাকা", "Asia/Dhaka"},
	{"chittagong", "Asia/Dhaka"},
	{"চট্টগ্রাম", "Asia/Dhaka"},
}

// longZoneNames gives the long English display name for each zone in
// the table. Zones missing here fall back to the abbreviation.
var longZoneNames = map[string]string{
	"America/New_York":    "Eastern Time",
	"America/Los_Angeles": "Pacific Time",
	"America/Toronto":     "Eastern Time",
	"Europe/London":       "British Time",
	"Europe/Berlin":       "Central European Time",
	"Europe/Paris":        "Central European Time",
	"Europe/Rome":         "Central European Time",
	"Europe/Madrid":       "Central European Time",
	"Europe/Moscow":       "Moscow Standard Time",
	"Asia/Kolkata":        "India Standard Time",
	"Asia/Shanghai":       "China Standard Time",
	"Asia/Tokyo":          "Japan Standard Time",
	"Asia/Singapore":      "Singapore Standard Time",
	"Asia/Kuala_Lumpur":   "Malaysia Time",
	"Asia/Bangkok":        "Indochina Time",
	"Asia/Dubai":          "Gulf Standard Time",
	"Asia/Riyadh":         "Arabia Standard Time",
	"Australia/Sydney":    "Australian Eastern Time",
	"Asia/Dhaka":          "Bangladesh Standard Time",
}

// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package clock answers time and date questions locally, without any
// backend round trip.
//
// Three query shapes are handled, in this priority order:
//
//  1. International time ("what time is it in Tokyo") - a recognized
//     place name plus a time keyword resolves to an IANA zone and a
//     formatted sentence.
//  2. Date arithmetic ("3 days from now") - magnitude, unit and
//     direction are extracted from the text and a calendar-aware
//     offset is computed.
//  3. Local current time ("what time is it") - the current instant in
//     the caller's zone.
//
// All answers are rendered in the language of the question (English or
// Bengali). Place-name matching is first-containment-wins over a fixed
// ordered table; an earlier entry beats a longer or more specific later
// one.
package clock

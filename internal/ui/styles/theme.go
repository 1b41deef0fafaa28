// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package styles provides the visual styling system for the muse TUI.
package styles

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Theme holds the styled components for the application.
type Theme struct {
	IsDark bool

	// ==========================================================================
	// MESSAGE STYLES
	// ==========================================================================

	UserLabel lipgloss.Style
	BotLabel  lipgloss.Style
	UserText  lipgloss.Style
	BotText   lipgloss.Style
	ErrorText lipgloss.Style
	Notice    lipgloss.Style
	ImageNote lipgloss.Style

	// ==========================================================================
	// CHROME STYLES
	// ==========================================================================

	Header    lipgloss.Style
	StatusBar lipgloss.Style
	StatusKey lipgloss.Style
	Input     lipgloss.Style
	Spinner   lipgloss.Style
	Help      lipgloss.Style
}

// DetectDark reports whether the terminal background is dark. Used
// when the configured theme is "auto" and no stored preference exists.
func DetectDark() bool {
	return termenv.HasDarkBackground()
}

// NewTheme builds the theme for the given background.
func NewTheme(dark bool) *Theme {
	t := &Theme{IsDark: dark}

	var (
		accent  lipgloss.Color
		bot     lipgloss.Color
		muted   lipgloss.Color
		errCol  lipgloss.Color
		warning lipgloss.Color
	)
	if dark {
		accent = lipgloss.Color("#7C9EF5")
		bot = lipgloss.Color("#A8D8A8")
		muted = lipgloss.Color("#6B7280")
		errCol = lipgloss.Color("#F87171")
		warning = lipgloss.Color("#FBBF24")
	} else {
		accent = lipgloss.Color("#2B5BD7")
		bot = lipgloss.Color("#1A7A3A")
		muted = lipgloss.Color("#9CA3AF")
		errCol = lipgloss.Color("#B91C1C")
		warning = lipgloss.Color("#B45309")
	}

	t.UserLabel = lipgloss.NewStyle().Foreground(accent).Bold(true)
	t.BotLabel = lipgloss.NewStyle().Foreground(bot).Bold(true)
	t.UserText = lipgloss.NewStyle()
	t.BotText = lipgloss.NewStyle()
	t.ErrorText = lipgloss.NewStyle().Foreground(errCol)
	t.Notice = lipgloss.NewStyle().Foreground(warning).Italic(true)
	t.ImageNote = lipgloss.NewStyle().Foreground(muted).Italic(true)

	t.Header = lipgloss.NewStyle().Foreground(accent).Bold(true).Padding(0, 1)
	t.StatusBar = lipgloss.NewStyle().Foreground(muted)
	t.StatusKey = lipgloss.NewStyle().Foreground(accent)
	t.Input = lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(muted).
		Padding(0, 1)
	t.Spinner = lipgloss.NewStyle().Foreground(accent)
	t.Help = lipgloss.NewStyle().Foreground(muted)

	return t
}

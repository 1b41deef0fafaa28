// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package ui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jeranaias/muse-tui/internal/session"
	"github.com/jeranaias/muse-tui/internal/ui/styles"
)

// =============================================================================
// SLASH COMMANDS
// =============================================================================

const helpText = `Commands:
  /help            show this help
  /model [name]    cycle models, or select one by name
  /theme           toggle dark/light theme
  /attach <path>   attach an image to the next message
  /markedit        mark the attached image for later editing
  /clear           clear the conversation
  /quit            exit

Prefix a message with /img to generate an image, /edit to edit one.`

// handleCommand intercepts local commands. Returns handled=false for
// anything that should go to the engine, including /img and /edit,
// which are backend vocabulary rather than UI commands.
func (m *Model) handleCommand(text string) (handled bool, cmd tea.Cmd) {
	fields := strings.Fields(text)
	name := strings.ToLower(fields[0])

	switch name {
	case "/help":
		m.appendNotice(helpText)
		return true, nil

	case "/quit", "/exit":
		return true, tea.Quit

	case "/model":
		if len(fields) > 1 {
			m.state.SetModel(fields[1])
		} else {
			m.state.SetModel(session.NextModel(m.state.Model()))
		}
		_ = m.guard.Save()
		m.appendNotice("model: " + m.state.Model())
		return true, nil

	case "/theme":
		dark := !m.theme.IsDark
		m.theme = styles.NewTheme(dark)
		m.rebuildRenderer(m.width - 4)
		_ = m.guard.SetDarkMode(dark)
		if dark {
			m.appendNotice("theme: dark")
		} else {
			m.appendNotice("theme: light")
		}
		return true, nil

	case "/attach":
		if len(fields) < 2 {
			m.appendNotice("usage: /attach <path>")
			return true, nil
		}
		path := strings.Join(fields[1:], " ")
		dataURL, err := loadImageDataURL(path)
		if err != nil {
			m.appendNotice("attach failed: " + err.Error())
			return true, nil
		}
		m.attachedPath = path
		m.attachedDataURL = dataURL
		m.appendNotice("attached " + path + " to the next message")
		return true, nil

	case "/markedit":
		if m.attachedDataURL == "" {
			m.appendNotice("nothing attached; use /attach <path> first")
			return true, nil
		}
		m.state.MarkPendingUpload(m.attachedDataURL)
		m.attachedPath = ""
		m.attachedDataURL = ""
		m.appendNotice("image marked for editing; send an edit request when ready")
		return true, nil

	case "/clear":
		m.state.Reset()
		m.lines = nil
		_ = m.guard.Save()
		m.appendNotice("conversation cleared")
		return true, nil
	}

	return false, nil
}

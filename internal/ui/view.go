// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package ui

import "strings"

// View implements tea.Model.
func (m *Model) View() string {
	if !m.ready {
		return "starting muse..."
	}

	var b strings.Builder
	b.WriteString(m.theme.Header.Render("muse"))
	b.WriteString("\n")
	b.WriteString(m.viewport.View())
	b.WriteString("\n")
	b.WriteString(m.theme.Input.Render(m.input.View()))
	b.WriteString("\n")
	b.WriteString(m.statusLine())
	return b.String()
}

// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package ui

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"

	"github.com/jeranaias/muse-tui/internal/app"
	"github.com/jeranaias/muse-tui/internal/session"
	"github.com/jeranaias/muse-tui/internal/storage"
	"github.com/jeranaias/muse-tui/internal/ui/styles"
)

// =============================================================================
// MESSAGES
// =============================================================================

// ReplyMsg carries an engine reply into the update loop.
type ReplyMsg struct {
	Reply app.Reply
}

// NoticeMsg carries an out-of-band notice, e.g. a storage eviction.
type NoticeMsg struct {
	Text string
}

// =============================================================================
// MODEL
// =============================================================================

// Model is the Bubble Tea model for the chat view.
type Model struct {
	engine *app.Engine
	state  *session.State
	guard  *storage.Guard

	theme    *styles.Theme
	renderer *glamour.TermRenderer

	viewport viewport.Model
	input    textarea.Model
	spinner  spinner.Model

	width  int
	height int
	ready  bool

	// pending counts in-flight requests; the spinner shows while > 0.
	pending int

	// attached holds the next message's image, set by /attach.
	attachedPath    string
	attachedDataURL string

	lines    []string
	imageDir string

	// send injects messages from engine goroutines into the program.
	// Set by SetSend after tea.NewProgram.
	send func(tea.Msg)
}

// New builds the chat model. dataDir is where received images are
// saved.
func New(engine *app.Engine, state *session.State, guard *storage.Guard, theme *styles.Theme, dataDir string) *Model {
	input := textarea.New()
	input.Placeholder = "Message muse... (/help for commands)"
	input.ShowLineNumbers = false
	input.SetHeight(1)
	input.CharLimit = 0
	input.Focus()

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = theme.Spinner

	m := &Model{
		engine:   engine,
		state:    state,
		guard:    guard,
		theme:    theme,
		input:    input,
		spinner:  sp,
		imageDir: filepath.Join(dataDir, "images"),
		send:     func(tea.Msg) {},
	}
	m.rebuildRenderer(80)
	m.restoreTranscript()
	return m
}

// SetSend installs the program's message injector. Must be called
// before the first Submit.
func (m *Model) SetSend(send func(tea.Msg)) {
	m.send = send
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return textarea.Blink
}

// rebuildRenderer recreates the markdown renderer for a new width.
func (m *Model) rebuildRenderer(width int) {
	style := glamour.WithStandardStyle("light")
	if m.theme.IsDark {
		style = glamour.WithStandardStyle("dark")
	}
	r, err := glamour.NewTermRenderer(style, glamour.WithWordWrap(width))
	if err == nil {
		m.renderer = r
	}
}

// restoreTranscript replays the loaded history into display lines.
func (m *Model) restoreTranscript() {
	for _, turn := range m.state.History() {
		var text, image string
		for _, p := range turn.Parts {
			if p.Text != "" {
				text = p.Text
			}
			if p.Image != "" {
				image = p.Image
			}
		}
		if turn.Role == session.RoleUser {
			m.appendUserLine(text, image != "")
		} else {
			m.appendBotLine(text, "", false)
		}
	}
}

// =============================================================================
// UPDATE
// =============================================================================

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.rebuildRenderer(msg.Width - 4)
		m.layout()
		m.refreshViewport()

	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			return m, tea.Quit
		case tea.KeyEnter:
			return m, m.submit()
		}

	case ReplyMsg:
		m.pending--
		reply := msg.Reply
		imageNote := ""
		if reply.ImageDataURL != "" {
			if path, err := saveImageDataURL(m.imageDir, reply.ImageDataURL); err == nil {
				imageNote = path
			}
		}
		m.appendBotLine(reply.Text, imageNote, reply.IsError)
		m.refreshViewport()

	case NoticeMsg:
		m.appendNotice(msg.Text)
		m.refreshViewport()

	case spinner.TickMsg:
		if m.pending > 0 {
			var cmd tea.Cmd
			m.spinner, cmd = m.spinner.Update(msg)
			cmds = append(cmds, cmd)
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	cmds = append(cmds, cmd)
	m.viewport, cmd = m.viewport.Update(msg)
	cmds = append(cmds, cmd)

	return m, tea.Batch(cmds...)
}

func (m *Model) layout() {
	headerHeight := 1
	inputHeight := 3
	statusHeight := 1
	vpHeight := m.height - headerHeight - inputHeight - statusHeight
	if vpHeight < 1 {
		vpHeight = 1
	}
	if !m.ready {
		m.viewport = viewport.New(m.width, vpHeight)
		m.ready = true
	} else {
		m.viewport.Width = m.width
		m.viewport.Height = vpHeight
	}
	m.input.SetWidth(m.width - 4)
}

// submit handles Enter: slash commands locally, everything else to the
// engine.
func (m *Model) submit() tea.Cmd {
	text := strings.TrimSpace(m.input.Value())
	if text == "" {
		return nil
	}
	m.input.Reset()

	if handled, cmd := m.handleCommand(text); handled {
		m.refreshViewport()
		return cmd
	}

	image := m.attachedDataURL
	m.attachedDataURL = ""
	m.attachedPath = ""

	m.appendUserLine(text, image != "")
	m.refreshViewport()

	m.pending++
	m.engine.Submit(context.Background(), text, image, func(r app.Reply) {
		m.send(ReplyMsg{Reply: r})
	})
	return m.spinner.Tick
}

// =============================================================================
// TRANSCRIPT LINES
// =============================================================================

func (m *Model) appendUserLine(text string, hasImage bool) {
	line := m.theme.UserLabel.Render("you ") + m.theme.UserText.Render(text)
	if hasImage {
		line += " " + m.theme.ImageNote.Render("[image attached]")
	}
	m.lines = append(m.lines, line, "")
}

func (m *Model) appendBotLine(text, imagePath string, isError bool) {
	label := m.theme.BotLabel.Render("muse ")
	body := text
	if isError {
		body = m.theme.ErrorText.Render(text)
	} else if m.renderer != nil {
		if rendered, err := m.renderer.Render(text); err == nil {
			body = strings.TrimRight(rendered, "\n")
		}
	}
	m.lines = append(m.lines, label+body)
	if imagePath != "" {
		m.lines = append(m.lines, m.theme.ImageNote.Render("[image saved: "+imagePath+"]"))
	}
	m.lines = append(m.lines, "")
}

func (m *Model) appendNotice(text string) {
	m.lines = append(m.lines, m.theme.Notice.Render(text), "")
}

func (m *Model) refreshViewport() {
	if !m.ready {
		return
	}
	m.viewport.SetContent(strings.Join(m.lines, "\n"))
	m.viewport.GotoBottom()
}

// statusLine summarizes model, theme, and attachment state.
func (m *Model) statusLine() string {
	parts := []string{
		m.theme.StatusKey.Render("model:") + m.state.Model(),
	}
	if m.attachedPath != "" {
		parts = append(parts, m.theme.StatusKey.Render("attached:")+filepath.Base(m.attachedPath))
	}
	if up := m.state.PendingUpload(); up != nil {
		parts = append(parts, m.theme.StatusKey.Render("edit target set"))
	}
	if m.pending > 0 {
		parts = append(parts, m.spinner.View()+fmt.Sprintf("%d in flight", m.pending))
	}
	return m.theme.StatusBar.Render(strings.Join(parts, "  "))
}

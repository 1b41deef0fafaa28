// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package transcript

import (
	"fmt"
	"html"
	"strings"

	"github.com/alecthomas/chroma/v2"
	htmlformat "github.com/alecthomas/chroma/v2/formatters/html"
	"github.com/alecthomas/chroma/v2/lexers"
	chromaStyles "github.com/alecthomas/chroma/v2/styles"

	"github.com/jeranaias/muse-tui/internal/session"
)

// ============================================================================
// TURN RENDERING
// ============================================================================

// Render produces the persisted markup for an entire history.
func Render(turns []session.Turn) string {
	var b strings.Builder
	for _, t := range turns {
		b.WriteString(RenderTurn(t))
	}
	return b.String()
}

// RenderTurn produces the markup for one turn.
func RenderTurn(t session.Turn) string {
	class := "bot-message"
	if t.Role == session.RoleUser {
		class = "user-message"
	}

	var content strings.Builder
	for _, p := range t.Parts {
		if p.Text != "" {
			content.WriteString(renderText(p.Text))
		}
		if p.Image != "" {
			fmt.Fprintf(&content, `<img class="chat-image" src="%s" alt="attached image">`, p.Image)
		}
	}

	return fmt.Sprintf(`<div class="message %s"><div class="message-content">%s</div></div>`,
		class, content.String())
}

// renderText escapes plain text and highlights fenced code blocks.
// Runs of plain lines become <p> paragraphs with <br> line breaks.
func renderText(text string) string {
	lines := strings.Split(text, "\n")
	var out strings.Builder
	var plain []string
	var code []string
	var language string
	inCode := false

	flushPlain := func() {
		if len(plain) == 0 {
			return
		}
		escaped := make([]string, len(plain))
		for i, l := range plain {
			escaped[i] = html.EscapeString(l)
		}
		out.WriteString("<p>" + strings.Join(escaped, "<br>") + "</p>")
		plain = nil
	}

	for _, line := range lines {
		if strings.HasPrefix(line, "```") {
			if inCode {
				out.WriteString(highlightHTML(strings.Join(code, "\n"), language))
				code = nil
				language = ""
				inCode = false
			} else {
				flushPlain()
				language = strings.TrimSpace(strings.TrimPrefix(line, "```"))
				inCode = true
			}
			continue
		}
		if inCode {
			code = append(code, line)
		} else {
			plain = append(plain, line)
		}
	}

	// Unclosed fence: still render what we have.
	if inCode && len(code) > 0 {
		out.WriteString(highlightHTML(strings.Join(code, "\n"), language))
	}
	flushPlain()

	return out.String()
}

// ============================================================================
// SYNTAX HIGHLIGHTING
// ============================================================================

// highlightHTML renders code as highlighted HTML. Falls back to an
// escaped <pre> block when tokenizing or formatting fails.
func highlightHTML(code, language string) string {
	lexer := lexers.Get(language)
	if lexer == nil {
		lexer = lexers.Analyse(code)
	}
	if lexer == nil {
		lexer = lexers.Fallback
	}
	lexer = chroma.Coalesce(lexer)

	style := chromaStyles.Get("monokai")
	if style == nil {
		style = chromaStyles.Fallback
	}

	iterator, err := lexer.Tokenise(nil, code)
	if err != nil {
		return plainPre(code)
	}

	formatter := htmlformat.New(htmlformat.Standalone(false))
	var buf strings.Builder
	if err := formatter.Format(&buf, style, iterator); err != nil {
		return plainPre(code)
	}
	return buf.String()
}

func plainPre(code string) string {
	return "<pre><code>" + html.EscapeString(code) + "</code></pre>"
}

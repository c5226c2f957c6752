package ui

import (
	"fmt"
	"strings"

	"idseek/internal/domain"
)

// maxLineDisplay keeps long source lines from wrapping; truncation is
// display-only, the underlying match text is untouched.
const maxLineDisplay = 100

// RenderMatches renders the numbered match list, grouped by file but
// numbered globally so selections stay unambiguous.
func RenderMatches(st *Styles, state domain.SessionState) string {
	var b strings.Builder

	b.WriteString(st.Title.Render(fmt.Sprintf("%d matches for %s",
		len(state.Matches), strings.Join(state.Active, " "))))
	b.WriteString("\n")

	lastFile := ""
	for i, m := range state.Matches {
		if m.File != lastFile {
			lastFile = m.File
			b.WriteString("\n")
			b.WriteString(st.FileGroup.Render(m.File))
			b.WriteString("\n")
		}
		b.WriteString(fmt.Sprintf("  %s %s %s\n",
			st.Number.Render(fmt.Sprintf("%3d)", i+1)),
			st.LineNum.Render(fmt.Sprintf("%5d:", m.Line)),
			renderLine(st, m.Text, state.Original)))
	}
	return b.String()
}

// renderLine truncates the text for display and highlights the anchor
// pattern of the original query.
func renderLine(st *Styles, text string, original domain.Patterns) string {
	if len(text) > maxLineDisplay {
		text = text[:maxLineDisplay] + "…"
	}
	anchor := original.Anchor()
	if anchor == "" {
		return st.Text.Render(text)
	}
	idx := strings.Index(text, anchor)
	if idx < 0 {
		return st.Text.Render(text)
	}
	return st.Text.Render(text[:idx]) +
		st.Highlight.Render(anchor) +
		st.Text.Render(text[idx+len(anchor):])
}

// RenderHelp returns the one-line command summary under the prompt.
func RenderHelp(st *Styles) string {
	return st.Help.Render("N  2,5  3-7 select · a N whole file · v N view · /text or text narrow · q quit")
}

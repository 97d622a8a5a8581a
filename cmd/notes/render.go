package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"

	"github.com/aretw0/notes/pkg/core"
)

const ruleWidth = 50

var (
	ruleStyle  = lipgloss.NewStyle().Faint(true)
	idStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
	titleStyle = lipgloss.NewStyle().Bold(true)
	tagStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("5"))
)

// renderNote lays out one note: rule, "[id] TITLE", rule, content, tags, rule.
// body replaces the raw content when non-empty (e.g. rendered markdown).
func renderNote(n core.Note, body string) string {
	heavy := ruleStyle.Render(strings.Repeat("=", ruleWidth))
	light := ruleStyle.Render(strings.Repeat("-", ruleWidth))
	if body == "" {
		body = n.Content
	}

	var b strings.Builder
	b.WriteString(heavy + "\n")
	b.WriteString(idStyle.Render("["+n.ID+"]") + " " + titleStyle.Render(n.DisplayTitle()) + "\n")
	b.WriteString(light + "\n")
	b.WriteString(body + "\n")
	if len(n.Tags) > 0 {
		b.WriteString(tagStyle.Render("Tags: "+n.TagLine()) + "\n")
	}
	b.WriteString(heavy + "\n")
	return b.String()
}

func printNotes(w io.Writer, notes []core.Note) {
	for _, n := range notes {
		fmt.Fprint(w, renderNote(n, ""))
	}
}

// renderMarkdown renders note content with glamour using the configured style.
func renderMarkdown(content, style string) (string, error) {
	out, err := glamour.Render(content, style)
	if err != nil {
		return "", fmt.Errorf("failed to render markdown: %w", err)
	}
	return strings.TrimRight(out, "\n"), nil
}

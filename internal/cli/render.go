package cli

import (
	"os"

	"github.com/charmbracelet/glamour"
	"github.com/muesli/termenv"
	"golang.org/x/term"
)

// RenderMarkdown renders a markdown report for the terminal.
// Piped output gets the raw markdown, so reports stay greppable.
func RenderMarkdown(md string) string {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return md
	}
	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(), // Automatically detect light/dark background
	)
	if err != nil {
		return md
	}
	out, err := r.Render(md)
	if err != nil {
		return md
	}
	return out
}

// Heading styles a status line, degrading to plain text on dumb
// terminals.
func Heading(s string) string {
	p := termenv.ColorProfile()
	return termenv.String(s).Foreground(p.Color("#818cf8")).Bold().String()
}

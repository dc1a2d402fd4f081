package display

import (
	"fmt"
	"os"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

var plain bool

// NoColor disables colors for everything rendered by this package.
func NoColor() {
	plain = true
	lipgloss.SetColorProfile(termenv.Ascii)
}

// Markdown renders md for the terminal and prints it to stderr.
func Markdown(md string) error {
	style := glamour.WithAutoStyle()
	if plain {
		style = glamour.WithStandardStyle("notty")
	}
	r, err := glamour.NewTermRenderer(style, glamour.WithWordWrap(120))
	if err != nil {
		return fmt.Errorf("failed to create markdown renderer: %w", err)
	}

	out, err := r.Render(md)
	if err != nil {
		return fmt.Errorf("failed to render markdown: %w", err)
	}
	fmt.Fprint(os.Stderr, out)
	return nil
}

package display

import (
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
)

var infoStyle = lipgloss.NewStyle().
	Bold(false).
	PaddingTop(1).
	PaddingBottom(1).
	Foreground(lipgloss.AdaptiveColor{
		Light: "21",
		Dark:  "33",
	})

var (
	keyStyle   = lipgloss.NewStyle().Bold(true).Width(40)
	valueStyle = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#02CF92", Dark: "#02A877"})
)

func Info(text string) {
	fmt.Fprintln(os.Stderr, infoStyle.Render(text))
}

// KeyValue prints one aligned key and value pair to stdout.
func KeyValue(key, value string) {
	fmt.Println(lipgloss.JoinHorizontal(lipgloss.Top, keyStyle.Render(key), valueStyle.Render(value)))
}

package theme

import (
	catppuccin "github.com/catppuccin/go"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

// New returns the form theme used by interactive prompts.
func New() *huh.Theme {
	t := huh.ThemeBase()

	light := catppuccin.Latte
	dark := catppuccin.Mocha
	var (
		text     = lipgloss.AdaptiveColor{Light: light.Text().Hex, Dark: dark.Text().Hex}
		mauve    = lipgloss.AdaptiveColor{Light: light.Mauve().Hex, Dark: dark.Mauve().Hex}
		green    = lipgloss.AdaptiveColor{Light: light.Green().Hex, Dark: dark.Green().Hex}
		subtext0 = lipgloss.AdaptiveColor{Light: light.Subtext0().Hex, Dark: dark.Subtext0().Hex}
		overlay1 = lipgloss.AdaptiveColor{Light: light.Overlay1().Hex, Dark: dark.Overlay1().Hex}
	)

	f := &t.Focused
	f.Title = f.Title.Foreground(mauve).Bold(true)
	f.Description = f.Description.Foreground(subtext0)
	f.SelectSelector = f.SelectSelector.Foreground(green)
	f.Option = f.Option.Foreground(text)
	f.SelectedOption = f.SelectedOption.Foreground(green)
	f.SelectedPrefix = lipgloss.NewStyle().Foreground(green).SetString("✓ ")
	f.UnselectedPrefix = lipgloss.NewStyle().Foreground(overlay1).SetString("• ")

	t.Blurred = *f
	t.Blurred.Title = t.Blurred.Title.Foreground(overlay1)

	t.Help.ShortKey.Foreground(subtext0)
	t.Help.ShortDesc.Foreground(overlay1)
	t.Help.ShortSeparator.Foreground(subtext0)
	t.Help.FullKey.Foreground(subtext0)
	t.Help.FullDesc.Foreground(overlay1)
	t.Help.FullSeparator.Foreground(subtext0)

	return t
}

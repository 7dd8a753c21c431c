package ui

import (
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/lipgloss"
)

type palette struct {
	accent   lipgloss.Color
	text     lipgloss.Color
	muted    lipgloss.Color
	disabled lipgloss.Color
	panel    lipgloss.Color
	errColor lipgloss.Color
}

var (
	darkPalette = palette{
		accent:   lipgloss.Color("#7aa2f7"),
		text:     lipgloss.Color("#c0caf5"),
		muted:    lipgloss.Color("#a9b1d6"),
		disabled: lipgloss.Color("#3b4261"),
		panel:    lipgloss.Color("#1f2335"),
		errColor: lipgloss.Color("#ff6b6b"),
	}
	lightPalette = palette{
		accent:   lipgloss.Color("#2e7de9"),
		text:     lipgloss.Color("#3760bf"),
		muted:    lipgloss.Color("#6172b0"),
		disabled: lipgloss.Color("#a8aecb"),
		panel:    lipgloss.Color("#e1e2e7"),
		errColor: lipgloss.Color("#c64343"),
	}
)

func paletteFor(dark bool) palette {
	if dark {
		return darkPalette
	}
	return lightPalette
}

type chromeStyles struct {
	title    lipgloss.Style
	subtitle lipgloss.Style
	enabled  lipgloss.Style
	disabled lipgloss.Style
	counter  lipgloss.Style
	icon     lipgloss.Style
	errLine  lipgloss.Style
	debug    lipgloss.Style
	helpBox  lipgloss.Style
	bar      lipgloss.Style
}

func newChromeStyles(dark bool) chromeStyles {
	p := paletteFor(dark)
	return chromeStyles{
		title:    lipgloss.NewStyle().Foreground(p.accent).Bold(true).Padding(0, 1),
		subtitle: lipgloss.NewStyle().Foreground(p.muted),
		enabled:  lipgloss.NewStyle().Foreground(p.text).Bold(true),
		disabled: lipgloss.NewStyle().Foreground(p.disabled),
		counter:  lipgloss.NewStyle().Foreground(p.muted),
		icon:     lipgloss.NewStyle().Foreground(p.accent),
		errLine:  lipgloss.NewStyle().Foreground(p.errColor),
		debug:    lipgloss.NewStyle().Foreground(p.disabled).Italic(true),
		helpBox: lipgloss.NewStyle().
			Padding(1, 2).
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(p.accent).
			Background(p.panel),
		bar: lipgloss.NewStyle().
			Padding(0, 1).
			Foreground(p.muted).
			Background(p.panel),
	}
}

func newProgressBar(dark bool) progress.Model {
	p := paletteFor(dark)
	return progress.New(
		progress.WithSolidFill(string(p.accent)),
		progress.WithoutPercentage(),
	)
}

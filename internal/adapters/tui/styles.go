package tui

import (
	"github.com/charmbracelet/lipgloss"

	"svw.info/verdant/internal/domain"
)

var (
	lightForeground = lipgloss.Color("#1b3a1f")
	lightMuted      = lipgloss.Color("#8a9a8c")
	lightBorder     = lipgloss.Color("#9ccc65")
	darkForeground  = lipgloss.Color("#e8f5e9")
	darkMuted       = lipgloss.Color("#5b6b5d")
	darkBorder      = lipgloss.Color("#558b2f")

	success  = lipgloss.Color("#8BC34A")
	failure  = lipgloss.Color("#e53935")
	rainBlue = lipgloss.Color("#64b5f6")

	plantColors = map[domain.Plant]lipgloss.Color{
		domain.Corn:     lipgloss.Color("#fbc02d"),
		domain.Lettuce:  lipgloss.Color("#7cb342"),
		domain.Eggplant: lipgloss.Color("#8e24aa"),
		domain.Tomato:   lipgloss.Color("#e53935"),
		domain.Potato:   lipgloss.Color("#a1887f"),
	}
)

// Styles holds the rendered look for one theme.
type Styles struct {
	Dark    bool
	Title   lipgloss.Style
	Board   lipgloss.Style
	Label   lipgloss.Style
	Empty   lipgloss.Style
	Status  lipgloss.Style
	Success lipgloss.Style
	Failure lipgloss.Style
	Rain    lipgloss.Style
}

// NewStyles returns the dark styles for domain.ThemeDark and light ones otherwise.
func NewStyles(theme string) Styles {
	fg, muted, border := lightForeground, lightMuted, lightBorder
	dark := theme == domain.ThemeDark
	if dark {
		fg, muted, border = darkForeground, darkMuted, darkBorder
	}
	return Styles{
		Dark:  dark,
		Title: lipgloss.NewStyle().Bold(true).Foreground(success),
		Board: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(border).
			Padding(0, 1),
		Label:   lipgloss.NewStyle().Foreground(muted),
		Empty:   lipgloss.NewStyle().Foreground(muted),
		Status:  lipgloss.NewStyle().Foreground(fg),
		Success: lipgloss.NewStyle().Foreground(success).Bold(true),
		Failure: lipgloss.NewStyle().Foreground(failure).Bold(true),
		Rain:    lipgloss.NewStyle().Foreground(rainBlue),
	}
}

// Plant renders a cell glyph in the plant's colour.
func (s Styles) Plant(p domain.Plant) string {
	if p == domain.NoPlant {
		return s.Empty.Render(".")
	}
	return lipgloss.NewStyle().Bold(true).Foreground(plantColors[p]).Render(string(p.Initial()))
}

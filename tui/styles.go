package tui

import "github.com/charmbracelet/lipgloss"

var (
	accent = lipgloss.Color("#4CAF50")
	muted  = lipgloss.Color("#6c7086")
	border = lipgloss.Color("#2a3850")
)

type styles struct {
	Title    lipgloss.Style
	Header   lipgloss.Style
	Label    lipgloss.Style
	Pane     lipgloss.Style
	Expander lipgloss.Style
	Bullet   lipgloss.Style
	Help     lipgloss.Style
}

func defaultStyles() styles {
	return styles{
		Title:    lipgloss.NewStyle().Bold(true).Foreground(accent),
		Header:   lipgloss.NewStyle().Bold(true).Foreground(accent).Border(lipgloss.NormalBorder(), false, false, true, false).BorderForeground(accent),
		Label:    lipgloss.NewStyle().Bold(true),
		Pane:     lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(border).Padding(0, 1),
		Expander: lipgloss.NewStyle().Bold(true).Foreground(accent),
		Bullet:   lipgloss.NewStyle().PaddingLeft(2),
		Help:     lipgloss.NewStyle().Foreground(muted),
	}
}

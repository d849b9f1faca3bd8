package cli

import "github.com/charmbracelet/lipgloss"

type styles struct {
	err   lipgloss.Style
	usage lipgloss.Style
}

// ANSI Color reference
// 0	Black
// 1	Red
// 3	Yellow
// 7	White

func newStyles() styles {
	return styles{
		err:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.ANSIColor(7)).Background(lipgloss.ANSIColor(1)),
		usage: lipgloss.NewStyle().Foreground(lipgloss.ANSIColor(3)),
	}
}

// pkg/present/styles.go

package present

import "github.com/charmbracelet/lipgloss"

type styles struct {
	header  lipgloss.Style
	message lipgloss.Style
	meta    lipgloss.Style
	file    lipgloss.Style
	success lipgloss.Style
	failure lipgloss.Style
	notice  lipgloss.Style
}

// newStyles returns either colored styles or passthrough styles when the
// output is not a terminal.
func newStyles(color bool) styles {
	if !color {
		plain := lipgloss.NewStyle()
		return styles{
			header:  plain,
			message: plain,
			meta:    plain,
			file:    plain,
			success: plain,
			failure: plain,
			notice:  plain,
		}
	}
	return styles{
		header:  lipgloss.NewStyle().Bold(true),
		message: lipgloss.NewStyle().Foreground(lipgloss.Color("14")),
		meta:    lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
		file:    lipgloss.NewStyle().Foreground(lipgloss.Color("6")),
		success: lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
		failure: lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
		notice:  lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
	}
}

// internal/view/styles.go
package view

import "github.com/charmbracelet/lipgloss"

// Styles groups the render styles so themes stay in one place.
type Styles struct {
	Header lipgloss.Style
	Cell   lipgloss.Style
	BitRow lipgloss.Style
	Error  lipgloss.Style
	Status lipgloss.Style
	Tag    lipgloss.Style
}

// DefaultStyles is the standard terminal theme.
func DefaultStyles() Styles {
	return Styles{
		Header: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39")),
		Cell:   lipgloss.NewStyle(),
		BitRow: lipgloss.NewStyle().Foreground(lipgloss.Color("243")),
		Error:  lipgloss.NewStyle().Foreground(lipgloss.Color("196")),
		Status: lipgloss.NewStyle().Foreground(lipgloss.Color("243")).Italic(true),
		Tag:    lipgloss.NewStyle().Foreground(lipgloss.Color("114")),
	}
}

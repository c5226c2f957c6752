package ui

import (
	"github.com/charmbracelet/lipgloss"
)

// Styles contains the style definitions for the match browser.
type Styles struct {
	Title     lipgloss.Style
	FileGroup lipgloss.Style
	Number    lipgloss.Style
	LineNum   lipgloss.Style
	Text      lipgloss.Style
	Highlight lipgloss.Style
	Prompt    lipgloss.Style
	Error     lipgloss.Style
	Help      lipgloss.Style
	Status    lipgloss.Style
}

// NewStyles creates the default styles.
func NewStyles() *Styles {
	return &Styles{
		Title:     lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("99")),
		FileGroup: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39")),
		Number:    lipgloss.NewStyle().Foreground(lipgloss.Color("220")),
		LineNum:   lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		Text:      lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		Highlight: lipgloss.NewStyle().Foreground(lipgloss.Color("226")).Bold(true),
		Prompt:    lipgloss.NewStyle().Foreground(lipgloss.Color("214")),
		Error:     lipgloss.NewStyle().Foreground(lipgloss.Color("203")),
		Help:      lipgloss.NewStyle().Faint(true),
		Status:    lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
	}
}

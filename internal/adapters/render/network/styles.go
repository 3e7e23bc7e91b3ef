package network

import "github.com/charmbracelet/lipgloss"

type styles struct {
	title      lipgloss.Style
	header     lipgloss.Style
	name       lipgloss.Style
	headline   lipgloss.Style
	detail     lipgloss.Style
	note       lipgloss.Style
	message    lipgloss.Style
	badge      lipgloss.Style
	verified   lipgloss.Style
	warning    lipgloss.Style
	section    lipgloss.Style
	empty      lipgloss.Style
	label      lipgloss.Style
	barBracket lipgloss.Style
	barFill    lipgloss.Style
	barEmpty   lipgloss.Style
}

func newStyles() styles {
	return styles{
		title:      lipgloss.NewStyle().Bold(true),
		header:     lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		name:       lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39")),
		headline:   lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		detail:     lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		note:       lipgloss.NewStyle().Italic(true).Foreground(lipgloss.Color("229")),
		message:    lipgloss.NewStyle().Foreground(lipgloss.Color("250")),
		badge:      lipgloss.NewStyle().Foreground(lipgloss.Color("69")),
		verified:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("42")),
		warning:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("203")),
		section:    lipgloss.NewStyle().MarginTop(1),
		empty:      lipgloss.NewStyle().Faint(true),
		label:      lipgloss.NewStyle().Foreground(lipgloss.Color("250")),
		barBracket: lipgloss.NewStyle().Foreground(lipgloss.Color("244")),
		barFill:    lipgloss.NewStyle().Foreground(lipgloss.Color("159")),
		barEmpty:   lipgloss.NewStyle().Foreground(lipgloss.Color("238")),
	}
}

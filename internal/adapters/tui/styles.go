package tui

import "github.com/charmbracelet/lipgloss"

var (
	Primary = lipgloss.Color("#22d3ee")
	Accent  = lipgloss.Color("#7C3AED")
	Danger  = lipgloss.Color("#EF4444")
	Muted   = lipgloss.Color("#6B7280")

	MeterStart = "#10B981"
	MeterEnd   = "#F59E0B"
)

var (
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(Primary).
			Background(lipgloss.Color("#1F2937")).
			Padding(0, 2).
			MarginBottom(1)

	nameStyle     = lipgloss.NewStyle().Width(20)
	selectedStyle = lipgloss.NewStyle().Width(20).Bold(true).Foreground(Primary)
	onStyle       = lipgloss.NewStyle().Bold(true).Foreground(Danger)
	offStyle      = lipgloss.NewStyle().Foreground(Muted)
	mutedStyle    = lipgloss.NewStyle().Foreground(Muted)
	tickStyle     = lipgloss.NewStyle().Bold(true).Foreground(Accent)
	filledStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color(MeterStart))
	footerStyle   = lipgloss.NewStyle().Foreground(Muted).MarginTop(1)
)

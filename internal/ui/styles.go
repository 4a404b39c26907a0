package ui

import (
	"github.com/charmbracelet/lipgloss"
)

// Theme colors
var (
	primary = lipgloss.Color("#7C3AED")
	success = lipgloss.Color("#10B981")
	warning = lipgloss.Color("#F59E0B")
	danger  = lipgloss.Color("#EF4444")
	info    = lipgloss.Color("#3B82F6")
	muted   = lipgloss.Color("#6B7280")
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(primary).
			MarginBottom(1)

	selectedStyle = lipgloss.NewStyle().
			Foreground(primary).
			Bold(true)

	kindStyle = lipgloss.NewStyle().
			Foreground(success)

	missingKindStyle = lipgloss.NewStyle().
				Foreground(muted)

	filePathStyle = lipgloss.NewStyle().
			Foreground(info)

	folderStyle = lipgloss.NewStyle().
			Foreground(warning).
			Italic(true)

	errorStyle = lipgloss.NewStyle().
			Foreground(danger).
			Bold(true)

	helpStyle = lipgloss.NewStyle().
			Foreground(muted)
)

package tui

import "github.com/charmbracelet/lipgloss"

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("39")).
			Padding(0, 1)

	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("252")).
			Background(lipgloss.Color("236")).
			Padding(0, 1)

	selectedStyle = lipgloss.NewStyle().
			Background(lipgloss.Color("25")).
			Foreground(lipgloss.Color("255")).
			Padding(0, 1)

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("242"))

	statusBarStyle = lipgloss.NewStyle().
			Background(lipgloss.Color("236")).
			Foreground(lipgloss.Color("252")).
			Padding(0, 1)

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("242"))

	// Replay view styles

	replayTitleStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("255")).
				Background(lipgloss.Color("236")).
				Padding(0, 1)

	speakerNameStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("255"))

	captionSpokenStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("252"))

	captionCurrentStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("0")).
				Background(lipgloss.Color("220"))

	captionUpcomingStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("240"))

	agentTag = lipgloss.NewStyle().
			Foreground(lipgloss.Color("214")).
			Bold(true)

	humanTag = lipgloss.NewStyle().
			Foreground(lipgloss.Color("42")).
			Bold(true)

	systemTag = lipgloss.NewStyle().
			Foreground(lipgloss.Color("242")).
			Italic(true)

	threadSelectedStyle = lipgloss.NewStyle().
				Background(lipgloss.Color("25")).
				Foreground(lipgloss.Color("255"))

	playingBadge = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("42"))

	pausedBadge = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("214"))
)

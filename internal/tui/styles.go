package tui

import "github.com/charmbracelet/lipgloss"

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("212"))

	headerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("245")).
			Italic(true)

	stageCompletedStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("42"))

	stageInProgressStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("214"))

	stageUpcomingStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("240"))

	selectedStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("255")).
			Background(lipgloss.Color("57"))

	warningStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("203"))

	noteStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("109")).
			Italic(true)

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196"))

	statusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("42"))

	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("238")).
			Padding(0, 1)

	chatUserStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("75"))

	chatBotStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252"))
)

func statusStyleFor(status string) lipgloss.Style {
	switch status {
	case "completed":
		return stageCompletedStyle
	case "in-progress":
		return stageInProgressStyle
	default:
		return stageUpcomingStyle
	}
}

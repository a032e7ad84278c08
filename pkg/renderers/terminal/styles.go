package terminal

import "github.com/charmbracelet/lipgloss"

var (
	neonColor  = lipgloss.Color("#B7FF2C")
	inkColor   = lipgloss.Color("#0B1020")
	paperColor = lipgloss.Color("#F5F7FB")
	dimColor   = lipgloss.Color("#6E7681")

	brandStyle = lipgloss.NewStyle().
			Foreground(paperColor).
			Bold(true)

	accentStyle = lipgloss.NewStyle().
			Foreground(neonColor).
			Bold(true)

	heroStyle = lipgloss.NewStyle().
			Foreground(paperColor).
			Bold(true).
			Padding(1, 0, 0, 0)

	subtleStyle = lipgloss.NewStyle().
			Foreground(dimColor)

	// The decorative chunk is dimmed so the duplicate reads as scenery.
	chunkStyle = lipgloss.NewStyle().
			Foreground(neonColor)

	decorativeStyle = lipgloss.NewStyle().
			Foreground(dimColor).
			Faint(true)

	sectionStyle = lipgloss.NewStyle().
			Foreground(neonColor).
			Bold(true).
			Padding(1, 0, 0, 0)

	cardStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(neonColor).
			Padding(0, 1)

	eyebrowStyle = lipgloss.NewStyle().
			Foreground(dimColor).
			Italic(true)

	titleStyle = lipgloss.NewStyle().
			Foreground(paperColor).
			Bold(true)

	buttonStyle = lipgloss.NewStyle().
			Foreground(inkColor).
			Background(neonColor).
			Bold(true).
			Padding(0, 1)

	outlineStyle = lipgloss.NewStyle().
			Foreground(paperColor).
			Underline(true)
)

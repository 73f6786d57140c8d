package playerbar

import "github.com/charmbracelet/lipgloss"

const (
	playSymbol    = "▶"
	pauseSymbol   = "⏸"
	mutedSymbol   = "🔇"
	shuffleSymbol = "⇄"
	repeatSymbol  = "↻"
)

var barStyle = lipgloss.NewStyle().
	BorderStyle(lipgloss.RoundedBorder()).
	BorderForeground(lipgloss.Color("240"))

var (
	titleStyle  = lipgloss.NewStyle().Bold(true)
	infoStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	timeStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	modeStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("39"))
	filledStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("39"))
	emptyStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("238"))
)

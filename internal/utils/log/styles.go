package log

import (
	"strings"

	charmlog "github.com/charmbracelet/log"
	"github.com/charmbracelet/lipgloss"
)

var levelStyles = []struct {
	level Level
	style lipgloss.Style
}{
	{DebugLevel, lipgloss.NewStyle().Foreground(lipgloss.Color("#808080"))},
	{InfoLevel, lipgloss.NewStyle().Foreground(lipgloss.Color("#0000FF"))},
	{WarnLevel, lipgloss.NewStyle().Foreground(lipgloss.Color("#FFFF00"))},
	{ErrorLevel, lipgloss.NewStyle().Foreground(lipgloss.Color("#FF0000"))},
}

// DefaultStyles returns charmlog styles with fixed-width level labels
func DefaultStyles() *Styles {
	styles := charmlog.DefaultStyles()
	for _, ls := range levelStyles {
		label := strings.ToUpper(ls.level.String())
		styles.Levels[ls.level] = ls.style.SetString(label + strings.Repeat(" ", 5-len(label)))
	}
	return styles
}

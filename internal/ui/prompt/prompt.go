// Package prompt holds the small interactive questions rtrash asks on a terminal
package prompt

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
)

// Confirm asks a yes/no question; anything but an explicit yes is false
func Confirm(ctx context.Context, question string, opts ...tea.ProgramOption) (bool, error) {
	m := NewConfirm(question)
	opts = append([]tea.ProgramOption{tea.WithContext(ctx)}, opts...)
	if _, err := tea.NewProgram(&m, opts...).Run(); err != nil {
		return false, fmt.Errorf("confirm prompt: %w", err)
	}
	return m.Selected().IsAccepted(), nil
}

// Choose asks the user to pick one of choices; "" means dismissed
func Choose(ctx context.Context, question string, choices []string, opts ...tea.ProgramOption) (string, error) {
	m := NewChoose(question, choices)
	opts = append([]tea.ProgramOption{tea.WithContext(ctx)}, opts...)
	if _, err := tea.NewProgram(&m, opts...).Run(); err != nil {
		return "", fmt.Errorf("choose prompt: %w", err)
	}
	return m.Chosen(), nil
}

package prompt

import (
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// KeyMap defines the key bindings of ChooseModel
type KeyMap struct {
	Next   key.Binding
	Prev   key.Binding
	Enter  key.Binding
	Cancel key.Binding
}

var DefaultKeyMap = KeyMap{
	Next: key.NewBinding(
		key.WithKeys(tea.KeyRight.String(), tea.KeyTab.String(), "l"),
		key.WithHelp("→", "next"),
	),
	Prev: key.NewBinding(
		key.WithKeys(tea.KeyLeft.String(), tea.KeyShiftTab.String(), "h"),
		key.WithHelp("←", "prev"),
	),
	Enter: key.NewBinding(
		key.WithKeys(tea.KeyEnter.String()),
		key.WithHelp("enter", "choose"),
	),
	Cancel: key.NewBinding(
		key.WithKeys(tea.KeyEsc.String(), tea.KeyCtrlC.String()),
		key.WithHelp("esc", "dismiss"),
	),
}

// ShortHelp is part of the key.Map interface
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Prev, k.Next, k.Enter, k.Cancel}
}

// FullHelp is part of the key.Map interface
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

// ChooseModel lets the user pick one of a few message actions laid out
// horizontally: Prompt? ➤Install  Dismiss
type ChooseModel struct {
	PromptPrefix     string
	Prompt           string
	Choices          []string
	ChooserIndicator rune
	KeyMap           KeyMap
	Styles           Styles

	cursor   int
	chosen   string
	done     bool
	help     help.Model
	canceled bool
}

// NewChoose creates a chooser over choices with the first one highlighted
func NewChoose(prompt string, choices []string) ChooseModel {
	return ChooseModel{
		PromptPrefix:     "? ",
		Prompt:           prompt,
		Choices:          choices,
		ChooserIndicator: '➤',
		KeyMap:           DefaultKeyMap,
		Styles:           defaultStyles(),
		help:             help.New(),
	}
}

// Chosen returns the picked choice, or "" when dismissed
func (m *ChooseModel) Chosen() string {
	return m.chosen
}

func (m *ChooseModel) Init() tea.Cmd {
	return nil
}

func (m *ChooseModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.KeyMap.Cancel):
			m.canceled, m.done = true, true
			return m, tea.Quit
		case key.Matches(msg, m.KeyMap.Enter):
			if len(m.Choices) > 0 {
				m.chosen = m.Choices[m.cursor]
			}
			m.done = true
			return m, tea.Quit
		case key.Matches(msg, m.KeyMap.Next):
			if len(m.Choices) > 0 {
				m.cursor = (m.cursor + 1) % len(m.Choices)
			}
		case key.Matches(msg, m.KeyMap.Prev):
			if len(m.Choices) > 0 {
				m.cursor = (m.cursor - 1 + len(m.Choices)) % len(m.Choices)
			}
		}
	}
	return m, nil
}

func (m *ChooseModel) View() string {
	text := m.Styles.Text.Inline(true).Render

	var b strings.Builder
	b.WriteString(m.Styles.PromptPrefix.Inline(true).Render(m.PromptPrefix))
	b.WriteString(m.Styles.Prompt.Render(m.Prompt))

	if m.done {
		b.WriteString(" ")
		b.WriteString(text(m.chosen))
		b.WriteString("\n")
		return b.String()
	}

	chooser := m.Styles.ChooserIndicator.Inline(true).Render(string(m.ChooserIndicator))
	for i, choice := range m.Choices {
		b.WriteString(" ")
		if i == m.cursor {
			b.WriteString(chooser)
		} else {
			b.WriteString(text(" "))
		}
		b.WriteString(text(choice))
	}

	b.WriteString("\n")
	b.WriteString(m.help.View(m.KeyMap))
	b.WriteString("\n")
	return b.String()
}

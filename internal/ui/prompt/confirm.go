package prompt

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/jimschubert/answer/colors"
)

// Decision is the answer to a yes/no prompt
type Decision int

const (
	// Undecided means no key was pressed yet and there is no default
	Undecided Decision = iota
	Accepted
	Denied
)

func (d Decision) String() string {
	return [...]string{
		"undecided",
		"accepted",
		"denied",
	}[d]
}

func (d Decision) IsAccepted() bool {
	return d == Accepted
}

// Styles holds relevant styles used for rendering
type Styles struct {
	PromptPrefix     lipgloss.Style
	Prompt           lipgloss.Style
	Text             lipgloss.Style
	Placeholder      lipgloss.Style
	ChooserIndicator lipgloss.Style
}

func defaultStyles() Styles {
	return Styles{
		PromptPrefix:     lipgloss.NewStyle().Foreground(lipgloss.Color(colors.PromptPrefix)),
		Placeholder:      lipgloss.NewStyle().Foreground(lipgloss.Color(colors.Placeholder)),
		ChooserIndicator: lipgloss.NewStyle().Foreground(lipgloss.Color(colors.PromptPrefix)),
	}
}

// ConfirmModel answers a yes/no question with a single key press.
// Enter picks the default, Esc and Ctrl+C deny.
type ConfirmModel struct {
	PromptPrefix string
	Prompt       string

	AcceptedText string
	DeniedText   string

	DefaultValue Decision
	Styles       Styles

	selected Decision
	done     bool
}

// NewConfirm creates a confirm prompt that defaults to Denied
func NewConfirm(prompt string) ConfirmModel {
	return ConfirmModel{
		PromptPrefix: "? ",
		Prompt:       prompt,
		AcceptedText: "y",
		DeniedText:   "n",
		DefaultValue: Denied,
		Styles:       defaultStyles(),
	}
}

// Selected retrieves the default or user-selected Decision value
func (m *ConfirmModel) Selected() Decision {
	return m.selected
}

func (m *ConfirmModel) Init() tea.Cmd {
	m.selected = m.DefaultValue
	return nil
}

func (m *ConfirmModel) decide(d Decision) (tea.Model, tea.Cmd) {
	m.selected = d
	m.done = true
	return m, tea.Quit
}

func (m *ConfirmModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch key.Type {
	case tea.KeyCtrlC, tea.KeyEsc:
		return m.decide(Denied)
	case tea.KeyEnter:
		if m.DefaultValue == Undecided {
			return m, nil
		}
		return m.decide(m.DefaultValue)
	}

	switch strings.ToLower(key.String()) {
	case strings.ToLower(m.AcceptedText[:1]):
		return m.decide(Accepted)
	case strings.ToLower(m.DeniedText[:1]):
		return m.decide(Denied)
	}
	return m, nil
}

func (m *ConfirmModel) hint() string {
	yes, no := m.AcceptedText, m.DeniedText
	switch m.DefaultValue {
	case Accepted:
		yes = strings.ToUpper(yes)
	case Denied:
		no = strings.ToUpper(no)
	}
	return yes + "/" + no
}

func (m *ConfirmModel) View() string {
	var b strings.Builder
	b.WriteString(m.Styles.PromptPrefix.Inline(true).Render(m.PromptPrefix))
	b.WriteString(m.Styles.Prompt.Inline(true).Render(m.Prompt))
	b.WriteString(" ")

	if m.done {
		if m.selected == Accepted {
			b.WriteString(m.AcceptedText)
		} else {
			b.WriteString(m.DeniedText)
		}
		b.WriteRune('\n')
		return b.String()
	}

	b.WriteString(m.Styles.Placeholder.Inline(true).Render(m.hint()))
	return b.String()
}

package prompt

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestConfirmModel(t *testing.T) {
	tests := []struct {
		name string
		msg  tea.KeyMsg
		want Decision
		quit bool
	}{
		{"y accepts", runes("y"), Accepted, true},
		{"Y accepts", runes("Y"), Accepted, true},
		{"n denies", runes("n"), Denied, true},
		{"enter picks default", tea.KeyMsg{Type: tea.KeyEnter}, Denied, true},
		{"esc denies", tea.KeyMsg{Type: tea.KeyEsc}, Denied, true},
		{"other keys are ignored", runes("q"), Denied, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewConfirm("Discard unsaved changes to note.txt?")
			m.Init()

			_, cmd := m.Update(tt.msg)
			if got := m.Selected(); got != tt.want {
				t.Errorf("Selected() = %v, want %v", got, tt.want)
			}
			if (cmd != nil) != tt.quit {
				t.Errorf("quit = %v, want %v", cmd != nil, tt.quit)
			}
		})
	}
}

func TestConfirmModelView(t *testing.T) {
	m := NewConfirm("Discard?")
	m.Init()

	if v := m.View(); !strings.Contains(v, "Discard?") || !strings.Contains(v, "y/N") {
		t.Errorf("View() = %q, want prompt and y/N hint", v)
	}

	m.Update(runes("y"))
	if v := m.View(); !strings.HasSuffix(v, "y\n") {
		t.Errorf("View() after answer = %q", v)
	}
}

func TestChooseModel(t *testing.T) {
	tests := []struct {
		name string
		keys []tea.KeyMsg
		want string
	}{
		{"enter picks first", []tea.KeyMsg{{Type: tea.KeyEnter}}, "Installation instructions"},
		{"right then enter", []tea.KeyMsg{{Type: tea.KeyRight}, {Type: tea.KeyEnter}}, "Dismiss"},
		{"wraps around", []tea.KeyMsg{{Type: tea.KeyLeft}, {Type: tea.KeyLeft}, {Type: tea.KeyEnter}}, "Installation instructions"},
		{"esc dismisses", []tea.KeyMsg{{Type: tea.KeyRight}, {Type: tea.KeyEsc}}, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewChoose("Trash tool not found", []string{"Installation instructions", "Dismiss"})
			m.Init()
			for _, k := range tt.keys {
				m.Update(k)
			}
			if got := m.Chosen(); got != tt.want {
				t.Errorf("Chosen() = %q, want %q", got, tt.want)
			}
		})
	}
}

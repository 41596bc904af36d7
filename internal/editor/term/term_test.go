package term

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"

	"github.com/babarot/rtrash/internal/config"
	"github.com/babarot/rtrash/internal/editor"
)

// fakeShell records commands and answers them from a table
type fakeShell struct {
	outputs map[string]string
	codes   map[string]int
	ran     []string
}

func (s *fakeShell) run(_ context.Context, command string) (string, int, error) {
	s.ran = append(s.ran, command)
	return s.outputs[command], s.codes[command], nil
}

func newTestHost(t *testing.T, cfg config.Host, sh *fakeShell) (*Host, *bytes.Buffer) {
	t.Helper()
	var out bytes.Buffer
	h := New(cfg, WithOutput(&out), WithInteractive(true))
	h.run = sh.run
	return h, &out
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
}

func TestFileWorkspaceApplyAndUndo(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "work", "note.txt")
	dst := filepath.Join(dir, "Trash", "files", "note.txt")
	info := filepath.Join(dir, "Trash", "info", "note.txt.trashinfo")
	writeFile(t, src, "hello")
	if err := os.MkdirAll(filepath.Dir(info), 0700); err != nil {
		t.Fatal(err)
	}

	edit := editor.NewWorkspaceEdit("trash note.txt")
	edit.RenameFile(src, dst)
	edit.CreateFile(info, []byte("[Trash Info]\n"))

	w := FileWorkspace{}
	applied, err := w.ApplyEdit(context.Background(), edit)
	if err != nil || !applied {
		t.Fatalf("ApplyEdit() = %v, %v", applied, err)
	}
	if _, err := os.Stat(dst); err != nil {
		t.Errorf("moved file missing: %v", err)
	}
	if _, err := os.Stat(info); err != nil {
		t.Errorf("created file missing: %v", err)
	}

	if err := w.undo(edit.Operations()); err != nil {
		t.Fatalf("undo() error = %v", err)
	}
	if data, err := os.ReadFile(src); err != nil || string(data) != "hello" {
		t.Errorf("source not restored: %q, %v", data, err)
	}
	if _, err := os.Stat(info); !os.IsNotExist(err) {
		t.Errorf("created file should be gone, stat err = %v", err)
	}
}

func TestFileWorkspaceRollsBackOnFailure(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "work", "note.txt")
	dst := filepath.Join(dir, "Trash", "files", "note.txt")
	info := filepath.Join(dir, "Trash", "info", "note.txt.trashinfo")
	writeFile(t, src, "hello")
	// An existing sidecar makes the create step fail
	writeFile(t, info, "taken")

	edit := editor.NewWorkspaceEdit("trash note.txt")
	edit.RenameFile(src, dst)
	edit.CreateFile(info, []byte("[Trash Info]\n"))

	applied, err := FileWorkspace{}.ApplyEdit(context.Background(), edit)
	if applied || err == nil {
		t.Fatalf("ApplyEdit() = %v, %v; want failure", applied, err)
	}
	if _, err := os.Stat(src); err != nil {
		t.Errorf("rename should have been rolled back: %v", err)
	}
	if _, err := os.Stat(dst); !os.IsNotExist(err) {
		t.Errorf("destination should not exist after rollback, stat err = %v", err)
	}
	if data, _ := os.ReadFile(info); string(data) != "taken" {
		t.Errorf("pre-existing sidecar was modified: %q", data)
	}
}

func TestParseTabs(t *testing.T) {
	out := "/w/a.txt\n+/w/b.txt\n\n/w/c.txt\r\n\n\n"
	groups := parseTabs(out)

	if len(groups) != 2 {
		t.Fatalf("len(groups) = %d, want 2", len(groups))
	}
	want := []editor.Tab{
		{Label: "a.txt", Path: "/w/a.txt", Group: 0},
		{Label: "b.txt", Path: "/w/b.txt", Dirty: true, Group: 0},
	}
	if !slices.Equal(groups[0].Tabs, want) {
		t.Errorf("group 0 = %+v, want %+v", groups[0].Tabs, want)
	}
	if groups[1].Tabs[0].Path != "/w/c.txt" || groups[1].Tabs[0].Group != 1 {
		t.Errorf("group 1 = %+v", groups[1].Tabs)
	}
}

func TestTabGroupsWithoutCommand(t *testing.T) {
	h, _ := newTestHost(t, config.Host{}, &fakeShell{})
	groups, err := h.TabGroups(context.Background())
	if err != nil || groups != nil {
		t.Fatalf("TabGroups() = %v, %v; want no tabs", groups, err)
	}
}

func TestCloseTab(t *testing.T) {
	tests := []struct {
		name        string
		tab         editor.Tab
		interactive bool
		answer      bool
		wantClosed  bool
		wantRan     []string
	}{
		{
			name:        "clean tab",
			tab:         editor.Tab{Label: "a.txt", Path: "/w/a.txt"},
			interactive: true,
			wantClosed:  true,
			wantRan:     []string{"close /w/a.txt"},
		},
		{
			name:        "dirty tab discarded",
			tab:         editor.Tab{Label: "my b.txt", Path: "/w/my b.txt", Dirty: true},
			interactive: true,
			answer:      true,
			wantClosed:  true,
			wantRan:     []string{"close '/w/my b.txt'"},
		},
		{
			name:        "dirty tab kept",
			tab:         editor.Tab{Label: "b.txt", Path: "/w/b.txt", Dirty: true},
			interactive: true,
			answer:      false,
			wantClosed:  false,
		},
		{
			name:        "dirty tab kept when not interactive",
			tab:         editor.Tab{Label: "b.txt", Path: "/w/b.txt", Dirty: true},
			interactive: false,
			answer:      true,
			wantClosed:  false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sh := &fakeShell{}
			h, _ := newTestHost(t, config.Host{CloseTabCommand: "close {}", ConfirmDiscard: true}, sh)
			h.interactive = tt.interactive
			var asked []string
			h.confirm = func(_ context.Context, q string) (bool, error) {
				asked = append(asked, q)
				return tt.answer, nil
			}

			closed, err := h.CloseTab(context.Background(), tt.tab)
			if err != nil {
				t.Fatalf("CloseTab() error = %v", err)
			}
			if closed != tt.wantClosed {
				t.Errorf("closed = %v, want %v", closed, tt.wantClosed)
			}
			if !slices.Equal(sh.ran, tt.wantRan) {
				t.Errorf("ran = %q, want %q", sh.ran, tt.wantRan)
			}
			if tt.tab.Dirty && tt.interactive && len(asked) != 1 {
				t.Errorf("asked %d questions, want 1", len(asked))
			}
		})
	}
}

func TestCloseTabCommandFails(t *testing.T) {
	sh := &fakeShell{outputs: map[string]string{"close /w/a.txt": "no such tab"}, codes: map[string]int{"close /w/a.txt": 1}}
	h, _ := newTestHost(t, config.Host{CloseTabCommand: "close"}, sh)

	closed, err := h.CloseTab(context.Background(), editor.Tab{Path: "/w/a.txt"})
	if closed || err == nil {
		t.Fatalf("CloseTab() = %v, %v; want error", closed, err)
	}
	if !strings.Contains(err.Error(), "no such tab") {
		t.Errorf("error %q should carry the command output", err)
	}
}

func TestExecuteCommand(t *testing.T) {
	sh := &fakeShell{}
	h, _ := newTestHost(t, config.Host{SelectionCommand: "copy-selection"}, sh)

	if err := h.ExecuteCommand(context.Background(), editor.CommandCopyFilePath); err != nil {
		t.Fatalf("ExecuteCommand() error = %v", err)
	}
	if !slices.Equal(sh.ran, []string{"copy-selection"}) {
		t.Errorf("ran = %v", sh.ran)
	}

	if err := h.ExecuteCommand(context.Background(), "workbench.action.reload"); !errors.Is(err, ErrCommandUnavailable) {
		t.Errorf("unknown command error = %v, want ErrCommandUnavailable", err)
	}

	empty, _ := newTestHost(t, config.Host{}, &fakeShell{})
	if err := empty.ExecuteCommand(context.Background(), editor.CommandCopyFilePath); !errors.Is(err, ErrCommandUnavailable) {
		t.Errorf("unconfigured command error = %v, want ErrCommandUnavailable", err)
	}
}

func TestShowWarning(t *testing.T) {
	tests := []struct {
		name        string
		interactive bool
		choice      string
		want        string
	}{
		{"action chosen", true, "Installation instructions", "Installation instructions"},
		{"dismissed", true, "Dismiss", ""},
		{"not interactive", false, "Installation instructions", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, out := newTestHost(t, config.Host{}, &fakeShell{})
			h.interactive = tt.interactive
			h.choose = func(_ context.Context, _ string, choices []string) (string, error) {
				if choices[len(choices)-1] != "Dismiss" {
					t.Errorf("choices = %v, want Dismiss last", choices)
				}
				return tt.choice, nil
			}

			got, err := h.ShowWarning(context.Background(), "Trash tool not found", "Installation instructions")
			if err != nil {
				t.Fatalf("ShowWarning() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("ShowWarning() = %q, want %q", got, tt.want)
			}
			if !strings.Contains(out.String(), "Trash tool not found") {
				t.Errorf("output = %q", out.String())
			}
		})
	}
}

func TestRefreshExplorer(t *testing.T) {
	sh := &fakeShell{}
	h, _ := newTestHost(t, config.Host{RefreshCommand: "refresh"}, sh)
	if err := h.RefreshExplorer(context.Background()); err != nil {
		t.Fatalf("RefreshExplorer() error = %v", err)
	}
	if !slices.Equal(sh.ran, []string{"refresh"}) {
		t.Errorf("ran = %v", sh.ran)
	}

	none, _ := newTestHost(t, config.Host{}, &fakeShell{})
	if err := none.RefreshExplorer(context.Background()); err != nil {
		t.Errorf("RefreshExplorer() without command error = %v", err)
	}
}

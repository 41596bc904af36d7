package selection

import (
	"context"
	"errors"
	"slices"
	"testing"
)

type fakeClipboard struct {
	text     string
	reads    int
	writes   []string
	readErr  error
	writeErr error
}

func (c *fakeClipboard) ReadText(context.Context) (string, error) {
	c.reads++
	if c.readErr != nil {
		return "", c.readErr
	}
	return c.text, nil
}

func (c *fakeClipboard) WriteText(_ context.Context, s string) error {
	c.writes = append(c.writes, s)
	if c.writeErr != nil {
		return c.writeErr
	}
	c.text = s
	return nil
}

// fakeCommands simulates the host copying its selection onto the clipboard
type fakeCommands struct {
	clipboard *fakeClipboard
	selection string
	err       error
	executed  []string
}

func (c *fakeCommands) ExecuteCommand(_ context.Context, id string) error {
	c.executed = append(c.executed, id)
	if c.err != nil {
		return c.err
	}
	c.clipboard.text = c.selection
	return nil
}

func TestDirect(t *testing.T) {
	in := []string{"/w/b.txt", "/w/a.txt", "/w/b.txt"}
	got, err := Direct{Paths: in}.Targets(context.Background())
	if err != nil {
		t.Fatalf("Targets() error = %v", err)
	}
	if !slices.Equal(got, in) {
		t.Errorf("Targets() = %v, want %v", got, in)
	}

	got[0] = "/changed"
	if in[0] != "/w/b.txt" {
		t.Error("Targets() must return a copy")
	}
}

func TestClipboardTargets(t *testing.T) {
	cb := &fakeClipboard{text: "X"}
	cmds := &fakeCommands{clipboard: cb, selection: "/w/a.txt\r\n/w/b c.txt\n\n  /w/d.txt  \n"}

	got, err := Clipboard{Clipboard: cb, Commands: cmds}.Targets(context.Background())
	if err != nil {
		t.Fatalf("Targets() error = %v", err)
	}

	want := []string{"/w/a.txt", "/w/b c.txt", "/w/d.txt"}
	if !slices.Equal(got, want) {
		t.Errorf("Targets() = %q, want %q", got, want)
	}
	if cb.text != "X" {
		t.Errorf("clipboard = %q, want original %q", cb.text, "X")
	}
	if !slices.Equal(cmds.executed, []string{"copyFilePath"}) {
		t.Errorf("executed = %v", cmds.executed)
	}
}

func TestClipboardRestoredOnFailure(t *testing.T) {
	cb := &fakeClipboard{text: "X"}
	cmds := &fakeCommands{clipboard: cb, err: errors.New("no explorer focused")}

	got, err := Clipboard{Clipboard: cb, Commands: cmds, Command: "explorer.copy"}.Targets(context.Background())
	if !errors.Is(err, ErrSelectionUnavailable) {
		t.Fatalf("Targets() error = %v, want ErrSelectionUnavailable", err)
	}
	if got != nil {
		t.Errorf("Targets() = %v, want nil", got)
	}
	if cb.text != "X" {
		t.Errorf("clipboard = %q, want original %q", cb.text, "X")
	}
	if !slices.Equal(cmds.executed, []string{"explorer.copy"}) {
		t.Errorf("executed = %v", cmds.executed)
	}
}

func TestClipboardRestoreFailure(t *testing.T) {
	cb := &fakeClipboard{text: "X", writeErr: errors.New("clipboard locked")}
	cmds := &fakeCommands{clipboard: cb, selection: "/w/a.txt"}

	got, err := Clipboard{Clipboard: cb, Commands: cmds}.Targets(context.Background())
	if !errors.Is(err, ErrSelectionUnavailable) {
		t.Fatalf("Targets() error = %v, want ErrSelectionUnavailable", err)
	}
	if got != nil {
		t.Errorf("Targets() = %v, want nil when the clipboard could not be restored", got)
	}
	if !slices.Equal(cb.writes, []string{"X"}) {
		t.Errorf("writes = %v, want a single restore of %q", cb.writes, "X")
	}
}

func TestClipboardUnreadable(t *testing.T) {
	cb := &fakeClipboard{readErr: errors.New("no display")}
	cmds := &fakeCommands{clipboard: cb}

	if _, err := (Clipboard{Clipboard: cb, Commands: cmds}).Targets(context.Background()); !errors.Is(err, ErrSelectionUnavailable) {
		t.Fatalf("Targets() error = %v, want ErrSelectionUnavailable", err)
	}
	if len(cmds.executed) != 0 {
		t.Error("command must not run when the clipboard cannot be saved")
	}
	if len(cb.writes) != 0 {
		t.Error("nothing to restore when the clipboard was never read")
	}
}

func TestResolve(t *testing.T) {
	fallback := Clipboard{}

	tests := []struct {
		name      string
		paths     []string
		path      string
		wantPaths []string
		fallback  bool
	}{
		{"list wins", []string{"/a", "/b"}, "/c", []string{"/a", "/b"}, false},
		{"single path", nil, "/c", []string{"/c"}, false},
		{"empty list falls to path", []string{}, "/c", []string{"/c"}, false},
		{"nothing explicit", nil, "", nil, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := Resolve(tt.paths, tt.path, fallback)
			if tt.fallback {
				if _, ok := p.(Clipboard); !ok {
					t.Fatalf("Resolve() = %T, want Clipboard", p)
				}
				return
			}
			d, ok := p.(Direct)
			if !ok {
				t.Fatalf("Resolve() = %T, want Direct", p)
			}
			if !slices.Equal(d.Paths, tt.wantPaths) {
				t.Errorf("Resolve() paths = %v, want %v", d.Paths, tt.wantPaths)
			}
		})
	}
}

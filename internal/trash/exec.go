package trash

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/babarot/rtrash/internal/utils/shell"
)

// InstallURL documents how to install the default trash tool
const InstallURL = "https://github.com/andreafrancia/trash-cli#installation"

// ExecMover trashes files by running an external tool once per file:
// `<tool> <absolute-path>`
type ExecMover struct {
	// Tool is a command name looked up in $PATH or a path to an
	// executable. "~" and environment variables are expanded.
	Tool string
}

// NewExecMover returns an ExecMover for tool
func NewExecMover(tool string) *ExecMover {
	return &ExecMover{Tool: tool}
}

// resolve expands and looks up the tool on every call; the configured
// reference is never cached
func (m *ExecMover) resolve() (string, error) {
	expanded, err := shell.ExpandHome(m.Tool)
	if err != nil {
		return "", &ToolNotFoundError{Tool: m.Tool, Err: err}
	}
	if strings.TrimSpace(expanded) == "" {
		return "", &ToolNotFoundError{Tool: m.Tool, Err: errors.New("empty command")}
	}
	bin, err := exec.LookPath(expanded)
	if err != nil {
		return "", &ToolNotFoundError{Tool: m.Tool, Err: err}
	}
	return bin, nil
}

func (m *ExecMover) Available(context.Context) error {
	bin, err := m.resolve()
	if err != nil {
		return err
	}
	slog.Debug("trash tool resolved", "tool", m.Tool, "bin", bin)
	return nil
}

func (m *ExecMover) Move(ctx context.Context, path string) error {
	bin, err := m.resolve()
	if err != nil {
		return NewMoveError("exec", path, err)
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		return NewMoveError("exec", path, err)
	}

	slog.Debug("running trash tool", "command", shell.Join(bin, abs))
	out, err := exec.CommandContext(ctx, bin, abs).CombinedOutput()
	if err != nil {
		if msg := strings.TrimSpace(string(out)); msg != "" {
			err = fmt.Errorf("%w: %s", err, msg)
		}
		return NewMoveError("exec", abs, err)
	}
	return nil
}

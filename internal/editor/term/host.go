// Package term implements editor.Host for a plain terminal.
//
// A terminal has no tabs or file explorer of its own, so the editor being
// stood in for is reached through user-configured shell commands
// (see config.Host). Messages and questions go to the terminal.
package term

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/babarot/rtrash/internal/config"
	"github.com/babarot/rtrash/internal/editor"
	"github.com/babarot/rtrash/internal/ui/prompt"
	"github.com/babarot/rtrash/internal/utils/shell"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-isatty"
)

// ErrCommandUnavailable is returned for host commands with nothing configured
var ErrCommandUnavailable = errors.New("command not configured")

// Host is an editor.Host backed by the terminal and shell commands
type Host struct {
	editor.Clipboard
	FileWorkspace

	cfg         config.Host
	out         io.Writer
	interactive bool

	// run executes a shell command; replaced in tests
	run func(ctx context.Context, command string) (string, int, error)

	confirm func(ctx context.Context, question string) (bool, error)
	choose  func(ctx context.Context, question string, choices []string) (string, error)
}

var _ editor.Host = (*Host)(nil)

type Option func(*Host)

// WithOutput sets where messages are written (stderr by default)
func WithOutput(w io.Writer) Option {
	return func(h *Host) {
		h.out = w
	}
}

// WithClipboard replaces the system clipboard
func WithClipboard(c editor.Clipboard) Option {
	return func(h *Host) {
		h.Clipboard = c
	}
}

// WithInteractive overrides terminal detection
func WithInteractive(interactive bool) Option {
	return func(h *Host) {
		h.interactive = interactive
	}
}

// WithCopyFallback lets trash renames across devices copy and delete
func WithCopyFallback(fallback bool) Option {
	return func(h *Host) {
		h.CopyFallback = fallback
	}
}

// New returns a terminal host configured by cfg
func New(cfg config.Host, opts ...Option) *Host {
	h := &Host{
		Clipboard:   SystemClipboard{},
		cfg:         cfg,
		out:         os.Stderr,
		interactive: isatty.IsTerminal(os.Stdin.Fd()) && isatty.IsTerminal(os.Stderr.Fd()),
		run:         shell.RunCommand,
	}
	h.confirm = func(ctx context.Context, question string) (bool, error) {
		return prompt.Confirm(ctx, question, tea.WithOutput(os.Stderr))
	}
	h.choose = func(ctx context.Context, question string, choices []string) (string, error) {
		return prompt.Choose(ctx, question, choices, tea.WithOutput(os.Stderr))
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// runConfigured runs a configured command and fails on a non-zero exit
func (h *Host) runConfigured(ctx context.Context, name, command string) (string, error) {
	if strings.TrimSpace(command) == "" {
		return "", fmt.Errorf("%s: %w", name, ErrCommandUnavailable)
	}
	slog.Debug("running host command", "name", name, "command", command)
	out, code, err := h.run(ctx, command)
	if err != nil {
		return "", fmt.Errorf("%s: %w", name, err)
	}
	if code != 0 {
		return "", fmt.Errorf("%s: exit status %d: %s", name, code, strings.TrimSpace(out))
	}
	return out, nil
}

func (h *Host) ExecuteCommand(ctx context.Context, id string) error {
	switch id {
	case editor.CommandCopyFilePath:
		_, err := h.runConfigured(ctx, "selection_command", h.cfg.SelectionCommand)
		return err
	default:
		return fmt.Errorf("unknown command %q: %w", id, ErrCommandUnavailable)
	}
}

func (h *Host) RefreshExplorer(ctx context.Context) error {
	if h.cfg.RefreshCommand == "" {
		slog.Debug("no refresh command configured")
		return nil
	}
	_, err := h.runConfigured(ctx, "refresh_command", h.cfg.RefreshCommand)
	return err
}

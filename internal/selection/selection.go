// Package selection resolves which files an invocation targets
package selection

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/babarot/rtrash/internal/editor"
	"github.com/samber/lo"
)

// ErrSelectionUnavailable is returned when the explorer selection could not be read
var ErrSelectionUnavailable = errors.New("explorer selection unavailable")

// Provider yields the target paths of one invocation
type Provider interface {
	Targets(ctx context.Context) ([]string, error)
}

// Direct is an explicit list of paths
type Direct struct {
	Paths []string
}

func (d Direct) Targets(context.Context) ([]string, error) {
	return append([]string(nil), d.Paths...), nil
}

// Clipboard asks the host to copy the explorer selection to the clipboard
// and reads it back. The clipboard text present before the call is always
// put back.
type Clipboard struct {
	Clipboard editor.Clipboard
	Commands  editor.Commands

	// Command is the host command that copies the selection;
	// editor.CommandCopyFilePath when empty
	Command string
}

func (c Clipboard) Targets(ctx context.Context) (paths []string, err error) {
	command := c.Command
	if command == "" {
		command = editor.CommandCopyFilePath
	}

	original, err := c.Clipboard.ReadText(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: read clipboard: %v", ErrSelectionUnavailable, err)
	}
	defer func() {
		if rerr := c.Clipboard.WriteText(ctx, original); rerr != nil {
			slog.Error("failed to restore clipboard", "error", rerr)
			if err == nil {
				err = fmt.Errorf("%w: restore clipboard: %v", ErrSelectionUnavailable, rerr)
				paths = nil
			}
		}
	}()

	if err := c.Commands.ExecuteCommand(ctx, command); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrSelectionUnavailable, command, err)
	}

	text, err := c.Clipboard.ReadText(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: read clipboard: %v", ErrSelectionUnavailable, err)
	}

	paths = SplitLines(text)
	slog.Debug("selection read from clipboard", "command", command, "count", len(paths))
	return paths, nil
}

// SplitLines returns the non-blank lines of text, trimmed
func SplitLines(text string) []string {
	lines := strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n")
	return lo.FilterMap(lines, func(line string, _ int) (string, bool) {
		line = strings.TrimSpace(line)
		return line, line != ""
	})
}

// Resolve picks the provider for an invocation: an explicit list wins over
// a single explicit path, and both win over fallback.
func Resolve(paths []string, path string, fallback Provider) Provider {
	switch {
	case len(paths) > 0:
		return Direct{Paths: paths}
	case path != "":
		return Direct{Paths: []string{path}}
	default:
		return fallback
	}
}

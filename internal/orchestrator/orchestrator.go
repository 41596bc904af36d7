// Package orchestrator runs one delete invocation end to end: resolve the
// targets, make sure they can be trashed, close their tabs, move them and
// refresh the explorer.
package orchestrator

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/babarot/rtrash/internal/editor"
	"github.com/babarot/rtrash/internal/selection"
	"github.com/babarot/rtrash/internal/trash"
	"github.com/babarot/rtrash/internal/utils/fs"
)

// ErrAborted is returned when an invocation stopped early after the user
// was told why (or, for an unreadable selection, deliberately told nothing)
var ErrAborted = errors.New("aborted")

const (
	msgNoFiles      = "No files selected."
	msgAllWithdrawn = "Nothing left to move to trash."
	msgToolNotFound = "Trash tool %q was not found. Install it or set core.trash_tool."
	msgUnavailable  = "Trash is not available: %v"
	msgMoveFailed   = "Failed to move %s to trash: %v"
	actionInstall   = "Installation instructions"
)

// Invocation is the context a delete was triggered from. Paths comes from
// a multi-selection, Path from a single item; with neither the selection
// is read from the explorer.
type Invocation struct {
	Path  string
	Paths []string
}

// Report describes what an invocation did
type Report struct {
	// Requested are the resolved targets, in order
	Requested []string

	// Withdrawn are targets whose tab the user kept open
	Withdrawn []string

	// Moved are the targets now in the trash, in order
	Moved []string

	// Bytes is the total size of Moved, as far as it could be measured
	Bytes int64
}

// Orchestrator deletes files through an editor host
type Orchestrator struct {
	host     editor.Host
	mover    trash.Mover
	fallback selection.Provider
}

// New returns an Orchestrator. fallback resolves the targets when the
// invocation names none; it defaults to reading the explorer selection
// through the host clipboard.
func New(host editor.Host, mover trash.Mover, fallback selection.Provider) *Orchestrator {
	if fallback == nil {
		fallback = selection.Clipboard{Clipboard: host, Commands: host}
	}
	return &Orchestrator{
		host:     host,
		mover:    mover,
		fallback: fallback,
	}
}

// Run executes one invocation. Steps run strictly in order and stop at the
// first failure; files after a failed move are not attempted.
func (o *Orchestrator) Run(ctx context.Context, inv Invocation) (Report, error) {
	var report Report

	targets, err := selection.Resolve(inv.Paths, inv.Path, o.fallback).Targets(ctx)
	if err != nil {
		slog.Debug("could not resolve targets", "error", err)
		return report, fmt.Errorf("%w: %w", ErrAborted, err)
	}
	report.Requested = append([]string(nil), targets...)
	if len(targets) == 0 {
		o.host.ShowInformation(ctx, msgNoFiles)
		return report, nil
	}
	slog.Debug("targets resolved", "count", len(targets))

	if err := o.checkAvailable(ctx); err != nil {
		return report, err
	}

	targets, err = o.closeTabs(ctx, targets, &report)
	if err != nil {
		return report, err
	}
	if len(targets) == 0 {
		o.host.ShowInformation(ctx, msgAllWithdrawn)
		return report, nil
	}

	for _, path := range targets {
		size, serr := fs.DirSize(path)
		if serr != nil {
			slog.Debug("cannot measure target", "path", path, "error", serr)
		}
		if err := o.mover.Move(ctx, path); err != nil {
			slog.Error("move failed", "path", path, "error", err)
			o.host.ShowError(ctx, fmt.Sprintf(msgMoveFailed, path, err))
			return report, fmt.Errorf("%w: %w", ErrAborted, err)
		}
		slog.Info("moved to trash", "path", path)
		report.Moved = append(report.Moved, path)
		report.Bytes += size
	}

	if err := o.host.RefreshExplorer(ctx); err != nil {
		return report, fmt.Errorf("refresh explorer: %w", err)
	}
	return report, nil
}

// checkAvailable verifies the mover once, before anything is touched
func (o *Orchestrator) checkAvailable(ctx context.Context) error {
	err := o.mover.Available(ctx)
	if err == nil {
		return nil
	}
	slog.Warn("trash mover unavailable", "error", err)

	var tnf *trash.ToolNotFoundError
	if !errors.As(err, &tnf) {
		o.host.ShowError(ctx, fmt.Sprintf(msgUnavailable, err))
		return fmt.Errorf("%w: %w", ErrAborted, err)
	}

	choice, werr := o.host.ShowWarning(ctx, fmt.Sprintf(msgToolNotFound, tnf.Tool), actionInstall)
	if werr != nil {
		return errors.Join(fmt.Errorf("%w: %w", ErrAborted, err), werr)
	}
	if choice == actionInstall {
		if oerr := o.host.OpenExternal(ctx, trash.InstallURL); oerr != nil {
			slog.Warn("failed to open installation instructions", "error", oerr)
		}
	}
	return fmt.Errorf("%w: %w", ErrAborted, err)
}

// closeTabs closes the tab bound to each target and returns the targets
// that are still to be moved. Tabs are enumerated again for every target
// since closing one tab invalidates the handles of the others. A declined
// close withdraws only that occurrence of the path.
func (o *Orchestrator) closeTabs(ctx context.Context, targets []string, report *Report) ([]string, error) {
	remaining := make([]string, 0, len(targets))
	for _, path := range targets {
		groups, err := o.host.TabGroups(ctx)
		if err != nil {
			return nil, fmt.Errorf("list tabs: %w", err)
		}
		tab, ok := editor.FindTab(groups, path)
		if !ok {
			remaining = append(remaining, path)
			continue
		}
		closed, err := o.host.CloseTab(ctx, tab)
		if err != nil {
			return nil, fmt.Errorf("close tab %s: %w", tab.Label, err)
		}
		if !closed {
			slog.Info("tab kept open, skipping file", "path", path)
			report.Withdrawn = append(report.Withdrawn, path)
			continue
		}
		remaining = append(remaining, path)
	}
	return remaining, nil
}

package trash

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/babarot/rtrash/internal/editor"
)

// XDGMover trashes files into a freedesktop-style trash directory without
// any external tool. The move and its .trashinfo sidecar are submitted to
// the host as one WorkspaceEdit so they are applied and reverted together.
type XDGMover struct {
	// Root is the trash directory holding files/ and info/
	Root string

	workspace editor.Workspace
	now       func() time.Time
}

// NewXDGMover returns a mover storing into root through workspace
func NewXDGMover(root string, workspace editor.Workspace) *XDGMover {
	return &XDGMover{
		Root:      root,
		workspace: workspace,
		now:       time.Now,
	}
}

func (m *XDGMover) filesDir() string { return filepath.Join(m.Root, "files") }
func (m *XDGMover) infoDir() string  { return filepath.Join(m.Root, "info") }

// Available creates the trash directories when they are missing
func (m *XDGMover) Available(context.Context) error {
	for _, dir := range []string{m.filesDir(), m.infoDir()} {
		if err := os.MkdirAll(dir, 0700); err != nil {
			return fmt.Errorf("failed to create trash directory: %w", err)
		}
	}
	return nil
}

// Prepare builds the edit that trashes path, without applying it
func (m *XDGMover) Prepare(path string) (*editor.WorkspaceEdit, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, NewMoveError("prepare", path, err)
	}
	if _, err := os.Lstat(abs); err != nil {
		return nil, NewMoveError("prepare", path, err)
	}

	name := UniqueName(m.filesDir(), m.infoDir(), filepath.Base(abs))
	info := Info{
		Path:         abs,
		DeletionDate: m.now(),
	}

	edit := editor.NewWorkspaceEdit("Move " + filepath.Base(abs) + " to trash")
	edit.RenameFile(abs, filepath.Join(m.filesDir(), name))
	edit.CreateFile(filepath.Join(m.infoDir(), name+infoExt), info.Marshal())
	return edit, nil
}

func (m *XDGMover) Move(ctx context.Context, path string) error {
	if err := m.Available(ctx); err != nil {
		return NewMoveError("prepare", path, err)
	}

	edit, err := m.Prepare(path)
	if err != nil {
		return err
	}

	slog.Debug("applying trash edit", "edit", edit.String())
	applied, err := m.workspace.ApplyEdit(ctx, edit)
	if err != nil {
		return NewMoveError("edit", path, err)
	}
	if !applied {
		return NewMoveError("edit", path, ErrEditRejected)
	}
	return nil
}

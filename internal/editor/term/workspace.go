package term

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/babarot/rtrash/internal/editor"
	"github.com/babarot/rtrash/internal/utils/fs"
)

// FileWorkspace applies WorkspaceEdits directly to the local filesystem
type FileWorkspace struct {
	// CopyFallback lets renames across devices fall back to copy and delete
	CopyFallback bool
}

// ApplyEdit applies the operations of edit in order. When one fails, the
// operations already applied are reverted and the edit is reported as not
// applied.
func (w FileWorkspace) ApplyEdit(ctx context.Context, edit *editor.WorkspaceEdit) (bool, error) {
	ops := edit.Operations()
	for i, op := range ops {
		if err := ctx.Err(); err != nil {
			return false, w.rollback(ops[:i], err)
		}
		if err := w.apply(op); err != nil {
			slog.Debug("workspace edit failed", "edit", edit.ID, "op", op.String(), "error", err)
			return false, w.rollback(ops[:i], fmt.Errorf("%s: %w", op, err))
		}
	}
	slog.Debug("workspace edit applied", "edit", edit.ID, "label", edit.Label)
	return true, nil
}

func (w FileWorkspace) rollback(applied []editor.FileOperation, cause error) error {
	if err := w.undo(applied); err != nil {
		return errors.Join(cause, fmt.Errorf("rollback: %w", err))
	}
	return cause
}

func (w FileWorkspace) apply(op editor.FileOperation) error {
	switch op.Kind {
	case editor.OperationRename:
		return fs.Move(op.From, op.To, w.CopyFallback)
	case editor.OperationCreate:
		return fs.WriteExclusive(op.To, op.Contents, 0600)
	default:
		return fmt.Errorf("unknown file operation: %q", op.Kind)
	}
}

// undo reverts applied operations, last operation first
func (w FileWorkspace) undo(ops []editor.FileOperation) error {
	var errs []error
	for i := len(ops) - 1; i >= 0; i-- {
		op := ops[i]
		switch op.Kind {
		case editor.OperationRename:
			if err := fs.Move(op.To, op.From, w.CopyFallback); err != nil {
				errs = append(errs, fmt.Errorf("undo %s: %w", op, err))
			}
		case editor.OperationCreate:
			if err := os.Remove(op.To); err != nil && !os.IsNotExist(err) {
				errs = append(errs, fmt.Errorf("undo %s: %w", op, err))
			}
		}
	}
	return errors.Join(errs...)
}

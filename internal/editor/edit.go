package editor

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// OperationKind identifies a file operation inside a WorkspaceEdit
type OperationKind string

const (
	OperationRename OperationKind = "rename"
	OperationCreate OperationKind = "create"
)

// FileOperation is one step of a WorkspaceEdit
type FileOperation struct {
	Kind OperationKind

	// From is the source of a rename
	From string

	// To is the destination of a rename or the file to create
	To string

	// Contents of a created file
	Contents []byte
}

func (op FileOperation) String() string {
	switch op.Kind {
	case OperationRename:
		return fmt.Sprintf("rename %s -> %s", op.From, op.To)
	case OperationCreate:
		return fmt.Sprintf("create %s (%d bytes)", op.To, len(op.Contents))
	default:
		return string(op.Kind)
	}
}

// WorkspaceEdit bundles file operations so the host applies and reverts
// them as a single unit
type WorkspaceEdit struct {
	ID    string
	Label string

	ops []FileOperation
}

// NewWorkspaceEdit returns an empty edit with a fresh ID
func NewWorkspaceEdit(label string) *WorkspaceEdit {
	return &WorkspaceEdit{
		ID:    uuid.New().String(),
		Label: label,
	}
}

// RenameFile appends a rename (move) of from to to
func (e *WorkspaceEdit) RenameFile(from, to string) {
	e.ops = append(e.ops, FileOperation{Kind: OperationRename, From: from, To: to})
}

// CreateFile appends the creation of path with contents
func (e *WorkspaceEdit) CreateFile(path string, contents []byte) {
	e.ops = append(e.ops, FileOperation{Kind: OperationCreate, To: path, Contents: contents})
}

// Operations returns the operations in application order
func (e *WorkspaceEdit) Operations() []FileOperation {
	return append([]FileOperation(nil), e.ops...)
}

func (e *WorkspaceEdit) String() string {
	steps := make([]string, len(e.ops))
	for i, op := range e.ops {
		steps[i] = op.String()
	}
	return fmt.Sprintf("%s [%s]: %s", e.Label, e.ID, strings.Join(steps, "; "))
}

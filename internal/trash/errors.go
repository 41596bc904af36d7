package trash

import (
	"errors"
	"strconv"
)

var (
	// ErrToolNotFound is returned when the trash tool cannot be resolved to an executable
	ErrToolNotFound = errors.New("trash tool not found")

	// ErrUnsafePath is returned for paths that must never be trashed ("/", ".", "..")
	ErrUnsafePath = errors.New("refusing to trash unsafe path")

	// ErrProtected is returned for paths matching a protect pattern
	ErrProtected = errors.New("path is protected")

	// ErrEditRejected is returned when the host did not apply a trash edit
	ErrEditRejected = errors.New("edit was not applied")
)

// ToolNotFoundError reports a trash tool that could not be resolved
type ToolNotFoundError struct {
	// Tool is the configured reference, before expansion
	Tool string

	// Err is the underlying lookup error
	Err error
}

func (e *ToolNotFoundError) Error() string {
	return "trash tool " + strconv.Quote(e.Tool) + " not found: " + e.Err.Error()
}

func (e *ToolNotFoundError) Unwrap() []error {
	return []error{ErrToolNotFound, e.Err}
}

// MoveError wraps an error with context about the failed move
type MoveError struct {
	// Op is the step that failed (e.g., "exec", "edit", "prepare")
	Op string

	// Path is the file being trashed
	Path string

	// Err is the underlying error
	Err error
}

func (e *MoveError) Error() string {
	if e.Path == "" {
		return e.Op + ": " + e.Err.Error()
	}
	return e.Op + " " + e.Path + ": " + e.Err.Error()
}

func (e *MoveError) Unwrap() error {
	return e.Err
}

// NewMoveError creates a new MoveError
func NewMoveError(op, path string, err error) error {
	return &MoveError{
		Op:   op,
		Path: path,
		Err:  err,
	}
}

// IsToolNotFound returns true if the error is ErrToolNotFound
func IsToolNotFound(err error) bool {
	return errors.Is(err, ErrToolNotFound)
}

// IsProtected returns true if the error is ErrProtected or ErrUnsafePath
func IsProtected(err error) bool {
	return errors.Is(err, ErrProtected) || errors.Is(err, ErrUnsafePath)
}

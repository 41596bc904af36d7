// Package trash moves files into a trash location
package trash

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/babarot/rtrash/internal/utils/fs"
	"github.com/gobwas/glob"
	"github.com/samber/lo"
)

// Mover puts files into a trash
type Mover interface {
	// Available reports whether Move can work at all. It has no side
	// effects on the files to be trashed.
	Available(ctx context.Context) error

	// Move trashes the file at path
	Move(ctx context.Context, path string) error
}

// Guard is a Mover that refuses unsafe and protected paths before
// delegating to the wrapped Mover.
type Guard struct {
	Mover

	patterns []glob.Glob
}

// NewGuard wraps m so that paths matching any of patterns are refused
func NewGuard(m Mover, patterns []string) (*Guard, error) {
	g := &Guard{Mover: m}
	for _, p := range patterns {
		compiled, err := glob.Compile(p, '/')
		if err != nil {
			return nil, fmt.Errorf("invalid protect pattern %q: %w", p, err)
		}
		g.patterns = append(g.patterns, compiled)
	}
	return g, nil
}

// Check returns an error when path must not be trashed
func (g *Guard) Check(path string) error {
	if fs.IsUnsafePath(path) {
		return NewMoveError("check", path, ErrUnsafePath)
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return NewMoveError("check", path, err)
	}
	if lo.SomeBy(g.patterns, func(p glob.Glob) bool { return p.Match(abs) }) {
		return NewMoveError("check", path, ErrProtected)
	}
	return nil
}

func (g *Guard) Move(ctx context.Context, path string) error {
	if err := g.Check(path); err != nil {
		return err
	}
	return g.Mover.Move(ctx, path)
}

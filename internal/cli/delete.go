package cli

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/babarot/rtrash/internal/orchestrator"
	"github.com/dustin/go-humanize"
	"github.com/dustin/go-humanize/english"
)

// Delete trashes args, or the explorer selection when args is empty
func (c CLI) Delete(ctx context.Context, args []string) error {
	slog.Debug("cli.delete started", "args", len(args))
	defer slog.Debug("cli.delete finished")

	paths := make([]string, 0, len(args))
	for _, arg := range args {
		abs, err := filepath.Abs(arg)
		if err != nil {
			return fmt.Errorf("failed to resolve %s: %w", arg, err)
		}
		paths = append(paths, abs)
	}

	o := orchestrator.New(c.host, c.mover, nil)
	report, err := o.Run(ctx, orchestrator.Invocation{Paths: paths})
	if c.option.Verbose || c.config.Core.Verbose {
		c.explain(report)
	}
	return err
}

func (c CLI) explain(r orchestrator.Report) {
	for _, path := range r.Withdrawn {
		fmt.Fprintf(c.stderr, "kept %s (tab left open)\n", path)
	}
	for _, path := range r.Moved {
		fmt.Fprintf(c.stderr, "trashed %s\n", path)
	}
	if len(r.Moved) > 0 {
		fmt.Fprintf(c.stderr, "%s moved to trash (%s)\n",
			english.Plural(len(r.Moved), "file", "files"),
			humanize.Bytes(uint64(r.Bytes)),
		)
	}
}

package cli

import (
	"cmp"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/babarot/rtrash/internal/config"
	"github.com/babarot/rtrash/internal/editor"
	"github.com/babarot/rtrash/internal/editor/term"
	"github.com/babarot/rtrash/internal/env"
	"github.com/babarot/rtrash/internal/orchestrator"
	"github.com/babarot/rtrash/internal/trash"
	"github.com/babarot/rtrash/internal/utils/debug"
	"github.com/babarot/rtrash/internal/utils/log"
	"github.com/babarot/rtrash/internal/utils/shell"
	"github.com/jessevdk/go-flags"
	"github.com/rs/xid"
)

type Option struct {
	Config  string `long:"config" description:"Path to config file" default:""`
	Tool    string `long:"tool" description:"Trash tool to run (overrides core.trash_tool)"`
	Mover   string `long:"mover" description:"How files are moved to trash (overrides core.mover)" choice:"exec" choice:"xdg"`
	Verbose bool   `short:"v" long:"verbose" description:"Explain what is being done"`

	Meta MetaOption `group:"Meta Options"`
}

type MetaOption struct {
	Version bool   `short:"V" long:"version" description:"Show version"`
	Debug   string `long:"debug" description:"View debug logs (default: \"full\")" optional-value:"full" optional:"yes" choice:"full" choice:"live"`
}

type CLI struct {
	version Version
	option  Option
	config  config.Config
	stdout  io.Writer
	stderr  io.Writer

	host  editor.Host
	mover trash.Mover
}

var runID = sync.OnceValue(func() string {
	id := xid.New().String()
	return id
})

// ErrReported marks errors the user has already been shown
var ErrReported = orchestrator.ErrAborted

func Run(v Version) error {
	var opt Option
	parser := flags.NewParser(&opt, flags.Default)
	parser.Name = v.AppName
	parser.Usage = "[OPTIONS] [files...]"
	args, err := parser.Parse()
	if err != nil {
		if flags.WroteHelp(err) {
			return nil
		}
		return err
	}

	// Nothing is logged until the config says where to
	log.New(log.UseOutput(io.Discard), log.AsDefault())

	cfg, err := config.Parse(opt.Config)
	if err != nil {
		return err
	}

	closeLog, err := setupLogger(cfg.Logging)
	if err != nil {
		return err
	}
	defer closeLog()

	defer slog.Debug("main function finished")
	slog.Debug("main function started", "version", v.Version, "revision", v.Revision, "buildDate", v.BuildDate)

	host := term.New(cfg.Host, term.WithCopyFallback(cfg.Core.CopyFallback))
	mover, err := newMover(cfg.Core, opt, host)
	if err != nil {
		return err
	}

	cli := CLI{
		version: v,
		option:  opt,
		config:  cfg,
		stdout:  os.Stdout,
		stderr:  os.Stderr,
		host:    host,
		mover:   mover,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := cli.Run(ctx, args); err != nil {
		slog.Error("exit", "error", fmt.Errorf("cli.run failed: %w", err))
		return err
	}
	return nil
}

func (c CLI) Run(ctx context.Context, args []string) error {
	switch {
	case c.option.Meta.Version:
		fmt.Fprint(c.stdout, c.version.Print())
		return nil

	default:
		switch c.option.Meta.Debug {
		case "live":
			return debug.Logs(c.stdout, env.RTRASH_LOG_PATH, c.config.Logging, true)
		case "full":
			return debug.Logs(c.stdout, env.RTRASH_LOG_PATH, c.config.Logging, false)
		}
		return c.Delete(ctx, args)
	}
}

// setupLogger installs the default logger. Logs go to a rotated file when
// logging is enabled and nowhere otherwise.
func setupLogger(cfg config.Logging) (func(), error) {
	level, err := log.ParseLevel(cfg.Level)
	if err != nil {
		return nil, err
	}

	var w io.Writer = io.Discard
	closer := func() {}
	if cfg.Enabled {
		rw, err := log.NewRotateWriter(env.RTRASH_LOG_PATH, cfg.Rotation.MaxSize, cfg.Rotation.MaxFiles)
		if err != nil {
			return nil, fmt.Errorf("failed to open log file: %w", err)
		}
		w = rw
		closer = func() { rw.Close() }
	}

	logger := log.New(
		log.UseOutput(w),
		log.UseLevel(level),
		log.UseReportCaller(true),
		log.UseReportTimestamp(true),
		log.UseTimeFormat(time.DateTime),
		log.UseFormatter(log.TextFormatter),
		log.AsDefault(),
	)
	slog.SetDefault(logger.With("run_id", runID()))
	return closer, nil
}

// newMover builds the mover selected by --mover or core.mover, guarded by
// the protect patterns
func newMover(cfg config.Core, opt Option, ws editor.Workspace) (trash.Mover, error) {
	var m trash.Mover
	switch kind := cmp.Or(opt.Mover, cfg.Mover); kind {
	case config.MoverXDG:
		root, err := shell.ExpandHome(cmp.Or(cfg.TrashDir, env.TrashHome()))
		if err != nil {
			return nil, fmt.Errorf("invalid trash_dir: %w", err)
		}
		m = trash.NewXDGMover(root, ws)
	case config.MoverExec:
		m = trash.NewExecMover(cmp.Or(opt.Tool, cfg.TrashTool))
	default:
		return nil, fmt.Errorf("unknown mover: %q", kind)
	}
	slog.Debug("mover selected", "mover", fmt.Sprintf("%T", m))

	guard, err := trash.NewGuard(m, cfg.Protect)
	if err != nil {
		return nil, err
	}
	return guard, nil
}

// IsReported reports whether err was already shown to the user
func IsReported(err error) bool {
	return errors.Is(err, ErrReported)
}

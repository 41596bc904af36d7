// Package debug prints the rtrash log file for --debug
package debug

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/babarot/rtrash/internal/config"
	"github.com/mattn/go-isatty"
	"github.com/nxadm/tail"
)

var (
	ErrLoggingDisabled = errors.New("logging is not enabled in config: set logging.enabled to true")
	ErrNoLogFile       = errors.New("no log file exists yet: try running some commands first")
)

// Logs writes the log file at path to w. With live set, only new entries
// are printed, and they are followed for as long as stdout is a terminal.
func Logs(w io.Writer, path string, cfg config.Logging, live bool) error {
	if live {
		return tailLogs(w, path, cfg)
	}
	return showLogs(w, path, cfg)
}

func tailLogs(w io.Writer, path string, cfg config.Logging) error {
	if !cfg.Enabled {
		return ErrLoggingDisabled
	}

	follow := isatty.IsTerminal(os.Stdout.Fd())
	t, err := tail.TailFile(path, tail.Config{
		ReOpen:    follow,
		Follow:    follow,
		MustExist: true,
		Poll:      true,
		Logger:    tail.DiscardingLogger,
		Location: &tail.SeekInfo{
			Offset: 0,
			Whence: io.SeekEnd,
		},
	})
	if err != nil {
		if os.IsNotExist(err) {
			return ErrNoLogFile
		}
		return err
	}
	defer t.Cleanup()

	for line := range t.Lines {
		if line.Err != nil {
			return line.Err
		}
		fmt.Fprintln(w, line.Text)
	}
	return nil
}

func showLogs(w io.Writer, path string, cfg config.Logging) error {
	f, err := os.Open(path)
	if err != nil {
		if !os.IsNotExist(err) {
			return err
		}
		if !cfg.Enabled {
			return ErrLoggingDisabled
		}
		return ErrNoLogFile
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		fmt.Fprintln(w, scanner.Text())
	}
	return scanner.Err()
}

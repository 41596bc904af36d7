package term

import (
	"context"
	"fmt"
	"os/exec"

	"github.com/fatih/color"
)

const dismiss = "Dismiss"

var (
	infoColor    = color.New(color.FgCyan)
	warningColor = color.New(color.FgYellow, color.Bold)
	errorColor   = color.New(color.FgRed, color.Bold)
)

func (h *Host) ShowInformation(_ context.Context, msg string) {
	infoColor.Fprintln(h.out, msg)
}

// ShowWarning prints msg and, on an interactive terminal with actions to
// offer, lets the user pick one.
func (h *Host) ShowWarning(ctx context.Context, msg string, actions ...string) (string, error) {
	warningColor.Fprintln(h.out, msg)
	if len(actions) == 0 || !h.interactive {
		return "", nil
	}
	choices := append(append([]string(nil), actions...), dismiss)
	choice, err := h.choose(ctx, "Choose an action", choices)
	if err != nil || choice == dismiss {
		return "", err
	}
	return choice, nil
}

func (h *Host) ShowError(_ context.Context, msg string) {
	errorColor.Fprintln(h.out, msg)
}

// OpenExternal hands url to xdg-open when there is one, otherwise prints it
func (h *Host) OpenExternal(ctx context.Context, url string) error {
	if bin, err := exec.LookPath("xdg-open"); err == nil && h.interactive {
		if err := exec.CommandContext(ctx, bin, url).Start(); err == nil {
			return nil
		}
	}
	_, err := fmt.Fprintf(h.out, "Open %s\n", url)
	return err
}

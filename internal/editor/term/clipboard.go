package term

import (
	"context"
	"errors"

	"github.com/atotto/clipboard"
)

// SystemClipboard is the X11/Wayland/macOS/Windows clipboard
type SystemClipboard struct{}

func (SystemClipboard) ReadText(context.Context) (string, error) {
	if clipboard.Unsupported {
		return "", errors.New("no clipboard utility available")
	}
	return clipboard.ReadAll()
}

func (SystemClipboard) WriteText(_ context.Context, s string) error {
	if clipboard.Unsupported {
		return errors.New("no clipboard utility available")
	}
	return clipboard.WriteAll(s)
}

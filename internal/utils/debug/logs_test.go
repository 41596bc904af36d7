package debug

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/babarot/rtrash/internal/config"
)

func TestLogs(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "debug.log")
	if err := os.WriteFile(path, []byte("first\nsecond\n"), 0644); err != nil {
		t.Fatal(err)
	}

	var buf bytes.Buffer
	if err := Logs(&buf, path, config.Logging{Enabled: true}, false); err != nil {
		t.Fatalf("Logs() error = %v", err)
	}
	if got := buf.String(); got != "first\nsecond\n" {
		t.Errorf("Logs() wrote %q", got)
	}
}

func TestLogsMissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "debug.log")

	tests := []struct {
		name    string
		enabled bool
		live    bool
		want    error
	}{
		{"disabled", false, false, ErrLoggingDisabled},
		{"enabled", true, false, ErrNoLogFile},
		{"live disabled", false, true, ErrLoggingDisabled},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Logs(&bytes.Buffer{}, path, config.Logging{Enabled: tt.enabled}, tt.live)
			if !errors.Is(err, tt.want) {
				t.Errorf("Logs() error = %v, want %v", err, tt.want)
			}
		})
	}
}

package shell

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/exec"
	"strings"

	"al.essio.dev/pkg/shellescape"
)

// Placeholder is replaced with the quoted argument by Format
const Placeholder = "{}"

// RunCommand runs input with bash and returns its output and exit code.
// A non-zero exit is not an error; err is set only when bash could not run.
func RunCommand(ctx context.Context, input string) (string, int, error) {
	cmd := exec.CommandContext(ctx, "bash", "-c", input)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	err := cmd.Run()
	output := stdout.String()
	if errStr := stderr.String(); errStr != "" && output == "" {
		output = errStr
	}
	if err == nil {
		return output, 0, nil
	}
	var ee *exec.ExitError
	if !errors.As(err, &ee) {
		return output, -1, err
	}
	slog.Warn("command exited with non-zero status",
		"command", input,
		"code", ee.ExitCode(),
		"stderr", strings.TrimSpace(stderr.String()),
	)
	return output, ee.ExitCode(), nil
}

// Format substitutes every Placeholder in template with the shell-quoted arg.
// When template has no placeholder the quoted arg is appended.
func Format(template, arg string) string {
	quoted := shellescape.Quote(arg)
	if !strings.Contains(template, Placeholder) {
		return template + " " + quoted
	}
	return strings.ReplaceAll(template, Placeholder, quoted)
}

// Join renders name and args as a single shell-safe command line, for logs and messages
func Join(name string, args ...string) string {
	return shellescape.QuoteCommand(append([]string{name}, args...))
}

// ExpandHome expands a leading tilde and $VAR / ${VAR} references in input
func ExpandHome(input string) (string, error) {
	result := input

	if result == "~" || strings.HasPrefix(result, "~/") {
		home := os.Getenv("HOME")
		if home == "" {
			return "", fmt.Errorf("HOME environment variable is not set")
		}
		result = home + strings.TrimPrefix(result, "~")
	}

	if strings.Count(result, "${") > strings.Count(result, "}") {
		return "", fmt.Errorf("unclosed variable brace in input: %s", input)
	}

	return os.Expand(result, os.Getenv), nil
}

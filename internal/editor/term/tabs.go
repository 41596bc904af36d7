package term

import (
	"context"
	"path/filepath"
	"strings"

	"github.com/babarot/rtrash/internal/editor"
	"github.com/babarot/rtrash/internal/utils/shell"
)

// dirtyMark prefixes tabs with unsaved changes in tabs_command output
const dirtyMark = "+"

// TabGroups lists the editor's tabs through tabs_command. The command
// prints one absolute path per line; a blank line starts a new group and a
// leading "+" marks unsaved changes. Without a command there are no tabs.
func (h *Host) TabGroups(ctx context.Context) ([]editor.TabGroup, error) {
	if h.cfg.TabsCommand == "" {
		return nil, nil
	}
	out, err := h.runConfigured(ctx, "tabs_command", h.cfg.TabsCommand)
	if err != nil {
		return nil, err
	}
	return parseTabs(out), nil
}

func parseTabs(out string) []editor.TabGroup {
	var groups []editor.TabGroup
	current := editor.TabGroup{}
	flush := func() {
		if len(current.Tabs) > 0 {
			groups = append(groups, current)
		}
		current = editor.TabGroup{}
	}

	for _, line := range strings.Split(strings.ReplaceAll(out, "\r\n", "\n"), "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			flush()
			continue
		}
		path, dirty := strings.CutPrefix(line, dirtyMark)
		current.Tabs = append(current.Tabs, editor.Tab{
			Label: filepath.Base(path),
			Path:  path,
			Dirty: dirty,
			Group: len(groups),
		})
	}
	flush()
	return groups
}

// CloseTab closes tab through close_tab_command. Unsaved tabs are only
// closed after the user agrees to discard the changes; on a non-interactive
// terminal they are kept.
func (h *Host) CloseTab(ctx context.Context, tab editor.Tab) (bool, error) {
	if tab.Dirty && h.cfg.ConfirmDiscard {
		if !h.interactive {
			h.ShowInformation(ctx, tab.Label+" has unsaved changes and was kept open.")
			return false, nil
		}
		ok, err := h.confirm(ctx, "Discard unsaved changes to "+tab.Label+"?")
		if err != nil {
			return false, err
		}
		if !ok {
			return false, nil
		}
	}

	command := h.cfg.CloseTabCommand
	if command != "" {
		command = shell.Format(command, tab.Path)
	}
	if _, err := h.runConfigured(ctx, "close_tab_command", command); err != nil {
		return false, err
	}
	return true, nil
}

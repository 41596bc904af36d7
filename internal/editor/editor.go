// Package editor describes the editor host that rtrash runs inside of.
//
// rtrash never owns tabs, the clipboard or the file explorer; it asks the host
// through the interfaces below. The terminal implementation lives in
// editor/term, tests use in-package fakes.
package editor

import "context"

// Command IDs understood by ExecuteCommand
const (
	// CommandCopyFilePath copies the absolute paths of the explorer
	// selection to the clipboard, one per line
	CommandCopyFilePath = "copyFilePath"
)

// Clipboard provides text access to the system clipboard
type Clipboard interface {
	ReadText(ctx context.Context) (string, error)
	WriteText(ctx context.Context, s string) error
}

// Commands runs host commands by ID
type Commands interface {
	ExecuteCommand(ctx context.Context, id string) error
}

// Tab is an open document bound to a file
type Tab struct {
	// Label is what the host shows on the tab
	Label string

	// Path is the absolute path of the file the tab is bound to
	Path string

	// Dirty reports unsaved changes
	Dirty bool

	// Group is the index of the group the tab belongs to
	Group int
}

// TabGroup is one column of tabs
type TabGroup struct {
	Tabs []Tab
}

// Tabs enumerates and closes open tabs.
//
// Handles returned by TabGroups are only valid until the next CloseTab;
// callers must enumerate again after closing anything.
type Tabs interface {
	TabGroups(ctx context.Context) ([]TabGroup, error)

	// CloseTab asks the host to close tab. closed is false when the tab
	// holds unsaved changes and the user chose to keep it open.
	CloseTab(ctx context.Context, tab Tab) (closed bool, err error)
}

// Window shows messages to the user
type Window interface {
	ShowInformation(ctx context.Context, msg string)

	// ShowWarning blocks until the user dismisses the message and returns
	// the chosen action, or "" if none was chosen.
	ShowWarning(ctx context.Context, msg string, actions ...string) (string, error)

	ShowError(ctx context.Context, msg string)

	OpenExternal(ctx context.Context, url string) error
}

// Workspace applies bundled file edits
type Workspace interface {
	// ApplyEdit applies every operation of edit or none of them.
	ApplyEdit(ctx context.Context, edit *WorkspaceEdit) (applied bool, err error)
}

// Explorer is the host's file tree view
type Explorer interface {
	RefreshExplorer(ctx context.Context) error
}

// Host is everything rtrash needs from the editor
type Host interface {
	Clipboard
	Commands
	Tabs
	Window
	Workspace
	Explorer
}

// FindTab returns the first tab bound to path across all groups
func FindTab(groups []TabGroup, path string) (Tab, bool) {
	for _, g := range groups {
		for _, t := range g.Tabs {
			if t.Path == path {
				return t, true
			}
		}
	}
	return Tab{}, false
}

package env

import (
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
)

const appName = "rtrash"

var (
	RTRASH_CONFIG_PATH string

	RTRASH_LOG_PATH string
)

func init() {
	// https://github.com/charmbracelet/log/issues/35
	os.Setenv("CLICOLOR_FORCE", "1")

	// Follow https://specifications.freedesktop.org/basedir-spec/latest/
	RTRASH_CONFIG_PATH = os.Getenv("RTRASH_CONFIG_PATH")
	if RTRASH_CONFIG_PATH == "" {
		RTRASH_CONFIG_PATH = filepath.Join(xdg.ConfigHome, appName, "config.yaml")
	}

	RTRASH_LOG_PATH = os.Getenv("RTRASH_LOG_PATH")
	if RTRASH_LOG_PATH == "" {
		RTRASH_LOG_PATH = filepath.Join(xdg.StateHome, appName, "debug.log")
	}
}

// TrashHome returns the home trash directory ($XDG_DATA_HOME/Trash)
func TrashHome() string {
	return filepath.Join(xdg.DataHome, "Trash")
}

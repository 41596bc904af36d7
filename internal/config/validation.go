package config

import (
	"os"
	"path/filepath"
	"regexp"
	"slices"
	"strings"

	"github.com/gobwas/glob"
	"github.com/go-playground/validator/v10"
)

var sizePattern = regexp.MustCompile(`^\d+(B|KB|MB|GB|TB|PB)$`)

func validateMover(fl validator.FieldLevel) bool {
	return slices.Contains([]string{MoverExec, MoverXDG}, fl.Field().String())
}

func validateLevel(fl validator.FieldLevel) bool {
	value := strings.ToLower(fl.Field().String())
	return slices.Contains([]string{"", "debug", "info", "warn", "warning", "error"}, value)
}

// validateSize validates the size format (e.g., "10MB", "1GB")
func validateSize(fl validator.FieldLevel) bool {
	return sizePattern.MatchString(strings.ToUpper(fl.Field().String()))
}

func validateGlob(fl validator.FieldLevel) bool {
	_, err := glob.Compile(fl.Field().String(), '/')
	return err == nil
}

// validateDirPath accepts an existing directory or a well-formed path that
// does not exist yet. The stock "dirpath" validator rejects some valid
// dot-directories, so this one only relies on filepath and os.Stat.
func validateDirPath(fl validator.FieldLevel) bool {
	path := strings.TrimSpace(fl.Field().String())
	if path == "" {
		return false
	}

	fi, err := os.Stat(filepath.Clean(path))
	if err == nil {
		return fi.IsDir()
	}
	return os.IsNotExist(err)
}

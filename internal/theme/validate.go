package theme

import (
	"fmt"
	"strings"

	"gunmenu/constants"
	"gunmenu/internal"
	"gunmenu/internal/fileutil"
)

// MissingAssets lists every required theme file absent from dir.
func MissingAssets(dir string) []string {
	return fileutil.MissingFiles(dir, constants.RequiredThemeFiles)
}

// ValidateThemeDir fails with a ConfigError naming every missing asset at once.
func ValidateThemeDir(dir string) error {
	if !fileutil.DirExists(dir) {
		return internal.NewConfigError(dir, "", "", fmt.Errorf("%w: theme directory", internal.ErrMissingFile))
	}

	missing := MissingAssets(dir)
	if len(missing) > 0 {
		return internal.NewConfigError(dir, "", "", fmt.Errorf("%w: %s", ErrMissingAssets, strings.Join(missing, ", ")))
	}

	return nil
}

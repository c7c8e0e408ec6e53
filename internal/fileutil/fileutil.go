package fileutil

import (
	"os"
	"path/filepath"
	"strings"
)

func FileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}

func DirExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}

// MissingFiles returns the names, in the given order, that are not regular
// files inside dir.
func MissingFiles(dir string, names []string) []string {
	var missing []string
	for _, name := range names {
		if !FileExists(filepath.Join(dir, name)) {
			missing = append(missing, name)
		}
	}
	return missing
}

// ResolveRelative resolves p against base: absolute paths are returned
// cleaned, a leading "./" is dropped, and anything else is joined onto base.
func ResolveRelative(base, p string) string {
	if p == "" {
		return ""
	}
	if filepath.IsAbs(p) {
		return filepath.Clean(p)
	}
	p = strings.TrimPrefix(p, "./")
	return filepath.Join(base, p)
}

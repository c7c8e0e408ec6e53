package stringutil

import (
	"path/filepath"
	"strings"
	"unicode/utf8"
)

const ellipsis = "..."

func StripExtension(filename string) string {
	return strings.TrimSuffix(filename, filepath.Ext(filename))
}

// Truncate shortens s to at most width runes, replacing the tail with "..."
// when it does not fit. The kept prefix is width-3 runes, never negative.
func Truncate(s string, width int) string {
	if utf8.RuneCountInString(s) <= width {
		return s
	}

	keep := max(width-len(ellipsis), 0)
	runes := []rune(s)
	return string(runes[:keep]) + ellipsis
}

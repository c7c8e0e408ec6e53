package nav

import (
	"regexp"

	"gunmenu/internal/stringutil"
)

var gameLabel = regexp.MustCompile(`^Game\s*\d+\s*:\s*(.*?)\s*$`)

// HoverText extracts the title from a "Game <n>: <title>" label and fits it
// into width characters. Any other label yields no text.
func HoverText(label string, width int) (string, bool) {
	m := gameLabel.FindStringSubmatch(label)
	if m == nil || m[1] == "" {
		return "", false
	}
	return stringutil.Truncate(m[1], width), true
}

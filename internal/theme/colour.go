package theme

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"golang.org/x/image/colornames"
)

// ParseColour accepts SVG colour names ("white", "yellow") and #rgb or
// #rrggbb hex values.
func ParseColour(raw string) (color.RGBA, error) {
	s := strings.ToLower(strings.TrimSpace(raw))
	if s == "" {
		return color.RGBA{}, fmt.Errorf("%w: empty", ErrInvalidColour)
	}

	if !strings.HasPrefix(s, "#") {
		c, ok := colornames.Map[strings.ReplaceAll(s, " ", "")]
		if !ok {
			return color.RGBA{}, fmt.Errorf("%w: %q", ErrInvalidColour, raw)
		}
		return c, nil
	}

	hex := s[1:]
	switch len(hex) {
	case 3:
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	case 6:
	default:
		return color.RGBA{}, fmt.Errorf("%w: %q", ErrInvalidColour, raw)
	}

	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("%w: %q", ErrInvalidColour, raw)
	}

	return color.RGBA{
		R: uint8(v >> 16),
		G: uint8(v >> 8),
		B: uint8(v),
		A: 0xff,
	}, nil
}

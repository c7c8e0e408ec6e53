package theme

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

type FontWeight string

const (
	WeightNormal     FontWeight = "normal"
	WeightBold       FontWeight = "bold"
	WeightItalic     FontWeight = "italic"
	WeightRoman      FontWeight = "roman"
	WeightUnderline  FontWeight = "underline"
	WeightOverstrike FontWeight = "overstrike"
)

var fontWeights = map[FontWeight]bool{
	WeightNormal:     true,
	WeightBold:       true,
	WeightItalic:     true,
	WeightRoman:      true,
	WeightUnderline:  true,
	WeightOverstrike: true,
}

// ('Family Name', 24, 'bold') with either quote style and an optional
// trailing comma. Nothing else is accepted.
var fontPattern = regexp.MustCompile(
	`^\(\s*(?:'([^'\\]+)'|"([^"\\]+)")\s*,\s*(\d{1,4})\s*,\s*(?:'([a-z]+)'|"([a-z]+)")\s*,?\s*\)$`)

type FontSpec struct {
	Family string
	Size   int
	Weight FontWeight
}

func (f FontSpec) String() string {
	return fmt.Sprintf("(%q, %d, %q)", f.Family, f.Size, f.Weight)
}

func (f FontSpec) IsBold() bool {
	return f.Weight == WeightBold
}

// ParseFontSpec parses the textual tuple used by theme files.
func ParseFontSpec(raw string) (FontSpec, error) {
	m := fontPattern.FindStringSubmatch(strings.TrimSpace(raw))
	if m == nil {
		return FontSpec{}, fmt.Errorf("%w: %q", ErrInvalidFont, raw)
	}

	family := m[1] + m[2]
	weight := FontWeight(m[4] + m[5])

	size, err := strconv.Atoi(m[3])
	if err != nil || size == 0 {
		return FontSpec{}, fmt.Errorf("%w: size in %q", ErrInvalidFont, raw)
	}

	if !fontWeights[weight] {
		return FontSpec{}, fmt.Errorf("%w: weight %q", ErrInvalidFont, weight)
	}

	return FontSpec{
		Family: strings.TrimSpace(family),
		Size:   size,
		Weight: weight,
	}, nil
}

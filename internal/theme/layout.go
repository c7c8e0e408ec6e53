package theme

import (
	"fmt"
	"image/color"

	"gunmenu/internal"
	"gunmenu/internal/xmlutil"

	"github.com/beevik/etree"
)

// Box is a navigation button placement as written in the theme.
type Box struct {
	X      int
	Y      int
	Width  int
	Height int
}

type TextLabel struct {
	X      int
	Y      int
	Font   FontSpec
	Colour color.RGBA
}

type GameNameLabel struct {
	TextLabel
	Width int // Maximum characters, including the ellipsis
}

type LayoutConfig struct {
	ButtonWidth   int
	ButtonHeight  int
	SpacingX      int
	SpacingY      int
	StartX        int
	StartY        int
	ButtonsPerRow int
	RowsPerPage   int
	FrameOffset   int

	Prev Box
	Main Box
	Next Box

	PageNo   TextLabel
	GameName GameNameLabel
}

// Capacity is the number of game buttons on one page.
func (l LayoutConfig) Capacity() int {
	return l.ButtonsPerRow * l.RowsPerPage
}

func DefaultPageNo() TextLabel {
	return TextLabel{
		X:      1720,
		Y:      1020,
		Font:   FontSpec{Family: "Arial", Size: 24, Weight: WeightBold},
		Colour: color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff},
	}
}

// LoadLayout parses gamescreen.xml.
func LoadLayout(path string) (*LayoutConfig, error) {
	doc, err := xmlutil.LoadDocument(path)
	if err != nil {
		return nil, err
	}

	l := &LayoutConfig{PageNo: DefaultPageNo()}

	layout, err := findElement(path, doc, "layout")
	if err != nil {
		return nil, err
	}
	navigation, err := findElement(path, doc, "navigation")
	if err != nil {
		return nil, err
	}

	ints := []struct {
		tag  string
		attr string
		dst  *int
	}{
		{"button", "width", &l.ButtonWidth},
		{"button", "height", &l.ButtonHeight},
		{"spacing", "x", &l.SpacingX},
		{"spacing", "y", &l.SpacingY},
		{"start", "x", &l.StartX},
		{"start", "y", &l.StartY},
		{"grid", "buttons_per_row", &l.ButtonsPerRow},
		{"grid", "rows_per_page", &l.RowsPerPage},
	}
	for _, f := range ints {
		el, err := xmlutil.RequireElement(path, layout, f.tag)
		if err != nil {
			return nil, err
		}
		if *f.dst, err = xmlutil.IntAttr(path, el, f.attr); err != nil {
			return nil, err
		}
	}

	if l.ButtonWidth == 0 || l.ButtonHeight == 0 {
		return nil, internal.NewConfigError(path, "button", "", ErrZeroSize)
	}
	if l.Capacity() < 1 {
		return nil, internal.NewConfigError(path, "grid", "", ErrEmptyGrid)
	}

	if offset := layout.SelectElement("button_frame_offset"); offset != nil {
		if l.FrameOffset, err = xmlutil.IntText(path, offset); err != nil {
			return nil, err
		}
	}

	if pageNo := layout.SelectElement("page_no"); pageNo != nil {
		if l.PageNo, err = parseTextLabel(path, pageNo); err != nil {
			return nil, err
		}
	}

	gameName, err := xmlutil.RequireElement(path, layout, "game_name")
	if err != nil {
		return nil, err
	}
	if l.GameName.TextLabel, err = parseTextLabel(path, gameName); err != nil {
		return nil, err
	}
	if l.GameName.Width, err = xmlutil.IntAttr(path, gameName, "width"); err != nil {
		return nil, err
	}

	for _, b := range []struct {
		tag string
		dst *Box
	}{
		{"prev", &l.Prev},
		{"main", &l.Main},
		{"next", &l.Next},
	} {
		if *b.dst, err = parseBox(path, navigation, b.tag); err != nil {
			return nil, err
		}
	}

	return l, nil
}

// findElement looks for tag as the document root or as a child of it.
func findElement(path string, doc *etree.Document, tag string) (*etree.Element, error) {
	root := doc.Root()
	if root.Tag == tag {
		return root, nil
	}
	return xmlutil.RequireElement(path, root, tag)
}

func parseTextLabel(path string, el *etree.Element) (TextLabel, error) {
	var label TextLabel
	var err error

	if label.X, err = xmlutil.IntAttr(path, el, "x"); err != nil {
		return label, err
	}
	if label.Y, err = xmlutil.IntAttr(path, el, "y"); err != nil {
		return label, err
	}

	rawFont, err := xmlutil.RequireAttr(path, el, "font")
	if err != nil {
		return label, err
	}
	if label.Font, err = ParseFontSpec(rawFont); err != nil {
		return label, internal.NewConfigError(path, el.Tag, "font", err)
	}

	rawColour, err := xmlutil.RequireAttr(path, el, "colour")
	if err != nil {
		return label, err
	}
	if label.Colour, err = ParseColour(rawColour); err != nil {
		return label, internal.NewConfigError(path, el.Tag, "colour", err)
	}

	return label, nil
}

func parseBox(path string, parent *etree.Element, tag string) (Box, error) {
	var box Box

	el, err := xmlutil.RequireElement(path, parent, tag)
	if err != nil {
		return box, err
	}

	for _, f := range []struct {
		attr string
		dst  *int
	}{
		{"x", &box.X},
		{"y", &box.Y},
		{"width", &box.Width},
		{"height", &box.Height},
	} {
		if *f.dst, err = xmlutil.IntAttr(path, el, f.attr); err != nil {
			return box, err
		}
	}

	if box.Width == 0 || box.Height == 0 {
		return box, internal.NewConfigError(path, tag, "", fmt.Errorf("%w: %dx%d", ErrZeroSize, box.Width, box.Height))
	}

	return box, nil
}

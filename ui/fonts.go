package ui

import (
	"bytes"
	"fmt"

	"gunmenu/internal/theme"

	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
)

// Theme fonts name desktop families that are not shipped with the binary.
// Every family maps onto the Go fonts; only the weight picks the face.
type Fonts struct {
	regular *text.GoTextFaceSource
	bold    *text.GoTextFaceSource
	faces   map[theme.FontSpec]*text.GoTextFace
}

func NewFonts() (*Fonts, error) {
	regular, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		return nil, fmt.Errorf("failed to load regular font: %w", err)
	}
	bold, err := text.NewGoTextFaceSource(bytes.NewReader(gobold.TTF))
	if err != nil {
		return nil, fmt.Errorf("failed to load bold font: %w", err)
	}

	return &Fonts{
		regular: regular,
		bold:    bold,
		faces:   make(map[theme.FontSpec]*text.GoTextFace),
	}, nil
}

func (f *Fonts) Face(spec theme.FontSpec) *text.GoTextFace {
	if face, ok := f.faces[spec]; ok {
		return face
	}

	source := f.regular
	if spec.IsBold() {
		source = f.bold
	}

	face := &text.GoTextFace{
		Source: source,
		Size:   pixelSize(spec.Size),
	}
	f.faces[spec] = face
	return face
}

// pixelSize converts a point size at 96 DPI.
func pixelSize(points int) float64 {
	return float64(points) * 96 / 72
}

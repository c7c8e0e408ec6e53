package imageutil

import (
	"fmt"
	"image"
	"image/color"
	_ "image/gif"  // Register GIF decoder
	_ "image/jpeg" // Register JPEG decoder
	_ "image/png"  // Register PNG decoder
	"os"

	"golang.org/x/image/draw"
	_ "golang.org/x/image/webp" // Register WebP decoder
)

func Load(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open image: %w", err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("failed to decode image %s: %w", path, err)
	}
	return img, nil
}

// ScaleTo resizes img to exactly width x height, ignoring aspect ratio.
func ScaleTo(img image.Image, width, height int) *image.RGBA {
	width = max(width, 1)
	height = max(height, 1)

	dst := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.BiLinear.Scale(dst, dst.Bounds(), img, img.Bounds(), draw.Over, nil)
	return dst
}

// FlattenOnBlack composites img over an opaque black background.
func FlattenOnBlack(img image.Image) *image.RGBA {
	b := img.Bounds()
	dst := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(dst, dst.Bounds(), image.NewUniform(color.Black), image.Point{}, draw.Src)
	draw.Draw(dst, dst.Bounds(), img, b.Min, draw.Over)
	return dst
}

// ButtonArt fits game art inside a button frame: the image is scaled to the
// button size minus the frame offset on every side, then flattened onto black.
func ButtonArt(img image.Image, buttonWidth, buttonHeight, frameOffset int) *image.RGBA {
	w := buttonWidth - 2*frameOffset
	h := buttonHeight - 2*frameOffset
	return FlattenOnBlack(ScaleTo(img, w, h))
}

// Placeholder is a flat image used when even the default art is unusable.
func Placeholder(width, height int, c color.Color) *image.RGBA {
	dst := image.NewRGBA(image.Rect(0, 0, max(width, 1), max(height, 1)))
	draw.Draw(dst, dst.Bounds(), image.NewUniform(c), image.Point{}, draw.Src)
	return dst
}

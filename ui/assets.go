package ui

import (
	"fmt"
	"image"
	"image/color"

	"gunmenu/internal/imageutil"
	"gunmenu/internal/logging"

	"github.com/hajimehoshi/ebiten/v2"
)

// Assets caches decoded, resized images by path and target size. Only the
// UI thread touches it.
type Assets struct {
	fallback string
	images   map[string]*ebiten.Image
}

// NewAssets uses fallback (the theme's game_default.png) in place of any
// zone image that cannot be loaded.
func NewAssets(fallback string) *Assets {
	return &Assets{
		fallback: fallback,
		images:   make(map[string]*ebiten.Image),
	}
}

func (a *Assets) Len() int {
	return len(a.images)
}

// Background is scaled to the screen. A missing background is drawn black.
func (a *Assets) Background(path string, width, height int) *ebiten.Image {
	return a.get(assetKey(path, width, height, false), func() image.Image {
		return imageutil.ScaleTo(loadOrFallback(path, ""), width, height)
	})
}

func (a *Assets) Place(p placement) *ebiten.Image {
	if p.ButtonArt {
		key := assetKey(p.Path, p.Width-2*p.FrameOffset, p.Height-2*p.FrameOffset, true)
		return a.get(key, func() image.Image {
			return imageutil.ButtonArt(loadOrFallback(p.Path, a.fallback), p.Width, p.Height, p.FrameOffset)
		})
	}
	return a.get(assetKey(p.Path, p.Width, p.Height, false), func() image.Image {
		return imageutil.ScaleTo(loadOrFallback(p.Path, a.fallback), p.Width, p.Height)
	})
}

// Native returns the image at its own size, used for dents and the
// crosshair.
func (a *Assets) Native(path string) *ebiten.Image {
	return a.get(assetKey(path, 0, 0, false), func() image.Image {
		return loadOrFallback(path, "")
	})
}

func (a *Assets) get(key string, load func() image.Image) *ebiten.Image {
	if img, ok := a.images[key]; ok {
		return img
	}
	img := ebiten.NewImageFromImage(load())
	a.images[key] = img
	return img
}

func assetKey(path string, width, height int, buttonArt bool) string {
	return fmt.Sprintf("%s@%dx%d/%t", path, width, height, buttonArt)
}

// loadOrFallback never fails: an unreadable image is replaced by fallback,
// and when that is unusable too, by a single black pixel that callers scale.
func loadOrFallback(path, fallback string) image.Image {
	img, err := imageutil.Load(path)
	if err == nil {
		return img
	}

	logging.GetLogger().Warn("Unable to load image",
		"warning", "AssetLoadWarning",
		"path", path,
		"fallback", fallback,
		"error", err)

	if fallback != "" && fallback != path {
		if img, err := imageutil.Load(fallback); err == nil {
			return img
		}
	}

	return imageutil.Placeholder(1, 1, color.Black)
}

package ui

import (
	"gunmenu/internal/screen"
)

// placement is one image drawn for a zone. Width and Height are the zone
// box; X and Y are where the finished image goes.
type placement struct {
	Path        string
	X           int
	Y           int
	Width       int
	Height      int
	FrameOffset int
	ButtonArt   bool
}

// zonePlacements lists the images of a zone in draw order. Game buttons get
// their art inset by the frame offset with the overlay frame on top.
// Navigation zones without an image draw nothing.
func zonePlacements(z screen.Zone, frameOffset int) []placement {
	r := z.Rect

	if z.IsGame() {
		return []placement{
			{
				Path:        z.Image,
				X:           r.X1 + frameOffset,
				Y:           r.Y1 + frameOffset,
				Width:       r.Width(),
				Height:      r.Height(),
				FrameOffset: frameOffset,
				ButtonArt:   true,
			},
			{
				Path:   z.Overlay,
				X:      r.X1,
				Y:      r.Y1,
				Width:  r.Width(),
				Height: r.Height(),
			},
		}
	}

	if z.Image == "" {
		return nil
	}

	return []placement{{
		Path:   z.Image,
		X:      r.X1,
		Y:      r.Y1,
		Width:  r.Width(),
		Height: r.Height(),
	}}
}

func screenPlacements(s *screen.Screen, frameOffset int) []placement {
	var out []placement
	for _, z := range s.Zones {
		out = append(out, zonePlacements(z, frameOffset)...)
	}
	return out
}

// centred returns the top-left corner that centres a w x h image on (x, y).
func centred(x, y, w, h int) (int, int) {
	return x - w/2, y - h/2
}

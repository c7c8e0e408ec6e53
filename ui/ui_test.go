package ui

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"gunmenu/internal/nav"
	"gunmenu/internal/screen"
	"gunmenu/internal/theme"
)

func writePNG(t *testing.T, path string, w, h int, c color.Color) {
	t.Helper()
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := range h {
		for x := range w {
			img.Set(x, y, c)
		}
	}
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		t.Fatal(err)
	}
}

func TestZonePlacementsGame(t *testing.T) {
	z := screen.Zone{
		Rect:    screen.Rect{X1: 100, Y1: 150, X2: 350, Y2: 350},
		Label:   "Game 1: Duck Hunt",
		Image:   "/roms/nes/media/duckhunt.png",
		Overlay: "/themes/default/game.png",
		Action:  screen.LaunchRom("nes", "/roms/nes/duckhunt.zip"),
	}

	got := zonePlacements(z, 8)
	if len(got) != 2 {
		t.Fatalf("got %d placements, want 2", len(got))
	}

	art := got[0]
	if !art.ButtonArt || art.Path != z.Image {
		t.Errorf("art placement = %+v", art)
	}
	if art.X != 108 || art.Y != 158 {
		t.Errorf("art drawn at (%d,%d), want (108,158)", art.X, art.Y)
	}
	if art.Width != 250 || art.Height != 200 || art.FrameOffset != 8 {
		t.Errorf("art box = %dx%d offset %d", art.Width, art.Height, art.FrameOffset)
	}

	overlay := got[1]
	if overlay.ButtonArt || overlay.Path != z.Overlay {
		t.Errorf("overlay placement = %+v", overlay)
	}
	if overlay.X != 100 || overlay.Y != 150 || overlay.Width != 250 || overlay.Height != 200 {
		t.Errorf("overlay = %+v, want zone rectangle", overlay)
	}
}

func TestZonePlacementsNavigation(t *testing.T) {
	z := screen.Zone{
		Rect:   screen.Rect{X1: 10, Y1: 900, X2: 130, Y2: 980},
		Label:  screen.PrevLabel,
		Image:  "/themes/default/button_prev.png",
		Action: screen.NavigateTo(screen.MainKey),
	}

	got := zonePlacements(z, 8)
	if len(got) != 1 {
		t.Fatalf("got %d placements, want 1", len(got))
	}
	want := placement{Path: z.Image, X: 10, Y: 900, Width: 120, Height: 80}
	if got[0] != want {
		t.Errorf("placement = %+v, want %+v", got[0], want)
	}

	z.Image = ""
	if got := zonePlacements(z, 8); len(got) != 0 {
		t.Errorf("zone without image produced %d placements", len(got))
	}
}

func TestScreenPlacementsKeepsZoneOrder(t *testing.T) {
	s := &screen.Screen{
		Key: "nes_1",
		Zones: []screen.Zone{
			{Rect: screen.Rect{X2: 10, Y2: 10}, Image: "a.png", Overlay: "o.png"},
			{Rect: screen.Rect{X2: 10, Y2: 10}, Image: "b.png"},
		},
	}

	got := screenPlacements(s, 0)
	var paths []string
	for _, p := range got {
		paths = append(paths, p.Path)
	}
	want := []string{"a.png", "o.png", "b.png"}
	if len(paths) != len(want) {
		t.Fatalf("paths = %v, want %v", paths, want)
	}
	for i := range want {
		if paths[i] != want[i] {
			t.Errorf("paths[%d] = %q, want %q", i, paths[i], want[i])
		}
	}
}

func TestCentred(t *testing.T) {
	x, y := centred(100, 50, 32, 20)
	if x != 84 || y != 40 {
		t.Errorf("centred = (%d,%d), want (84,40)", x, y)
	}
}

func TestLoadOrFallback(t *testing.T) {
	dir := t.TempDir()
	art := filepath.Join(dir, "art.png")
	def := filepath.Join(dir, "game_default.png")
	writePNG(t, art, 4, 3, color.White)
	writePNG(t, def, 7, 5, color.Black)

	tests := []struct {
		name     string
		path     string
		fallback string
		wantW    int
		wantH    int
	}{
		{"present", art, def, 4, 3},
		{"missing uses fallback", filepath.Join(dir, "nope.png"), def, 7, 5},
		{"missing without fallback", filepath.Join(dir, "nope.png"), "", 1, 1},
		{"fallback missing too", filepath.Join(dir, "nope.png"), filepath.Join(dir, "gone.png"), 1, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			img := loadOrFallback(tt.path, tt.fallback)
			if img.Bounds().Dx() != tt.wantW || img.Bounds().Dy() != tt.wantH {
				t.Errorf("bounds = %v, want %dx%d", img.Bounds(), tt.wantW, tt.wantH)
			}
		})
	}
}

func TestLoadOrFallbackUndecodable(t *testing.T) {
	dir := t.TempDir()
	broken := filepath.Join(dir, "broken.png")
	def := filepath.Join(dir, "game_default.png")
	if err := os.WriteFile(broken, []byte("not an image"), 0644); err != nil {
		t.Fatal(err)
	}
	writePNG(t, def, 6, 6, color.Black)

	img := loadOrFallback(broken, def)
	if img.Bounds().Dx() != 6 {
		t.Errorf("bounds = %v, want fallback 6x6", img.Bounds())
	}
}

func TestAssetKeyDistinguishesButtonArt(t *testing.T) {
	if assetKey("a.png", 10, 10, true) == assetKey("a.png", 10, 10, false) {
		t.Error("button art and plain scaling share a cache key")
	}
	if assetKey("a.png", 10, 10, false) == assetKey("a.png", 10, 11, false) {
		t.Error("different sizes share a cache key")
	}
}

func TestFontsFaceCache(t *testing.T) {
	fonts, err := NewFonts()
	if err != nil {
		t.Fatalf("NewFonts: %v", err)
	}

	bold := theme.FontSpec{Family: "Arial", Size: 24, Weight: theme.WeightBold}
	normal := theme.FontSpec{Family: "Arial", Size: 24, Weight: theme.WeightNormal}

	face := fonts.Face(bold)
	if face != fonts.Face(bold) {
		t.Error("same spec returned a new face")
	}
	if face.Source != fonts.bold {
		t.Error("bold spec did not use the bold source")
	}
	if fonts.Face(normal).Source != fonts.regular {
		t.Error("normal spec did not use the regular source")
	}
	if face.Size != 32 {
		t.Errorf("size = %v, want 32 pixels for 24pt", face.Size)
	}
}

func TestPageLabel(t *testing.T) {
	if got := pageLabel(0); got != "" {
		t.Errorf("pageLabel(0) = %q, want empty", got)
	}
	if got := pageLabel(2); got == "" {
		t.Error("pageLabel(2) is empty")
	}
}

func TestHoverRefreshedAfterTransition(t *testing.T) {
	mainScreen := &screen.Screen{
		Key: screen.MainKey,
		Zones: []screen.Zone{
			{Rect: screen.Rect{X1: 0, Y1: 0, X2: 200, Y2: 200}, Label: "nes", Action: screen.NavigateTo("nes_1")},
		},
	}
	nes := &screen.Screen{
		Key: "nes_1",
		Zones: []screen.Zone{
			{
				Rect:   screen.Rect{X1: 0, Y1: 0, X2: 200, Y2: 200},
				Label:  "Game 1: Duck Hunt",
				Action: screen.LaunchRom("nes", "/roms/nes/duckhunt.zip"),
			},
		},
	}
	table, err := screen.NewTable(mainScreen, nes)
	if err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name         string
		pointerKnown bool
		want         string
	}{
		{"pointer over game zone", true, "Duck Hunt"},
		{"pointer never seen", false, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			engine := nav.NewEngine(table, nil, nav.DentImages{}, 30)
			g := &Game{engine: engine, pointerX: 50, pointerY: 50, pointerKnown: tt.pointerKnown}
			engine.SetRenderer(nav.RendererFunc(func(_ *screen.Screen, state nav.NavigationState) {
				g.refreshHover(state)
			}))

			if err := engine.Transition(screen.MainKey); err != nil {
				t.Fatal(err)
			}
			if err := engine.Transition("nes_1"); err != nil {
				t.Fatal(err)
			}
			if g.hover != tt.want {
				t.Errorf("hover = %q, want %q", g.hover, tt.want)
			}
		})
	}
}

package ui

import (
	"gunmenu/internal/feedback"
	"gunmenu/internal/i18n"
	"gunmenu/internal/logging"
	"gunmenu/internal/nav"
	"gunmenu/internal/screen"
	"gunmenu/internal/theme"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/colornames"
)

// ClickHandler receives trigger pulls and hands finished actions back on
// the UI thread. feedback.Dispatcher is the production implementation.
type ClickHandler interface {
	Click(x, y int) feedback.ClickResult
	Poll() int
}

type Options struct {
	Width        int
	Height       int
	Layout       *theme.LayoutConfig
	DefaultImage string // Substitute for missing zone art
	TargetImage  string // Crosshair drawn at the pointer
	ShowPointer  bool   // Print pointer coordinates in the top-left corner
}

var pointerLabel = theme.TextLabel{
	X:      10,
	Y:      10,
	Font:   theme.FontSpec{Family: "Arial", Size: 14, Weight: theme.WeightNormal},
	Colour: colornames.Yellow,
}

type sprite struct {
	img  *ebiten.Image
	x, y int
}

// Game draws the navigation engine's current screen and feeds pointer input
// back into it. It implements ebiten.Game and nav.Renderer.
type Game struct {
	opts   Options
	engine *nav.Engine
	clicks ClickHandler
	assets *Assets
	fonts  *Fonts

	background *ebiten.Image
	sprites    []sprite
	pageLabel  string
	hover      string

	pointerX     int
	pointerY     int
	pointerKnown bool

	drawOpts ebiten.DrawImageOptions
	textOpts text.DrawOptions
}

func NewGame(opts Options, engine *nav.Engine, clicks ClickHandler) (*Game, error) {
	fonts, err := NewFonts()
	if err != nil {
		return nil, err
	}

	g := &Game{
		opts:   opts,
		engine: engine,
		clicks: clicks,
		assets: NewAssets(opts.DefaultImage),
		fonts:  fonts,
	}
	engine.SetRenderer(g)
	return g, nil
}

// ScreenChanged rebuilds the draw list for the new screen. Called by the
// engine on the UI thread after every transition.
func (g *Game) ScreenChanged(s *screen.Screen, state nav.NavigationState) {
	g.background = g.assets.Background(s.Background, g.opts.Width, g.opts.Height)

	placements := screenPlacements(s, g.opts.Layout.FrameOffset)
	g.sprites = g.sprites[:0]
	for _, p := range placements {
		g.sprites = append(g.sprites, sprite{img: g.assets.Place(p), x: p.X, y: p.Y})
	}

	g.pageLabel = pageLabel(state.Page)
	g.refreshHover(state)

	logging.GetLogger().Debug("Screen drawn",
		"screen", s.Key,
		"sprites", len(g.sprites),
		"cached_images", g.assets.Len())
}

// refreshHover resolves the hover label against the new screen when the
// pointer has not moved since the transition.
func (g *Game) refreshHover(state nav.NavigationState) {
	g.hover = state.HoverLabel
	if g.pointerKnown {
		g.hover = g.engine.Hover(g.pointerX, g.pointerY)
	}
}

func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		logging.GetLogger().Debug("Escape pressed, exiting")
		return ebiten.Termination
	}

	x, y := ebiten.CursorPosition()
	if !g.pointerKnown || x != g.pointerX || y != g.pointerY {
		g.pointerX, g.pointerY, g.pointerKnown = x, y, true
		g.hover = g.engine.Hover(x, y)
	}

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		g.clicks.Click(x, y)
	}

	for _, id := range inpututil.AppendJustPressedTouchIDs(nil) {
		tx, ty := ebiten.TouchPosition(id)
		g.clicks.Click(tx, ty)
	}

	g.clicks.Poll()
	return nil
}

func (g *Game) Draw(dst *ebiten.Image) {
	if g.background != nil {
		g.drawImage(dst, g.background, 0, 0)
	}

	for _, s := range g.sprites {
		g.drawImage(dst, s.img, s.x, s.y)
	}

	for _, d := range g.engine.Dents() {
		img := g.assets.Native(d.Image)
		x, y := centred(d.X, d.Y, img.Bounds().Dx(), img.Bounds().Dy())
		g.drawImage(dst, img, x, y)
	}

	if g.pageLabel != "" {
		g.drawText(dst, g.pageLabel, g.opts.Layout.PageNo, text.AlignEnd)
	}

	if g.hover != "" {
		g.drawText(dst, g.hover, g.opts.Layout.GameName.TextLabel, text.AlignStart)
	}

	if g.opts.ShowPointer {
		readout := i18n.GetStringWithData("pointer_position", map[string]any{"X": g.pointerX, "Y": g.pointerY})
		g.drawText(dst, readout, pointerLabel, text.AlignStart)
	}

	if g.opts.TargetImage != "" && g.pointerKnown {
		img := g.assets.Native(g.opts.TargetImage)
		x, y := centred(g.pointerX, g.pointerY, img.Bounds().Dx(), img.Bounds().Dy())
		g.drawImage(dst, img, x, y)
	}
}

// Layout keeps the theme's logical resolution whatever the window size.
func (g *Game) Layout(_, _ int) (int, int) {
	return g.opts.Width, g.opts.Height
}

func (g *Game) drawImage(dst, img *ebiten.Image, x, y int) {
	g.drawOpts.GeoM.Reset()
	g.drawOpts.GeoM.Translate(float64(x), float64(y))
	dst.DrawImage(img, &g.drawOpts)
}

// drawText anchors the label's point at the top-left (AlignStart) or the
// bottom-right (AlignEnd) of the rendered text.
func (g *Game) drawText(dst *ebiten.Image, s string, label theme.TextLabel, align text.Align) {
	g.textOpts = text.DrawOptions{}
	g.textOpts.GeoM.Translate(float64(label.X), float64(label.Y))
	g.textOpts.PrimaryAlign = align
	g.textOpts.SecondaryAlign = align
	g.textOpts.ColorScale.ScaleWithColor(label.Colour)
	text.Draw(dst, s, g.fonts.Face(label.Font), &g.textOpts)
}

func pageLabel(page int) string {
	if page <= 0 {
		return ""
	}
	return i18n.GetStringWithData("page_number", map[string]any{"Page": page})
}

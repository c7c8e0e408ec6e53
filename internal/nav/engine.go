package nav

import (
	"slices"

	"gunmenu/internal/logging"
	"gunmenu/internal/screen"
)

// Renderer is told about every completed transition so it can redraw the
// background and zones of the new screen.
type Renderer interface {
	ScreenChanged(s *screen.Screen, state NavigationState)
}

type RendererFunc func(s *screen.Screen, state NavigationState)

func (f RendererFunc) ScreenChanged(s *screen.Screen, state NavigationState) {
	f(s, state)
}

// Dent is a marker left at a click position until the next transition.
type Dent struct {
	X     int
	Y     int
	Image string
}

type NavigationState struct {
	Current    string
	Dents      []Dent
	Page       int // Zero on screens without a page suffix
	HoverLabel string
}

type DentImages struct {
	Main    string
	Systems string
}

// Engine owns the navigation state. It is not safe for concurrent use and
// belongs to the UI thread.
type Engine struct {
	table         *screen.Table
	renderer      Renderer
	dentImages    DentImages
	gameNameWidth int

	state NavigationState
}

func NewEngine(table *screen.Table, renderer Renderer, dentImages DentImages, gameNameWidth int) *Engine {
	if renderer == nil {
		renderer = RendererFunc(func(*screen.Screen, NavigationState) {})
	}

	return &Engine{
		table:         table,
		renderer:      renderer,
		dentImages:    dentImages,
		gameNameWidth: gameNameWidth,
		state:         NavigationState{Current: screen.MainKey},
	}
}

func (e *Engine) SetRenderer(r Renderer) {
	e.renderer = r
}

// State returns a copy of the navigation state.
func (e *Engine) State() NavigationState {
	s := e.state
	s.Dents = slices.Clone(e.state.Dents)
	return s
}

func (e *Engine) Current() string {
	return e.state.Current
}

func (e *Engine) CurrentScreen() *screen.Screen {
	s, _ := e.table.Get(e.state.Current)
	return s
}

func (e *Engine) Table() *screen.Table {
	return e.table
}

// ResolveZone returns the first zone of the screen, in declaration order,
// whose rectangle contains the point.
func (e *Engine) ResolveZone(key string, x, y int) (screen.Zone, bool) {
	s, ok := e.table.Get(key)
	if !ok {
		return screen.Zone{}, false
	}
	for _, z := range s.Zones {
		if z.Rect.Contains(x, y) {
			return z, true
		}
	}
	return screen.Zone{}, false
}

// Transition switches to target. An unknown target is logged and leaves
// the state untouched. Transitioning to the current screen still clears
// dents and redraws.
func (e *Engine) Transition(target string) error {
	s, ok := e.table.Get(target)
	if !ok {
		err := &NavigationError{Target: target}
		logging.GetLogger().Error("Navigation failed", "current", e.state.Current, "target", target, "error", err)
		return err
	}

	e.state.Dents = nil
	e.state.Current = target
	e.state.Page, _ = screen.PageNumber(target)
	e.state.HoverLabel = ""

	logging.GetLogger().Debug("Showing screen", "screen", target, "zones", len(s.Zones), "page", e.state.Page)

	e.renderer.ScreenChanged(s, e.State())
	return nil
}

// Hover recomputes the hover label for a pointer position on the current
// screen.
func (e *Engine) Hover(x, y int) string {
	e.state.HoverLabel = ""
	if z, ok := e.ResolveZone(e.state.Current, x, y); ok {
		if text, ok := HoverText(z.Label, e.gameNameWidth); ok {
			e.state.HoverLabel = text
		}
	}
	return e.state.HoverLabel
}

// PlaceDent records a marker at the click point. The main screen and the
// system pages use different marker images.
func (e *Engine) PlaceDent(x, y int) Dent {
	image := e.dentImages.Systems
	if e.state.Current == screen.MainKey {
		image = e.dentImages.Main
	}

	d := Dent{X: x, Y: y, Image: image}
	e.state.Dents = append(e.state.Dents, d)
	return d
}

func (e *Engine) Dents() []Dent {
	return e.state.Dents
}

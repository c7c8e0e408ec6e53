package screen

import (
	"fmt"
	"path/filepath"

	"gunmenu/constants"
	"gunmenu/internal"
	"gunmenu/internal/catalog"
	"gunmenu/internal/theme"
)

// Compiler turns the layout and matched catalog into screens. ThemeDir is
// the base for every theme asset path.
type Compiler struct {
	Layout   *theme.LayoutConfig
	ThemeDir string
}

func NewCompiler(layout *theme.LayoutConfig, themeDir string) *Compiler {
	return &Compiler{
		Layout:   layout,
		ThemeDir: themeDir,
	}
}

// Compile builds the main screen followed by every system's pages.
func (c *Compiler) Compile(filtered *catalog.FilteredCatalog, mainSpec *theme.MainScreenSpec) (*Table, error) {
	table, err := NewTable(c.CompileMain(mainSpec))
	if err != nil {
		return nil, internal.NewConfigError(c.ThemeDir, "", "", err)
	}

	for _, system := range filtered.Systems {
		for _, s := range c.CompileSystem(system) {
			if err := table.add(s); err != nil {
				return nil, internal.NewConfigError(c.ThemeDir, "", "", err)
			}
		}
	}

	return table, nil
}

func (c *Compiler) CompileMain(spec *theme.MainScreenSpec) *Screen {
	s := &Screen{
		Key:        MainKey,
		Background: spec.Background,
		Zones:      make([]Zone, 0, len(spec.Zones)),
	}

	for _, z := range spec.Zones {
		s.Zones = append(s.Zones, Zone{
			Rect:   Rect{X1: z.X1, Y1: z.Y1, X2: z.X2, Y2: z.Y2},
			Label:  z.Name,
			Image:  z.Image,
			Action: NavigateTo(z.Target),
		})
	}

	return s
}

// PageCount is ceil(n / capacity).
func PageCount(n, capacity int) int {
	if n <= 0 || capacity <= 0 {
		return 0
	}
	return (n + capacity - 1) / capacity
}

// CompileSystem paginates a system's matched ROMs. A system without ROMs
// has no pages.
func (c *Compiler) CompileSystem(system catalog.FilteredSystem) []*Screen {
	l := c.Layout
	capacity := l.Capacity()
	total := PageCount(len(system.Roms), capacity)

	screens := make([]*Screen, 0, total)
	for page := range total {
		start := page * capacity
		end := min(start+capacity, len(system.Roms))

		s := &Screen{
			Key:        Key(system.Name, page+1),
			Background: filepath.Join(c.ThemeDir, fmt.Sprintf(constants.SystemBackgroundFmt, system.Name)),
		}

		for idx, rom := range system.Roms[start:end] {
			s.Zones = append(s.Zones, c.gameZone(system.Name, start+idx, idx, rom))
		}

		if page > 0 {
			s.Zones = append(s.Zones, c.navZone(PrevLabel, constants.ButtonPrevImage, l.Prev, Key(system.Name, page)))
		}
		s.Zones = append(s.Zones, c.navZone(MainLabel, constants.ButtonMainImage, l.Main, MainKey))
		if page < total-1 {
			s.Zones = append(s.Zones, c.navZone(NextLabel, constants.ButtonNextImage, l.Next, Key(system.Name, page+2)))
		}

		screens = append(screens, s)
	}

	return screens
}

func (c *Compiler) gameZone(system string, global, idx int, rom catalog.MatchedRom) Zone {
	l := c.Layout
	col := idx % l.ButtonsPerRow
	row := idx / l.ButtonsPerRow

	x1 := l.StartX + col*(l.ButtonWidth+l.SpacingX)
	y1 := l.StartY + row*(l.ButtonHeight+l.SpacingY)

	name := rom.Name
	if name == "" {
		name = fmt.Sprintf("Game %d", global+1)
	}

	image := rom.ImagePath
	if image == "" {
		image = filepath.Join(c.ThemeDir, constants.GameDefaultImage)
	}

	return Zone{
		Rect:    Rect{X1: x1, Y1: y1, X2: x1 + l.ButtonWidth, Y2: y1 + l.ButtonHeight},
		Label:   fmt.Sprintf("Game %d: %s", global+1, name),
		Image:   image,
		Overlay: filepath.Join(c.ThemeDir, constants.GameOverlayImage),
		Action:  LaunchRom(system, rom.RomPath),
	}
}

func (c *Compiler) navZone(label, image string, box theme.Box, target string) Zone {
	return Zone{
		Rect:   Rect{X1: box.X, Y1: box.Y, X2: box.X + box.Width, Y2: box.Y + box.Height},
		Label:  label,
		Image:  filepath.Join(c.ThemeDir, image),
		Action: NavigateTo(target),
	}
}

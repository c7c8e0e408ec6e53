package catalog

import (
	"errors"
	"io/fs"
	"path/filepath"
	"strings"

	"gunmenu/internal/gamelist"
	"gunmenu/internal/logging"
	"gunmenu/internal/stringutil"
)

const catalogMatchWarning = "CatalogMatchWarning"

type GamelistLoader interface {
	LoadGamelist(path string) ([]gamelist.Entry, error)
}

type GamelistLoaderFunc func(path string) ([]gamelist.Entry, error)

func (f GamelistLoaderFunc) LoadGamelist(path string) ([]gamelist.Entry, error) {
	return f(path)
}

// DirectLoader parses gamelists without caching.
var DirectLoader = GamelistLoaderFunc(gamelist.LoadEntries)

type MatchedRom struct {
	Name      string
	RomPath   string
	ImagePath string // Empty when the gamelist has no art
}

type FilteredSystem struct {
	Name         string
	GamelistPath string
	RomRoot      string
	Roms         []MatchedRom
}

// FilteredCatalog holds every catalog system in catalog order, including
// those whose matched list is empty.
type FilteredCatalog struct {
	Systems []FilteredSystem
	index   map[string]int
}

func (f *FilteredCatalog) Lookup(name string) (FilteredSystem, bool) {
	i, ok := f.index[name]
	if !ok {
		return FilteredSystem{}, false
	}
	return f.Systems[i], true
}

// BuildFilteredCatalog attaches gamelist names and art to each catalog ROM.
// ROMs are matched on basename; misses are logged and dropped.
func BuildFilteredCatalog(c *Catalog, loader GamelistLoader) *FilteredCatalog {
	logger := logging.GetLogger()

	filtered := &FilteredCatalog{index: make(map[string]int, len(c.Systems))}

	for _, system := range c.Systems {
		matched := FilteredSystem{
			Name:         system.Name,
			GamelistPath: system.Gamelist,
			RomRoot:      filepath.Dir(system.Gamelist),
		}

		entries, err := loader.LoadGamelist(system.Gamelist)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				logger.Warn("Missing gamelist", "warning", catalogMatchWarning, "system", system.Name, "path", system.Gamelist)
			} else {
				logger.Warn("Unable to parse gamelist", "warning", catalogMatchWarning, "system", system.Name, "path", system.Gamelist, "error", err)
			}
			entries = nil
		}

		byBasename := make(map[string]gamelist.Entry, len(entries))
		for _, e := range entries {
			if _, seen := byBasename[e.Basename()]; !seen {
				byBasename[e.Basename()] = e
			}
		}

		for _, rom := range system.LightgunRoms {
			base := filepath.Base(strings.TrimSpace(rom.File))
			entry, ok := byBasename[base]
			if !ok {
				logger.Warn("No gamelist entry for ROM", "warning", catalogMatchWarning, "system", system.Name, "rom", rom.File)
				continue
			}

			matched.Roms = append(matched.Roms, MatchedRom{
				Name:      displayName(entry, rom),
				RomPath:   romPath(matched.RomRoot, rom.File),
				ImagePath: entry.Image,
			})
		}

		logger.Debug("Matched catalog system",
			"system", system.Name,
			"catalog", len(system.LightgunRoms),
			"matched", len(matched.Roms))

		filtered.index[system.Name] = len(filtered.Systems)
		filtered.Systems = append(filtered.Systems, matched)
	}

	return filtered
}

func displayName(entry gamelist.Entry, rom Rom) string {
	switch {
	case entry.Name != "":
		return entry.Name
	case rom.Name != "":
		return rom.Name
	default:
		return stringutil.StripExtension(filepath.Base(rom.File))
	}
}

// romPath keeps absolute catalog paths and resolves relative ones against
// the ROM root.
func romPath(root, file string) string {
	file = strings.TrimSpace(file)
	if filepath.IsAbs(file) {
		return file
	}
	return filepath.Join(root, strings.TrimPrefix(file, "./"))
}

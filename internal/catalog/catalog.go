package catalog

import (
	"errors"
	"fmt"

	"gunmenu/internal"
	"gunmenu/internal/xmlutil"
)

var (
	ErrDuplicateSystem = errors.New("duplicate system name")
	ErrEmptyValue      = errors.New("value must not be empty")
)

// Rom is a light-gun capable title as listed in the catalog, before matching.
type Rom struct {
	Name string
	File string
}

type System struct {
	Name         string
	Gamelist     string
	LightgunRoms []Rom
}

// Catalog keeps systems in document order.
type Catalog struct {
	Systems []System
	index   map[string]int
}

func (c *Catalog) Lookup(name string) (System, bool) {
	i, ok := c.index[name]
	if !ok {
		return System{}, false
	}
	return c.Systems[i], true
}

func (c *Catalog) Len() int {
	return len(c.Systems)
}

// LoadCatalog parses inscoperoms.xml. Any malformed system entry fails the
// whole load.
func LoadCatalog(path string) (*Catalog, error) {
	doc, err := xmlutil.LoadDocument(path)
	if err != nil {
		return nil, err
	}

	c := &Catalog{index: make(map[string]int)}

	for _, el := range doc.Root().SelectElements("system") {
		name, err := xmlutil.RequireAttr(path, el, "name")
		if err != nil {
			return nil, err
		}
		if name == "" {
			return nil, internal.NewConfigError(path, "system", "name", ErrEmptyValue)
		}
		if _, dup := c.index[name]; dup {
			return nil, internal.NewConfigError(path, "system", "name", fmt.Errorf("%w: %s", ErrDuplicateSystem, name))
		}

		gamelistEl, err := xmlutil.RequireElement(path, el, "gamelist")
		if err != nil {
			return nil, err
		}
		gamelistPath := xmlutil.ChildText(el, "gamelist")
		if gamelistPath == "" {
			return nil, internal.NewConfigError(path, gamelistEl.Tag, "", fmt.Errorf("system %s: %w", name, ErrEmptyValue))
		}

		romsEl, err := xmlutil.RequireElement(path, el, "lightgunroms")
		if err != nil {
			return nil, err
		}

		system := System{
			Name:     name,
			Gamelist: gamelistPath,
		}

		for _, romEl := range romsEl.SelectElements("rom") {
			var rom Rom
			if rom.Name, err = xmlutil.RequireAttr(path, romEl, "name"); err != nil {
				return nil, err
			}
			if rom.File, err = xmlutil.RequireAttr(path, romEl, "file"); err != nil {
				return nil, err
			}
			system.LightgunRoms = append(system.LightgunRoms, rom)
		}

		c.index[name] = len(c.Systems)
		c.Systems = append(c.Systems, system)
	}

	return c, nil
}

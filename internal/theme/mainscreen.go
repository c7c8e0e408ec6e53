package theme

import (
	"fmt"
	"path/filepath"

	"gunmenu/constants"
	"gunmenu/internal"
	"gunmenu/internal/fileutil"
	"gunmenu/internal/xmlutil"
)

type MainZoneSpec struct {
	Name   string
	Image  string
	X1     int
	Y1     int
	X2     int
	Y2     int
	Target string
}

type MainScreenSpec struct {
	Background string
	Zones      []MainZoneSpec
}

// LoadMainScreen parses main.xml. Background and zone image paths are
// resolved against themeDir; an absent bg means main.png.
func LoadMainScreen(path, themeDir string) (*MainScreenSpec, error) {
	doc, err := xmlutil.LoadDocument(path)
	if err != nil {
		return nil, err
	}

	root := doc.Root()
	if root.Tag != "screen" || root.SelectAttrValue("name", "") != "main" {
		return nil, internal.NewConfigError(path, root.Tag, "name", ErrInvalidRoot)
	}

	spec := &MainScreenSpec{
		Background: filepath.Join(themeDir, constants.MainBackground),
	}
	if bg := root.SelectAttrValue("bg", ""); bg != "" {
		spec.Background = fileutil.ResolveRelative(themeDir, bg)
	}

	for i, el := range root.SelectElements("zone") {
		var zone MainZoneSpec

		strs := []struct {
			attr string
			dst  *string
		}{
			{"name", &zone.Name},
			{"image", &zone.Image},
			{"target", &zone.Target},
		}
		for _, f := range strs {
			if *f.dst, err = xmlutil.RequireAttr(path, el, f.attr); err != nil {
				return nil, err
			}
		}

		coords := []struct {
			attr string
			dst  *int
		}{
			{"x1", &zone.X1},
			{"y1", &zone.Y1},
			{"x2", &zone.X2},
			{"y2", &zone.Y2},
		}
		for _, f := range coords {
			if *f.dst, err = xmlutil.IntAttr(path, el, f.attr); err != nil {
				return nil, err
			}
		}

		if zone.X1 >= zone.X2 || zone.Y1 >= zone.Y2 {
			return nil, internal.NewConfigError(path, "zone", "",
				fmt.Errorf("zone %d (%s): %w", i, zone.Name, ErrInvalidRect))
		}

		zone.Image = fileutil.ResolveRelative(themeDir, zone.Image)
		spec.Zones = append(spec.Zones, zone)
	}

	return spec, nil
}

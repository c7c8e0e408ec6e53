package catalog

import (
	"errors"
	"io/fs"
	"path/filepath"
	"reflect"
	"testing"

	"gunmenu/internal/gamelist"
)

type fakeLoader map[string][]gamelist.Entry

func (f fakeLoader) LoadGamelist(path string) ([]gamelist.Entry, error) {
	entries, ok := f[path]
	if !ok {
		return nil, fs.ErrNotExist
	}
	return entries, nil
}

func TestBuildFilteredCatalogMatchesOnBasename(t *testing.T) {
	c := &Catalog{
		Systems: []System{{
			Name:     "nes",
			Gamelist: "/roms/nes/gamelist.xml",
			LightgunRoms: []Rom{
				{Name: "Wild Gunman", File: "wildgunman.zip"},
				{Name: "Duck Hunt", File: "roms/foo.zip"},
				{Name: "Missing", File: "missing.zip"},
				{Name: "Hogan's Alley", File: "/abs/hogans.zip"},
			},
		}},
	}

	loader := fakeLoader{
		"/roms/nes/gamelist.xml": {
			{Path: "/roms/nes/hogans.zip", Name: "Hogan's Alley (World)", Image: "/roms/nes/media/hogans.png"},
			{Path: "/roms/nes/foo.zip", Name: "Duck Hunt (USA)", Image: "/roms/nes/media/foo.png"},
			{Path: "/roms/nes/wildgunman.zip", Name: "", Image: ""},
		},
	}

	filtered := BuildFilteredCatalog(c, loader)
	nes, ok := filtered.Lookup("nes")
	if !ok {
		t.Fatal("nes missing from filtered catalog")
	}

	want := []MatchedRom{
		{Name: "Wild Gunman", RomPath: "/roms/nes/wildgunman.zip", ImagePath: ""},
		{Name: "Duck Hunt (USA)", RomPath: "/roms/nes/roms/foo.zip", ImagePath: "/roms/nes/media/foo.png"},
		{Name: "Hogan's Alley (World)", RomPath: "/abs/hogans.zip", ImagePath: "/roms/nes/media/hogans.png"},
	}
	if !reflect.DeepEqual(nes.Roms, want) {
		t.Errorf("Roms =\n%+v\nwant\n%+v", nes.Roms, want)
	}
	if nes.RomRoot != "/roms/nes" {
		t.Errorf("RomRoot = %q", nes.RomRoot)
	}
}

func TestBuildFilteredCatalogMissingGamelist(t *testing.T) {
	c := &Catalog{
		Systems: []System{
			{Name: "psx", Gamelist: "/nope/gamelist.xml", LightgunRoms: []Rom{{Name: "Time Crisis", File: "tc.cue"}}},
			{Name: "nes", Gamelist: "/roms/nes/gamelist.xml", LightgunRoms: []Rom{{Name: "Duck Hunt", File: "dh.zip"}}},
		},
	}
	loader := fakeLoader{
		"/roms/nes/gamelist.xml": {{Path: "/roms/nes/dh.zip", Name: "Duck Hunt"}},
	}

	filtered := BuildFilteredCatalog(c, loader)
	if len(filtered.Systems) != 2 {
		t.Fatalf("len(Systems) = %d, want 2", len(filtered.Systems))
	}

	psx, _ := filtered.Lookup("psx")
	if len(psx.Roms) != 0 {
		t.Errorf("psx roms = %+v, want none", psx.Roms)
	}

	nes, _ := filtered.Lookup("nes")
	if len(nes.Roms) != 1 {
		t.Errorf("nes roms = %+v, want 1", nes.Roms)
	}
}

func TestBuildFilteredCatalogParseError(t *testing.T) {
	c := &Catalog{
		Systems: []System{{Name: "nes", Gamelist: "/roms/nes/gamelist.xml", LightgunRoms: []Rom{{Name: "Duck Hunt", File: "dh.zip"}}}},
	}
	loader := GamelistLoaderFunc(func(string) ([]gamelist.Entry, error) {
		return nil, errors.New("unexpected EOF")
	})

	filtered := BuildFilteredCatalog(c, loader)
	nes, ok := filtered.Lookup("nes")
	if !ok || len(nes.Roms) != 0 {
		t.Errorf("nes = %+v, %v", nes, ok)
	}
}

func TestBuildFilteredCatalogFirstGamelistEntryWins(t *testing.T) {
	c := &Catalog{
		Systems: []System{{Name: "nes", Gamelist: "/g/gamelist.xml", LightgunRoms: []Rom{{File: "dh.zip"}}}},
	}
	loader := fakeLoader{
		"/g/gamelist.xml": {
			{Path: "/a/dh.zip", Name: "First"},
			{Path: "/b/dh.zip", Name: "Second"},
		},
	}

	nes, _ := BuildFilteredCatalog(c, loader).Lookup("nes")
	if len(nes.Roms) != 1 || nes.Roms[0].Name != "First" {
		t.Errorf("Roms = %+v", nes.Roms)
	}
}

func TestDisplayNameFallback(t *testing.T) {
	tests := []struct {
		name  string
		entry gamelist.Entry
		rom   Rom
		want  string
	}{
		{"gamelist name", gamelist.Entry{Name: "Duck Hunt"}, Rom{Name: "DH", File: "dh.zip"}, "Duck Hunt"},
		{"catalog name", gamelist.Entry{}, Rom{Name: "DH", File: "dh.zip"}, "DH"},
		{"file name", gamelist.Entry{}, Rom{File: "roms/Duck Hunt (USA).zip"}, "Duck Hunt (USA)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := displayName(tt.entry, tt.rom); got != tt.want {
				t.Errorf("displayName = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestBuildFilteredCatalogWithGamelistFile(t *testing.T) {
	dir := t.TempDir()
	gl := writeFile(t, dir, "nes/gamelist.xml", `<gameList>
	<game><path>./foo.zip</path><name>Foo</name><image>./media/foo.png</image></game>
</gameList>`)

	c := &Catalog{Systems: []System{{Name: "nes", Gamelist: gl, LightgunRoms: []Rom{{Name: "Foo", File: "roms/foo.zip"}}}}}

	nes, _ := BuildFilteredCatalog(c, DirectLoader).Lookup("nes")
	if len(nes.Roms) != 1 {
		t.Fatalf("Roms = %+v", nes.Roms)
	}
	if nes.Roms[0].ImagePath != filepath.Join(dir, "nes", "media", "foo.png") {
		t.Errorf("ImagePath = %q", nes.Roms[0].ImagePath)
	}
}

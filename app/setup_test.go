package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"gunmenu/constants"
	"gunmenu/internal"
	"gunmenu/internal/catalog"
	"gunmenu/internal/screen"
)

const testLayout = `<?xml version="1.0"?>
<gamescreen>
	<layout>
		<button width="250" height="200"/>
		<spacing x="20" y="30"/>
		<start x="100" y="150"/>
		<grid buttons_per_row="4" rows_per_page="2"/>
		<button_frame_offset>8</button_frame_offset>
		<game_name x="60" y="40" font="('Arial', 18, 'bold')" colour="yellow" width="30"/>
	</layout>
	<navigation>
		<prev x="10" y="900" width="120" height="80"/>
		<main x="900" y="900" width="120" height="80"/>
		<next x="1790" y="900" width="120" height="80"/>
	</navigation>
</gamescreen>`

const testMainScreen = `<screen name="main">
	<zone name="nes" image="tag_nes.png" x1="10" y1="20" x2="260" y2="220" target="nes_1"/>
	<zone name="psx" image="tag_psx.png" x1="270" y1="20" x2="520" y2="220" target="psx_1"/>
</screen>`

const testGamelist = `<?xml version="1.0"?>
<gameList>
	<game><path>./duckhunt.zip</path><name>Duck Hunt</name></game>
	<game><path>./hogans.zip</path><name>Hogan's Alley</name></game>
</gameList>`

func mustWrite(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
}

// installation lays out a working directory with a complete "default" theme.
func installation(t *testing.T) string {
	t.Helper()
	root := t.TempDir()
	themeDir := filepath.Join(root, constants.ThemesDir, "default")

	for _, name := range constants.RequiredThemeFiles {
		mustWrite(t, filepath.Join(themeDir, name), "")
	}
	mustWrite(t, filepath.Join(themeDir, constants.GameScreenFile), testLayout)
	mustWrite(t, filepath.Join(themeDir, constants.MainScreenFile), testMainScreen)

	gamelistPath := filepath.Join(root, "roms", "nes", "gamelist.xml")
	mustWrite(t, gamelistPath, testGamelist)

	mustWrite(t, filepath.Join(root, constants.CatalogFile), fmt.Sprintf(`<inscoperoms>
	<system name="nes">
		<gamelist>%s</gamelist>
		<lightgunroms>
			<rom name="Duck Hunt" file="duckhunt.zip"/>
			<rom name="Hogan's Alley" file="hogans.zip"/>
			<rom name="Not Installed" file="absent.zip"/>
		</lightgunroms>
	</system>
	<system name="psx">
		<gamelist>%s</gamelist>
		<lightgunroms><rom name="Point Blank" file="pointblank.cue"/></lightgunroms>
	</system>
</inscoperoms>`, gamelistPath, filepath.Join(root, "roms", "psx", "gamelist.xml")))

	mustWrite(t, filepath.Join(root, constants.SettingsFile),
		`<settings><selected_theme>default</selected_theme><gamelist_cache>false</gamelist_cache></settings>`)

	return root
}

func TestLoadScreens(t *testing.T) {
	root := installation(t)

	settings, err := loadSettings(root)
	if err != nil {
		t.Fatalf("loadSettings: %v", err)
	}
	if settings.GamelistCache {
		t.Error("gamelist_cache=false was ignored")
	}

	result, err := loadScreens(root, settings, catalog.DirectLoader)
	if err != nil {
		t.Fatalf("loadScreens: %v", err)
	}

	keys := result.Table.Keys()
	want := []string{screen.MainKey, "nes_1"}
	if len(keys) != len(want) {
		t.Fatalf("screens = %v, want %v", keys, want)
	}
	for i := range want {
		if keys[i] != want[i] {
			t.Errorf("screens[%d] = %q, want %q", i, keys[i], want[i])
		}
	}

	nes, _ := result.Table.Get("nes_1")
	games := 0
	for _, z := range nes.Zones {
		if z.IsGame() {
			games++
		}
	}
	if games != 2 {
		t.Errorf("nes_1 has %d game zones, want 2", games)
	}

	dangling := result.Table.DanglingTargets()
	if len(dangling) != 1 || dangling[0] != "psx_1" {
		t.Errorf("dangling targets = %v, want [psx_1]", dangling)
	}

	if result.Layout.GameName.Width != 30 {
		t.Errorf("game name width = %d", result.Layout.GameName.Width)
	}
}

func TestDanglingTargetReason(t *testing.T) {
	root := installation(t)
	cat, err := catalog.LoadCatalog(filepath.Join(root, constants.CatalogFile))
	if err != nil {
		t.Fatal(err)
	}
	filtered := catalog.BuildFilteredCatalog(cat, catalog.DirectLoader)

	tests := []struct {
		target string
		want   string
	}{
		{"psx_1", "no ROMs matched the gamelist"},
		{"nes_2", "page out of range"},
		{"snes_1", "system not in catalog"},
		{"settings", "system not in catalog"},
	}

	for _, tt := range tests {
		t.Run(tt.target, func(t *testing.T) {
			if got := danglingTargetReason(tt.target, cat, filtered); got != tt.want {
				t.Errorf("reason = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestLoadSettingsMissingFiles(t *testing.T) {
	tests := []struct {
		remove string
		file   string
	}{
		{constants.CatalogFile, constants.CatalogFile},
		{constants.SettingsFile, constants.SettingsFile},
		{constants.ThemesDir, constants.ThemesDir},
	}

	for _, tt := range tests {
		t.Run(tt.remove, func(t *testing.T) {
			root := installation(t)
			if err := os.RemoveAll(filepath.Join(root, tt.remove)); err != nil {
				t.Fatal(err)
			}

			_, err := loadSettings(root)
			if !errors.Is(err, internal.ErrMissingFile) {
				t.Fatalf("err = %v, want ErrMissingFile", err)
			}

			msg, data := classifyStartupError(err)
			if msg != msgMissingFile {
				t.Errorf("message = %s, want %s", msg.ID, msgMissingFile.ID)
			}
			if data["File"] != tt.file {
				t.Errorf("File = %v, want %s", data["File"], tt.file)
			}
		})
	}
}

func TestLoadScreensMissingThemeFiles(t *testing.T) {
	root := installation(t)
	themeDir := filepath.Join(root, constants.ThemesDir, "default")
	for _, name := range []string{"hit.mp3", "target.png"} {
		if err := os.Remove(filepath.Join(themeDir, name)); err != nil {
			t.Fatal(err)
		}
	}

	settings, err := loadSettings(root)
	if err != nil {
		t.Fatal(err)
	}

	_, err = loadScreens(root, settings, catalog.DirectLoader)
	if !errors.Is(err, internal.ErrConfig) {
		t.Fatalf("err = %v, want a ConfigError", err)
	}

	msg, data := classifyStartupError(err)
	if msg != msgMissingThemeFiles {
		t.Fatalf("message = %s", msg.ID)
	}
	files, _ := data["Files"].(string)
	if !strings.Contains(files, "hit.mp3") || !strings.Contains(files, "target.png") {
		t.Errorf("Files = %q, want both missing assets", files)
	}
}

func TestLoadScreensMissingThemeDir(t *testing.T) {
	root := installation(t)
	settings, err := loadSettings(root)
	if err != nil {
		t.Fatal(err)
	}
	settings.SelectedTheme = "retro"

	_, err = loadScreens(root, settings, catalog.DirectLoader)
	msg, data := classifyStartupError(err)
	if msg != msgMissingThemeDir || data["Theme"] != "retro" {
		t.Errorf("got %s %v, want missing theme dir for retro", msg.ID, data)
	}
}

func TestLoadScreensInvalidLayout(t *testing.T) {
	root := installation(t)
	layout := filepath.Join(root, constants.ThemesDir, "default", constants.GameScreenFile)
	mustWrite(t, layout, strings.Replace(testLayout, `<start x="100" y="150"/>`, `<start x="abc" y="150"/>`, 1))

	settings, err := loadSettings(root)
	if err != nil {
		t.Fatal(err)
	}

	_, err = loadScreens(root, settings, catalog.DirectLoader)
	if !errors.Is(err, internal.ErrNotInteger) {
		t.Errorf("err = %v, want ErrNotInteger", err)
	}
	if msg, _ := classifyStartupError(err); msg != msgInvalidLayout {
		t.Errorf("message = %s, want %s", msg.ID, msgInvalidLayout.ID)
	}
}

func TestClassifyStartupErrorFallback(t *testing.T) {
	msg, data := classifyStartupError(errors.New("boom"))
	if msg != msgInvalidSettings || data != nil {
		t.Errorf("got %s %v", msg.ID, data)
	}
}

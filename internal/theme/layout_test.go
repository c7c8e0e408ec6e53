package theme

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"gunmenu/internal"
)

const validLayout = `<?xml version="1.0"?>
<gamescreen>
	<layout>
		<button width="250" height="200"/>
		<spacing x="20" y="30"/>
		<start x="100" y="150"/>
		<grid buttons_per_row="4" rows_per_page="2"/>
		<button_frame_offset>8</button_frame_offset>
		<page_no x="1800" y="1050" font="('Arial', 20, 'normal')" colour="#ffcc00"/>
		<game_name x="60" y="40" font="('Arial', 18, 'bold')" colour="yellow" width="30"/>
	</layout>
	<navigation>
		<prev x="10" y="900" width="120" height="80"/>
		<main x="900" y="900" width="120" height="80"/>
		<next x="1790" y="900" width="120" height="80"/>
	</navigation>
</gamescreen>`

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadLayout(t *testing.T) {
	path := writeFile(t, t.TempDir(), "gamescreen.xml", validLayout)

	l, err := LoadLayout(path)
	if err != nil {
		t.Fatalf("LoadLayout: %v", err)
	}

	if l.ButtonWidth != 250 || l.ButtonHeight != 200 {
		t.Errorf("button = %dx%d", l.ButtonWidth, l.ButtonHeight)
	}
	if l.SpacingX != 20 || l.SpacingY != 30 || l.StartX != 100 || l.StartY != 150 {
		t.Errorf("spacing/start = %+v", l)
	}
	if l.Capacity() != 8 {
		t.Errorf("Capacity() = %d, want 8", l.Capacity())
	}
	if l.FrameOffset != 8 {
		t.Errorf("FrameOffset = %d, want 8", l.FrameOffset)
	}
	if l.PageNo.X != 1800 || l.PageNo.Font.Size != 20 || l.PageNo.Colour.G != 0xcc {
		t.Errorf("PageNo = %+v", l.PageNo)
	}
	if l.GameName.Width != 30 || l.GameName.Font.Weight != WeightBold {
		t.Errorf("GameName = %+v", l.GameName)
	}
	if l.Next != (Box{X: 1790, Y: 900, Width: 120, Height: 80}) {
		t.Errorf("Next = %+v", l.Next)
	}
}

func TestLoadLayoutDefaults(t *testing.T) {
	content := strings.Replace(validLayout, "<button_frame_offset>8</button_frame_offset>", "", 1)
	content = strings.Replace(content, `<page_no x="1800" y="1050" font="('Arial', 20, 'normal')" colour="#ffcc00"/>`, "", 1)
	path := writeFile(t, t.TempDir(), "gamescreen.xml", content)

	l, err := LoadLayout(path)
	if err != nil {
		t.Fatalf("LoadLayout: %v", err)
	}
	if l.FrameOffset != 0 {
		t.Errorf("FrameOffset = %d, want 0", l.FrameOffset)
	}
	if l.PageNo != DefaultPageNo() {
		t.Errorf("PageNo = %+v, want defaults", l.PageNo)
	}
}

func TestLoadLayoutErrors(t *testing.T) {
	tests := []struct {
		name    string
		old     string
		new     string
		wantErr error
	}{
		{"missing game_name", `<game_name x="60" y="40" font="('Arial', 18, 'bold')" colour="yellow" width="30"/>`, "", internal.ErrMissingElement},
		{"missing attribute", `<spacing x="20" y="30"/>`, `<spacing x="20"/>`, internal.ErrMissingAttribute},
		{"non-integer", `<start x="100" y="150"/>`, `<start x="abc" y="150"/>`, internal.ErrNotInteger},
		{"negative", `<start x="100" y="150"/>`, `<start x="-1" y="150"/>`, internal.ErrNegative},
		{"empty grid", `<grid buttons_per_row="4" rows_per_page="2"/>`, `<grid buttons_per_row="0" rows_per_page="2"/>`, ErrEmptyGrid},
		{"zero button", `<button width="250" height="200"/>`, `<button width="0" height="200"/>`, ErrZeroSize},
		{"bad font", `font="('Arial', 18, 'bold')"`, `font="eval('x')"`, ErrInvalidFont},
		{"bad colour", `colour="yellow"`, `colour="blurple"`, ErrInvalidColour},
		{"missing navigation", `<next x="1790" y="900" width="120" height="80"/>`, "", internal.ErrMissingElement},
		{"bad offset", `<button_frame_offset>8</button_frame_offset>`, `<button_frame_offset>x</button_frame_offset>`, internal.ErrNotInteger},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			content := strings.Replace(validLayout, tt.old, tt.new, 1)
			path := writeFile(t, t.TempDir(), "gamescreen.xml", content)

			_, err := LoadLayout(path)
			if err == nil {
				t.Fatal("expected error")
			}
			if !errors.Is(err, internal.ErrConfig) {
				t.Errorf("error %v is not a ConfigError", err)
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("error %v does not wrap %v", err, tt.wantErr)
			}
		})
	}
}

func TestLoadLayoutMissingFile(t *testing.T) {
	_, err := LoadLayout(filepath.Join(t.TempDir(), "gamescreen.xml"))
	if !errors.Is(err, internal.ErrMissingFile) {
		t.Errorf("err = %v, want ErrMissingFile", err)
	}
}

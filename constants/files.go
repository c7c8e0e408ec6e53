package constants

const (
	CatalogFile  = "inscoperoms.xml"
	SettingsFile = "settings.xml"
	ThemesDir    = "themes"
	LogFile      = "gunmenu.log"
)

const (
	GameScreenFile = "gamescreen.xml"
	MainScreenFile = "main.xml"

	MainBackground      = "main.png"
	GameDefaultImage    = "game_default.png"
	GameOverlayImage    = "game.png"
	ButtonPrevImage     = "button_prev.png"
	ButtonMainImage     = "button_main.png"
	ButtonNextImage     = "button_next.png"
	DentMainImage       = "dent_main.png"
	DentSystemsImage    = "dent_systems.png"
	TargetImage         = "target.png"
	HitCue              = "hit.mp3"
	MissCue             = "miss.mp3"
	SystemBackgroundFmt = "%s.png"
)

// RequiredThemeFiles must all exist in the selected theme directory.
var RequiredThemeFiles = []string{
	"tag_3do.png", "gamescreen.xml", "3do.png", "tag_nes.png", "dent_systems.png",
	"tag_segacd.png", "button_next.png", "game_default.png", "tag_atari2600.png", "main.xml",
	"tag_zxspectrum.png", "button_prev.png", "hit.mp3", "tag_sega32x.png", "tag_dreamcast.png",
	"tag_saturn.png", "tag_mastersystem.png", "tag_mame.png", "atari2600.png", "target.png",
	"tag_atari7800.png", "tag_megadrive.png", "tag_psx.png", "button_main.png", "dent_main.png",
	"Logo.png", "Logo_mini.png", "game.png", "main.png", "tag_snes.png", "miss.mp3",
	"atari7800.png", "dreamcast.png", "mame-libretro.png", "mastersystem.png",
	"megadrive.png", "nes.png", "psx.png", "saturn.png",
	"sega32x.png", "segacd.png", "snes.png", "zxspectrum.png",
}

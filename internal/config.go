package internal

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/beevik/etree"
)

type Settings struct {
	SelectedTheme string
	LogLevel      LogLevel
	Language      string
	CueQueueDepth int
	LaunchCommand string
	GamelistCache bool
	ScreenWidth   int
	ScreenHeight  int
}

func (s Settings) ToLoggable() any {
	return map[string]any{
		"selected_theme":  s.SelectedTheme,
		"log_level":       s.LogLevel,
		"language":        s.Language,
		"cue_queue_depth": s.CueQueueDepth,
		"launch_command":  s.LaunchCommand,
		"gamelist_cache":  s.GamelistCache,
		"screen":          fmt.Sprintf("%dx%d", s.ScreenWidth, s.ScreenHeight),
	}
}

// LoadSettings reads settings.xml. Only selected_theme is required; every
// other element falls back to its default when absent.
func LoadSettings(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, NewConfigError(path, "", "", ErrMissingFile)
		}
		return nil, NewConfigError(path, "", "", err)
	}

	doc := etree.NewDocument()
	if err := doc.ReadFromBytes(data); err != nil {
		return nil, NewConfigError(path, "", "", fmt.Errorf("parsing xml: %w", err))
	}
	root := doc.Root()
	if root == nil {
		return nil, NewConfigError(path, "", "", fmt.Errorf("document has no root element"))
	}

	settings := Settings{
		SelectedTheme: text(root, "selected_theme"),
		LogLevel:      LogLevel(strings.ToUpper(text(root, "log_level"))),
		Language:      text(root, "language"),
		LaunchCommand: text(root, "launch_command"),
		GamelistCache: true,
	}

	if settings.SelectedTheme == "" {
		return nil, NewConfigError(path, "selected_theme", "", fmt.Errorf("%w or empty", ErrMissingElement))
	}

	if settings.CueQueueDepth, err = optionalInt(path, root, "cue_queue_depth", DefaultCueQueueDepth); err != nil {
		return nil, err
	}
	if settings.CueQueueDepth < 1 || settings.CueQueueDepth > MaxCueQueueDepth {
		return nil, NewConfigError(path, "cue_queue_depth", "",
			fmt.Errorf("must be between 1 and %d, got %d", MaxCueQueueDepth, settings.CueQueueDepth))
	}

	if settings.ScreenWidth, err = optionalInt(path, root, "screen_width", DefaultScreenWidth); err != nil {
		return nil, err
	}
	if settings.ScreenHeight, err = optionalInt(path, root, "screen_height", DefaultScreenHeight); err != nil {
		return nil, err
	}

	if raw := text(root, "gamelist_cache"); raw != "" {
		enabled, err := strconv.ParseBool(raw)
		if err != nil {
			return nil, NewConfigError(path, "gamelist_cache", "", err)
		}
		settings.GamelistCache = enabled
	}

	if settings.LogLevel == "" {
		settings.LogLevel = LogLevelError
	}

	if settings.Language == "" {
		settings.Language = DefaultLanguage
	}

	if settings.LaunchCommand == "" {
		settings.LaunchCommand = DefaultLaunchCommand
	}

	return &settings, nil
}

func text(root *etree.Element, tag string) string {
	el := root.SelectElement(tag)
	if el == nil {
		return ""
	}
	return strings.TrimSpace(el.Text())
}

func optionalInt(path string, root *etree.Element, tag string, def int) (int, error) {
	raw := text(root, tag)
	if raw == "" {
		return def, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, NewConfigError(path, tag, "", fmt.Errorf("%w: %q", ErrNotInteger, raw))
	}
	return v, nil
}

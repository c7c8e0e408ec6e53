package main

import (
	"errors"
	"log/slog"
	"path/filepath"
	"strconv"
	"strings"

	"gunmenu/cache"
	"gunmenu/constants"
	"gunmenu/internal"
	"gunmenu/internal/catalog"
	"gunmenu/internal/environment"
	"gunmenu/internal/fileutil"
	"gunmenu/internal/i18n"
	"gunmenu/internal/logging"
	"gunmenu/internal/screen"
	"gunmenu/internal/theme"
	"gunmenu/resources"
	"gunmenu/version"
)

type SetupResult struct {
	Settings *internal.Settings
	ThemeDir string
	Layout   *theme.LayoutConfig
	Table    *screen.Table
}

func setup() SetupResult {
	logging.Init(logging.Options{LogFilename: constants.LogFile, Level: slog.LevelError})

	localeFiles, err := resources.GetLocaleMessageFiles()
	if err != nil {
		logging.LogStandardFatal(constants.ExitCodeConfigError, "Failed to load locale files", err)
	}
	if err := i18n.InitI18NFromBytes(localeFiles); err != nil {
		logging.LogStandardFatal(constants.ExitCodeConfigError, "Failed to initialize i18n", err)
	}

	settings, err := loadSettings(".")
	if err != nil {
		fatal(err)
	}

	logging.SetRawLogLevel(string(settings.LogLevel))
	if environment.IsDevelopment() {
		logging.SetLogLevel(slog.LevelDebug)
	}
	logger := logging.GetLogger()

	if err := i18n.SetWithCode(settings.Language); err != nil {
		logger.Error("Failed to set language", "error", err, "language", settings.Language)
	}
	logger.Debug("Language selected", "language", i18n.CurrentLanguage().String())

	logger.Debug("Settings Loaded!", "settings", settings.ToLoggable(), "version", version.Get().String())

	result, err := loadScreens(".", settings, gamelistLoader(settings))
	if err != nil {
		fatal(err)
	}

	logger.Debug("Screens compiled", "theme", result.ThemeDir, "screens", result.Table.Len())
	return result
}

// fatal reports a startup failure in the active language and exits.
func fatal(err error) {
	msg, data := classifyStartupError(err)
	logging.GetLogger().Error(msg.Other, "error", err)
	logging.LogStandardFatal(constants.ExitCodeConfigError, i18n.Localize(msg, data), err)
}

// loadSettings checks the files every installation needs and then parses
// settings.xml.
func loadSettings(root string) (*internal.Settings, error) {
	for _, name := range []string{constants.CatalogFile, constants.SettingsFile} {
		path := filepath.Join(root, name)
		if !fileutil.FileExists(path) {
			return nil, newStartupError(msgMissingFile, map[string]any{"File": name},
				internal.NewConfigError(path, "", "", internal.ErrMissingFile))
		}
	}

	themes := filepath.Join(root, constants.ThemesDir)
	if !fileutil.DirExists(themes) {
		return nil, newStartupError(msgMissingFile, map[string]any{"File": constants.ThemesDir},
			internal.NewConfigError(themes, "", "", internal.ErrMissingFile))
	}

	settings, err := internal.LoadSettings(filepath.Join(root, constants.SettingsFile))
	if err != nil {
		return nil, newStartupError(msgInvalidSettings, nil, err)
	}
	return settings, nil
}

func loadScreens(root string, settings *internal.Settings, loader catalog.GamelistLoader) (SetupResult, error) {
	logger := logging.GetLogger()
	themeDir := filepath.Join(root, constants.ThemesDir, settings.SelectedTheme)

	if err := theme.ValidateThemeDir(themeDir); err != nil {
		if errors.Is(err, theme.ErrMissingAssets) {
			files := strings.Join(theme.MissingAssets(themeDir), ", ")
			return SetupResult{}, newStartupError(msgMissingThemeFiles, map[string]any{"Files": files}, err)
		}
		return SetupResult{}, newStartupError(msgMissingThemeDir, map[string]any{"Theme": settings.SelectedTheme}, err)
	}

	layout, err := theme.LoadLayout(filepath.Join(themeDir, constants.GameScreenFile))
	if err != nil {
		return SetupResult{}, newStartupError(msgInvalidLayout, nil, err)
	}

	mainSpec, err := theme.LoadMainScreen(filepath.Join(themeDir, constants.MainScreenFile), themeDir)
	if err != nil {
		return SetupResult{}, newStartupError(msgInvalidMainScreen, nil, err)
	}

	cat, err := catalog.LoadCatalog(filepath.Join(root, constants.CatalogFile))
	if err != nil {
		return SetupResult{}, newStartupError(msgInvalidCatalog, nil, err)
	}
	logger.Debug("Catalog loaded", "systems", cat.Len())

	filtered := catalog.BuildFilteredCatalog(cat, loader)

	table, err := screen.NewCompiler(layout, themeDir).Compile(filtered, mainSpec)
	if err != nil {
		return SetupResult{}, newStartupError(msgCompileFailed, nil, err)
	}

	for _, target := range table.DanglingTargets() {
		logger.Warn("Main screen zone points at a missing screen",
			"warning", "CatalogMatchWarning",
			"target", target,
			"reason", danglingTargetReason(target, cat, filtered))
	}

	return SetupResult{
		Settings: settings,
		ThemeDir: themeDir,
		Layout:   layout,
		Table:    table,
	}, nil
}

// danglingTargetReason explains why no screen was compiled for target.
func danglingTargetReason(target string, cat *catalog.Catalog, filtered *catalog.FilteredCatalog) string {
	name := target
	if page, ok := screen.PageNumber(target); ok {
		name = strings.TrimSuffix(target, "_"+strconv.Itoa(page))
	}

	system, ok := cat.Lookup(name)
	if !ok {
		return "system not in catalog"
	}
	if matched, ok := filtered.Lookup(name); ok && len(matched.Roms) > 0 {
		return "page out of range"
	}
	if len(system.LightgunRoms) == 0 {
		return "no light gun ROMs listed"
	}
	return "no ROMs matched the gamelist"
}

// gamelistLoader reads gamelists through the SQLite cache unless it is
// disabled or cannot be opened.
func gamelistLoader(settings *internal.Settings) catalog.GamelistLoader {
	if !settings.GamelistCache {
		return catalog.DirectLoader
	}

	if err := cache.InitCacheManager(); err != nil {
		logging.GetLogger().Warn("Gamelist cache unavailable, parsing directly", "error", err)
		return catalog.DirectLoader
	}

	return cache.NewCachedLoader(cache.GetCacheManager())
}

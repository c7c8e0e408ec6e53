package main

import (
	"errors"
	"path/filepath"

	"gunmenu/audio"
	"gunmenu/cache"
	"gunmenu/constants"
	timeouts "gunmenu/internal/constants"
	"gunmenu/internal/environment"
	"gunmenu/internal/feedback"
	"gunmenu/internal/i18n"
	"gunmenu/internal/logging"
	"gunmenu/internal/nav"
	"gunmenu/internal/screen"
	"gunmenu/launcher"
	"gunmenu/ui"

	"github.com/hajimehoshi/ebiten/v2"
)

func cleanup() {
	if cm := cache.GetCacheManager(); cm != nil {
		hits, misses, errs := cm.Stats().Snapshot()
		logging.GetLogger().Debug("Gamelist cache stats", "hits", hits, "misses", misses, "errors", errs)
		if err := cm.Close(); err != nil {
			logging.GetLogger().Error("Failed to close cache", "error", err)
		}
	}
	logging.Close()
}

func main() {
	defer cleanup()

	result := setup()

	logger := logging.GetLogger()
	logger.Debug("Starting Gun Menu")

	if err := run(result); err != nil {
		logger.Error("Front-end stopped", "error", err)
	}
}

func run(result SetupResult) error {
	logger := logging.GetLogger()
	settings := result.Settings
	themeFile := func(name string) string {
		return filepath.Join(result.ThemeDir, name)
	}

	player := audio.Load(map[feedback.Cue]string{
		feedback.CueHit:  themeFile(constants.HitCue),
		feedback.CueMiss: themeFile(constants.MissCue),
	})
	if err := player.Initialize(); err != nil {
		logger.Warn("Continuing without sound", "error", err)
	}
	defer player.Close()

	runner := launcher.NewRunCommand(settings.LaunchCommand)
	defer func() {
		if !runner.Wait(timeouts.LaunchWaitTimeout) {
			logger.Warn("Launched emulator still running at exit", "running", runner.Running())
		}
	}()

	engine := nav.NewEngine(result.Table, nil, nav.DentImages{
		Main:    themeFile(constants.DentMainImage),
		Systems: themeFile(constants.DentSystemsImage),
	}, result.Layout.GameName.Width)

	dispatcher := feedback.NewDispatcher(engine, player, runner, settings.CueQueueDepth)
	defer func() {
		dispatcher.Close(timeouts.CueDrainTimeout)
		stats := dispatcher.Stats()
		logger.Debug("Feedback stats",
			"clicks", stats.Clicks,
			"hits", stats.Hits,
			"misses", stats.Misses,
			"dropped", stats.Dropped,
			"launches", stats.Launches)
	}()

	game, err := ui.NewGame(ui.Options{
		Width:        settings.ScreenWidth,
		Height:       settings.ScreenHeight,
		Layout:       result.Layout,
		DefaultImage: themeFile(constants.GameDefaultImage),
		TargetImage:  themeFile(constants.TargetImage),
		ShowPointer:  environment.IsDevelopment(),
	}, engine, dispatcher)
	if err != nil {
		return err
	}

	if err := engine.Transition(screen.MainKey); err != nil {
		return err
	}

	ebiten.SetWindowTitle(i18n.GetString("window_title"))
	ebiten.SetCursorMode(ebiten.CursorModeHidden)
	if environment.IsDevelopment() {
		ebiten.SetWindowSize(settings.ScreenWidth/2, settings.ScreenHeight/2)
	} else {
		ebiten.SetFullscreen(true)
	}

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}

	logger.Debug("Exiting")
	return nil
}

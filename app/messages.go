package main

import (
	"errors"

	goi18n "github.com/nicksnyder/go-i18n/v2/i18n"
)

var (
	msgMissingFile       = &goi18n.Message{ID: "startup_missing_file", Other: "Required file {{.File}} is missing"}
	msgMissingThemeDir   = &goi18n.Message{ID: "startup_missing_theme_dir", Other: "Selected theme folder {{.Theme}} is missing"}
	msgMissingThemeFiles = &goi18n.Message{ID: "startup_missing_theme_files", Other: "The following required files are missing in the theme folder: {{.Files}}"}
	msgInvalidSettings   = &goi18n.Message{ID: "startup_invalid_settings", Other: "Unable to read settings"}
	msgInvalidCatalog    = &goi18n.Message{ID: "startup_invalid_catalog", Other: "Unable to read the light gun ROM catalog"}
	msgInvalidLayout     = &goi18n.Message{ID: "startup_invalid_layout", Other: "Unable to read the game screen layout"}
	msgInvalidMainScreen = &goi18n.Message{ID: "startup_invalid_main_screen", Other: "Unable to read the main screen"}
	msgCompileFailed     = &goi18n.Message{ID: "startup_compile_failed", Other: "Unable to build screens"}
)

// startupError carries the message shown to the user when startup has to
// stop. Err is the underlying ConfigError.
type startupError struct {
	Message *goi18n.Message
	Data    map[string]any
	Err     error
}

func (e *startupError) Error() string {
	return e.Err.Error()
}

func (e *startupError) Unwrap() error {
	return e.Err
}

func newStartupError(msg *goi18n.Message, data map[string]any, err error) *startupError {
	return &startupError{Message: msg, Data: data, Err: err}
}

// classifyStartupError picks the user-facing message for err. Errors that
// were not raised by a startup stage fall back to the settings message.
func classifyStartupError(err error) (*goi18n.Message, map[string]any) {
	var se *startupError
	if errors.As(err, &se) {
		return se.Message, se.Data
	}
	return msgInvalidSettings, nil
}

package i18n

import (
	"fmt"
	"sync"

	"github.com/BurntSushi/toml"
	goi18n "github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"
)

// MessageFile is a locale file such as active.es.toml held in memory.
type MessageFile struct {
	Name    string
	Content []byte
}

var (
	mu        sync.RWMutex
	bundle    *goi18n.Bundle
	localizer *goi18n.Localizer
	current   = language.English
)

// InitI18NFromBytes loads every message file into a fresh bundle and
// selects English.
func InitI18NFromBytes(files []MessageFile) error {
	b := goi18n.NewBundle(language.English)
	b.RegisterUnmarshalFunc("toml", toml.Unmarshal)

	for _, f := range files {
		if _, err := b.ParseMessageFileBytes(f.Content, f.Name); err != nil {
			return fmt.Errorf("parsing locale file %s: %w", f.Name, err)
		}
	}

	mu.Lock()
	defer mu.Unlock()

	bundle = b
	current = language.English
	localizer = goi18n.NewLocalizer(b, current.String())
	return nil
}

// SetWithCode switches the active language. Codes without a loaded
// message file are rejected and the current language is kept.
func SetWithCode(code string) error {
	tag, err := language.Parse(code)
	if err != nil {
		return fmt.Errorf("invalid language code %q: %w", code, err)
	}

	mu.Lock()
	defer mu.Unlock()

	if bundle == nil {
		return fmt.Errorf("i18n not initialized")
	}

	supported := false
	for _, t := range bundle.LanguageTags() {
		base, _ := t.Base()
		want, _ := tag.Base()
		if base == want {
			supported = true
			break
		}
	}
	if !supported {
		return fmt.Errorf("language %q has no messages", code)
	}

	current = tag
	localizer = goi18n.NewLocalizer(bundle, tag.String(), language.English.String())
	return nil
}

func CurrentLanguage() language.Tag {
	mu.RLock()
	defer mu.RUnlock()
	return current
}

// Localize renders msg in the active language. Before initialisation the
// untranslated msg.Other is returned as is.
func Localize(msg *goi18n.Message, data map[string]any) string {
	mu.RLock()
	l := localizer
	mu.RUnlock()

	if l != nil {
		s, err := l.Localize(&goi18n.LocalizeConfig{DefaultMessage: msg, TemplateData: data})
		if err == nil || s != "" {
			return s
		}
	}

	if msg.Other == "" {
		return msg.ID
	}
	return msg.Other
}

// GetString looks up id with no default. Unknown ids come back unchanged.
func GetString(id string) string {
	return GetStringWithData(id, nil)
}

func GetStringWithData(id string, data map[string]any) string {
	mu.RLock()
	l := localizer
	mu.RUnlock()

	if l == nil {
		return id
	}

	// A message missing from the active language comes back in English
	// together with a MessageNotFoundErr.
	s, err := l.Localize(&goi18n.LocalizeConfig{MessageID: id, TemplateData: data})
	if err != nil && s == "" {
		return id
	}
	return s
}

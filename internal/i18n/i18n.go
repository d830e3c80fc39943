// Copyright (c) 2026 Passpie Team
// Passpie - command-line password manager
// This source code is licensed under the MIT license found in the LICENSE file.

// Package i18n provides the translated user-facing messages of passpie. It
// loads the embedded locale files with go-i18n and falls back to the message
// ID when a translation is missing.
package i18n

import (
	"embed"
	"fmt"
	"io/fs"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"github.com/vitalk/passpie/internal/logging"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"
)

//go:embed locales/*.yaml
var localeFS embed.FS

// locales is the catalogue source; tests swap in broken files.
var locales fs.FS = localeFS

var (
	bundle     *i18n.Bundle
	localizer  *i18n.Localizer
	activeLang string
)

// Init loads every embedded locale file and selects lang.
func Init(lang string) {
	bundle = i18n.NewBundle(language.English)
	bundle.RegisterUnmarshalFunc("yaml", yaml.Unmarshal)

	files, err := fs.ReadDir(locales, "locales")
	if err != nil {
		logging.Warnf("i18n: reading locales: %v", err)
	}
	for _, f := range files {
		if f.IsDir() {
			continue
		}
		if err := loadLocale(f.Name()); err != nil {
			logging.Warnf("i18n: %v", err)
		}
	}

	localizer = i18n.NewLocalizer(bundle, lang)
	activeLang = lang
}

func loadLocale(name string) error {
	data, err := fs.ReadFile(locales, "locales/"+name)
	if err != nil {
		return fmt.Errorf("reading %s: %w", name, err)
	}
	if _, err := bundle.ParseMessageFileBytes(data, name); err != nil {
		return fmt.Errorf("parsing %s: %w", name, err)
	}
	return nil
}

// SetLang changes the active language.
func SetLang(lang string) {
	Init(lang)
}

// GetLang returns the active language.
func GetLang() string {
	if localizer == nil {
		Init("en")
	}
	return activeLang
}

// GetAvailableLocales maps each bundled locale tag to its display name.
func GetAvailableLocales() map[string]string {
	if bundle == nil {
		Init("en")
	}
	out := make(map[string]string)
	for _, tag := range bundle.LanguageTags() {
		l := i18n.NewLocalizer(bundle, tag.String())
		name, err := l.Localize(&i18n.LocalizeConfig{MessageID: "locale.name"})
		if err != nil {
			name = tag.String()
		}
		out[tag.String()] = name
	}
	return out
}

// T translates messageID and formats it with args, fmt style. Unknown IDs
// are returned unchanged.
func T(messageID string, args ...any) string {
	if localizer == nil {
		Init("en")
	}
	msg, err := localizer.Localize(&i18n.LocalizeConfig{MessageID: messageID})
	if err != nil {
		msg = messageID
	}
	if len(args) > 0 {
		return fmt.Sprintf(msg, args...)
	}
	return msg
}

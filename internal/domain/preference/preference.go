package preference

import (
	"errors"
	"strings"
)

var (
	ErrUnsupportedLanguage = errors.New("unsupported language")
	ErrUnsupportedTheme    = errors.New("unsupported theme")
)

type Language string

const (
	LanguageUzbek   Language = "uz"
	LanguageRussian Language = "ru"
	LanguageEnglish Language = "en"

	DefaultLanguage = LanguageUzbek
)

func ParseLanguage(s string) (Language, error) {
	l := Language(strings.ToLower(strings.TrimSpace(s)))
	if _, ok := translations[l]; !ok {
		return "", ErrUnsupportedLanguage
	}
	return l, nil
}

type Theme string

const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"

	DefaultTheme = ThemeLight
)

func ParseTheme(s string) (Theme, error) {
	switch t := Theme(strings.ToLower(strings.TrimSpace(s))); t {
	case ThemeLight, ThemeDark:
		return t, nil
	default:
		return "", ErrUnsupportedTheme
	}
}

type Preference struct {
	Language Language `json:"language"`
	Theme    Theme    `json:"theme"`
}

func Default() Preference {
	return Preference{Language: DefaultLanguage, Theme: DefaultTheme}
}

// Translate looks key up in lang's table. Unknown languages use the default
// table; unknown keys come back unchanged.
func Translate(lang Language, key string) string {
	table, ok := translations[lang]
	if !ok {
		table = translations[DefaultLanguage]
	}
	if s, ok := table[key]; ok && s != "" {
		return s
	}
	return key
}

func Languages() []Language {
	return []Language{LanguageUzbek, LanguageRussian, LanguageEnglish}
}

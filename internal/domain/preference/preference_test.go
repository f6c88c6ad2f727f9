//go:build unit

package preference_test

import (
	"testing"

	"fieldbook/internal/domain/preference"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTranslate(t *testing.T) {
	assert.Equal(t, "Bosh sahifa", preference.Translate(preference.LanguageUzbek, "home"))
	assert.Equal(t, "Главная", preference.Translate(preference.LanguageRussian, "home"))
	assert.Equal(t, "Home", preference.Translate(preference.LanguageEnglish, "home"))

	t.Run("unknown key falls back to the key", func(t *testing.T) {
		assert.Equal(t, "noSuchKey", preference.Translate(preference.LanguageEnglish, "noSuchKey"))
	})

	t.Run("unknown language uses the default table", func(t *testing.T) {
		assert.Equal(t, "Bosh sahifa", preference.Translate("de", "home"))
	})
}

func TestParse(t *testing.T) {
	l, err := preference.ParseLanguage(" RU ")
	require.NoError(t, err)
	assert.Equal(t, preference.LanguageRussian, l)

	_, err = preference.ParseLanguage("de")
	assert.ErrorIs(t, err, preference.ErrUnsupportedLanguage)

	th, err := preference.ParseTheme("dark")
	require.NoError(t, err)
	assert.Equal(t, preference.ThemeDark, th)

	_, err = preference.ParseTheme("blue")
	assert.ErrorIs(t, err, preference.ErrUnsupportedTheme)

	assert.Equal(t, preference.Preference{Language: "uz", Theme: "light"}, preference.Default())
}

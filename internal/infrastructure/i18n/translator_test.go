package i18n

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"
)

func TestTranslator_English(t *testing.T) {
	tr, err := New("en")
	require.NoError(t, err)

	assert.Equal(t, language.English, tr.Language())
	assert.Equal(t, "API key contains invalid characters", tr.T(MsgInvalidAPIKey))
	assert.Equal(t, "3 fonts used by the theme", tr.T(MsgFontsUsedByTheme, 3))
}

func TestTranslator_French(t *testing.T) {
	tr, err := New("fr-CA")
	require.NoError(t, err)

	assert.Equal(t, language.French, tr.Language())
	assert.Equal(t, "Aucune nouvelle police trouvée", tr.T(MsgNoNewFonts))
	assert.Equal(t, "2 polices utilisées par le thème", tr.T(MsgFontsUsedByTheme, 2))
}

func TestTranslator_Fallbacks(t *testing.T) {
	for _, lang := range []string{"", "not a tag", "ja"} {
		tr, err := New(lang)
		require.NoError(t, err)
		assert.Equal(t, language.English, tr.Language(), lang)
	}

	tr, err := New("en")
	require.NoError(t, err)
	assert.Equal(t, "Unknown text", tr.T("Unknown text"))
}

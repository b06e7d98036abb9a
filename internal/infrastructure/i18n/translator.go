// Package i18n translates the admin page strings with golang.org/x/text.
package i18n

import (
	"fmt"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"

	"github.com/bnema/webfonts/internal/application/port"
)

// Message keys. The English text is the key.
const (
	MsgPageTitle         = "Google Webfonts for Woo Framework Options"
	MsgMenuTitle         = "Google Webfonts for Woo Framework"
	MsgSectionTitle      = "Main Settings"
	MsgSectionIntro      = "Google Webfonts for WooThemes Woo Framework."
	MsgAPIKeyLabel       = "Google Developer API Key"
	MsgOldFontsLabel     = "Framework fonts (view only)"
	MsgNewFontsLabel     = "New fonts introduced (view only)"
	MsgNoOldFonts        = "No framework fonts found"
	MsgNoNewFonts        = "No new fonts found"
	MsgInvalidAPIKey     = "API key contains invalid characters"
	MsgNoPermission      = "You do not have sufficient permissions to access this page."
	MsgSaveChanges       = "Save Changes"
	MsgSettingsSaved     = "Settings saved."
	MsgFontsUsedByTheme  = "%d fonts used by the theme"
	MsgRemoteFontsLoaded = "%d remote fonts available"
)

var french = map[string]string{
	MsgPageTitle:         "Options de Google Webfonts pour Woo Framework",
	MsgMenuTitle:         "Google Webfonts pour Woo Framework",
	MsgSectionTitle:      "Réglages principaux",
	MsgSectionIntro:      "Google Webfonts pour le Woo Framework de WooThemes.",
	MsgAPIKeyLabel:       "Clé d'API Google Developer",
	MsgOldFontsLabel:     "Polices du framework (lecture seule)",
	MsgNewFontsLabel:     "Nouvelles polices ajoutées (lecture seule)",
	MsgNoOldFonts:        "Aucune police du framework trouvée",
	MsgNoNewFonts:        "Aucune nouvelle police trouvée",
	MsgInvalidAPIKey:     "La clé d'API contient des caractères non valides",
	MsgNoPermission:      "Vous n'avez pas les droits suffisants pour accéder à cette page.",
	MsgSaveChanges:       "Enregistrer les modifications",
	MsgSettingsSaved:     "Réglages enregistrés.",
	MsgFontsUsedByTheme:  "%d polices utilisées par le thème",
	MsgRemoteFontsLoaded: "%d polices distantes disponibles",
}

var supported = []language.Tag{language.English, language.French}

// Translator implements port.Translator for one language.
type Translator struct {
	tag     language.Tag
	printer *message.Printer
}

var _ port.Translator = (*Translator)(nil)

// New creates a translator for lang. Unsupported or invalid tags fall back
// to English.
func New(lang string) (*Translator, error) {
	cat, err := buildCatalog()
	if err != nil {
		return nil, err
	}

	tag := language.English
	if parsed, parseErr := language.Parse(lang); parseErr == nil {
		matcher := language.NewMatcher(supported)
		_, idx, confidence := matcher.Match(parsed)
		if confidence != language.No {
			tag = supported[idx]
		}
	}

	return &Translator{
		tag:     tag,
		printer: message.NewPrinter(tag, message.Catalog(cat)),
	}, nil
}

// Language returns the selected language tag.
func (t *Translator) Language() language.Tag {
	return t.tag
}

// T translates key and formats args into it.
func (t *Translator) T(key string, args ...any) string {
	return t.printer.Sprintf(key, args...)
}

func buildCatalog() (*catalog.Builder, error) {
	b := catalog.NewBuilder(catalog.Fallback(language.English))
	for key, text := range french {
		if err := b.SetString(language.English, key, key); err != nil {
			return nil, fmt.Errorf("failed to register message %q: %w", key, err)
		}
		if err := b.SetString(language.French, key, text); err != nil {
			return nil, fmt.Errorf("failed to register french message %q: %w", key, err)
		}
	}
	return b, nil
}

package entity

// Settings page identifiers.
const (
	SettingsGroup     = "gwfc-group"
	SettingsPageSlug  = "gw-for-wooframework"
	SettingsPage      = "gwfc_main_section"
	SettingsSectionID = "gwfc_main"

	FieldAPIKey   = "google_api_key"
	FieldNewFonts = "new_fonts"
	FieldOldFonts = "old_fonts"

	// ThemeOptionsName is the option holding the theme configuration.
	ThemeOptionsName = "woo_options"

	// CapabilityManageOptions is required to view and submit the settings page.
	CapabilityManageOptions = "manage_options"
)

// Settings error types.
const (
	SettingsErrorTypeError   = "error"
	SettingsErrorTypeUpdated = "updated"
)

// SettingsError is a field-level message shown on the settings page.
type SettingsError struct {
	Setting string `json:"setting"`
	Code    string `json:"code"`
	Message string `json:"message"`
	Type    string `json:"type"`
}

// ValidationResult is the outcome of validating a submitted setting value.
// Value is what gets persisted; on failure it is the original input so the
// user can correct it.
type ValidationResult struct {
	Value       string
	Valid       bool
	Errors      []SettingsError
	Invalidated bool
}

package validation

import (
	"fmt"
	"strings"
)

const maxFontFamilyLength = 200

// ValidateFontFamily checks a single font family name.
func ValidateFontFamily(field string, value string) []string {
	value = strings.TrimSpace(value)
	var errs []string

	if value == "" {
		errs = append(errs, field+" cannot be empty")
		return errs
	}

	if strings.ContainsAny(value, "\r\n") {
		errs = append(errs, field+" must not contain newlines")
	}

	if len(value) > maxFontFamilyLength {
		errs = append(errs, field+" is too long")
	}

	return errs
}

// ValidateFontNames checks every family name of a catalog partition.
// Duplicate names are allowed; resolution collapses them.
func ValidateFontNames(partition string, names []string) []string {
	var errs []string
	for i, name := range names {
		errs = append(errs, ValidateFontFamily(fmt.Sprintf("%s[%d].name", partition, i), name)...)
	}
	return errs
}

package validator

import (
	"regexp"
	"strings"
)

var (
	// Accepts French national numbers (10 digits with a leading 0) and
	// international numbers in +CC form.
	phoneRegex   = regexp.MustCompile(`^(\+[1-9][0-9]{7,14}|0[1-9][0-9]{8})$`)
	dataURIRegex = regexp.MustCompile(`^data:image/[a-z0-9.+-]+;base64,[A-Za-z0-9+/]+=*$`)
)

// IsValidPhone checks if the phone number format is valid. Spaces, dots
// and dashes are treated as separators and ignored.
func IsValidPhone(phone string) bool {
	cleaned := strings.NewReplacer(" ", "", ".", "", "-", "").Replace(phone)
	if cleaned == "" {
		return false
	}
	return phoneRegex.MatchString(cleaned)
}

// IsImageDataURI reports whether s is an inline base64 image payload.
func IsImageDataURI(s string) bool {
	return dataURIRegex.MatchString(s)
}

// SanitizeString trims whitespace and collapses internal runs of spaces.
func SanitizeString(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

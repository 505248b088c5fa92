package validation

import "regexp"

// ULID is 26 characters of Crockford's Base32.
var validULID = regexp.MustCompile(`^[0-9A-HJKMNP-TV-Z]{26}$`)

// IsValidULID checks if the string is a valid ULID format
func IsValidULID(s string) bool {
	if len(s) != 26 {
		return false
	}
	return validULID.MatchString(s)
}

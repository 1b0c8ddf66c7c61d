package validation

import (
	"regexp"
	"strings"
)

type Violations map[string]string

func (v Violations) Empty() bool { return len(v) == 0 }

// Basic validators
func Required(field, value string, v Violations) {
	if strings.TrimSpace(value) == "" {
		v[field] = "required"
	}
}

func MaxLen(field, value string, maxLen int, v Violations) {
	if len(value) > maxLen {
		v[field] = "too_long"
	}
}

var nipRegex = regexp.MustCompile(`^[0-9]{10}$`)

// NIP checks the tax identifier format: exactly ten digits.
// Empty values are left to Required.
func NIP(field, value string, v Violations) {
	if value != "" && !nipRegex.MatchString(value) {
		v[field] = "invalid_nip"
	}
}

var emailRegex = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

// Email checks a minimal address shape. Empty values pass; pair with
// Required when the field is mandatory.
func Email(field, value string, v Violations) {
	if value != "" && !emailRegex.MatchString(value) {
		v[field] = "invalid_email"
	}
}

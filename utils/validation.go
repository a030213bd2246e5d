package utils

import (
	"regexp"
	"strings"
)

var phonePattern = regexp.MustCompile(`^\+?\d{7,15}$`)

// ValidatePhone accepts local numbers (leading zero, e.g. 0912345678) and
// international +-prefixed ones, ignoring separators.
func ValidatePhone(phone string) bool {
	cleaned := strings.ReplaceAll(phone, " ", "")
	cleaned = strings.ReplaceAll(cleaned, "-", "")
	cleaned = strings.ReplaceAll(cleaned, "(", "")
	cleaned = strings.ReplaceAll(cleaned, ")", "")
	return phonePattern.MatchString(cleaned)
}

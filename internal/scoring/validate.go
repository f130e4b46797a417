package scoring

import (
	"regexp"
	"strings"
)

var nonDigits = regexp.MustCompile(`\D`)

// IsValidPhone reports whether the value contains a plausible phone number:
// 10 to 15 digits once every non-digit character is stripped.
func IsValidPhone(phone string) bool {
	digits := nonDigits.ReplaceAllString(phone, "")
	return len(digits) >= 10 && len(digits) <= 15
}

// IsValidWebsite reports whether the value looks like a usable URL: an
// http or https scheme and at least one dot in the remainder.
func IsValidWebsite(website string) bool {
	if !strings.HasPrefix(website, "http://") && !strings.HasPrefix(website, "https://") {
		return false
	}
	return strings.Contains(website, ".")
}

package validation

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

const (
	PasswordMinLength = 8
	NameMaxLength     = 100
)

var (
	emailPattern    = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	linkedInPattern = regexp.MustCompile(`^[A-Za-z0-9\-_]{3,100}$`)
)

// IsEmail reports whether s looks like an email address.
func IsEmail(s string) bool {
	return emailPattern.MatchString(s)
}

// PasswordProblem returns a message describing why password is too weak, or "" when it is acceptable.
func PasswordProblem(password string) string {
	if utf8.RuneCountInString(password) < PasswordMinLength {
		return "Password must be at least 8 characters long"
	}
	var lower, upper, digit bool
	for _, r := range password {
		lower = lower || unicode.IsLower(r)
		upper = upper || unicode.IsUpper(r)
		digit = digit || unicode.IsDigit(r)
	}
	if !lower || !upper || !digit {
		return "Password must contain at least one uppercase letter, one lowercase letter, and one number"
	}
	return ""
}

// Outcomes of a StringRule
const (
	TextOK = iota
	TextMissing
	TextTooShort
	TextTooLong
	TextMalformed
)

// StringRule constrains one text field. Values are trimmed and their
// length is counted in characters.
type StringRule struct {
	Optional bool
	Min, Max int
	Pattern  *regexp.Regexp
}

var (
	nameRule     = StringRule{Max: NameMaxLength}
	linkedInRule = StringRule{Optional: true, Pattern: linkedInPattern}
)

// Check returns TextOK or the first constraint value breaks.
func (r StringRule) Check(value string) int {
	value = strings.TrimSpace(value)
	n := utf8.RuneCountInString(value)
	switch {
	case n == 0 && r.Optional:
		return TextOK
	case n == 0:
		return TextMissing
	case r.Min > 0 && n < r.Min:
		return TextTooShort
	case r.Max > 0 && n > r.Max:
		return TextTooLong
	case r.Pattern != nil && !r.Pattern.MatchString(value):
		return TextMalformed
	}
	return TextOK
}

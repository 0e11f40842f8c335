package validation

import (
	"errors"
	"regexp"
	"strings"
)

// emailPattern is deliberately permissive: local part, an @, a domain with
// at least one dot and at least two characters after the last dot. Full
// RFC 5322 parsing is not the goal here; the remote endpoint has the final
// say on deliverability.
var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]{2,}$`)

// ErrEmailEmpty is returned when the input is empty or whitespace only.
var ErrEmailEmpty = errors.New("please enter your email address")

// ErrEmailFormat is returned when the input does not look like an email.
var ErrEmailFormat = errors.New("that doesn't look like a valid email")

// ValidateEmail checks a raw email string for the subscribe form.
// The empty check runs first so the user gets a distinct message for a
// blank field. It only works with raw values, no Fyne types, so there's
// no import cycle and it stays unit-testable.
func ValidateEmail(email string) error {
	if strings.TrimSpace(email) == "" {
		return ErrEmailEmpty
	}
	if !emailPattern.MatchString(email) {
		return ErrEmailFormat
	}
	return nil
}

package valueobjects

import (
	"fmt"
	"regexp"
	"strings"
)

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

// Email is a normalized (trimmed, lower-cased) email address.
type Email struct {
	value string
}

func NewEmail(value string) (*Email, error) {
	normalized := NormalizeEmail(value)

	if normalized == "" {
		return nil, fmt.Errorf("email cannot be empty")
	}
	if len(normalized) > 255 {
		return nil, fmt.Errorf("email cannot exceed 255 characters")
	}
	if !emailRegex.MatchString(normalized) {
		return nil, fmt.Errorf("invalid email format: %s", value)
	}

	return &Email{value: normalized}, nil
}

// NormalizeEmail is the form emails are stored and compared in.
func NormalizeEmail(value string) string {
	return strings.TrimSpace(strings.ToLower(value))
}

func (e *Email) String() string {
	return e.value
}

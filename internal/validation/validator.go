package validation

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Validator provides common validation utilities
type Validator struct{}

// NewValidator creates a new validator instance
func NewValidator() *Validator {
	return &Validator{}
}

// IsNonEmptyString checks if a string is not empty after trimming whitespace
func (v *Validator) IsNonEmptyString(s string) bool {
	return strings.TrimSpace(s) != ""
}

// IsValidStringLength checks if the trimmed string has between min and max characters.
// A max of 0 means unbounded.
func (v *Validator) IsValidStringLength(s string, min, max int) bool {
	length := utf8.RuneCountInString(strings.TrimSpace(s))
	if length < min {
		return false
	}
	return max <= 0 || length <= max
}

// IsWithinRuneCount is IsValidStringLength without trimming.
func (v *Validator) IsWithinRuneCount(s string, min, max int) bool {
	length := utf8.RuneCountInString(s)
	if length < min {
		return false
	}
	return max <= 0 || length <= max
}

// HasControlCharacters reports whether s contains newlines, tabs or other control runes
func (v *Validator) HasControlCharacters(s string) bool {
	return strings.IndexFunc(s, unicode.IsControl) >= 0
}

// IsValidTaskID checks if a task ID is valid (positive)
func (v *Validator) IsValidTaskID(id int64) bool {
	return id > 0
}

// TrimAndValidateString trims whitespace and returns the cleaned string
func (v *Validator) TrimAndValidateString(s string) string {
	return strings.TrimSpace(s)
}

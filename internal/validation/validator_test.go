package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidator_IsNonEmptyString(t *testing.T) {
	v := NewValidator()

	assert.True(t, v.IsNonEmptyString("task"))
	assert.True(t, v.IsNonEmptyString("  task  "))
	assert.False(t, v.IsNonEmptyString(""))
	assert.False(t, v.IsNonEmptyString(" \t\n "))
}

func TestValidator_IsValidStringLength(t *testing.T) {
	v := NewValidator()

	tests := []struct {
		name     string
		input    string
		min, max int
		expected bool
	}{
		{"within bounds", "hello", 1, 10, true},
		{"exactly max", "hello", 1, 5, true},
		{"over max", "hello!", 1, 5, false},
		{"under min", "", 1, 5, false},
		{"unbounded max", "a long description", 0, 0, true},
		{"counts runes not bytes", "ñañaña", 1, 6, true},
		{"trims before counting", "  abc  ", 1, 3, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, v.IsValidStringLength(tt.input, tt.min, tt.max))
		})
	}
}

func TestValidator_IsWithinRuneCount(t *testing.T) {
	v := NewValidator()

	assert.True(t, v.IsWithinRuneCount("abc", 0, 3))
	assert.True(t, v.IsWithinRuneCount("ñañ", 0, 3))
	assert.False(t, v.IsWithinRuneCount("abc  ", 0, 3), "surrounding whitespace is counted")
	assert.False(t, v.IsWithinRuneCount("", 1, 3))
	assert.True(t, v.IsWithinRuneCount("   ", 0, 0))
}

func TestValidator_HasControlCharacters(t *testing.T) {
	v := NewValidator()

	assert.False(t, v.HasControlCharacters("Buy milk (2%)!"))
	assert.True(t, v.HasControlCharacters("line\nbreak"))
	assert.True(t, v.HasControlCharacters("tab\there"))
}

func TestValidator_IsValidTaskID(t *testing.T) {
	v := NewValidator()

	assert.True(t, v.IsValidTaskID(1))
	assert.False(t, v.IsValidTaskID(0))
	assert.False(t, v.IsValidTaskID(-3))
}

func TestValidator_TrimAndValidateString(t *testing.T) {
	assert.Equal(t, "task", NewValidator().TrimAndValidateString("  task \n"))
}

package validation

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTaskValidator_ValidateTitle(t *testing.T) {
	validator := NewTaskValidator()

	tests := []struct {
		name        string
		input       string
		expectError bool
		errorType   ValidationErrorType
	}{
		{"Valid title", "Task 1", false, ""},
		{"Empty title", "", true, ErrorTypeRequired},
		{"Whitespace only", "   ", true, ErrorTypeRequired},
		{"Too long title", strings.Repeat("a", 201), true, ErrorTypeInvalidLength},
		{"Valid long title", strings.Repeat("a", 200), false, ""},
		{"Control characters", "Task\nTwo", true, ErrorTypeInvalidCharacter},
		{"Punctuation and symbols", "Pay invoice #42 @ 5% off!", false, ""},
		{"Unicode", "Zadanie: zrób zakupy", false, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validator.ValidateTitle(tt.input)

			if !tt.expectError {
				assert.NoError(t, err)
				return
			}

			require.Error(t, err)
			validationErr, ok := err.(*ValidationError)
			require.True(t, ok, "expected *ValidationError, got %T", err)
			require.NotEmpty(t, validationErr.Errors)
			assert.Equal(t, tt.errorType, validationErr.Errors[0].Type)
			assert.Equal(t, "title", validationErr.Errors[0].Field)
		})
	}
}

func TestTaskValidator_ValidateDescription(t *testing.T) {
	validator := NewTaskValidatorWithLimits(0, 10)

	assert.NoError(t, validator.ValidateDescription(""))
	assert.NoError(t, validator.ValidateDescription("0123456789"))

	err := validator.ValidateDescription("0123456789x")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "description must be at most 10 characters long")

	err = validator.ValidateDescription("0123456789   ")
	require.Error(t, err, "trailing whitespace is stored and therefore counted")
}

func TestTaskValidator_ValidateDescription_DefaultLimit(t *testing.T) {
	validator := NewTaskValidator()

	atLimit := strings.Repeat("d", DefaultDescriptionMaxLength)
	assert.NoError(t, validator.ValidateDescription(atLimit))
	assert.Error(t, validator.ValidateDescription(atLimit+"  "))
	assert.Error(t, validator.ValidateDescription("\n"+atLimit))
}

func TestTaskValidator_ValidateTaskForCreation(t *testing.T) {
	validator := NewTaskValidatorWithLimits(5, 5)

	assert.NoError(t, validator.ValidateTaskForCreation("ok", ""))

	err := validator.ValidateTaskForCreation("too long", "also too long")
	require.Error(t, err)
	validationErr := err.(*ValidationError)
	assert.Len(t, validationErr.Errors, 2)
	assert.Len(t, validationErr.GetFieldErrors("title"), 1)
	assert.Len(t, validationErr.GetFieldErrors("description"), 1)
}

func TestTaskValidator_ValidateTaskID(t *testing.T) {
	validator := NewTaskValidator()

	assert.NoError(t, validator.ValidateTaskID(1))

	err := validator.ValidateTaskID(0)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "id has invalid value: must be a positive integer")
}

func TestTaskValidator_GetValidTitle(t *testing.T) {
	validator := NewTaskValidator()

	title, err := validator.GetValidTitle("  Write tests  ")
	require.NoError(t, err)
	assert.Equal(t, "Write tests", title)

	_, err = validator.GetValidTitle("")
	assert.Error(t, err)
}

func TestNewTaskValidatorWithLimits_Defaults(t *testing.T) {
	validator := NewTaskValidatorWithLimits(-1, 0)

	assert.Equal(t, DefaultTitleMaxLength, validator.titleMaxLength)
	assert.Equal(t, DefaultDescriptionMaxLength, validator.descriptionMaxLength)
}

func TestNewTaskValidatorWithLimits_TitleCappedAtColumnWidth(t *testing.T) {
	validator := NewTaskValidatorWithLimits(DefaultTitleMaxLength+100, 0)
	assert.Equal(t, DefaultTitleMaxLength, validator.titleMaxLength)

	err := validator.ValidateTitle(strings.Repeat("a", DefaultTitleMaxLength+1))
	require.Error(t, err)
	assert.NoError(t, validator.ValidateTitle(strings.Repeat("a", DefaultTitleMaxLength)))

	lowered := NewTaskValidatorWithLimits(50, 0)
	assert.Equal(t, 50, lowered.titleMaxLength)
}

package validation

const (
	DefaultTitleMaxLength       = 200
	DefaultDescriptionMaxLength = 10000
)

// TaskValidator provides validation for Task-related operations
type TaskValidator struct {
	validator            *Validator
	titleMaxLength       int
	descriptionMaxLength int
}

// NewTaskValidator creates a new task validator with the default limits
func NewTaskValidator() *TaskValidator {
	return NewTaskValidatorWithLimits(DefaultTitleMaxLength, DefaultDescriptionMaxLength)
}

// NewTaskValidatorWithLimits creates a task validator with configured length limits.
// Non-positive limits fall back to the defaults. The title limit can be lowered
// but never raised past DefaultTitleMaxLength, the width of the title column.
func NewTaskValidatorWithLimits(titleMax, descriptionMax int) *TaskValidator {
	if titleMax <= 0 || titleMax > DefaultTitleMaxLength {
		titleMax = DefaultTitleMaxLength
	}
	if descriptionMax <= 0 {
		descriptionMax = DefaultDescriptionMaxLength
	}
	return &TaskValidator{
		validator:            NewValidator(),
		titleMaxLength:       titleMax,
		descriptionMaxLength: descriptionMax,
	}
}

// ValidateTitle validates a task title for creation or update
func (tv *TaskValidator) ValidateTitle(title string) error {
	validationError := NewValidationError()

	trimmed := tv.validator.TrimAndValidateString(title)
	if !tv.validator.IsNonEmptyString(trimmed) {
		validationError.AddRequiredError("title")
		return validationError
	}

	if !tv.validator.IsValidStringLength(trimmed, 1, tv.titleMaxLength) {
		validationError.AddInvalidLengthError("title", trimmed, 1, tv.titleMaxLength)
	}

	if tv.validator.HasControlCharacters(trimmed) {
		validationError.AddInvalidCharacterError("title", trimmed)
	}

	if validationError.HasErrors() {
		return validationError
	}
	return nil
}

// ValidateDescription validates an optional task description
func (tv *TaskValidator) ValidateDescription(description string) error {
	// Descriptions are stored verbatim, so surrounding whitespace counts.
	if tv.validator.IsWithinRuneCount(description, 0, tv.descriptionMaxLength) {
		return nil
	}
	validationError := NewValidationError()
	validationError.AddInvalidLengthError("description", description, 0, tv.descriptionMaxLength)
	return validationError
}

// ValidateTaskForCreation validates every user-supplied field of a new task
func (tv *TaskValidator) ValidateTaskForCreation(title, description string) error {
	validationError := NewValidationError()

	if err := tv.ValidateTitle(title); err != nil {
		validationError.Merge(err)
	}
	if err := tv.ValidateDescription(description); err != nil {
		validationError.Merge(err)
	}

	if validationError.HasErrors() {
		return validationError
	}
	return nil
}

// ValidateTaskID validates a task ID
func (tv *TaskValidator) ValidateTaskID(id int64) error {
	if !tv.validator.IsValidTaskID(id) {
		validationError := NewValidationError()
		validationError.AddInvalidValueError("id", id, "must be a positive integer")
		return validationError
	}
	return nil
}

// GetValidTitle returns the trimmed title if it is valid
func (tv *TaskValidator) GetValidTitle(title string) (string, error) {
	if err := tv.ValidateTitle(title); err != nil {
		return "", err
	}
	return tv.validator.TrimAndValidateString(title), nil
}

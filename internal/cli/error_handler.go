package cli

import (
	"fmt"

	"task-tracker/internal/errors"
	"task-tracker/internal/logging"
	"task-tracker/internal/validation"
)

// Process exit codes
const (
	ExitOK       = 0
	ExitFailure  = 1
	ExitBadInput = 2
)

// ErrorHandler provides centralized error handling for command handlers
type ErrorHandler struct{}

// NewErrorHandler creates a new error handler
func NewErrorHandler() *ErrorHandler {
	return &ErrorHandler{}
}

// CommandError is returned by command handlers. Its message is safe to print;
// the cause stays reachable for ExitCode.
type CommandError struct {
	Operation string
	Message   string
	Cause     error
}

func (e *CommandError) Error() string {
	return fmt.Sprintf("failed to %s: %s", e.Operation, e.Message)
}

func (e *CommandError) Unwrap() error {
	return e.Cause
}

// Handle prefixes err with the failed operation, using the user-facing message for typed errors
func (eh *ErrorHandler) Handle(operation string, err error) error {
	if err == nil {
		return nil
	}

	logging.Debugf("%s failed: %v %s", operation, err, errors.LogFields(err))

	message := err.Error()
	if validationErr, ok := err.(*validation.ValidationError); ok {
		message = validationErr.GetUserFriendlyMessage()
	} else if errors.IsAppError(err) {
		message = errors.GetUserMessage(err)
	}

	return &CommandError{Operation: operation, Message: message, Cause: err}
}

// IsValidationError checks if an error is a validation or invalid input error
func (eh *ErrorHandler) IsValidationError(err error) bool {
	if validation.IsValidationError(err) {
		return true
	}
	return errors.IsErrorType(err, errors.ErrorTypeValidation) || errors.IsErrorType(err, errors.ErrorTypeInvalidInput)
}

// IsNotFoundError checks if an error is a not found error
func (eh *ErrorHandler) IsNotFoundError(err error) bool {
	return errors.IsErrorType(err, errors.ErrorTypeNotFound)
}

// ExitCode maps err onto the process exit status
func (eh *ErrorHandler) ExitCode(err error) int {
	switch {
	case err == nil:
		return ExitOK
	case eh.IsValidationError(err):
		return ExitBadInput
	default:
		return ExitFailure
	}
}

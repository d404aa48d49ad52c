package errors

import (
	"errors"
	"fmt"
	"net/http"
)

// NewValidationError creates a new validation error
func NewValidationError(message string, cause error) *AppError {
	return &AppError{
		Type:    ErrorTypeValidation,
		Message: message,
		Code:    "VALIDATION_FAILED",
		Cause:   cause,
	}
}

// NewNotFoundError creates a new not found error
func NewNotFoundError(resource string, identifier string) *AppError {
	return &AppError{
		Type:    ErrorTypeNotFound,
		Message: fmt.Sprintf("%s not found: %s", resource, identifier),
		Code:    "NOT_FOUND",
		Fields: map[string]interface{}{
			"resource":   resource,
			"identifier": identifier,
		},
	}
}

// NewDatabaseError creates a new database error
func NewDatabaseError(operation string, cause error) *AppError {
	return &AppError{
		Type:    ErrorTypeDatabase,
		Message: fmt.Sprintf("database operation failed: %s", operation),
		Code:    "DATABASE_ERROR",
		Cause:   cause,
		Fields: map[string]interface{}{
			"operation": operation,
		},
	}
}

// NewInvalidInputError creates a new invalid input error
func NewInvalidInputError(field string, value interface{}, reason string) *AppError {
	return &AppError{
		Type:    ErrorTypeInvalidInput,
		Message: fmt.Sprintf("invalid input for %s: %s", field, reason),
		Code:    "INVALID_INPUT",
		Fields: map[string]interface{}{
			"field":  field,
			"value":  value,
			"reason": reason,
		},
	}
}

// NewTimeoutError creates a new timeout error
func NewTimeoutError(operation string, timeout interface{}) *AppError {
	return &AppError{
		Type:    ErrorTypeTimeout,
		Message: fmt.Sprintf("operation timed out: %s", operation),
		Code:    "TIMEOUT",
		Fields: map[string]interface{}{
			"operation": operation,
			"timeout":   timeout,
		},
	}
}

// NewMethodNotAllowedError creates the error returned for an unsupported HTTP verb
func NewMethodNotAllowedError(method string, path string) *AppError {
	return &AppError{
		Type:    ErrorTypeMethodNotAllowed,
		Message: "method not allowed",
		Code:    "METHOD_NOT_ALLOWED",
		Fields: map[string]interface{}{
			"method": method,
			"path":   path,
		},
	}
}

// WrapError wraps an existing error with additional context
func WrapError(err error, errorType ErrorType, message string) *AppError {
	return &AppError{
		Type:    errorType,
		Message: message,
		Code:    errorType.String(),
		Cause:   err,
	}
}

// IsAppError checks if the error is an AppError
func IsAppError(err error) bool {
	var appErr *AppError
	return errors.As(err, &appErr)
}

// AsAppError converts an error to an AppError if possible
func AsAppError(err error) (*AppError, bool) {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}

// IsErrorType checks if the error is of the specified type
func IsErrorType(err error, errorType ErrorType) bool {
	if appErr, ok := AsAppError(err); ok {
		return appErr.IsType(errorType)
	}
	return false
}

// GetUserMessage returns a message that is safe to show to API and CLI users
func GetUserMessage(err error) string {
	appErr, ok := AsAppError(err)
	if !ok {
		return err.Error()
	}
	if appErr.Type.IsClientError() {
		return appErr.Message
	}
	switch appErr.Type {
	case ErrorTypeDatabase:
		return "A database error occurred. Please try again."
	case ErrorTypeTimeout:
		return "The operation timed out. Please try again."
	default:
		return "An unexpected error occurred. Please try again."
	}
}

// GetErrorCode returns the error code for the error
func GetErrorCode(err error) string {
	if appErr, ok := AsAppError(err); ok {
		return appErr.Code
	}
	return "UNKNOWN_ERROR"
}

// ShouldLogError reports whether err points at a server-side problem.
// Client errors are answered, not logged.
func ShouldLogError(err error) bool {
	if appErr, ok := AsAppError(err); ok {
		return !appErr.Type.IsClientError()
	}
	return true
}

// HTTPStatus maps an error onto the response status used by the HTTP layer.
// Errors without a type are reported as 500.
func HTTPStatus(err error) int {
	if appErr, ok := AsAppError(err); ok {
		return appErr.Type.Status()
	}
	return http.StatusInternalServerError
}

// LogFields returns the diagnostic fields of the AppError in err's chain.
func LogFields(err error) string {
	if appErr, ok := AsAppError(err); ok {
		return appErr.LogFields()
	}
	return ""
}

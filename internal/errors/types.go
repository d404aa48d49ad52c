package errors

import (
	"fmt"
	"net/http"
	"sort"
	"strings"
)

// ErrorType classifies an AppError. The type decides the HTTP status and
// whether the message is addressed to the caller or to the operator.
type ErrorType int

const (
	ErrorTypeValidation ErrorType = iota
	ErrorTypeNotFound
	ErrorTypeDatabase
	ErrorTypeInvalidInput
	ErrorTypeTimeout
	ErrorTypeMethodNotAllowed
)

type typeInfo struct {
	name   string
	status int
	client bool
}

var errorTypes = map[ErrorType]typeInfo{
	ErrorTypeValidation:       {name: "validation", status: http.StatusBadRequest, client: true},
	ErrorTypeNotFound:         {name: "not_found", status: http.StatusNotFound, client: true},
	ErrorTypeDatabase:         {name: "database", status: http.StatusInternalServerError},
	ErrorTypeInvalidInput:     {name: "invalid_input", status: http.StatusBadRequest, client: true},
	ErrorTypeTimeout:          {name: "timeout", status: http.StatusGatewayTimeout},
	ErrorTypeMethodNotAllowed: {name: "method_not_allowed", status: http.StatusMethodNotAllowed, client: true},
}

func (et ErrorType) String() string {
	if info, ok := errorTypes[et]; ok {
		return info.name
	}
	return "unknown"
}

// Status is the HTTP status reported for this type. Unknown types map to 500.
func (et ErrorType) Status() int {
	if info, ok := errorTypes[et]; ok {
		return info.status
	}
	return http.StatusInternalServerError
}

// IsClientError reports whether errors of this type were caused by the
// request rather than by the server or its store.
func (et ErrorType) IsClientError() bool {
	return errorTypes[et].client
}

// AppError is the structured error carried between the store, services and transports.
// Fields hold diagnostics for logs and are never rendered to clients.
type AppError struct {
	Type    ErrorType
	Message string
	Code    string
	Cause   error
	Fields  map[string]interface{}
}

func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (caused by: %v)", e.Type, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Type, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Cause
}

// Is reports whether target is an AppError with the same type and code.
func (e *AppError) Is(target error) bool {
	if appErr, ok := target.(*AppError); ok {
		return e.Type == appErr.Type && e.Code == appErr.Code
	}
	return false
}

func (e *AppError) IsType(errorType ErrorType) bool {
	return e.Type == errorType
}

// With records a diagnostic field and returns e for chaining.
func (e *AppError) With(key string, value interface{}) *AppError {
	if e.Fields == nil {
		e.Fields = make(map[string]interface{})
	}
	e.Fields[key] = value
	return e
}

// Field returns the diagnostic field stored under key.
func (e *AppError) Field(key string) (interface{}, bool) {
	value, ok := e.Fields[key]
	return value, ok
}

// LogFields renders the diagnostic fields as space separated key=value pairs
// in key order, or "" when there are none.
func (e *AppError) LogFields() string {
	if len(e.Fields) == 0 {
		return ""
	}

	keys := make([]string, 0, len(e.Fields))
	for key := range e.Fields {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	pairs := make([]string, 0, len(keys))
	for _, key := range keys {
		value, _ := e.Field(key)
		pairs = append(pairs, fmt.Sprintf("%s=%v", key, value))
	}
	return strings.Join(pairs, " ")
}

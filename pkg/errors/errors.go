package errors

import (
	"errors"
	"fmt"
)

// ErrorCode represents a unique error code for stable testing
type ErrorCode string

// Error codes for different error categories
const (
	// General errors
	ErrUnknown      ErrorCode = "UNKNOWN"
	ErrInternal     ErrorCode = "INTERNAL"
	ErrInvalidInput ErrorCode = "INVALID_INPUT"
	ErrNotFound     ErrorCode = "NOT_FOUND"

	// Pattern errors
	ErrPatternInvalid ErrorCode = "PATTERN_INVALID"
	ErrRegexCompile   ErrorCode = "REGEX_COMPILE"

	// Rule errors
	ErrRuleInvalid ErrorCode = "RULE_INVALID"
	ErrRuleParse   ErrorCode = "RULE_PARSE"

	// Coordinate errors
	ErrCoordinateParse ErrorCode = "COORDINATE_PARSE"
)

// DepgraphError represents a structured error with code and details
type DepgraphError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *DepgraphError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *DepgraphError) Unwrap() error {
	return e.Wrapped
}

// Is implements errors.Is interface
func (e *DepgraphError) Is(target error) bool {
	var targetErr *DepgraphError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new DepgraphError with the given code and message
func New(code ErrorCode, message string) *DepgraphError {
	return &DepgraphError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new DepgraphError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *DepgraphError {
	return &DepgraphError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
	}
}

// Wrap wraps an existing error with a DepgraphError
func Wrap(err error, code ErrorCode, message string) *DepgraphError {
	if err == nil {
		return nil
	}
	return &DepgraphError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *DepgraphError {
	if err == nil {
		return nil
	}
	return &DepgraphError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// WithDetail adds a detail to the error
func (e *DepgraphError) WithDetail(key string, value interface{}) *DepgraphError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// IsErrorCode checks if an error has a specific error code
func IsErrorCode(err error, code ErrorCode) bool {
	var depErr *DepgraphError
	if errors.As(err, &depErr) {
		return depErr.Code == code
	}
	return false
}

// GetErrorCode returns the error code from an error, or ErrUnknown if not a DepgraphError
func GetErrorCode(err error) ErrorCode {
	var depErr *DepgraphError
	if errors.As(err, &depErr) {
		return depErr.Code
	}
	return ErrUnknown
}

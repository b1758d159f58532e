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
	ErrUsage        ErrorCode = "USAGE"
	ErrInvalidInput ErrorCode = "INVALID_INPUT"

	// Path list errors
	ErrInvalidPath ErrorCode = "INVALID_PATH"
	ErrNotMember   ErrorCode = "NOT_MEMBER"

	// Configuration errors
	ErrConfigLoad  ErrorCode = "CONFIG_LOAD"
	ErrConfigParse ErrorCode = "CONFIG_PARSE"
	ErrConfigValid ErrorCode = "CONFIG_INVALID"

	// FileSystem errors
	ErrFileWrite ErrorCode = "FILE_WRITE"
	ErrDirCreate ErrorCode = "DIR_CREATE"
)

// PathmanError represents a structured error with code and details
type PathmanError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *PathmanError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *PathmanError) Unwrap() error {
	return e.Wrapped
}

// Is implements errors.Is interface
func (e *PathmanError) Is(target error) bool {
	var targetErr *PathmanError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new PathmanError with the given code and message
func New(code ErrorCode, message string) *PathmanError {
	return &PathmanError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new PathmanError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *PathmanError {
	return &PathmanError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
	}
}

// Wrap wraps an existing error with a PathmanError
func Wrap(err error, code ErrorCode, message string) *PathmanError {
	if err == nil {
		return nil
	}
	return &PathmanError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *PathmanError {
	if err == nil {
		return nil
	}
	return &PathmanError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// WithDetail adds a detail to the error
func (e *PathmanError) WithDetail(key string, value interface{}) *PathmanError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// IsErrorCode checks if an error has a specific error code
func IsErrorCode(err error, code ErrorCode) bool {
	var pmErr *PathmanError
	if errors.As(err, &pmErr) {
		return pmErr.Code == code
	}
	return false
}

// GetErrorCode returns the error code from an error, or ErrUnknown if not a PathmanError
func GetErrorCode(err error) ErrorCode {
	var pmErr *PathmanError
	if errors.As(err, &pmErr) {
		return pmErr.Code
	}
	return ErrUnknown
}

// GetErrorDetails returns the details from an error, or nil if not a PathmanError
func GetErrorDetails(err error) map[string]interface{} {
	var pmErr *PathmanError
	if errors.As(err, &pmErr) {
		return pmErr.Details
	}
	return nil
}

// UserMessage returns the message meant for the terminal: the outermost
// PathmanError message followed by its wrapped causes, without codes.
func UserMessage(err error) string {
	if err == nil {
		return ""
	}
	var pmErr *PathmanError
	if !errors.As(err, &pmErr) {
		return err.Error()
	}
	if pmErr.Wrapped == nil {
		return pmErr.Message
	}
	return pmErr.Message + ": " + UserMessage(pmErr.Wrapped)
}

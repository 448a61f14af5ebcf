package errors

import (
	"fmt"
)

// AppError represents a structured application error
type AppError struct {
	Code    string
	Message string
	Cause   error
}

func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Cause
}

// New creates a new AppError
func New(code, message string) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
	}
}

// Wrap wraps an error with additional context
func Wrap(err error, message string) error {
	if err == nil {
		return nil
	}
	if appErr, ok := err.(*AppError); ok {
		return &AppError{
			Code:    appErr.Code,
			Message: message,
			Cause:   appErr,
		}
	}
	return &AppError{
		Code:    CodeInternalError,
		Message: message,
		Cause:   err,
	}
}

// Wrapf wraps an error with formatted additional context
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return Wrap(err, fmt.Sprintf(format, args...))
}

// GetCode returns the error code if it's an AppError, otherwise returns "UNKNOWN"
func GetCode(err error) string {
	if appErr, ok := err.(*AppError); ok {
		return appErr.Code
	}
	return "UNKNOWN"
}

// Predefined error codes, one per pipeline failure class
const (
	CodeConfigInvalid     = "CONFIG_INVALID"
	CodeTransportError    = "TRANSPORT_ERROR"
	CodeMalformedResponse = "MALFORMED_RESPONSE"
	CodeDataQuality       = "DATA_QUALITY"
	CodeInvalidInput      = "INVALID_INPUT"
	CodeIncompleteData    = "INCOMPLETE_DATA"
	CodeDatabaseError     = "DATABASE_ERROR"
	CodeInternalError     = "INTERNAL_ERROR"
)

// Common error constructors
func ConfigInvalid(message string) *AppError {
	return New(CodeConfigInvalid, message)
}

func TransportError(source string, cause error) *AppError {
	return &AppError{
		Code:    CodeTransportError,
		Message: fmt.Sprintf("%s request failed", source),
		Cause:   cause,
	}
}

func MalformedResponse(source string, cause error) *AppError {
	return &AppError{
		Code:    CodeMalformedResponse,
		Message: fmt.Sprintf("%s returned an unexpected response shape", source),
		Cause:   cause,
	}
}

func DataQuality(message string) *AppError {
	return New(CodeDataQuality, message)
}

func InvalidInput(message string) *AppError {
	return New(CodeInvalidInput, message)
}

func IncompleteData(message string) *AppError {
	return New(CodeIncompleteData, message)
}

func DatabaseError(message string) *AppError {
	return New(CodeDatabaseError, message)
}

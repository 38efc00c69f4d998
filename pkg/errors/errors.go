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
	ErrCancelled    ErrorCode = "CANCELLED"
	ErrInterrupted  ErrorCode = "INTERRUPTED"

	// Partition errors
	ErrInvalidPartitionSyntax ErrorCode = "INVALID_PARTITION_SYNTAX"
	ErrFileNotFound           ErrorCode = "FILE_NOT_FOUND"
	ErrNotDecodable           ErrorCode = "NOT_DECODABLE"
	ErrLineOutOfRange         ErrorCode = "LINE_OUT_OF_RANGE"
	ErrColumnOutOfRange       ErrorCode = "COLUMN_OUT_OF_RANGE"

	// Store errors
	ErrCorruptStore       ErrorCode = "CORRUPT_STORE"
	ErrInvalidDescription ErrorCode = "INVALID_DESCRIPTION"
	ErrAmbiguousID        ErrorCode = "AMBIGUOUS_ID"
	ErrRecordNotFound     ErrorCode = "RECORD_NOT_FOUND"
	ErrStoreNotFound      ErrorCode = "STORE_NOT_FOUND"
	ErrStoreExists        ErrorCode = "STORE_EXISTS"
	ErrIO                 ErrorCode = "IO_ERROR"

	// Configuration errors
	ErrConfigLoad  ErrorCode = "CONFIG_LOAD"
	ErrConfigValid ErrorCode = "CONFIG_INVALID"

	// Verification
	ErrVerificationFailed ErrorCode = "VERIFICATION_FAILED"
)

// DoksError represents a structured error with code and details
type DoksError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *DoksError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *DoksError) Unwrap() error {
	return e.Wrapped
}

// Is matches any DoksError carrying the same code
func (e *DoksError) Is(target error) bool {
	var targetErr *DoksError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

func newError(code ErrorCode, message string, wrapped error) *DoksError {
	return &DoksError{Code: code, Message: message, Details: map[string]interface{}{}, Wrapped: wrapped}
}

// New creates a DoksError with the given code and message
func New(code ErrorCode, message string) *DoksError {
	return newError(code, message, nil)
}

// Newf is New with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *DoksError {
	return newError(code, fmt.Sprintf(format, args...), nil)
}

// Wrap attaches a code and message to err. A nil err stays nil.
func Wrap(err error, code ErrorCode, message string) *DoksError {
	if err == nil {
		return nil
	}
	return newError(code, message, err)
}

// Wrapf is Wrap with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *DoksError {
	if err == nil {
		return nil
	}
	return newError(code, fmt.Sprintf(format, args...), err)
}

// WithDetail adds a detail to the error
func (e *DoksError) WithDetail(key string, value interface{}) *DoksError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// WithDetails adds multiple details to the error
func (e *DoksError) WithDetails(details map[string]interface{}) *DoksError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	for k, v := range details {
		e.Details[k] = v
	}
	return e
}

// IsErrorCode checks if an error has a specific error code
func IsErrorCode(err error, code ErrorCode) bool {
	var doksErr *DoksError
	if errors.As(err, &doksErr) {
		return doksErr.Code == code
	}
	return false
}

// GetErrorCode returns the error code from an error, or ErrUnknown if not a DoksError
func GetErrorCode(err error) ErrorCode {
	var doksErr *DoksError
	if errors.As(err, &doksErr) {
		return doksErr.Code
	}
	return ErrUnknown
}

// GetErrorDetails returns the details from an error, or nil if not a DoksError
func GetErrorDetails(err error) map[string]interface{} {
	var doksErr *DoksError
	if errors.As(err, &doksErr) {
		return doksErr.Details
	}
	return nil
}

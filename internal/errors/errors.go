package errors

import (
	"errors"
	"fmt"
)

// Code represents an error code for categorizing errors
type Code string

const (
	// CodeUnknown indicates an unknown error
	CodeUnknown Code = "unknown"

	// CodeInvalidArgument indicates client specified an invalid argument
	CodeInvalidArgument Code = "invalid_argument"

	// CodeNotFound indicates a requested resource was not found
	CodeNotFound Code = "not_found"

	// CodeAlreadyExists indicates an attempt to create a resource that already exists
	CodeAlreadyExists Code = "already_exists"

	// CodeInternal indicates internal system error
	CodeInternal Code = "internal"

	// CodeInvalidLevel indicates a level outside the valid integer range
	CodeInvalidLevel Code = "invalid_level"

	// CodeLevelCeilingExceeded indicates a level beyond the hard level cap
	CodeLevelCeilingExceeded Code = "level_ceiling_exceeded"

	// CodeNegativePoints indicates a negative point allocation
	CodeNegativePoints Code = "negative_points"

	// CodeAttributeCeilingExceeded indicates an allocation past the per-attribute cap
	CodeAttributeCeilingExceeded Code = "attribute_ceiling_exceeded"

	// CodeNodeNotFound indicates a skill tree node id absent from the tree
	CodeNodeNotFound Code = "node_not_found"

	// CodePurchaseNotAllowed indicates a skill node purchase that fails its gate checks
	CodePurchaseNotAllowed Code = "purchase_not_allowed"

	// CodeNotAvailable indicates a specialization the character cannot activate
	CodeNotAvailable Code = "not_available"

	// CodeInsufficientPoints indicates an empty progression point pool
	CodeInsufficientPoints Code = "insufficient_points"
)

// Error represents an application error with code and metadata
type Error struct {
	// Code is the error code
	Code Code

	// Message is the error message
	Message string

	// Cause is the wrapped error
	Cause error

	// Meta contains additional context
	Meta map[string]any
}

// Error returns the error message
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

// Unwrap returns the wrapped error
func (e *Error) Unwrap() error {
	return e.Cause
}

// WithMeta adds metadata to the error (builder pattern)
func (e *Error) WithMeta(key string, value any) *Error {
	if e.Meta == nil {
		e.Meta = make(map[string]any)
	}
	e.Meta[key] = value
	return e
}

// New creates a new error with the given code and message
func New(code Code, message string) *Error {
	return &Error{
		Code:    code,
		Message: message,
	}
}

// Newf creates a new error with formatted message
func Newf(code Code, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}

// Wrap wraps an error with additional context
func Wrap(err error, message string) *Error {
	if err == nil {
		return nil
	}

	// If it's already our error type, preserve the code
	var appErr *Error
	if errors.As(err, &appErr) {
		return &Error{
			Code:    appErr.Code,
			Message: message,
			Cause:   err,
			Meta:    copyMeta(appErr.Meta),
		}
	}

	return &Error{
		Code:    CodeUnknown,
		Message: message,
		Cause:   err,
	}
}

// Wrapf wraps an error with formatted message
func Wrapf(err error, format string, args ...any) *Error {
	if err == nil {
		return nil
	}
	return Wrap(err, fmt.Sprintf(format, args...))
}

// Helper constructors for common error types

// NotFound creates a not found error
func NotFound(message string) *Error {
	return New(CodeNotFound, message)
}

// NotFoundf creates a formatted not found error
func NotFoundf(format string, args ...any) *Error {
	return Newf(CodeNotFound, format, args...)
}

// InvalidArgument creates an invalid argument error
func InvalidArgument(message string) *Error {
	return New(CodeInvalidArgument, message)
}

// InvalidArgumentf creates a formatted invalid argument error
func InvalidArgumentf(format string, args ...any) *Error {
	return Newf(CodeInvalidArgument, format, args...)
}

// AlreadyExists creates an already exists error
func AlreadyExists(message string) *Error {
	return New(CodeAlreadyExists, message)
}

// AlreadyExistsf creates a formatted already exists error
func AlreadyExistsf(format string, args ...any) *Error {
	return Newf(CodeAlreadyExists, format, args...)
}

// Internal creates an internal error
func Internal(message string) *Error {
	return New(CodeInternal, message)
}

// InvalidLevelf creates a formatted invalid level error
func InvalidLevelf(format string, args ...any) *Error {
	return Newf(CodeInvalidLevel, format, args...)
}

// LevelCeilingExceededf creates a formatted level ceiling error
func LevelCeilingExceededf(format string, args ...any) *Error {
	return Newf(CodeLevelCeilingExceeded, format, args...)
}

// NegativePointsf creates a formatted negative points error
func NegativePointsf(format string, args ...any) *Error {
	return Newf(CodeNegativePoints, format, args...)
}

// AttributeCeilingExceededf creates a formatted attribute ceiling error
func AttributeCeilingExceededf(format string, args ...any) *Error {
	return Newf(CodeAttributeCeilingExceeded, format, args...)
}

// NodeNotFoundf creates a formatted skill node lookup error
func NodeNotFoundf(format string, args ...any) *Error {
	return Newf(CodeNodeNotFound, format, args...)
}

// PurchaseNotAllowedf creates a formatted purchase gate error
func PurchaseNotAllowedf(format string, args ...any) *Error {
	return Newf(CodePurchaseNotAllowed, format, args...)
}

// NotAvailablef creates a formatted availability error
func NotAvailablef(format string, args ...any) *Error {
	return Newf(CodeNotAvailable, format, args...)
}

// InsufficientPointsf creates a formatted point pool error
func InsufficientPointsf(format string, args ...any) *Error {
	return Newf(CodeInsufficientPoints, format, args...)
}

// Error checking functions

// Is checks if the error is of a specific code
func Is(err error, code Code) bool {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Code == code
	}
	return false
}

// IsNotFound checks if the error is a not found error
func IsNotFound(err error) bool {
	return Is(err, CodeNotFound)
}

// IsInvalidArgument checks if the error is an invalid argument error
func IsInvalidArgument(err error) bool {
	return Is(err, CodeInvalidArgument)
}

// GetCode returns the error code
func GetCode(err error) Code {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Code
	}
	return CodeUnknown
}

// GetMeta returns the error metadata
func GetMeta(err error) map[string]any {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Meta
	}
	return nil
}

// copyMeta creates a copy of the metadata map
func copyMeta(meta map[string]any) map[string]any {
	if meta == nil {
		return nil
	}

	copied := make(map[string]any, len(meta))
	for k, v := range meta {
		copied[k] = v
	}
	return copied
}

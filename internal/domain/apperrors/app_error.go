package apperrors

import "errors"

// Kind classifies an AppError into the outcomes the domain distinguishes.
type Kind int

const (
	KindValidation Kind = iota + 1
	KindConflict
	KindNotFound
	KindStorage
)

// AppError is the error type returned by use cases and gateways. The Cause, if
// any, carries the backend fault for logging; it is never exposed to clients.
type AppError struct {
	Kind    Kind
	Message string
	Cause   error
}

func (e *AppError) Error() string {
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Cause
}

// Validation wraps a malformed-input failure.
func Validation(message string) *AppError {
	return &AppError{Kind: KindValidation, Message: message}
}

// Conflict wraps an identifier collision on write.
func Conflict(message string) *AppError {
	return &AppError{Kind: KindConflict, Message: message}
}

// NotFound wraps a missing-mapping lookup outcome.
func NotFound(message string) *AppError {
	return &AppError{Kind: KindNotFound, Message: message}
}

// Storage wraps a backend or network fault.
func Storage(message string, cause error) *AppError {
	return &AppError{Kind: KindStorage, Message: message, Cause: cause}
}

// IsKind reports whether err is an AppError of the given kind.
func IsKind(err error, kind Kind) bool {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Kind == kind
	}
	return false
}

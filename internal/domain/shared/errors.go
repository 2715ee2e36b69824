package shared

import "errors"

// DomainError represents a domain-level error
type DomainError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	cause   error
}

// Error implements the error interface
func (e *DomainError) Error() string {
	if e.cause != nil {
		return e.Message + ": " + e.cause.Error()
	}
	return e.Message
}

// Unwrap exposes the underlying driver or transport error, if any
func (e *DomainError) Unwrap() error {
	return e.cause
}

// Is matches any DomainError carrying the same code, so wrapped or
// re-messaged errors still satisfy errors.Is(err, ErrNotFound).
func (e *DomainError) Is(target error) bool {
	var t *DomainError
	if !errors.As(target, &t) {
		return false
	}
	return t.Code == e.Code
}

// NewDomainError creates a new domain error
func NewDomainError(code, message string) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
	}
}

// WrapDomainError creates a domain error that keeps cause in its chain
func WrapDomainError(code, message string, cause error) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
		cause:   cause,
	}
}

// Error codes
const (
	CodeInvalidInput        = "INVALID_INPUT"
	CodeNotFound            = "NOT_FOUND"
	CodeAmountExceeded      = "AMOUNT_EXCEEDED"
	CodeInconsistent        = "INCONSISTENT"
	CodeStorageFailure      = "STORAGE_FAILURE"
	CodeConcurrencyConflict = "CONCURRENCY_CONFLICT"
	CodeInvalidState        = "INVALID_STATE"
)

// Common domain errors
var (
	ErrNotFound            = NewDomainError(CodeNotFound, "Resource not found")
	ErrInvalidInput        = NewDomainError(CodeInvalidInput, "Invalid input provided")
	ErrAmountExceeded      = NewDomainError(CodeAmountExceeded, "Amount exceeds the remaining payable amount")
	ErrInconsistent        = NewDomainError(CodeInconsistent, "Ledger state is inconsistent")
	ErrStorageFailure      = NewDomainError(CodeStorageFailure, "Record store operation failed")
	ErrConcurrencyConflict = NewDomainError(CodeConcurrencyConflict, "Resource was modified by another process")
	ErrInvalidState        = NewDomainError(CodeInvalidState, "Operation not allowed in current state")
)

// NewStorageError wraps a record store failure
func NewStorageError(cause error) *DomainError {
	return WrapDomainError(CodeStorageFailure, "Record store operation failed", cause)
}

// NewInconsistentError reports a partially applied multi-record mutation
func NewInconsistentError(message string, cause error) *DomainError {
	return WrapDomainError(CodeInconsistent, message, cause)
}

// ErrorCode extracts the domain code from err, or "" when err is not a DomainError
func ErrorCode(err error) string {
	var de *DomainError
	if errors.As(err, &de) {
		return de.Code
	}
	return ""
}

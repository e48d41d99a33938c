package errors

import (
	"errors"
	"fmt"
	"net/http"
)

// Kind classifies an application error.
type Kind int

const (
	// KindInternal is anything unclassified.
	KindInternal Kind = iota
	// KindValidation is malformed input caught at the boundary.
	KindValidation
	// KindConflict is a duplicate-resource failure.
	KindConflict
	// KindNotFound is a missing account or product.
	KindNotFound
	// KindAuthentication is a bad-credentials failure.
	KindAuthentication
	// KindPersistence is a database fault.
	KindPersistence
)

// Error is the application error type. It carries an HTTP status, a
// human-readable message and, for unexpected faults, the name of the
// failing operation.
type Error struct {
	Kind    Kind
	Status  int
	Message string
	Op      string
	Err     error
}

func (e *Error) Error() string {
	if e.Op != "" {
		return fmt.Sprintf("%s: %s", e.Op, e.Message)
	}
	return e.Message
}

// Unwrap exposes the underlying cause.
func (e *Error) Unwrap() error {
	return e.Err
}

// Validation builds a malformed-input error.
func Validation(message string) *Error {
	return &Error{Kind: KindValidation, Status: http.StatusBadRequest, Message: message}
}

// Conflict builds a duplicate-resource error. The upstream API contract
// reports conflicts as 400, not 409.
func Conflict(message string) *Error {
	return &Error{Kind: KindConflict, Status: http.StatusBadRequest, Message: message}
}

// NotFound builds a missing-resource error.
func NotFound(message string) *Error {
	return &Error{Kind: KindNotFound, Status: http.StatusNotFound, Message: message}
}

// Authentication builds a bad-credentials error.
func Authentication(message string) *Error {
	return &Error{Kind: KindAuthentication, Status: http.StatusBadRequest, Message: message}
}

// Persistence wraps a database fault with the failing operation's name.
func Persistence(op string, err error) *Error {
	return &Error{
		Kind:    KindPersistence,
		Status:  http.StatusInternalServerError,
		Message: "database error",
		Op:      op,
		Err:     err,
	}
}

// Internal wraps an unclassified fault with the failing operation's name.
// Already-classified errors pass through so the boundary keeps their status.
func Internal(op string, err error) error {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr
	}
	return &Error{
		Kind:    KindInternal,
		Status:  http.StatusInternalServerError,
		Message: fmt.Sprintf("internal server error @ %s", op),
		Op:      op,
		Err:     err,
	}
}

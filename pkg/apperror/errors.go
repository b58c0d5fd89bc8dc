package apperror

import (
	"errors"
	"net/http"
)

// Kind classifies application errors so callers can branch without
// string matching.
type Kind string

const (
	KindInvalidLineItem       Kind = "invalid_line_item"
	KindMissingBillIdentifier Kind = "missing_bill_identifier"
	KindRenderFailure         Kind = "render_failure"
)

// AppError represents an application error with an error kind and an
// HTTP status code for the serve mode.
type AppError struct {
	Kind    Kind   `json:"kind,omitempty"`
	Code    int    `json:"code"`
	Message string `json:"message"`
	Err     error  `json:"-"`
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// Common errors
var (
	ErrBadRequest     = &AppError{Code: http.StatusBadRequest, Message: "Bad request"}
	ErrInternalServer = &AppError{Code: http.StatusInternalServerError, Message: "Internal server error"}
)

// NewAppError creates a new application error
func NewAppError(code int, message string) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
	}
}

// NewInvalidLineItem creates an error for a malformed line item
// (negative or non-integer quantity, negative unit price).
func NewInvalidLineItem(message string) *AppError {
	return &AppError{
		Kind:    KindInvalidLineItem,
		Code:    http.StatusUnprocessableEntity,
		Message: message,
	}
}

// NewMissingBillIdentifier creates an error for a record with no
// derivable bill identifier.
func NewMissingBillIdentifier(message string) *AppError {
	return &AppError{
		Kind:    KindMissingBillIdentifier,
		Code:    http.StatusUnprocessableEntity,
		Message: message,
	}
}

// NewRenderFailure wraps a drawing/output error from the layout engine.
func NewRenderFailure(err error) *AppError {
	return &AppError{
		Kind:    KindRenderFailure,
		Code:    http.StatusInternalServerError,
		Message: "Failed to render receipt",
		Err:     err,
	}
}

// IsKind reports whether err is an AppError of the given kind.
func IsKind(err error, kind Kind) bool {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Kind == kind
	}
	return false
}

// IsAppError checks if an error is an AppError
func IsAppError(err error) bool {
	var appErr *AppError
	return errors.As(err, &appErr)
}

// GetAppError converts an error to AppError if possible
func GetAppError(err error) *AppError {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	return &AppError{
		Code:    http.StatusInternalServerError,
		Message: err.Error(),
	}
}

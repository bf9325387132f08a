// Package domainerrors defines the service-wide error taxonomy. Domain code
// returns coded errors; the transport layer translates codes to HTTP statuses
// through ToHTTPStatus so handlers never hardcode status values.
package domainerrors

import (
	"errors"
	"fmt"
	"net/http"
)

// Code is a machine-readable error category, stable across releases.
type Code string

const (
	CodeBadRequest  Code = "bad_request"
	CodeValidation  Code = "validation_error"
	CodeRateLimited Code = "rate_limited"
	CodeInternal    Code = "internal_error"
)

// DomainError carries a code plus a human-readable description. The
// description is safe to return to clients for all codes except CodeInternal.
type DomainError struct {
	Code    Code
	Message string
	cause   error
}

// New constructs a coded error with no underlying cause.
func New(code Code, message string) *DomainError {
	return &DomainError{Code: code, Message: message}
}

// Newf constructs a coded error with a formatted description.
func Newf(code Code, format string, args ...any) *DomainError {
	return &DomainError{Code: code, Message: fmt.Sprintf(format, args...)}
}

// Wrap attaches a code and description to an underlying cause, preserving it
// for errors.Is/As chains.
func Wrap(code Code, message string, cause error) *DomainError {
	return &DomainError{Code: code, Message: message, cause: cause}
}

func (e *DomainError) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *DomainError) Unwrap() error {
	return e.cause
}

// CodeOf extracts the code from an error chain, defaulting to CodeInternal
// for errors that carry no code.
func CodeOf(err error) Code {
	var domainErr *DomainError
	if errors.As(err, &domainErr) {
		return domainErr.Code
	}
	return CodeInternal
}

// ToHTTPStatus maps an error code to its HTTP response status.
func ToHTTPStatus(code Code) int {
	switch code {
	case CodeBadRequest:
		return http.StatusBadRequest
	case CodeValidation:
		return http.StatusBadRequest
	case CodeRateLimited:
		return http.StatusTooManyRequests
	default:
		return http.StatusInternalServerError
	}
}

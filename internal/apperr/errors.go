// internal/apperr/errors.go
package apperr

import (
	"errors"
	"fmt"
	"net/http"
)

// Kind classifies an error for the HTTP responder.
type Kind int

const (
	KindInternal Kind = iota
	KindValidation
	KindAuth
	KindPermission
	KindNotFound
	KindConflict
)

func (k Kind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindAuth:
		return "auth"
	case KindPermission:
		return "permission"
	case KindNotFound:
		return "not_found"
	case KindConflict:
		return "conflict"
	default:
		return "internal"
	}
}

// Status maps the kind to an HTTP status code.
func (k Kind) Status() int {
	switch k {
	case KindValidation:
		return http.StatusBadRequest
	case KindAuth:
		return http.StatusUnauthorized
	case KindPermission:
		return http.StatusForbidden
	case KindNotFound:
		return http.StatusNotFound
	case KindConflict:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// Error is the application error carried from managers to the responder.
type Error struct {
	Kind    Kind
	Code    string
	Message string
	Fields  map[string]string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *Error) Unwrap() error { return e.Err }

// Is matches two application errors by code so sentinels work with errors.Is
// even after the message was specialised.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.Code != "" && e.Code == t.Code
}

var (
	ErrInvalidCredentials      = &Error{Kind: KindAuth, Code: "invalid_credentials", Message: "Invalid email or password"}
	ErrAccountDisabled         = &Error{Kind: KindPermission, Code: "account_disabled", Message: "Your account has been deactivated"}
	ErrTokenInvalid            = &Error{Kind: KindAuth, Code: "token_invalid", Message: "Invalid or expired token"}
	ErrUserInactiveOrMissing   = &Error{Kind: KindAuth, Code: "user_inactive_or_missing", Message: "User not found or inactive"}
	ErrInsufficientPermissions = &Error{Kind: KindPermission, Code: "insufficient_permissions", Message: "Insufficient permissions"}
	ErrInvalidStatus           = &Error{Kind: KindValidation, Code: "invalid_status", Message: "Invalid status"}
	ErrIllegalTransition       = &Error{Kind: KindConflict, Code: "illegal_transition", Message: "Illegal status transition"}
	ErrPropertyClientMismatch  = &Error{Kind: KindValidation, Code: "property_client_mismatch", Message: "Property does not belong to the specified client"}
	ErrPropertyHasJobs         = &Error{Kind: KindConflict, Code: "property_has_jobs", Message: "Property has jobs and cannot move to another client"}
)

// Validation builds a 400 error, optionally with per-field messages.
func Validation(msg string, fields map[string]string) *Error {
	return &Error{Kind: KindValidation, Code: "validation_failed", Message: msg, Fields: fields}
}

// NotFound builds a 404 error for the named entity.
func NotFound(entity string) *Error {
	return &Error{Kind: KindNotFound, Code: "not_found", Message: entity + " not found"}
}

// Conflict builds a 409 error.
func Conflict(msg string) *Error {
	return &Error{Kind: KindConflict, Code: "conflict", Message: msg}
}

// Internal wraps an unexpected error. The message is never shown to callers.
func Internal(err error, msg string) *Error {
	return &Error{Kind: KindInternal, Code: "internal", Message: msg, Err: err}
}

// Wrap returns a copy of sentinel with a more specific message, keeping its code.
func Wrap(sentinel *Error, msg string) *Error {
	cp := *sentinel
	cp.Message = msg
	return &cp
}

// From extracts the application error from err. Anything else is internal.
func From(err error) *Error {
	var ae *Error
	if errors.As(err, &ae) {
		return ae
	}
	return Internal(err, "unexpected error")
}

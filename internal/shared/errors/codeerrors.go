package errors

import (
	stderrors "errors"
	"net/http"
)

// Onboarding-specific error types. These cover every rejection of the
// invitation and ticket-code flows; all of them are user-recoverable and
// none of them leave partial state behind.
const (
	ErrorTypeInvalidCode     ErrorType = "invalid_code"
	ErrorTypeCodeExpired     ErrorType = "code_expired"
	ErrorTypeCodeRevoked     ErrorType = "code_revoked"
	ErrorTypeCodeAlreadyUsed ErrorType = "code_already_used"
	ErrorTypeEmailMismatch   ErrorType = "email_mismatch"
)

// CodeError represents an onboarding code rejection with security context.
type CodeError struct {
	*AppError
	// SecurityEvent marks rejections worth tracking for brute-force detection.
	SecurityEvent bool
}

func (e *CodeError) Error() string {
	return e.AppError.Error()
}

// Unwrap allows errors.Is and errors.As to work correctly.
func (e *CodeError) Unwrap() error {
	return e.AppError
}

// NewInvalidCodeError is returned when a code matches no invitation or
// ticket. The message deliberately does not reveal which lookup failed.
func NewInvalidCodeError() *CodeError {
	return &CodeError{
		AppError: &AppError{
			Type:    ErrorTypeInvalidCode,
			Message: "Invalid or unknown code",
			Code:    http.StatusNotFound,
		},
		SecurityEvent: true,
	}
}

// NewCodeExpiredError is returned when an invitation is past its expiry.
func NewCodeExpiredError() *CodeError {
	return &CodeError{
		AppError: &AppError{
			Type:    ErrorTypeCodeExpired,
			Message: "Invitation code has expired",
			Code:    http.StatusGone,
			Details: "Ask your administrator for a new invitation",
		},
	}
}

// NewCodeRevokedError is returned when an invitation was revoked.
func NewCodeRevokedError() *CodeError {
	return &CodeError{
		AppError: &AppError{
			Type:    ErrorTypeCodeRevoked,
			Message: "Invitation code has been revoked",
			Code:    http.StatusGone,
		},
	}
}

// NewCodeAlreadyUsedError is returned when an invitation was already
// consumed, including the losing side of a concurrent consumption race.
func NewCodeAlreadyUsedError() *CodeError {
	return &CodeError{
		AppError: &AppError{
			Type:    ErrorTypeCodeAlreadyUsed,
			Message: "Invitation code has already been used",
			Code:    http.StatusConflict,
		},
	}
}

// NewEmailMismatchError is returned when an invitation is pinned to a
// different email than the joining identity's.
func NewEmailMismatchError() *CodeError {
	return &CodeError{
		AppError: &AppError{
			Type:    ErrorTypeEmailMismatch,
			Message: "Invitation was issued for a different email address",
			Code:    http.StatusForbidden,
		},
		SecurityEvent: true,
	}
}

// IsCodeError checks if the error is any onboarding code rejection.
func IsCodeError(err error) bool {
	var codeErr *CodeError
	return stderrors.As(err, &codeErr)
}

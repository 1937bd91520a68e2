package errors

import (
	"context"
	"database/sql/driver"
	"errors"
	"net"
	"strings"
)

// NewPersistenceError maps a storage failure onto the API error model.
// Faults that may clear on retry (timeouts, cancelled contexts, dropped
// connections) become transient; everything else stays internal.
func NewPersistenceError(err error, message string) *AppError {
	if IsRetryable(err) {
		return NewTransientError(message)
	}
	return NewInternalError(message)
}

// IsRetryable reports whether the error chain looks like a transient
// infrastructure fault rather than a deterministic failure.
func IsRetryable(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return true
	}
	if errors.Is(err, driver.ErrBadConn) {
		return true
	}
	var netErr net.Error
	if errors.As(err, &netErr) {
		return true
	}

	// Driver faults that only surface as strings.
	errStr := err.Error()
	for _, marker := range []string{
		"invalid connection",
		"connection refused",
		"connection reset",
		"broken pipe",
		"i/o timeout",
		"too many connections",
		"database is locked",
	} {
		if strings.Contains(errStr, marker) {
			return true
		}
	}

	return false
}

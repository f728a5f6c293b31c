package apperrors

import (
	"errors"
	"net/http"
)

// Sentinel errors for the identity and report services. Usecases wrap these
// with %w so handlers can map them to HTTP responses with errors.Is.
var (
	ErrDuplicateEmail     = errors.New("email already registered")
	ErrDuplicateUsername  = errors.New("username already taken")
	ErrDuplicateDriverID  = errors.New("driver ID already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrValidation         = errors.New("invalid input")
	ErrStorage            = errors.New("storage failure")

	// ErrProviderNotConfigured signals that the external identity provider is
	// absent or uninitialized; callers fall back to the local mock path. It is
	// never surfaced to API clients.
	ErrProviderNotConfigured = errors.New("identity provider not configured")

	// ErrProvider wraps a domain error returned by a configured external
	// identity provider. It suppresses the local fallback and is surfaced as
	// the failure reason.
	ErrProvider = errors.New("identity provider error")
)

// StatusCode maps a service error to an HTTP status code
func StatusCode(err error) int {
	switch {
	case errors.Is(err, ErrDuplicateEmail),
		errors.Is(err, ErrDuplicateUsername),
		errors.Is(err, ErrDuplicateDriverID):
		return http.StatusConflict
	case errors.Is(err, ErrInvalidCredentials):
		return http.StatusUnauthorized
	case errors.Is(err, ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, ErrProvider):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

// Message returns the short user-facing message for a service error.
// Internal detail added with %w wrapping is not exposed.
func Message(err error) string {
	for _, sentinel := range []error{
		ErrDuplicateEmail,
		ErrDuplicateUsername,
		ErrDuplicateDriverID,
		ErrInvalidCredentials,
		ErrValidation,
		ErrStorage,
		ErrProvider,
	} {
		if errors.Is(err, sentinel) {
			return sentinel.Error()
		}
	}
	return "internal error"
}

package apperrors

import "net/http"

// Factories for the domain-specific conflicts the portal can surface.
// Message texts are part of the wire contract: the frontend shows them as-is.

// ErrNotFound converts a repository miss into a client-facing not-found error.
func ErrNotFound(err error, message string) *AppError {
	return Wrap(err, CodeNotFound, "resource", message, http.StatusNotFound)
}

// ErrDuplicateEmail is returned when a registration reuses an existing email.
func ErrDuplicateEmail() *AppError {
	return New(CodeAlreadyExists, "auth", "Email already in use", http.StatusConflict)
}

// ErrInvalidCredentials deliberately carries one message for both unknown
// email and wrong password so login is not an account-existence oracle.
func ErrInvalidCredentials() *AppError {
	return New(CodeInvalidCredentials, "auth", "Invalid credentials", http.StatusUnauthorized)
}

// ErrAlreadyApplied is returned on a second application to the same job.
func ErrAlreadyApplied() *AppError {
	return New(CodeConflict, "application", "You have already applied to this job", http.StatusConflict)
}

// ErrSelfConnection is returned when a user sends a connection request to
// themselves.
func ErrSelfConnection() *AppError {
	return New(CodeConflict, "network", "You cannot connect with yourself", http.StatusConflict)
}

// ErrConnectionExists is returned when a request already links the two users,
// in either direction.
func ErrConnectionExists() *AppError {
	return New(CodeConflict, "network", "Connection request already exists", http.StatusConflict)
}

// ErrUpstream wraps an object-storage or mail delivery failure.
func ErrUpstream(err error, message string) *AppError {
	return Wrap(err, CodeUpstreamFailure, "upstream", message, http.StatusBadGateway)
}

package service

import "errors"

// Common service errors - sentinel errors used across service
// implementations. Callers check for them with errors.Is().
var (
	// ErrInvalidCredentials indicates no active user matched the
	// email/password pair.
	ErrInvalidCredentials = errors.New("invalid email or password")

	// ErrAccountInactive indicates the credentials matched a user whose
	// account has been deactivated by a system admin.
	ErrAccountInactive = errors.New("account is deactivated")

	// ErrNotGroupMember indicates a student tried to post in a group they
	// have not joined.
	ErrNotGroupMember = errors.New("student is not a member of the group")
)

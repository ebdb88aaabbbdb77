package domain

import "errors"

// Sentinel errors shared across services and repositories.
var (
	ErrNotFound           = errors.New("not found")
	ErrForbidden          = errors.New("forbidden")
	ErrUnauthorized       = errors.New("unauthorized")
	ErrInvalidInput       = errors.New("invalid input")
	ErrDuplicateSlug      = errors.New("slug already in use")
	ErrDuplicateEmail     = errors.New("email already in use")
	ErrUserNotFound       = errors.New("user not found")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrAlreadyMember      = errors.New("already a member")
	ErrVersionMismatch    = errors.New("version mismatch")
)

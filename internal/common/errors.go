package common

import "errors"

var (
	// request errors
	ErrValidation = errors.New("validation failed")

	// credential store errors
	ErrDuplicateIdentity = errors.New("email or username already exists")
	ErrNotFound          = errors.New("not found")

	// auth-specific errors
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrAccountLocked      = errors.New("account is temporarily locked due to too many failed login attempts")
	ErrInvalidToken       = errors.New("invalid token")
	ErrUserNotFound       = errors.New("user not found")
	ErrUnauthenticated    = errors.New("authentication required")
	ErrForbidden          = errors.New("access denied")

	// backend errors
	ErrStorageUnavailable = errors.New("storage unavailable")
	ErrInternal           = errors.New("internal error")
)

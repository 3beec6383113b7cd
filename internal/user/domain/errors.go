package domain

import "errors"

var (
	ErrEmailTaken          = errors.New("email already registered")
	ErrEmailNotFound       = errors.New("user email not found")
	ErrPasswordMismatch    = errors.New("password does not match")
	ErrUserGone            = errors.New("user not found in system")
	ErrNoToken             = errors.New("provide a token")
	ErrMalformedAuthHeader = errors.New("invalid authorization header format")
	ErrInvalidToken        = errors.New("invalid or expired token")
)

package domain

import "errors"

var (
	ErrInvalidEmail = errors.New("invalid_email")
	// ErrInvalidCode covers not-found, expired and already-used codes alike,
	// so a caller can never probe which codes were ever valid.
	ErrInvalidCode = errors.New("invalid_code")
	ErrNotFound    = errors.New("not_found")
)

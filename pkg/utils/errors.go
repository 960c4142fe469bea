package utils

import "errors"

// Domain errors. Services wrap these with context via fmt.Errorf("...: %w", ...);
// handlers translate them to HTTP responses with errors.Is.
var (
	ErrNotFound           = errors.New("not found")
	ErrInvalidInput       = errors.New("invalid input")
	ErrInvalidToken       = errors.New("invalid token")
	ErrAlreadyConfirmed   = errors.New("already confirmed")
	ErrExpired            = errors.New("expired")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrAccountDisabled    = errors.New("account disabled")
	ErrForbidden          = errors.New("forbidden")
)

// Package common defines shared sentinel errors used across the FinTrack
// server layers. Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrorNotFound   = errors.New("not found")
	ErrorEmailTaken = errors.New("email is already registered")

	// Service-level errors (generic flow control).
	ErrorInternal     = errors.New("internal error")
	ErrorUnauthorized = errors.New("unauthorized")
	ErrorValidation   = errors.New("validation error")

	// ErrorInvalidCredentials covers both "no such account" and "wrong
	// password", so login failures never confirm whether an email exists.
	ErrorInvalidCredentials = errors.New("invalid email or password")

	// Token lifecycle errors.
	ErrTokenMalformed   = errors.New("malformed token")
	ErrInvalidSignature = errors.New("invalid token signature")
	ErrTokenExpired     = errors.New("token expired")
)

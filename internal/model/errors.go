package model

import "errors"

// Store errors.
var (
	ErrNotFound = errors.New("not found")
	ErrConflict = errors.New("already exists")
)

// Authentication errors. ErrUnauthorized is the kind every auth failure is
// reported as; the remaining values describe the cause and are wrapped
// together with it.
var (
	ErrUnauthorized       = errors.New("unauthorized")
	ErrTokenExpired       = errors.New("token expired")
	ErrTokenMalformed     = errors.New("token malformed")
	ErrMissingToken       = errors.New("missing bearer token")
	ErrUserNotFound       = errors.New("user not found")
	ErrInvalidCredentials = errors.New("incorrect username or password")
)

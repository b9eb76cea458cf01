package backend

import "errors"

var (
	ErrUnavailable           = errors.New("backend unavailable")
	ErrUnauthorized          = errors.New("unauthorized")
	ErrInvalidCredentials    = errors.New("invalid email or password")
	ErrEmailTaken            = errors.New("email already registered")
	ErrNotFound              = errors.New("not found")
	ErrClassifierUnavailable = errors.New("classifier unavailable")
)

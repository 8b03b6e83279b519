package services

import "errors"

// Errors returned by the services. Handlers map them onto HTTP statuses.
var (
	ErrMissingFields      = errors.New("missing required fields")
	ErrInvalidHome        = errors.New("invalid home")
	ErrInvalidLocation    = errors.New("city does not belong to state")
	ErrUnauthorized       = errors.New("unauthorized")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrEmailAlreadyExists = errors.New("email already exists")
	ErrHomeNotFound       = errors.New("home not found")
	ErrUserNotFound       = errors.New("user not found")
	ErrImageNotFound      = errors.New("image not found")
)

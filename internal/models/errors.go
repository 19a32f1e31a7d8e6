package models

import "errors"

// Every user-recoverable outcome is a sentinel so handlers can translate it
// with errors.Is instead of matching message strings.
var (
	ErrValidation         = errors.New("required fields are missing")
	ErrEventNotFound      = errors.New("event not found")
	ErrAlreadyRegistered  = errors.New("already registered for this event")
	ErrCapacityFull       = errors.New("event is at full capacity")
	ErrEmailTaken         = errors.New("email already registered")
	ErrUsernameTaken      = errors.New("username already taken")
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrForbidden          = errors.New("you do not manage this event")
)

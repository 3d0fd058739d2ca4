package domain

import "errors"

var (
	ErrDuplicateEmail     = errors.New("email already taken")
	ErrPasswordMismatch   = errors.New("password and confirm password must match")
	ErrUnknownUser        = errors.New("there is no registered user with that email")
	ErrUserNotFound       = errors.New("no user with that id exists")
	ErrInvalidCredentials = errors.New("incorrect password")
	ErrPasswordReuse      = errors.New("new password cannot be the same as the old one")
	ErrRecipeNotFound     = errors.New("recipe not found")
	ErrForbidden          = errors.New("access forbidden")
)

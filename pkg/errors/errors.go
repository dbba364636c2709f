package errors

import "errors"

var (
	ErrValidation         = errors.New("validation failed")
	ErrUsernameExists     = errors.New("username already exists")
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrUnauthorized       = errors.New("unauthorized")
	ErrUserNotFound       = errors.New("user not found")
	ErrSessionNotFound    = errors.New("session not found")
	ErrNilUser            = errors.New("user is nil")
	ErrNilRecipe          = errors.New("recipe is nil")
	ErrInternal           = errors.New("internal error")
)

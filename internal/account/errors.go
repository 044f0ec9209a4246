package account

import "errors"

// Account validation errors
var (
	ErrInvalidEmail         = errors.New("invalid email address")
	ErrInvalidPassword      = errors.New("invalid password")
	ErrInvalidPasswordHash  = errors.New("invalid password hash")
	ErrPasswordTooShort     = errors.New("password must be at least 8 characters")
	ErrAccountNotFound      = errors.New("account not found")
	ErrAccountAlreadyExists = errors.New("account with this email already exists")
	ErrUnauthorized         = errors.New("unauthorized")
)

package user

import "errors"

var (
	ErrEmailExists        = errors.New("email already registered")
	ErrNotFound           = errors.New("user not found")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrAdminUser          = errors.New("cannot delete an admin user")
)

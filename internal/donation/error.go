package donation

import "errors"

var (
	ErrNotFound      = errors.New("donation not found")
	ErrInvalidStatus = errors.New("invalid status value")
	ErrMissingFields = errors.New("item name and description are required")
)

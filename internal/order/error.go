package order

import "errors"

var (
	ErrNotFound          = errors.New("order not found")
	ErrInvalidStatus     = errors.New("invalid status value")
	ErrInvalidTransition = errors.New("order status transition not allowed")
	ErrReasonRequired    = errors.New("cancellation reason is required")
)

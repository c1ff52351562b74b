package checkout

import "errors"

var (
	ErrInvalidPromoCode = errors.New("promo code is not valid or has expired")
	ErrEmptyCart        = errors.New("cart is empty")
)

// FieldError reports a missing required checkout field by name.
type FieldError struct {
	Field string
}

func (e *FieldError) Error() string {
	return e.Field + " is required"
}

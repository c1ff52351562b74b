package checkout

import "strings"

const (
	// PromoPrefix unlocks the donation reward discount at checkout.
	PromoPrefix  = "ECO-REWARD-"
	discountRate = 0.15
	taxRate      = 0.08
)

// Quote is the priced breakdown of a cart. Discount applies before tax;
// reversing that order changes the charged amount.
type Quote struct {
	Subtotal float64 `json:"subtotal"`
	Discount float64 `json:"discount"`
	Tax      float64 `json:"tax"`
	Shipping float64 `json:"shipping"`
	Total    float64 `json:"total"`
}

// Price computes the final charge for a subtotal and an optional promo code.
// An unrecognized code is non-fatal: the quote comes back with zero discount
// alongside ErrInvalidPromoCode so the caller can surface a notice.
func Price(subtotal float64, promoCode string) (Quote, error) {
	var invalidCode error

	var discount float64
	switch {
	case promoCode == "":
		// no code entered, nothing to report
	case strings.HasPrefix(strings.ToUpper(promoCode), PromoPrefix):
		discount = subtotal * discountRate
	default:
		invalidCode = ErrInvalidPromoCode
	}

	taxed := subtotal - discount
	tax := taxed * taxRate

	return Quote{
		Subtotal: subtotal,
		Discount: discount,
		Tax:      tax,
		Shipping: 0, // shipping is always free
		Total:    taxed + tax,
	}, invalidCode
}

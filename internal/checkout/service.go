package checkout

import (
	"context"
	"fmt"
	"math/rand"
	"strings"
	"time"

	"sustainsports-be/internal/cart"
	"sustainsports-be/internal/logger"
	"sustainsports-be/internal/order"

	"go.uber.org/zap"
)

// Input carries the checkout form. Field validation is deliberately shallow:
// required fields must be non-empty, nothing more.
type Input struct {
	Email      string `json:"email"`
	FirstName  string `json:"firstName"`
	LastName   string `json:"lastName"`
	Address    string `json:"address"`
	City       string `json:"city"`
	State      string `json:"state"`
	ZipCode    string `json:"zipCode"`
	Country    string `json:"country"`
	CardNumber string `json:"cardNumber"`
	NameOnCard string `json:"nameOnCard"`
	PromoCode  string `json:"promoCode"`
}

// Result is what a submitted checkout hands back to the caller.
type Result struct {
	Order      order.Order `json:"order"`
	Quote      Quote       `json:"quote"`
	PromoError string      `json:"promoError,omitempty"`
}

type Service interface {
	QuoteCart(ctx context.Context, userKey, promoCode string) (Quote, error)
	Submit(ctx context.Context, userKey string, input Input) (*Result, error)
}

type service struct {
	carts  *cart.Store
	ledger order.Ledger
}

func NewService(carts *cart.Store, ledger order.Ledger) Service {
	return &service{carts: carts, ledger: ledger}
}

// QuoteCart prices the user's current cart. ErrInvalidPromoCode comes back
// alongside a usable quote.
func (s *service) QuoteCart(ctx context.Context, userKey, promoCode string) (Quote, error) {
	c, err := s.carts.Load(userKey)
	if err != nil {
		return Quote{}, err
	}
	return Price(c.Total(), promoCode)
}

// Submit prices the cart, synthesizes an order and appends it to the ledger.
// The cart is cleared only after the ledger write succeeded, so a failed
// write leaves the cart intact.
func (s *service) Submit(ctx context.Context, userKey string, input Input) (*Result, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "service"),
		zap.String("method", "Submit"),
	)

	if err := validate(input); err != nil {
		return nil, err
	}

	c, err := s.carts.Load(userKey)
	if err != nil {
		return nil, err
	}
	if c.IsEmpty() {
		return nil, ErrEmptyCart
	}

	quote, promoErr := Price(c.Total(), input.PromoCode)

	address := fmt.Sprintf("%s, %s, %s %s", input.Address, input.City, input.State, input.ZipCode)
	o := order.Order{
		ID:        NewOrderID(),
		UserKey:   userKey,
		CreatedAt: time.Now().UTC(),
		Status:    order.StatusProcessing,
		Items:     c.Lines,
		Total:     quote.Total,
		ShippingAddress: order.Address{
			Name:    strings.TrimSpace(input.FirstName + " " + input.LastName),
			Address: address,
		},
		BillingAddress: order.Address{
			Name:    input.NameOnCard,
			Address: address,
		},
		ShippingMethod: "Free Shipping",
		PaymentMethod:  "Card ending in " + lastFour(input.CardNumber),
		TrackingNumber: NewTrackingNumber(),
	}

	log = log.With(
		zap.String("order_id", o.ID),
		zap.Int("item_count", len(o.Items)),
		zap.Float64("subtotal", quote.Subtotal),
		zap.Float64("discount", quote.Discount),
		zap.Float64("tax", quote.Tax),
		zap.Float64("total", quote.Total),
	)

	if err := s.ledger.Append(ctx, o); err != nil {
		// ledger write failed: the cart must survive untouched
		log.Error("order ledger write failed, keeping cart", zap.Error(err))
		return nil, err
	}

	if err := s.carts.Clear(userKey); err != nil {
		// the order stands either way; the stale cart is the lesser problem
		log.Warn("failed to clear cart after checkout", zap.Error(err))
	}

	log.Info("order placed")

	result := &Result{Order: o, Quote: quote}
	if promoErr != nil {
		result.PromoError = promoErr.Error()
	}
	return result, nil
}

func validate(input Input) error {
	required := []struct{ name, value string }{
		{"firstName", input.FirstName},
		{"lastName", input.LastName},
		{"address", input.Address},
		{"city", input.City},
		{"zipCode", input.ZipCode},
		{"cardNumber", input.CardNumber},
		{"nameOnCard", input.NameOnCard},
	}
	for _, f := range required {
		if strings.TrimSpace(f.value) == "" {
			return &FieldError{Field: f.name}
		}
	}
	return nil
}

func lastFour(cardNumber string) string {
	digits := strings.ReplaceAll(strings.TrimSpace(cardNumber), " ", "")
	if len(digits) <= 4 {
		return digits
	}
	return digits[len(digits)-4:]
}

const base36 = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"

// NewOrderID returns an opaque order identifier like SS-K3F9A01ZQ.
func NewOrderID() string {
	var b strings.Builder
	b.WriteString("SS-")
	for i := 0; i < 9; i++ {
		b.WriteByte(base36[rand.Intn(len(base36))])
	}
	return b.String()
}

// NewTrackingNumber returns a synthetic carrier-style tracking number.
func NewTrackingNumber() string {
	var b strings.Builder
	b.WriteString("1Z")
	for i := 0; i < 16; i++ {
		b.WriteByte(base36[rand.Intn(10)])
	}
	return b.String()
}

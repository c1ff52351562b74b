package order

import (
	"time"

	"sustainsports-be/internal/cart"
)

type Status string

const (
	StatusProcessing Status = "Processing"
	StatusShipped    Status = "Shipped"
	StatusDelivered  Status = "Delivered"
	StatusCancelled  Status = "Cancelled"
)

var transitions = map[Status][]Status{
	StatusProcessing: {StatusShipped, StatusDelivered, StatusCancelled},
	StatusShipped:    {StatusDelivered, StatusCancelled},
	// Delivered and Cancelled are terminal
	StatusDelivered: {},
	StatusCancelled: {},
}

// ValidStatus reports whether s belongs to the closed status enum.
func ValidStatus(s Status) bool {
	_, ok := transitions[s]
	return ok
}

// CanTransition reports whether an order may move from one status to another.
// Terminal states are sticky.
func CanTransition(from, to Status) bool {
	for _, next := range transitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

type Address struct {
	Name    string `json:"name"`
	Address string `json:"address"`
	Phone   string `json:"phone,omitempty"`
}

type Order struct {
	ID                 string      `json:"id"`
	UserKey            string      `json:"userId"`
	CreatedAt          time.Time   `json:"date"`
	Status             Status      `json:"status"`
	Items              []cart.Line `json:"items"`
	Total              float64     `json:"total"`
	ShippingAddress    Address     `json:"shippingAddress"`
	BillingAddress     Address     `json:"billingAddress"`
	ShippingMethod     string      `json:"shippingMethod"`
	PaymentMethod      string      `json:"paymentMethod"`
	TrackingNumber     string      `json:"trackingNumber,omitempty"`
	CancellationReason string      `json:"cancellationReason,omitempty"`
}

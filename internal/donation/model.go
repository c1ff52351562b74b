package donation

import "time"

type Status string

const (
	StatusPending     Status = "Pending"
	StatusApproved    Status = "Approved"
	StatusDisapproved Status = "Disapproved"
)

// ValidStatus reports whether s belongs to the closed status enum.
func ValidStatus(s Status) bool {
	switch s {
	case StatusPending, StatusApproved, StatusDisapproved:
		return true
	}
	return false
}

type Donation struct {
	ID              string  `json:"id"`
	UserID          string  `json:"userId"`
	UserName        string  `json:"userName,omitempty"`
	UserEmail       string  `json:"userEmail,omitempty"`
	ItemName        string  `json:"itemName"`
	ItemDescription string  `json:"itemDescription"`
	Status          Status  `json:"status"`
	PromoCode       *string `json:"promoCode,omitempty"`
	CreatedAt       time.Time `json:"createdAt"`
}

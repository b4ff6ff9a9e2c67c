package domain

import (
	"time"

	"github.com/google/uuid"
)

type OrderStatus string

// Orders are created in their terminal state. There are no cancellation,
// refund or fulfillment transitions.
const OrderStatusConfirmed OrderStatus = "confirmed"

func (s OrderStatus) String() string {
	return string(s)
}

// CustomerInfo is free-form shipping data. Fields are required non-empty at
// submission time; no format validation is applied beyond that.
type CustomerInfo struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Address string `json:"address"`
	City    string `json:"city"`
	ZipCode string `json:"zipCode"`
}

// PaymentInfo carries card data as submitted. The card number is masked at
// the cart boundary and again before an order is stored; the CVV is never
// retained past request handling.
type PaymentInfo struct {
	CardNumber string `json:"cardNumber"`
	ExpiryDate string `json:"expiryDate"`
	CVV        string `json:"cvv"`
}

// Order is allocated exactly once per checkout submission and never mutated
// afterwards. UserID is nil for guest checkouts.
type Order struct {
	ID           uuid.UUID    `json:"id"`
	UserID       *string      `json:"userId"`
	Items        []CartItem   `json:"items"`
	CustomerInfo CustomerInfo `json:"customerInfo"`
	CardLast4    string       `json:"cardLast4,omitempty"`
	Total        float64      `json:"total"`
	Status       OrderStatus  `json:"status"`
	CreatedAt    time.Time    `json:"createdAt"`
}

// MaskCardNumber reduces a card number to its last 4 characters. Masking is
// idempotent: applying it to an already-masked value yields the same result.
func MaskCardNumber(number string) string {
	const prefix = "**** **** **** "
	last4 := number
	if len(number) > 4 {
		last4 = number[len(number)-4:]
	}
	return prefix + last4
}

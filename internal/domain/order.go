package domain

import (
	"errors"
	"strings"
	"time"
)

// Order represents a paid customer order. The reference comes from the
// payment gateway and doubles as the order's external identifier.
type Order struct {
	ID           int
	Reference    string
	CustomerName string
	Email        string
	Phone        string
	Address      string
	Junction     string
	Items        []OrderItem
	TotalAmount  float64
	Status       Status
	DispatchedAt *time.Time
	DeliveredAt  *time.Time
	CreatedAt    time.Time
}

// OrderItem is a single line item. Contents are not validated; the
// storefront sends whatever the customer picked.
type OrderItem struct {
	Name     string  `json:"name"`
	Quantity int     `json:"quantity"`
	Price    float64 `json:"price"`
}

// NewOrder builds an order from a verified payment. The amount comes from
// the gateway in minor units; the client-supplied total is never trusted.
func NewOrder(reference, customerName, email, phone, address, junction string, items []OrderItem, amountMinor int64) *Order {
	return &Order{
		Reference:    reference,
		CustomerName: customerName,
		Email:        email,
		Phone:        phone,
		Address:      address,
		Junction:     junction,
		Items:        items,
		TotalAmount:  float64(amountMinor) / 100,
		Status:       StatusPaid,
		CreatedAt:    time.Now(),
	}
}

// ApplyStatus sets the new status and stamps the matching timestamp.
// Any status value is accepted and stored as given; there is no
// transition graph. Timestamp matching is case-insensitive, and stamps
// are never cleared when a status regresses.
func (o *Order) ApplyStatus(newStatus string) {
	o.Status = Status(newStatus)

	now := time.Now()
	switch {
	case strings.EqualFold(newStatus, string(StatusDelivered)):
		o.DeliveredAt = &now
	case strings.EqualFold(newStatus, string(StatusDispatched)):
		o.DispatchedAt = &now
	}
}

var (
	ErrInvalidRequest       = errors.New("invalid request")
	ErrVerificationFailed   = errors.New("payment verification failed")
	ErrPaymentNotSuccessful = errors.New("payment not successful")
	ErrNotFound             = errors.New("not found")
	ErrDuplicateReference   = errors.New("duplicate order reference")
	ErrInvalidCredentials   = errors.New("invalid credentials")
)

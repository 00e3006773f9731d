package interfaces

import (
	"context"
	"time"

	"chowline/internal/domain"
)

// VerifiedPayment is the gateway's answer for one transaction reference.
// Amount is in minor currency units, exactly as the gateway reports it.
type VerifiedPayment struct {
	Status string
	Amount int64
}

// PaymentVerifier checks a transaction reference against the payment
// gateway. A returned error means the gateway was unreachable or rejected
// the call; a non-"success" Status means the charge did not go through.
type PaymentVerifier interface {
	Verify(ctx context.Context, reference string) (*VerifiedPayment, error)
}

type PushNotification struct {
	Title   string
	Message string
	URL     string
}

type PushSender interface {
	Send(ctx context.Context, n PushNotification) error
}

type SMSSender interface {
	Send(ctx context.Context, to, text string) error
}

// OrderSummary is the read-only projection handed to the advisory side
// channels. Receivers must not mutate or persist it.
type OrderSummary struct {
	Reference    string        `json:"reference"`
	CustomerName string        `json:"name"`
	Phone        string        `json:"phone"`
	TotalAmount  float64       `json:"totalAmount"`
	Status       domain.Status `json:"status"`
	CreatedAt    time.Time     `json:"createdAt"`
}

// NotificationDispatcher fans an order summary out to the push and SMS
// gateways. Best-effort: it blocks until both attempts finish but never
// reports failure to the caller.
type NotificationDispatcher interface {
	Dispatch(ctx context.Context, summary OrderSummary)
}

// Broadcaster emits an event to every connected admin dashboard session.
type Broadcaster interface {
	Broadcast(event string, payload any)
}

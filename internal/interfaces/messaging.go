package interfaces

import (
	"context"
	"time"

	"chowline/internal/domain"
)

// RabbitMQ messages
type OrderEventMessage struct {
	Event        string        `json:"event"`
	Reference    string        `json:"reference"`
	CustomerName string        `json:"customer_name"`
	TotalAmount  float64       `json:"total_amount"`
	Status       domain.Status `json:"status"`
	Timestamp    time.Time     `json:"timestamp"`
}

const (
	EventOrderCreated       = "order.created"
	EventOrderStatusChanged = "order.status_changed"
)

// Messaging contracts (Adapter/RabbitMQ)
type EventPublisher interface {
	PublishOrderEvent(ctx context.Context, msg OrderEventMessage) error
}

type EventConsumer interface {
	ConsumeOrderEvents(ctx context.Context, handler OrderEventHandler) error
}

type OrderEventHandler func(ctx context.Context, body []byte) error

package amqp

import (
	"context"
	"encoding/json"
	"fmt"

	"chowline/internal/adapter/logger"
	"chowline/internal/interfaces"
)

type NotificationHandler struct {
	logger logger.Logger
}

func NewNotificationHandler(logger logger.Logger) *NotificationHandler {
	return &NotificationHandler{
		logger: logger,
	}
}

func (h *NotificationHandler) HandleOrderEvent(ctx context.Context, body []byte) error {
	var msg interfaces.OrderEventMessage
	if err := json.Unmarshal(body, &msg); err != nil {
		h.logger.Error("message_parse_failed", "Failed to parse order event", "", nil, err)
		return err
	}

	h.logger.Info("order_event_received", fmt.Sprintf("Received %s for order %s", msg.Event, msg.Reference),
		msg.Reference, map[string]interface{}{
			"event":     msg.Event,
			"reference": msg.Reference,
			"status":    msg.Status,
		})

	// Print to console
	fmt.Printf("[%s] order %s (%s) total %.2f status %s\n",
		msg.Event, msg.Reference, msg.CustomerName, msg.TotalAmount, msg.Status)

	return nil
}

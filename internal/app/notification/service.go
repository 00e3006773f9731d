package notification

import (
	"context"
	"fmt"
	"sync"

	"chowline/internal/adapter/logger"
	"chowline/internal/interfaces"
)

// Service fans an order summary out to the push and SMS gateways. The two
// calls run concurrently and independently; each failure is logged and
// swallowed. Dispatch returns once both attempts finish.
type Service struct {
	push   interfaces.PushSender
	sms    interfaces.SMSSender
	logger logger.Logger
}

func NewService(push interfaces.PushSender, sms interfaces.SMSSender, lgr logger.Logger) *Service {
	return &Service{
		push:   push,
		sms:    sms,
		logger: lgr,
	}
}

func (s *Service) Dispatch(ctx context.Context, summary interfaces.OrderSummary) {
	var wg sync.WaitGroup

	if s.push != nil {
		wg.Add(1)
		go func() {
			defer wg.Done()
			n := interfaces.PushNotification{
				Title:   "New order received",
				Message: fmt.Sprintf("Order %s for %.2f has been paid", summary.Reference, summary.TotalAmount),
			}
			if err := s.push.Send(ctx, n); err != nil {
				s.logger.Error("push_failed", "Push notification failed", summary.Reference, nil, err)
			}
		}()
	}

	if s.sms != nil && summary.Phone != "" {
		wg.Add(1)
		go func() {
			defer wg.Done()
			text := fmt.Sprintf("Your order %s has been received and is being prepared.", summary.Reference)
			if err := s.sms.Send(ctx, summary.Phone, text); err != nil {
				s.logger.Error("sms_failed", "SMS notification failed", summary.Reference, nil, err)
			}
		}()
	}

	wg.Wait()
}

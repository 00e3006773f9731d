package order

import (
	"context"
	"fmt"
	"strings"
	"time"

	"chowline/internal/adapter/logger"
	"chowline/internal/domain"
	"chowline/internal/interfaces"
)

// Service orchestrates order submission: verify the payment, persist the
// order, then fan out the advisory notifications. It also serves the
// order query and status-update operations.
type Service struct {
	repo        interfaces.OrderRepository
	verifier    interfaces.PaymentVerifier
	dispatcher  interfaces.NotificationDispatcher
	broadcaster interfaces.Broadcaster
	publisher   interfaces.EventPublisher
	logger      logger.Logger
}

func NewService(
	repo interfaces.OrderRepository,
	verifier interfaces.PaymentVerifier,
	dispatcher interfaces.NotificationDispatcher,
	broadcaster interfaces.Broadcaster,
	publisher interfaces.EventPublisher,
	lgr logger.Logger,
) *Service {
	return &Service{
		repo:        repo,
		verifier:    verifier,
		dispatcher:  dispatcher,
		broadcaster: broadcaster,
		publisher:   publisher,
		logger:      lgr,
	}
}

// Submit runs the submission flow. An order is persisted if and only if
// the gateway confirmed the charge; everything after the write is
// best-effort and never fails the request.
func (s *Service) Submit(ctx context.Context, cmd interfaces.SubmitOrderCommand) (*domain.Order, error) {
	if cmd.Reference == "" {
		return nil, fmt.Errorf("reference is required: %w", domain.ErrInvalidRequest)
	}
	if len(cmd.Items) == 0 {
		return nil, fmt.Errorf("order items are required: %w", domain.ErrInvalidRequest)
	}

	payment, err := s.verifier.Verify(ctx, cmd.Reference)
	if err != nil {
		s.logger.Error("verification_failed", "Payment verification failed", cmd.Reference, nil, err)
		return nil, err
	}

	if !strings.EqualFold(payment.Status, "success") {
		s.logger.Info("payment_rejected", "Gateway reported non-success status", cmd.Reference, map[string]interface{}{
			"gateway_status": payment.Status,
		})
		return nil, fmt.Errorf("gateway status %q: %w", payment.Status, domain.ErrPaymentNotSuccessful)
	}

	order := domain.NewOrder(cmd.Reference, cmd.CustomerName, cmd.Email, cmd.Phone,
		cmd.Address, cmd.Junction, cmd.Items, payment.Amount)

	if err := s.repo.Create(ctx, order); err != nil {
		s.logger.Error("order_create_failed", "Failed to persist order", cmd.Reference, nil, err)
		return nil, err
	}

	s.logger.Info("order_created", "Order persisted", order.Reference, map[string]interface{}{
		"total_amount": order.TotalAmount,
	})

	summary := summarize(order)

	// Advisory fan-out. Dispatch joins both gateway calls before
	// returning so the response is deterministic; failures stay inside.
	s.dispatcher.Dispatch(ctx, summary)
	s.broadcaster.Broadcast("newOrder", summary)
	s.publishEvent(ctx, interfaces.EventOrderCreated, order)

	return order, nil
}

func (s *Service) ListOrders(ctx context.Context) ([]*domain.Order, error) {
	return s.repo.FindAll(ctx)
}

func (s *Service) GetOrder(ctx context.Context, reference string) (*domain.Order, error) {
	return s.repo.FindByReference(ctx, reference)
}

// UpdateStatus writes the new status and stamps dispatched/delivered
// timestamps. Any status value is accepted.
func (s *Service) UpdateStatus(ctx context.Context, reference, status string) (*domain.Order, error) {
	if strings.TrimSpace(status) == "" {
		return nil, fmt.Errorf("status is required: %w", domain.ErrInvalidRequest)
	}

	order, err := s.repo.FindByReference(ctx, reference)
	if err != nil {
		return nil, err
	}

	order.ApplyStatus(status)

	if err := s.repo.Update(ctx, order); err != nil {
		return nil, err
	}

	s.logger.Info("order_status_updated", "Order status updated", reference, map[string]interface{}{
		"status": order.Status,
	})

	s.broadcaster.Broadcast("orderUpdated", summarize(order))
	s.publishEvent(ctx, interfaces.EventOrderStatusChanged, order)

	return order, nil
}

func (s *Service) DeleteOrder(ctx context.Context, reference string) error {
	return s.repo.DeleteByReference(ctx, reference)
}

func (s *Service) publishEvent(ctx context.Context, event string, order *domain.Order) {
	msg := interfaces.OrderEventMessage{
		Event:        event,
		Reference:    order.Reference,
		CustomerName: order.CustomerName,
		TotalAmount:  order.TotalAmount,
		Status:       order.Status,
		Timestamp:    time.Now(),
	}
	if err := s.publisher.PublishOrderEvent(ctx, msg); err != nil {
		s.logger.Error("event_publish_failed", "Failed to publish order event", order.Reference, map[string]interface{}{
			"event": event,
		}, err)
	}
}

func summarize(order *domain.Order) interfaces.OrderSummary {
	return interfaces.OrderSummary{
		Reference:    order.Reference,
		CustomerName: order.CustomerName,
		Phone:        order.Phone,
		TotalAmount:  order.TotalAmount,
		Status:       order.Status,
		CreatedAt:    order.CreatedAt,
	}
}

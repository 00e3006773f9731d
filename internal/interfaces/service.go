package interfaces

import (
	"context"

	"chowline/internal/domain"
)

// Commands for services
type SubmitOrderCommand struct {
	Reference    string
	CustomerName string
	Email        string
	Phone        string
	Address      string
	Junction     string
	Items        []domain.OrderItem
}

// Service contracts (Business Logic)
type OrderService interface {
	Submit(ctx context.Context, cmd SubmitOrderCommand) (*domain.Order, error)
	ListOrders(ctx context.Context) ([]*domain.Order, error)
	GetOrder(ctx context.Context, reference string) (*domain.Order, error)
	UpdateStatus(ctx context.Context, reference, status string) (*domain.Order, error)
	DeleteOrder(ctx context.Context, reference string) error
}

type MenuService interface {
	CreateItem(ctx context.Context, item *domain.MenuItem) error
	ListItems(ctx context.Context) ([]*domain.MenuItem, error)
	GetItem(ctx context.Context, id int) (*domain.MenuItem, error)
	UpdateItem(ctx context.Context, item *domain.MenuItem) error
	DeleteItem(ctx context.Context, id int) error
}

type StatsService interface {
	GetStats(ctx context.Context) (*OrderStats, error)
}

// OrderStats is the admin dashboard aggregate.
type OrderStats struct {
	TotalOrders      int
	TotalRevenue     float64
	PendingOrders    int
	ProcessingOrders int
	RecentOrders     []*domain.Order
}

type AuthService interface {
	Login(ctx context.Context, email, password string) (string, error)
	EnsureAdmin(ctx context.Context) error
}

package interfaces

import (
	"context"

	"chowline/internal/domain"
)

// Repository contracts (Adapter/Postgres)
type OrderRepository interface {
	Create(ctx context.Context, order *domain.Order) error
	FindAll(ctx context.Context) ([]*domain.Order, error)
	FindRecent(ctx context.Context, limit int) ([]*domain.Order, error)
	FindByReference(ctx context.Context, reference string) (*domain.Order, error)
	Update(ctx context.Context, order *domain.Order) error
	DeleteByReference(ctx context.Context, reference string) error
	GetStats(ctx context.Context) (*OrderTotals, error)
}

// OrderTotals are the aggregate counters behind the admin stats endpoint.
type OrderTotals struct {
	TotalOrders      int
	TotalRevenue     float64
	PendingOrders    int
	ProcessingOrders int
}

type MenuRepository interface {
	Create(ctx context.Context, item *domain.MenuItem) error
	FindAll(ctx context.Context) ([]*domain.MenuItem, error)
	FindByID(ctx context.Context, id int) (*domain.MenuItem, error)
	Update(ctx context.Context, item *domain.MenuItem) error
	Delete(ctx context.Context, id int) error
}

type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
}

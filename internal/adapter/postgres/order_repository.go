package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"chowline/internal/domain"
	"chowline/internal/interfaces"

	"github.com/jackc/pgx/v5"
)

type orderRepository struct {
	db DB
}

func NewOrderRepository(db DB) interfaces.OrderRepository {
	return &orderRepository{db: db}
}

const orderColumns = `id, reference, customer_name, email, phone, address, junction,
	       items, total_amount, status, dispatched_at, delivered_at, created_at`

func (r *orderRepository) Create(ctx context.Context, order *domain.Order) error {
	items, err := json.Marshal(order.Items)
	if err != nil {
		return fmt.Errorf("failed to encode order items: %w", err)
	}

	query := `
		INSERT INTO orders (reference, customer_name, email, phone, address, junction,
		                    items, total_amount, status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id
	`
	err = r.db.QueryRow(ctx, query,
		order.Reference, order.CustomerName, order.Email, order.Phone, order.Address,
		order.Junction, items, order.TotalAmount, order.Status, order.CreatedAt,
	).Scan(&order.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("reference %q already used: %w", order.Reference, domain.ErrDuplicateReference)
		}
		return fmt.Errorf("failed to insert order: %w", err)
	}

	return nil
}

func (r *orderRepository) FindAll(ctx context.Context) ([]*domain.Order, error) {
	query := fmt.Sprintf(`SELECT %s FROM orders ORDER BY created_at DESC`, orderColumns)
	return r.queryOrders(ctx, query)
}

func (r *orderRepository) FindRecent(ctx context.Context, limit int) ([]*domain.Order, error) {
	query := fmt.Sprintf(`SELECT %s FROM orders ORDER BY created_at DESC LIMIT $1`, orderColumns)
	return r.queryOrders(ctx, query, limit)
}

func (r *orderRepository) FindByReference(ctx context.Context, reference string) (*domain.Order, error) {
	query := fmt.Sprintf(`SELECT %s FROM orders WHERE reference = $1`, orderColumns)

	order, err := scanOrder(r.db.QueryRow(ctx, query, reference))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("order %q: %w", reference, domain.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to load order: %w", err)
	}

	return order, nil
}

func (r *orderRepository) Update(ctx context.Context, order *domain.Order) error {
	query := `
		UPDATE orders
		SET status = $1, dispatched_at = $2, delivered_at = $3
		WHERE reference = $4
	`
	tag, err := r.db.Exec(ctx, query,
		order.Status, order.DispatchedAt, order.DeliveredAt, order.Reference,
	)
	if err != nil {
		return fmt.Errorf("failed to update order: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("order %q: %w", order.Reference, domain.ErrNotFound)
	}
	return nil
}

func (r *orderRepository) DeleteByReference(ctx context.Context, reference string) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM orders WHERE reference = $1`, reference)
	if err != nil {
		return fmt.Errorf("failed to delete order: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("order %q: %w", reference, domain.ErrNotFound)
	}
	return nil
}

func (r *orderRepository) GetStats(ctx context.Context) (*interfaces.OrderTotals, error) {
	query := `
		SELECT COUNT(*),
		       COALESCE(SUM(total_amount), 0),
		       COUNT(*) FILTER (WHERE status = 'pending'),
		       COUNT(*) FILTER (WHERE status = 'processing')
		FROM orders
	`

	var totals interfaces.OrderTotals
	err := r.db.QueryRow(ctx, query).Scan(
		&totals.TotalOrders, &totals.TotalRevenue, &totals.PendingOrders, &totals.ProcessingOrders,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate orders: %w", err)
	}

	return &totals, nil
}

func (r *orderRepository) queryOrders(ctx context.Context, query string, args ...any) ([]*domain.Order, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query orders: %w", err)
	}
	defer rows.Close()

	var orders []*domain.Order
	for rows.Next() {
		order, err := scanOrder(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan order: %w", err)
		}
		orders = append(orders, order)
	}

	return orders, nil
}

func scanOrder(row Row) (*domain.Order, error) {
	var order domain.Order
	var items []byte

	err := row.Scan(
		&order.ID, &order.Reference, &order.CustomerName, &order.Email, &order.Phone,
		&order.Address, &order.Junction, &items, &order.TotalAmount, &order.Status,
		&order.DispatchedAt, &order.DeliveredAt, &order.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	if len(items) > 0 {
		if err := json.Unmarshal(items, &order.Items); err != nil {
			return nil, fmt.Errorf("failed to decode order items: %w", err)
		}
	}

	return &order, nil
}

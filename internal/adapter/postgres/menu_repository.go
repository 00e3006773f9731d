package postgres

import (
	"context"
	"errors"
	"fmt"

	"chowline/internal/domain"
	"chowline/internal/interfaces"

	"github.com/jackc/pgx/v5"
)

type menuRepository struct {
	db DB
}

func NewMenuRepository(db DB) interfaces.MenuRepository {
	return &menuRepository{db: db}
}

func (r *menuRepository) Create(ctx context.Context, item *domain.MenuItem) error {
	query := `
		INSERT INTO menu_items (name, description, price, category, image_url, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id
	`
	err := r.db.QueryRow(ctx, query,
		item.Name, item.Description, item.Price, item.Category, item.ImageURL, item.CreatedAt,
	).Scan(&item.ID)
	if err != nil {
		return fmt.Errorf("failed to insert menu item: %w", err)
	}
	return nil
}

func (r *menuRepository) FindAll(ctx context.Context) ([]*domain.MenuItem, error) {
	query := `
		SELECT id, name, description, price, category, image_url, created_at
		FROM menu_items
		ORDER BY category, name
	`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query menu items: %w", err)
	}
	defer rows.Close()

	var items []*domain.MenuItem
	for rows.Next() {
		var item domain.MenuItem
		err := rows.Scan(&item.ID, &item.Name, &item.Description, &item.Price,
			&item.Category, &item.ImageURL, &item.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("failed to scan menu item: %w", err)
		}
		items = append(items, &item)
	}

	return items, nil
}

func (r *menuRepository) FindByID(ctx context.Context, id int) (*domain.MenuItem, error) {
	query := `
		SELECT id, name, description, price, category, image_url, created_at
		FROM menu_items
		WHERE id = $1
	`
	var item domain.MenuItem
	err := r.db.QueryRow(ctx, query, id).Scan(&item.ID, &item.Name, &item.Description,
		&item.Price, &item.Category, &item.ImageURL, &item.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("menu item %d: %w", id, domain.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to load menu item: %w", err)
	}

	return &item, nil
}

func (r *menuRepository) Update(ctx context.Context, item *domain.MenuItem) error {
	query := `
		UPDATE menu_items
		SET name = $1, description = $2, price = $3, category = $4, image_url = $5
		WHERE id = $6
	`
	tag, err := r.db.Exec(ctx, query,
		item.Name, item.Description, item.Price, item.Category, item.ImageURL, item.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update menu item: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("menu item %d: %w", item.ID, domain.ErrNotFound)
	}
	return nil
}

func (r *menuRepository) Delete(ctx context.Context, id int) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM menu_items WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete menu item: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("menu item %d: %w", id, domain.ErrNotFound)
	}
	return nil
}

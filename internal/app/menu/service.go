package menu

import (
	"context"
	"fmt"
	"time"

	"chowline/internal/adapter/logger"
	"chowline/internal/domain"
	"chowline/internal/interfaces"
)

type Service struct {
	repo   interfaces.MenuRepository
	logger logger.Logger
}

func NewService(repo interfaces.MenuRepository, lgr logger.Logger) *Service {
	return &Service{repo: repo, logger: lgr}
}

func (s *Service) CreateItem(ctx context.Context, item *domain.MenuItem) error {
	if err := item.Validate(); err != nil {
		return fmt.Errorf("%v: %w", err, domain.ErrInvalidRequest)
	}

	item.CreatedAt = time.Now()
	if err := s.repo.Create(ctx, item); err != nil {
		return err
	}

	s.logger.Info("menu_item_created", "Menu item created", "", map[string]interface{}{
		"id":   item.ID,
		"name": item.Name,
	})
	return nil
}

func (s *Service) ListItems(ctx context.Context) ([]*domain.MenuItem, error) {
	return s.repo.FindAll(ctx)
}

func (s *Service) GetItem(ctx context.Context, id int) (*domain.MenuItem, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *Service) UpdateItem(ctx context.Context, item *domain.MenuItem) error {
	if err := item.Validate(); err != nil {
		return fmt.Errorf("%v: %w", err, domain.ErrInvalidRequest)
	}
	return s.repo.Update(ctx, item)
}

func (s *Service) DeleteItem(ctx context.Context, id int) error {
	return s.repo.Delete(ctx, id)
}

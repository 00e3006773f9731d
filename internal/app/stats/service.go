package stats

import (
	"context"

	"chowline/internal/adapter/logger"
	"chowline/internal/interfaces"
)

const recentOrderCount = 5

type Service struct {
	repo   interfaces.OrderRepository
	logger logger.Logger
}

func NewService(repo interfaces.OrderRepository, lgr logger.Logger) *Service {
	return &Service{repo: repo, logger: lgr}
}

func (s *Service) GetStats(ctx context.Context) (*interfaces.OrderStats, error) {
	totals, err := s.repo.GetStats(ctx)
	if err != nil {
		return nil, err
	}

	recent, err := s.repo.FindRecent(ctx, recentOrderCount)
	if err != nil {
		return nil, err
	}

	return &interfaces.OrderStats{
		TotalOrders:      totals.TotalOrders,
		TotalRevenue:     totals.TotalRevenue,
		PendingOrders:    totals.PendingOrders,
		ProcessingOrders: totals.ProcessingOrders,
		RecentOrders:     recent,
	}, nil
}

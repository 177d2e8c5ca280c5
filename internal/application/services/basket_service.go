package services

import (
	"context"
	"fmt"

	"github.com/shopstack/core/internal/domain/entities"
	"github.com/shopstack/core/internal/infrastructure/logger"
	"github.com/shopstack/core/internal/ports"
)

// BasketService handles shopping basket operations
type BasketService struct {
	basket ports.BasketRepository
	logger *logger.Logger
}

// NewBasketService creates a new basket service
func NewBasketService(basket ports.BasketRepository, logger *logger.Logger) *BasketService {
	return &BasketService{
		basket: basket,
		logger: logger,
	}
}

// ListEntries returns the basket collection verbatim
func (s *BasketService) ListEntries(ctx context.Context) []entities.BasketEntry {
	return s.basket.List(ctx)
}

// RemoveEntry filters out every entry whose id equals id and persists the
// result. Removing an id that is not present succeeds and leaves the
// collection unchanged.
func (s *BasketService) RemoveEntry(ctx context.Context, id string) error {
	entries := s.basket.List(ctx)

	remaining := make([]entities.BasketEntry, 0, len(entries))
	for _, entry := range entries {
		if entry.ID() != id {
			remaining = append(remaining, entry)
		}
	}

	if err := s.basket.Save(ctx, remaining); err != nil {
		return fmt.Errorf("failed to save basket: %w", err)
	}

	if len(remaining) == len(entries) {
		s.logger.Debugw("No basket entry matched", "id", id)
	} else {
		s.logger.Info("Basket entry removed", "id", id)
	}

	return nil
}

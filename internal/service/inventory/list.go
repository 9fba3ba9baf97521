package inventory

import (
	"context"
	"fmt"

	"github.com/carla-io/inventory-backend/internal/domain"
)

// List returns every component in the inventory, newest first.
func (s *Service) List(ctx context.Context) ([]domain.Component, error) {
	components, err := s.components.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list components: %w", err)
	}
	return components, nil
}

// LowStock returns the components whose stock is at or below their minimum.
func (s *Service) LowStock(ctx context.Context) ([]domain.Component, error) {
	components, err := s.components.ListLowStock(ctx)
	if err != nil {
		return nil, fmt.Errorf("list low stock components: %w", err)
	}
	return components, nil
}

// ByCategory returns the components in a single category. Unknown categories
// are not an error; they simply match nothing.
func (s *Service) ByCategory(ctx context.Context, category string) ([]domain.Component, error) {
	components, err := s.components.ListByCategory(ctx, category)
	if err != nil {
		return nil, fmt.Errorf("list components by category: %w", err)
	}
	return components, nil
}

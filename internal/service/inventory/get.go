package inventory

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/carla-io/inventory-backend/internal/domain"
)

// Get returns a single component by its id.
func (s *Service) Get(ctx context.Context, id uuid.UUID) (*domain.Component, error) {
	component, err := s.components.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get component: %w", err)
	}
	return component, nil
}

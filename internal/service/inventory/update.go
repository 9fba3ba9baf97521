package inventory

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/carla-io/inventory-backend/internal/domain"
)

// Update applies a partial update to a component. When either stock level
// changes the stock status is recomputed from the merged values; an update
// that touches neither leaves the status alone.
func (s *Service) Update(ctx context.Context, id uuid.UUID, input UpdateComponentInput) (*domain.Component, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	params := input.params()

	if params.Stock != nil || params.MinStock != nil {
		current, err := s.components.GetByID(ctx, id)
		if err != nil {
			return nil, fmt.Errorf("get component: %w", err)
		}

		stock := current.Stock
		if params.Stock != nil {
			stock = *params.Stock
		}
		minStock := current.MinStock
		if params.MinStock != nil {
			minStock = *params.MinStock
		}

		status := domain.DeriveStockStatus(stock, minStock)
		params.Status = &status
	}

	updated, err := s.components.Update(ctx, id, params)
	if err != nil {
		return nil, fmt.Errorf("update component: %w", err)
	}

	s.log.InfoContext(ctx, "component updated",
		slog.String("component_id", id.String()),
	)

	return updated, nil
}

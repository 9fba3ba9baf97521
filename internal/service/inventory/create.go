package inventory

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/carla-io/inventory-backend/internal/domain"
)

// Create validates and stores a new component. Stock status is derived from
// the stock levels, never taken from the client.
func (s *Service) Create(ctx context.Context, input CreateComponentInput) (*domain.Component, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	component := &domain.Component{
		Name:           strings.TrimSpace(input.Name),
		Category:       domain.Category(input.Category),
		Stock:          input.Stock.Value,
		MinStock:       input.MinStock.Value,
		Specifications: input.Specifications,
		Supplier:       strings.TrimSpace(input.Supplier),
		Status:         domain.DeriveStockStatus(input.Stock.Value, input.MinStock.Value),
	}

	created, err := s.components.Insert(ctx, component)
	if err != nil {
		return nil, fmt.Errorf("insert component: %w", err)
	}

	s.log.InfoContext(ctx, "component added",
		slog.String("component_id", created.ID.String()),
		slog.String("name", created.Name),
		slog.String("category", created.Category.String()),
	)

	return created, nil
}

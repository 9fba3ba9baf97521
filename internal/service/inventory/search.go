package inventory

import (
	"context"
	"fmt"

	"github.com/carla-io/inventory-backend/internal/domain"
)

// Search returns the components matching a free-text query against name,
// category, supplier and specifications.
func (s *Service) Search(ctx context.Context, query string) ([]domain.Component, error) {
	if query == "" {
		return nil, domain.NewValidationError("q", "search query is required")
	}

	components, err := s.components.Search(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("search components: %w", err)
	}
	return components, nil
}

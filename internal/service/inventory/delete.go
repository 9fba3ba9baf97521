package inventory

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
)

// Delete removes a component from the inventory.
func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.components.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete component: %w", err)
	}

	s.log.InfoContext(ctx, "component deleted",
		slog.String("component_id", id.String()),
	)

	return nil
}

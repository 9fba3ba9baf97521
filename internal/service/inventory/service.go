package inventory

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/carla-io/inventory-backend/internal/domain"
)

type componentRepo interface {
	Insert(ctx context.Context, component *domain.Component) (*domain.Component, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Component, error)
	List(ctx context.Context) ([]domain.Component, error)
	ListLowStock(ctx context.Context) ([]domain.Component, error)
	ListByCategory(ctx context.Context, category string) ([]domain.Component, error)
	Search(ctx context.Context, query string) ([]domain.Component, error)
	Update(ctx context.Context, id uuid.UUID, params domain.ComponentUpdateParams) (*domain.Component, error)
	Delete(ctx context.Context, id uuid.UUID) error
	Totals(ctx context.Context) (domain.StockTotals, error)
	CategoryBreakdown(ctx context.Context) ([]domain.CategoryStat, error)
	SupplierPerformance(ctx context.Context) ([]domain.SupplierStat, error)
	UsageTrends(ctx context.Context) ([]domain.MonthlyUsage, error)
}

// Service implements inventory use cases on top of the component store.
type Service struct {
	log        *slog.Logger
	components componentRepo
}

func NewService(log *slog.Logger, components componentRepo) *Service {
	return &Service{
		log:        log,
		components: components,
	}
}

package rest

import (
	"context"
	"log/slog"
	"net/http"
	"testing"

	"github.com/google/uuid"

	"github.com/carla-io/inventory-backend/internal/config"
	"github.com/carla-io/inventory-backend/internal/domain"
	"github.com/carla-io/inventory-backend/internal/service/auth"
	"github.com/carla-io/inventory-backend/internal/service/inventory"
)

type inventoryServiceMock struct {
	CreateFunc     func(ctx context.Context, input inventory.CreateComponentInput) (*domain.Component, error)
	GetFunc        func(ctx context.Context, id uuid.UUID) (*domain.Component, error)
	ListFunc       func(ctx context.Context) ([]domain.Component, error)
	LowStockFunc   func(ctx context.Context) ([]domain.Component, error)
	ByCategoryFunc func(ctx context.Context, category string) ([]domain.Component, error)
	SearchFunc     func(ctx context.Context, query string) ([]domain.Component, error)
	UpdateFunc     func(ctx context.Context, id uuid.UUID, input inventory.UpdateComponentInput) (*domain.Component, error)
	DeleteFunc     func(ctx context.Context, id uuid.UUID) error
}

func (m *inventoryServiceMock) Create(ctx context.Context, input inventory.CreateComponentInput) (*domain.Component, error) {
	return m.CreateFunc(ctx, input)
}

func (m *inventoryServiceMock) Get(ctx context.Context, id uuid.UUID) (*domain.Component, error) {
	return m.GetFunc(ctx, id)
}

func (m *inventoryServiceMock) List(ctx context.Context) ([]domain.Component, error) {
	return m.ListFunc(ctx)
}

func (m *inventoryServiceMock) LowStock(ctx context.Context) ([]domain.Component, error) {
	return m.LowStockFunc(ctx)
}

func (m *inventoryServiceMock) ByCategory(ctx context.Context, category string) ([]domain.Component, error) {
	return m.ByCategoryFunc(ctx, category)
}

func (m *inventoryServiceMock) Search(ctx context.Context, query string) ([]domain.Component, error) {
	return m.SearchFunc(ctx, query)
}

func (m *inventoryServiceMock) Update(ctx context.Context, id uuid.UUID, input inventory.UpdateComponentInput) (*domain.Component, error) {
	return m.UpdateFunc(ctx, id, input)
}

func (m *inventoryServiceMock) Delete(ctx context.Context, id uuid.UUID) error {
	return m.DeleteFunc(ctx, id)
}

type reportsServiceMock struct {
	StatisticsFunc          func(ctx context.Context) (*domain.Statistics, error)
	StockSummaryFunc        func(ctx context.Context) (*domain.StockSummary, error)
	CategoryBreakdownFunc   func(ctx context.Context) ([]domain.CategoryStat, error)
	SupplierPerformanceFunc func(ctx context.Context) ([]domain.SupplierStat, error)
	UsageTrendsFunc         func(ctx context.Context) ([]domain.MonthlyUsage, error)
	FullReportFunc          func(ctx context.Context) (*domain.FullReport, error)
}

func (m *reportsServiceMock) Statistics(ctx context.Context) (*domain.Statistics, error) {
	return m.StatisticsFunc(ctx)
}

func (m *reportsServiceMock) StockSummary(ctx context.Context) (*domain.StockSummary, error) {
	return m.StockSummaryFunc(ctx)
}

func (m *reportsServiceMock) CategoryBreakdown(ctx context.Context) ([]domain.CategoryStat, error) {
	return m.CategoryBreakdownFunc(ctx)
}

func (m *reportsServiceMock) SupplierPerformance(ctx context.Context) ([]domain.SupplierStat, error) {
	return m.SupplierPerformanceFunc(ctx)
}

func (m *reportsServiceMock) UsageTrends(ctx context.Context) ([]domain.MonthlyUsage, error) {
	return m.UsageTrendsFunc(ctx)
}

func (m *reportsServiceMock) FullReport(ctx context.Context) (*domain.FullReport, error) {
	return m.FullReportFunc(ctx)
}

type authServiceMock struct {
	RegisterFunc func(ctx context.Context, input auth.Credentials) (*domain.User, error)
	LoginFunc    func(ctx context.Context, input auth.Credentials) (*domain.User, error)
}

func (m *authServiceMock) Register(ctx context.Context, input auth.Credentials) (*domain.User, error) {
	return m.RegisterFunc(ctx, input)
}

func (m *authServiceMock) Login(ctx context.Context, input auth.Credentials) (*domain.User, error) {
	return m.LoginFunc(ctx, input)
}

// newTestRouter wires mocks into a full router so tests go through real
// routing, path values included.
func newTestRouter(t *testing.T, inv *inventoryServiceMock, rep *reportsServiceMock, authSvc *authServiceMock) *http.ServeMux {
	t.Helper()

	logger := slog.Default()
	return NewRouter(Handlers{
		Inventory: NewInventoryHandler(inv, logger),
		Reports:   NewReportsHandler(rep, logger),
		Auth:      NewAuthHandler(authSvc, logger),
		Health:    NewHealthHandler(&dbPingerMock{}, "test"),
	}, config.MetricsConfig{Enabled: false})
}

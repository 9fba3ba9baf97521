package rest

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/carla-io/inventory-backend/internal/config"
)

// Handlers groups everything the router mounts.
type Handlers struct {
	Inventory *InventoryHandler
	Reports   *ReportsHandler
	Auth      *AuthHandler
	Health    *HealthHandler
}

// NewRouter mounts all routes on a ServeMux. Method matching and path
// parameters use the net/http patterns.
func NewRouter(h Handlers, metrics config.MetricsConfig) *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("POST /add-electronics", h.Inventory.Create)
	mux.HandleFunc("GET /all-items", h.Inventory.List)
	mux.HandleFunc("GET /items/{id}", h.Inventory.Get)
	mux.HandleFunc("PUT /items/{id}", h.Inventory.Update)
	mux.HandleFunc("DELETE /items/{id}", h.Inventory.Delete)
	mux.HandleFunc("GET /low-stock", h.Inventory.LowStock)
	mux.HandleFunc("GET /category/{category}", h.Inventory.ByCategory)
	mux.HandleFunc("GET /search", h.Inventory.Search)

	mux.HandleFunc("GET /stats", h.Reports.Statistics)
	mux.HandleFunc("GET /reports/stock-summary", h.Reports.StockSummary)
	mux.HandleFunc("GET /reports/category-breakdown", h.Reports.CategoryBreakdown)
	mux.HandleFunc("GET /reports/supplier-performance", h.Reports.SupplierPerformance)
	mux.HandleFunc("GET /reports/usage-trends", h.Reports.UsageTrends)
	mux.HandleFunc("GET /reports/full-report", h.Reports.FullReport)

	mux.HandleFunc("POST /auth/register", h.Auth.Register)
	mux.HandleFunc("POST /auth/login", h.Auth.Login)

	mux.HandleFunc("GET /live", h.Health.Live)
	mux.HandleFunc("GET /ready", h.Health.Ready)
	mux.HandleFunc("GET /health", h.Health.Health)

	if metrics.Enabled {
		mux.Handle("GET /metrics", promhttp.Handler())
	}

	return mux
}

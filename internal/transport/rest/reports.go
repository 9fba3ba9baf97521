package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/carla-io/inventory-backend/internal/domain"
)

// reportsService defines the minimal interface needed by ReportsHandler.
type reportsService interface {
	Statistics(ctx context.Context) (*domain.Statistics, error)
	StockSummary(ctx context.Context) (*domain.StockSummary, error)
	CategoryBreakdown(ctx context.Context) ([]domain.CategoryStat, error)
	SupplierPerformance(ctx context.Context) ([]domain.SupplierStat, error)
	UsageTrends(ctx context.Context) ([]domain.MonthlyUsage, error)
	FullReport(ctx context.Context) (*domain.FullReport, error)
}

// ReportsHandler serves the statistics and reporting endpoints.
type ReportsHandler struct {
	svc reportsService
	log *slog.Logger
}

// NewReportsHandler creates a ReportsHandler.
func NewReportsHandler(svc reportsService, logger *slog.Logger) *ReportsHandler {
	return &ReportsHandler{svc: svc, log: logger.With("handler", "reports")}
}

type statisticsResponse struct {
	TotalComponents int            `json:"total_components"`
	LowStockItems   int            `json:"low_stock_items"`
	TotalStock      int            `json:"total_stock"`
	Categories      map[string]int `json:"categories"`
}

type stockSummaryResponse struct {
	TotalItems    int `json:"total_items"`
	LowStockItems int `json:"low_stock_items"`
	InStockItems  int `json:"in_stock_items"`
	TotalStock    int `json:"total_stock_quantity"`
}

type categoryStatResponse struct {
	Category   string `json:"category"`
	Count      int    `json:"count"`
	TotalStock int    `json:"total_stock"`
}

type supplierStatResponse struct {
	Supplier      string `json:"supplier"`
	TotalItems    int    `json:"total_items"`
	TotalStock    int    `json:"total_stock"`
	LowStockItems int    `json:"low_stock_items"`
}

type monthlyUsageResponse struct {
	Year       int `json:"year"`
	Month      int `json:"month"`
	ItemsAdded int `json:"items_added"`
}

type fullReportResponse struct {
	Overview   stockOverviewResponse  `json:"overview"`
	Categories []categoryStatResponse `json:"categories"`
	Suppliers  []supplierStatResponse `json:"suppliers"`
}

type stockOverviewResponse struct {
	TotalItems    int `json:"total_items"`
	LowStockItems int `json:"low_stock_items"`
	TotalStock    int `json:"total_stock"`
}

// Statistics handles GET /stats.
func (h *ReportsHandler) Statistics(w http.ResponseWriter, r *http.Request) {
	stats, err := h.svc.Statistics(r.Context())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, statisticsResponse{
		TotalComponents: stats.TotalComponents,
		LowStockItems:   stats.LowStockItems,
		TotalStock:      stats.TotalStock,
		Categories:      stats.Categories,
	})
}

// StockSummary handles GET /reports/stock-summary.
func (h *ReportsHandler) StockSummary(w http.ResponseWriter, r *http.Request) {
	summary, err := h.svc.StockSummary(r.Context())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, stockSummaryResponse{
		TotalItems:    summary.TotalItems,
		LowStockItems: summary.LowStockItems,
		InStockItems:  summary.InStockItems,
		TotalStock:    summary.TotalStock,
	})
}

// CategoryBreakdown handles GET /reports/category-breakdown.
func (h *ReportsHandler) CategoryBreakdown(w http.ResponseWriter, r *http.Request) {
	breakdown, err := h.svc.CategoryBreakdown(r.Context())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"categories": toCategoryStatResponses(breakdown),
	})
}

// SupplierPerformance handles GET /reports/supplier-performance.
func (h *ReportsHandler) SupplierPerformance(w http.ResponseWriter, r *http.Request) {
	suppliers, err := h.svc.SupplierPerformance(r.Context())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"suppliers": toSupplierStatResponses(suppliers),
	})
}

// UsageTrends handles GET /reports/usage-trends.
func (h *ReportsHandler) UsageTrends(w http.ResponseWriter, r *http.Request) {
	trends, err := h.svc.UsageTrends(r.Context())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	months := make([]monthlyUsageResponse, len(trends))
	for i, m := range trends {
		months[i] = monthlyUsageResponse{Year: m.Year, Month: m.Month, ItemsAdded: m.ItemsAdded}
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"monthly_additions": months,
	})
}

// FullReport handles GET /reports/full-report.
func (h *ReportsHandler) FullReport(w http.ResponseWriter, r *http.Request) {
	report, err := h.svc.FullReport(r.Context())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, fullReportResponse{
		Overview: stockOverviewResponse{
			TotalItems:    report.Overview.TotalItems,
			LowStockItems: report.Overview.LowStockItems,
			TotalStock:    report.Overview.TotalStock,
		},
		Categories: toCategoryStatResponses(report.Categories),
		Suppliers:  toSupplierStatResponses(report.Suppliers),
	})
}

func toCategoryStatResponses(stats []domain.CategoryStat) []categoryStatResponse {
	out := make([]categoryStatResponse, len(stats))
	for i, s := range stats {
		out[i] = categoryStatResponse{Category: s.Category, Count: s.Count, TotalStock: s.TotalStock}
	}
	return out
}

func toSupplierStatResponses(stats []domain.SupplierStat) []supplierStatResponse {
	out := make([]supplierStatResponse, len(stats))
	for i, s := range stats {
		out[i] = supplierStatResponse{
			Supplier:      s.Supplier,
			TotalItems:    s.TotalItems,
			TotalStock:    s.TotalStock,
			LowStockItems: s.LowStockItems,
		}
	}
	return out
}

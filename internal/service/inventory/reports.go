package inventory

import (
	"context"
	"fmt"

	"github.com/carla-io/inventory-backend/internal/domain"
)

// Statistics returns the dashboard counters: totals plus a per-category
// component count.
func (s *Service) Statistics(ctx context.Context) (*domain.Statistics, error) {
	totals, err := s.components.Totals(ctx)
	if err != nil {
		return nil, fmt.Errorf("component totals: %w", err)
	}

	breakdown, err := s.components.CategoryBreakdown(ctx)
	if err != nil {
		return nil, fmt.Errorf("category breakdown: %w", err)
	}

	categories := make(map[string]int, len(breakdown))
	for _, c := range breakdown {
		categories[c.Category] = c.Count
	}

	return &domain.Statistics{
		TotalComponents: totals.TotalItems,
		LowStockItems:   totals.LowStockItems,
		TotalStock:      totals.TotalStock,
		Categories:      categories,
	}, nil
}

// StockSummary returns overall stock counters including the number of items
// that are not low on stock.
func (s *Service) StockSummary(ctx context.Context) (*domain.StockSummary, error) {
	totals, err := s.components.Totals(ctx)
	if err != nil {
		return nil, fmt.Errorf("component totals: %w", err)
	}

	inStock := totals.TotalItems - totals.LowStockItems
	if inStock < 0 {
		inStock = 0
	}

	return &domain.StockSummary{
		TotalItems:    totals.TotalItems,
		LowStockItems: totals.LowStockItems,
		InStockItems:  inStock,
		TotalStock:    totals.TotalStock,
	}, nil
}

// CategoryBreakdown returns per-category item counts and stock totals.
func (s *Service) CategoryBreakdown(ctx context.Context) ([]domain.CategoryStat, error) {
	breakdown, err := s.components.CategoryBreakdown(ctx)
	if err != nil {
		return nil, fmt.Errorf("category breakdown: %w", err)
	}
	return breakdown, nil
}

// SupplierPerformance returns per-supplier item counts, stock totals and
// low stock counts.
func (s *Service) SupplierPerformance(ctx context.Context) ([]domain.SupplierStat, error) {
	suppliers, err := s.components.SupplierPerformance(ctx)
	if err != nil {
		return nil, fmt.Errorf("supplier performance: %w", err)
	}
	return suppliers, nil
}

// UsageTrends returns the number of components added per calendar month.
func (s *Service) UsageTrends(ctx context.Context) ([]domain.MonthlyUsage, error) {
	trends, err := s.components.UsageTrends(ctx)
	if err != nil {
		return nil, fmt.Errorf("usage trends: %w", err)
	}
	return trends, nil
}

// FullReport combines the overview totals with the category and supplier
// breakdowns in a single response.
func (s *Service) FullReport(ctx context.Context) (*domain.FullReport, error) {
	totals, err := s.components.Totals(ctx)
	if err != nil {
		return nil, fmt.Errorf("component totals: %w", err)
	}

	categories, err := s.components.CategoryBreakdown(ctx)
	if err != nil {
		return nil, fmt.Errorf("category breakdown: %w", err)
	}

	suppliers, err := s.components.SupplierPerformance(ctx)
	if err != nil {
		return nil, fmt.Errorf("supplier performance: %w", err)
	}

	return &domain.FullReport{
		Overview:   totals,
		Categories: categories,
		Suppliers:  suppliers,
	}, nil
}

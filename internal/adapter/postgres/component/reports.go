package component

import (
	"context"
	"fmt"

	"github.com/carla-io/inventory-backend/internal/domain"
)

// ---------------------------------------------------------------------------
// Aggregation queries. All of these are read-only GROUP BY aggregates over
// the full collection: an empty table yields zero totals and empty slices,
// never an error. Grouping keys are the stored values, no normalization.
// ---------------------------------------------------------------------------

const totalsSQL = `
SELECT
    count(*),
    count(*) FILTER (WHERE stock <= min_stock),
    COALESCE(SUM(stock), 0)
FROM components`

const categoryBreakdownSQL = `
SELECT category, count(*), COALESCE(SUM(stock), 0)
FROM components
GROUP BY category
ORDER BY count(*) DESC, category ASC`

const supplierPerformanceSQL = `
SELECT
    supplier,
    count(*),
    COALESCE(SUM(stock), 0),
    count(*) FILTER (WHERE stock <= min_stock)
FROM components
GROUP BY supplier
ORDER BY count(*) DESC, supplier ASC`

const usageTrendsSQL = `
SELECT
    EXTRACT(YEAR FROM date_added)::int,
    EXTRACT(MONTH FROM date_added)::int,
    count(*)
FROM components
GROUP BY 1, 2
ORDER BY 1 ASC, 2 ASC`

// Totals returns the collection-wide counters shared by the statistics and
// stock summary reports.
func (r *Repo) Totals(ctx context.Context) (domain.StockTotals, error) {
	var t domain.StockTotals

	err := r.pool.QueryRow(ctx, totalsSQL).Scan(&t.TotalItems, &t.LowStockItems, &t.TotalStock)
	if err != nil {
		return domain.StockTotals{}, fmt.Errorf("totals: %w", err)
	}

	return t, nil
}

// CategoryBreakdown returns count and summed stock per distinct category.
func (r *Repo) CategoryBreakdown(ctx context.Context) ([]domain.CategoryStat, error) {
	rows, err := r.pool.Query(ctx, categoryBreakdownSQL)
	if err != nil {
		return nil, fmt.Errorf("category breakdown: %w", err)
	}
	defer rows.Close()

	result := []domain.CategoryStat{}
	for rows.Next() {
		var s domain.CategoryStat
		if err := rows.Scan(&s.Category, &s.Count, &s.TotalStock); err != nil {
			return nil, fmt.Errorf("category breakdown: %w", err)
		}
		result = append(result, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("category breakdown: %w", err)
	}

	return result, nil
}

// SupplierPerformance returns item count, summed stock, and low-stock count
// per distinct supplier.
func (r *Repo) SupplierPerformance(ctx context.Context) ([]domain.SupplierStat, error) {
	rows, err := r.pool.Query(ctx, supplierPerformanceSQL)
	if err != nil {
		return nil, fmt.Errorf("supplier performance: %w", err)
	}
	defer rows.Close()

	result := []domain.SupplierStat{}
	for rows.Next() {
		var s domain.SupplierStat
		if err := rows.Scan(&s.Supplier, &s.TotalItems, &s.TotalStock, &s.LowStockItems); err != nil {
			return nil, fmt.Errorf("supplier performance: %w", err)
		}
		result = append(result, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("supplier performance: %w", err)
	}

	return result, nil
}

// UsageTrends returns the number of items added per (year, month) of
// date_added, ascending by year then month.
func (r *Repo) UsageTrends(ctx context.Context) ([]domain.MonthlyUsage, error) {
	rows, err := r.pool.Query(ctx, usageTrendsSQL)
	if err != nil {
		return nil, fmt.Errorf("usage trends: %w", err)
	}
	defer rows.Close()

	result := []domain.MonthlyUsage{}
	for rows.Next() {
		var u domain.MonthlyUsage
		if err := rows.Scan(&u.Year, &u.Month, &u.ItemsAdded); err != nil {
			return nil, fmt.Errorf("usage trends: %w", err)
		}
		result = append(result, u)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("usage trends: %w", err)
	}

	return result, nil
}

package domain

// Statistics is the top-level inventory overview.
type Statistics struct {
	TotalComponents int
	LowStockItems   int
	TotalStock      int
	Categories      map[string]int
}

// StockTotals is the single-row aggregate shared by statistics and summaries.
type StockTotals struct {
	TotalItems    int
	LowStockItems int
	TotalStock    int
}

// StockSummary extends StockTotals with the in-stock complement.
type StockSummary struct {
	TotalItems    int
	LowStockItems int
	InStockItems  int
	TotalStock    int
}

// CategoryStat is one row of the per-category breakdown.
type CategoryStat struct {
	Category   string
	Count      int
	TotalStock int
}

// SupplierStat is one row of the per-supplier breakdown.
type SupplierStat struct {
	Supplier      string
	TotalItems    int
	TotalStock    int
	LowStockItems int
}

// MonthlyUsage counts items added during one (year, month) bucket of
// date_added.
type MonthlyUsage struct {
	Year       int
	Month      int
	ItemsAdded int
}

// FullReport is the composite report: overview plus category and supplier
// breakdowns.
type FullReport struct {
	Overview   StockTotals
	Categories []CategoryStat
	Suppliers  []SupplierStat
}

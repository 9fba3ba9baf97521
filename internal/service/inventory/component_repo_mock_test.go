package inventory

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/carla-io/inventory-backend/internal/domain"
)

var _ componentRepo = &componentRepoMock{}

type componentRepoMock struct {
	InsertFunc              func(ctx context.Context, component *domain.Component) (*domain.Component, error)
	GetByIDFunc             func(ctx context.Context, id uuid.UUID) (*domain.Component, error)
	ListFunc                func(ctx context.Context) ([]domain.Component, error)
	ListLowStockFunc        func(ctx context.Context) ([]domain.Component, error)
	ListByCategoryFunc      func(ctx context.Context, category string) ([]domain.Component, error)
	SearchFunc              func(ctx context.Context, query string) ([]domain.Component, error)
	UpdateFunc              func(ctx context.Context, id uuid.UUID, params domain.ComponentUpdateParams) (*domain.Component, error)
	DeleteFunc              func(ctx context.Context, id uuid.UUID) error
	TotalsFunc              func(ctx context.Context) (domain.StockTotals, error)
	CategoryBreakdownFunc   func(ctx context.Context) ([]domain.CategoryStat, error)
	SupplierPerformanceFunc func(ctx context.Context) ([]domain.SupplierStat, error)
	UsageTrendsFunc         func(ctx context.Context) ([]domain.MonthlyUsage, error)

	calls struct {
		Insert []struct {
			Ctx       context.Context
			Component *domain.Component
		}
		GetByID []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
		List []struct {
			Ctx context.Context
		}
		ListLowStock []struct {
			Ctx context.Context
		}
		ListByCategory []struct {
			Ctx      context.Context
			Category string
		}
		Search []struct {
			Ctx   context.Context
			Query string
		}
		Update []struct {
			Ctx    context.Context
			ID     uuid.UUID
			Params domain.ComponentUpdateParams
		}
		Delete []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
		Totals []struct {
			Ctx context.Context
		}
		CategoryBreakdown []struct {
			Ctx context.Context
		}
		SupplierPerformance []struct {
			Ctx context.Context
		}
		UsageTrends []struct {
			Ctx context.Context
		}
	}
	lockInsert              sync.RWMutex
	lockGetByID             sync.RWMutex
	lockList                sync.RWMutex
	lockListLowStock        sync.RWMutex
	lockListByCategory      sync.RWMutex
	lockSearch              sync.RWMutex
	lockUpdate              sync.RWMutex
	lockDelete              sync.RWMutex
	lockTotals              sync.RWMutex
	lockCategoryBreakdown   sync.RWMutex
	lockSupplierPerformance sync.RWMutex
	lockUsageTrends         sync.RWMutex
}

func (mock *componentRepoMock) Insert(ctx context.Context, component *domain.Component) (*domain.Component, error) {
	if mock.InsertFunc == nil {
		panic("componentRepoMock.InsertFunc: method is nil but componentRepo.Insert was just called")
	}
	callInfo := struct {
		Ctx       context.Context
		Component *domain.Component
	}{Ctx: ctx, Component: component}
	mock.lockInsert.Lock()
	mock.calls.Insert = append(mock.calls.Insert, callInfo)
	mock.lockInsert.Unlock()
	return mock.InsertFunc(ctx, component)
}

func (mock *componentRepoMock) InsertCalls() []struct {
	Ctx       context.Context
	Component *domain.Component
} {
	mock.lockInsert.RLock()
	calls := mock.calls.Insert
	mock.lockInsert.RUnlock()
	return calls
}

func (mock *componentRepoMock) GetByID(ctx context.Context, id uuid.UUID) (*domain.Component, error) {
	if mock.GetByIDFunc == nil {
		panic("componentRepoMock.GetByIDFunc: method is nil but componentRepo.GetByID was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  uuid.UUID
	}{Ctx: ctx, ID: id}
	mock.lockGetByID.Lock()
	mock.calls.GetByID = append(mock.calls.GetByID, callInfo)
	mock.lockGetByID.Unlock()
	return mock.GetByIDFunc(ctx, id)
}

func (mock *componentRepoMock) GetByIDCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	mock.lockGetByID.RLock()
	calls := mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}

func (mock *componentRepoMock) List(ctx context.Context) ([]domain.Component, error) {
	if mock.ListFunc == nil {
		panic("componentRepoMock.ListFunc: method is nil but componentRepo.List was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{Ctx: ctx}
	mock.lockList.Lock()
	mock.calls.List = append(mock.calls.List, callInfo)
	mock.lockList.Unlock()
	return mock.ListFunc(ctx)
}

func (mock *componentRepoMock) ListCalls() []struct {
	Ctx context.Context
} {
	mock.lockList.RLock()
	calls := mock.calls.List
	mock.lockList.RUnlock()
	return calls
}

func (mock *componentRepoMock) ListLowStock(ctx context.Context) ([]domain.Component, error) {
	if mock.ListLowStockFunc == nil {
		panic("componentRepoMock.ListLowStockFunc: method is nil but componentRepo.ListLowStock was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{Ctx: ctx}
	mock.lockListLowStock.Lock()
	mock.calls.ListLowStock = append(mock.calls.ListLowStock, callInfo)
	mock.lockListLowStock.Unlock()
	return mock.ListLowStockFunc(ctx)
}

func (mock *componentRepoMock) ListLowStockCalls() []struct {
	Ctx context.Context
} {
	mock.lockListLowStock.RLock()
	calls := mock.calls.ListLowStock
	mock.lockListLowStock.RUnlock()
	return calls
}

func (mock *componentRepoMock) ListByCategory(ctx context.Context, category string) ([]domain.Component, error) {
	if mock.ListByCategoryFunc == nil {
		panic("componentRepoMock.ListByCategoryFunc: method is nil but componentRepo.ListByCategory was just called")
	}
	callInfo := struct {
		Ctx      context.Context
		Category string
	}{Ctx: ctx, Category: category}
	mock.lockListByCategory.Lock()
	mock.calls.ListByCategory = append(mock.calls.ListByCategory, callInfo)
	mock.lockListByCategory.Unlock()
	return mock.ListByCategoryFunc(ctx, category)
}

func (mock *componentRepoMock) ListByCategoryCalls() []struct {
	Ctx      context.Context
	Category string
} {
	mock.lockListByCategory.RLock()
	calls := mock.calls.ListByCategory
	mock.lockListByCategory.RUnlock()
	return calls
}

func (mock *componentRepoMock) Search(ctx context.Context, query string) ([]domain.Component, error) {
	if mock.SearchFunc == nil {
		panic("componentRepoMock.SearchFunc: method is nil but componentRepo.Search was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Query string
	}{Ctx: ctx, Query: query}
	mock.lockSearch.Lock()
	mock.calls.Search = append(mock.calls.Search, callInfo)
	mock.lockSearch.Unlock()
	return mock.SearchFunc(ctx, query)
}

func (mock *componentRepoMock) SearchCalls() []struct {
	Ctx   context.Context
	Query string
} {
	mock.lockSearch.RLock()
	calls := mock.calls.Search
	mock.lockSearch.RUnlock()
	return calls
}

func (mock *componentRepoMock) Update(ctx context.Context, id uuid.UUID, params domain.ComponentUpdateParams) (*domain.Component, error) {
	if mock.UpdateFunc == nil {
		panic("componentRepoMock.UpdateFunc: method is nil but componentRepo.Update was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		ID     uuid.UUID
		Params domain.ComponentUpdateParams
	}{Ctx: ctx, ID: id, Params: params}
	mock.lockUpdate.Lock()
	mock.calls.Update = append(mock.calls.Update, callInfo)
	mock.lockUpdate.Unlock()
	return mock.UpdateFunc(ctx, id, params)
}

func (mock *componentRepoMock) UpdateCalls() []struct {
	Ctx    context.Context
	ID     uuid.UUID
	Params domain.ComponentUpdateParams
} {
	mock.lockUpdate.RLock()
	calls := mock.calls.Update
	mock.lockUpdate.RUnlock()
	return calls
}

func (mock *componentRepoMock) Delete(ctx context.Context, id uuid.UUID) error {
	if mock.DeleteFunc == nil {
		panic("componentRepoMock.DeleteFunc: method is nil but componentRepo.Delete was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  uuid.UUID
	}{Ctx: ctx, ID: id}
	mock.lockDelete.Lock()
	mock.calls.Delete = append(mock.calls.Delete, callInfo)
	mock.lockDelete.Unlock()
	return mock.DeleteFunc(ctx, id)
}

func (mock *componentRepoMock) DeleteCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	mock.lockDelete.RLock()
	calls := mock.calls.Delete
	mock.lockDelete.RUnlock()
	return calls
}

func (mock *componentRepoMock) Totals(ctx context.Context) (domain.StockTotals, error) {
	if mock.TotalsFunc == nil {
		panic("componentRepoMock.TotalsFunc: method is nil but componentRepo.Totals was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{Ctx: ctx}
	mock.lockTotals.Lock()
	mock.calls.Totals = append(mock.calls.Totals, callInfo)
	mock.lockTotals.Unlock()
	return mock.TotalsFunc(ctx)
}

func (mock *componentRepoMock) TotalsCalls() []struct {
	Ctx context.Context
} {
	mock.lockTotals.RLock()
	calls := mock.calls.Totals
	mock.lockTotals.RUnlock()
	return calls
}

func (mock *componentRepoMock) CategoryBreakdown(ctx context.Context) ([]domain.CategoryStat, error) {
	if mock.CategoryBreakdownFunc == nil {
		panic("componentRepoMock.CategoryBreakdownFunc: method is nil but componentRepo.CategoryBreakdown was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{Ctx: ctx}
	mock.lockCategoryBreakdown.Lock()
	mock.calls.CategoryBreakdown = append(mock.calls.CategoryBreakdown, callInfo)
	mock.lockCategoryBreakdown.Unlock()
	return mock.CategoryBreakdownFunc(ctx)
}

func (mock *componentRepoMock) CategoryBreakdownCalls() []struct {
	Ctx context.Context
} {
	mock.lockCategoryBreakdown.RLock()
	calls := mock.calls.CategoryBreakdown
	mock.lockCategoryBreakdown.RUnlock()
	return calls
}

func (mock *componentRepoMock) SupplierPerformance(ctx context.Context) ([]domain.SupplierStat, error) {
	if mock.SupplierPerformanceFunc == nil {
		panic("componentRepoMock.SupplierPerformanceFunc: method is nil but componentRepo.SupplierPerformance was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{Ctx: ctx}
	mock.lockSupplierPerformance.Lock()
	mock.calls.SupplierPerformance = append(mock.calls.SupplierPerformance, callInfo)
	mock.lockSupplierPerformance.Unlock()
	return mock.SupplierPerformanceFunc(ctx)
}

func (mock *componentRepoMock) SupplierPerformanceCalls() []struct {
	Ctx context.Context
} {
	mock.lockSupplierPerformance.RLock()
	calls := mock.calls.SupplierPerformance
	mock.lockSupplierPerformance.RUnlock()
	return calls
}

func (mock *componentRepoMock) UsageTrends(ctx context.Context) ([]domain.MonthlyUsage, error) {
	if mock.UsageTrendsFunc == nil {
		panic("componentRepoMock.UsageTrendsFunc: method is nil but componentRepo.UsageTrends was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{Ctx: ctx}
	mock.lockUsageTrends.Lock()
	mock.calls.UsageTrends = append(mock.calls.UsageTrends, callInfo)
	mock.lockUsageTrends.Unlock()
	return mock.UsageTrendsFunc(ctx)
}

func (mock *componentRepoMock) UsageTrendsCalls() []struct {
	Ctx context.Context
} {
	mock.lockUsageTrends.RLock()
	calls := mock.calls.UsageTrends
	mock.lockUsageTrends.RUnlock()
	return calls
}

// Package component implements the inventory record store using PostgreSQL.
// It provides CRUD and query operations plus the read-only aggregation
// reports over the components table.
package component

import (
	"context"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/carla-io/inventory-backend/internal/adapter/postgres"
	"github.com/carla-io/inventory-backend/internal/domain"
)

// qb builds queries with PostgreSQL $n placeholders.
var qb = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

const componentColumns = "id, name, category, stock, min_stock, specifications, supplier, status, date_added, last_updated"

// Repo provides component persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new component repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// ---------------------------------------------------------------------------
// Raw SQL for fixed-shape queries
// ---------------------------------------------------------------------------

const insertSQL = `
INSERT INTO components (name, category, stock, min_stock, specifications, supplier, status)
VALUES ($1, $2, $3, $4, $5, $6, $7)
RETURNING ` + componentColumns

const getByIDSQL = `
SELECT ` + componentColumns + `
FROM components
WHERE id = $1`

const listSQL = `
SELECT ` + componentColumns + `
FROM components
ORDER BY date_added DESC`

const listLowStockSQL = `
SELECT ` + componentColumns + `
FROM components
WHERE stock <= min_stock
ORDER BY date_added DESC`

const listByCategorySQL = `
SELECT ` + componentColumns + `
FROM components
WHERE category = $1
ORDER BY date_added DESC`

const deleteSQL = `DELETE FROM components WHERE id = $1`

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Insert persists a new component. The id, date_added, and last_updated
// fields are assigned by the store and returned on the result.
func (r *Repo) Insert(ctx context.Context, c *domain.Component) (*domain.Component, error) {
	row := r.pool.QueryRow(ctx, insertSQL,
		c.Name, c.Category.String(), c.Stock, c.MinStock,
		c.Specifications, c.Supplier, c.Status.String(),
	)

	created, err := scanComponent(row)
	if err != nil {
		return nil, postgres.MapError(err, "component", uuid.Nil)
	}

	return created, nil
}

// Update applies a partial update: only non-nil params change, and
// last_updated is always stamped. The updated row is returned.
// Returns domain.ErrNotFound if no component matches the id.
func (r *Repo) Update(ctx context.Context, id uuid.UUID, params domain.ComponentUpdateParams) (*domain.Component, error) {
	b := qb.Update("components").Set("last_updated", time.Now().UTC())

	if params.Name != nil {
		b = b.Set("name", *params.Name)
	}
	if params.Category != nil {
		b = b.Set("category", params.Category.String())
	}
	if params.Stock != nil {
		b = b.Set("stock", *params.Stock)
	}
	if params.MinStock != nil {
		b = b.Set("min_stock", *params.MinStock)
	}
	if params.Specifications != nil {
		b = b.Set("specifications", *params.Specifications)
	}
	if params.Supplier != nil {
		b = b.Set("supplier", *params.Supplier)
	}
	if params.Status != nil {
		b = b.Set("status", params.Status.String())
	}

	query, args, err := b.Where(sq.Eq{"id": id}).
		Suffix("RETURNING " + componentColumns).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build update query: %w", err)
	}

	updated, err := scanComponent(r.pool.QueryRow(ctx, query, args...))
	if err != nil {
		return nil, postgres.MapError(err, "component", id)
	}

	return updated, nil
}

// Delete removes a component. Hard delete, no tombstone.
// Returns domain.ErrNotFound if no component matches the id.
func (r *Repo) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.pool.Exec(ctx, deleteSQL, id)
	if err != nil {
		return postgres.MapError(err, "component", id)
	}

	if tag.RowsAffected() == 0 {
		return fmt.Errorf("component %s: %w", id, domain.ErrNotFound)
	}

	return nil
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// GetByID returns a component by primary key.
// Returns domain.ErrNotFound if the component does not exist.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Component, error) {
	c, err := scanComponent(r.pool.QueryRow(ctx, getByIDSQL, id))
	if err != nil {
		return nil, postgres.MapError(err, "component", id)
	}

	return c, nil
}

// List returns all components, newest first.
// Returns an empty slice (not nil) when the collection is empty.
func (r *Repo) List(ctx context.Context) ([]domain.Component, error) {
	return r.queryComponents(ctx, listSQL)
}

// ListLowStock returns components where stock <= min_stock, newest first.
func (r *Repo) ListLowStock(ctx context.Context) ([]domain.Component, error) {
	return r.queryComponents(ctx, listLowStockSQL)
}

// ListByCategory returns components with an exact category match, newest
// first. Unknown categories simply yield an empty slice.
func (r *Repo) ListByCategory(ctx context.Context, category string) ([]domain.Component, error) {
	return r.queryComponents(ctx, listByCategorySQL, category)
}

// Search returns components where the query matches name, category,
// specifications, or supplier as a case-insensitive substring.
func (r *Repo) Search(ctx context.Context, query string) ([]domain.Component, error) {
	pattern := "%" + escapeLike(query) + "%"

	sql, args, err := qb.Select(componentColumns).
		From("components").
		Where(sq.Or{
			sq.ILike{"name": pattern},
			sq.ILike{"category": pattern},
			sq.ILike{"specifications": pattern},
			sq.ILike{"supplier": pattern},
		}).
		OrderBy("date_added DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build search query: %w", err)
	}

	return r.queryComponents(ctx, sql, args...)
}

// queryComponents runs a SELECT over componentColumns and scans all rows.
func (r *Repo) queryComponents(ctx context.Context, sql string, args ...any) ([]domain.Component, error) {
	rows, err := r.pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("query components: %w", err)
	}
	defer rows.Close()

	return scanComponents(rows)
}

// ---------------------------------------------------------------------------
// Row scanning helpers
// ---------------------------------------------------------------------------

// rowScanner is satisfied by both pgx.Row and pgx.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

// scanComponent scans a single componentColumns row into a domain.Component.
func scanComponent(row rowScanner) (*domain.Component, error) {
	var (
		c        domain.Component
		category string
		status   string
	)

	err := row.Scan(
		&c.ID, &c.Name, &category, &c.Stock, &c.MinStock,
		&c.Specifications, &c.Supplier, &status, &c.DateAdded, &c.LastUpdated,
	)
	if err != nil {
		return nil, err
	}

	c.Category = domain.Category(category)
	c.Status = domain.StockStatus(status)

	return &c, nil
}

// scanComponents scans all rows into a value slice, never returning nil.
func scanComponents(rows pgx.Rows) ([]domain.Component, error) {
	var result []domain.Component
	for rows.Next() {
		c, err := scanComponent(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, *c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	if result == nil {
		result = []domain.Component{}
	}

	return result, nil
}

// escapeLike escapes LIKE metacharacters so the user query is matched
// literally.
func escapeLike(s string) string {
	var out []byte
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '%', '_', '\\':
			out = append(out, '\\')
		}
		out = append(out, s[i])
	}
	return string(out)
}

package testhelper

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/carla-io/inventory-backend/internal/domain"
)

// uniqueSuffix returns a short unique string for generating non-conflicting test data.
func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

// SeedComponent inserts a component row directly, bypassing the repository.
// Zero-value fields get sensible defaults; Status is derived from the stock
// fields. Returns the stored domain.Component.
func SeedComponent(t *testing.T, pool *pgxpool.Pool, c domain.Component) domain.Component {
	t.Helper()
	ctx := context.Background()

	if c.Name == "" {
		c.Name = "Component " + uniqueSuffix()
	}
	if c.Category == "" {
		c.Category = domain.CategoryOther
	}
	if c.Supplier == "" {
		c.Supplier = "Supplier " + uniqueSuffix()
	}
	c.Status = domain.DeriveStockStatus(c.Stock, c.MinStock)

	if c.DateAdded.IsZero() {
		c.DateAdded = time.Now().UTC()
	}
	if c.LastUpdated.IsZero() {
		c.LastUpdated = c.DateAdded
	}

	err := pool.QueryRow(ctx,
		`INSERT INTO components (name, category, stock, min_stock, specifications, supplier, status, date_added, last_updated)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		 RETURNING id`,
		c.Name, c.Category.String(), c.Stock, c.MinStock, c.Specifications,
		c.Supplier, c.Status.String(), c.DateAdded, c.LastUpdated,
	).Scan(&c.ID)
	if err != nil {
		t.Fatalf("testhelper: SeedComponent insert: %v", err)
	}

	return c
}

// TruncateComponents empties the components table so aggregate tests start
// from a known-clean collection.
func TruncateComponents(t *testing.T, pool *pgxpool.Pool) {
	t.Helper()

	if _, err := pool.Exec(context.Background(), `TRUNCATE components`); err != nil {
		t.Fatalf("testhelper: truncate components: %v", err)
	}
}

// SeedUser creates a credential row and returns the stored domain.User.
func SeedUser(t *testing.T, pool *pgxpool.Pool, name, passwordHash string) domain.User {
	t.Helper()

	u := domain.User{Name: name, PasswordHash: passwordHash}
	err := pool.QueryRow(context.Background(),
		`INSERT INTO users (name, password_hash) VALUES ($1, $2) RETURNING id, created_at`,
		u.Name, u.PasswordHash,
	).Scan(&u.ID, &u.CreatedAt)
	if err != nil {
		t.Fatalf("testhelper: SeedUser insert: %v", err)
	}

	return u
}

// Package user implements the credential store using PostgreSQL.
package user

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/carla-io/inventory-backend/internal/adapter/postgres"
	"github.com/carla-io/inventory-backend/internal/domain"
)

const userColumns = "id, name, password_hash, created_at"

const insertSQL = `
INSERT INTO users (name, password_hash)
VALUES ($1, $2)
RETURNING ` + userColumns

const getByNameSQL = `
SELECT ` + userColumns + `
FROM users
WHERE name = $1`

// Repo provides credential persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new user repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// Create inserts a new user and returns the persisted domain.User.
// Returns domain.ErrAlreadyExists if the name is already taken.
func (r *Repo) Create(ctx context.Context, u *domain.User) (*domain.User, error) {
	var created domain.User

	err := r.pool.QueryRow(ctx, insertSQL, u.Name, u.PasswordHash).
		Scan(&created.ID, &created.Name, &created.PasswordHash, &created.CreatedAt)
	if err != nil {
		return nil, postgres.MapError(err, "user", u.Name)
	}

	return &created, nil
}

// GetByName returns a user by unique name.
// Returns domain.ErrNotFound if no such user exists.
func (r *Repo) GetByName(ctx context.Context, name string) (*domain.User, error) {
	var u domain.User

	err := r.pool.QueryRow(ctx, getByNameSQL, name).
		Scan(&u.ID, &u.Name, &u.PasswordHash, &u.CreatedAt)
	if err != nil {
		return nil, postgres.MapError(err, "user", name)
	}

	return &u, nil
}

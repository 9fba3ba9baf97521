package auth

import (
	"context"
	"log/slog"

	"github.com/carla-io/inventory-backend/internal/config"
	"github.com/carla-io/inventory-backend/internal/domain"
)

type userRepo interface {
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	GetByName(ctx context.Context, name string) (*domain.User, error)
}

// Service implements user registration and password login.
type Service struct {
	log   *slog.Logger
	users userRepo
	cfg   config.AuthConfig
}

func NewService(log *slog.Logger, users userRepo, cfg config.AuthConfig) *Service {
	return &Service{
		log:   log,
		users: users,
		cfg:   cfg,
	}
}

package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/carla-io/inventory-backend/internal/adapter/postgres"
	"github.com/carla-io/inventory-backend/internal/adapter/postgres/component"
	"github.com/carla-io/inventory-backend/internal/adapter/postgres/user"
	"github.com/carla-io/inventory-backend/internal/config"
	authsvc "github.com/carla-io/inventory-backend/internal/service/auth"
	"github.com/carla-io/inventory-backend/internal/service/inventory"
	"github.com/carla-io/inventory-backend/internal/transport/middleware"
	"github.com/carla-io/inventory-backend/internal/transport/rest"
)

// Run is the application entry point. It loads configuration, initializes
// the logger and the database pool, wires repositories, services, and
// handlers, and serves HTTP until ctx is cancelled. Shutdown is graceful
// within ServerConfig.ShutdownTimeout.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)

	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
	)

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("init database: %w", err)
	}
	defer pool.Close()

	componentRepo := component.New(pool)
	userRepo := user.New(pool)

	inventoryService := inventory.NewService(logger, componentRepo)
	authService := authsvc.NewService(logger, userRepo, cfg.Auth)

	mux := rest.NewRouter(rest.Handlers{
		Inventory: rest.NewInventoryHandler(inventoryService, logger),
		Reports:   rest.NewReportsHandler(inventoryService, logger),
		Auth:      rest.NewAuthHandler(authService, logger),
		Health:    rest.NewHealthHandler(pool, BuildVersion()),
	}, cfg.Metrics)

	handler := middleware.Chain(
		middleware.Recovery(logger),
		middleware.RequestID,
		middleware.CORS(cfg.CORS),
		middleware.Logger(logger),
	)(mux)

	srv := &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:      handler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("http server listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("http server: %w", err)
	case <-ctx.Done():
	}

	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}

	return nil
}

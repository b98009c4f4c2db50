package server

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/jackc/pgx/v5/pgxpool"

	"laborpay/internal/db"
	"laborpay/internal/platform/config"
	attendancehandler "laborpay/internal/transport/http/handlers/attendance"
	authhandler "laborpay/internal/transport/http/handlers/auth"
	employeehandler "laborpay/internal/transport/http/handlers/employee"
	laborhandler "laborpay/internal/transport/http/handlers/labor"
	payrollhandler "laborpay/internal/transport/http/handlers/payroll"
	"laborpay/internal/transport/http/middleware"
)

type App struct {
	Config config.Config
	Pool   *pgxpool.Pool
	Router http.Handler
}

// New connects, migrates, seeds and builds the router. The caller owns the
// pool and must Close the app when done.
func New(ctx context.Context, cfg config.Config) (*App, error) {
	pool, err := db.Connect(ctx, cfg)
	if err != nil {
		return nil, err
	}

	if cfg.RunMigrations {
		if err := db.Migrate(ctx, pool, cfg.MigrationsDir); err != nil {
			pool.Close()
			return nil, err
		}
	}

	if cfg.RunSeed {
		if err := db.Seed(ctx, pool, cfg); err != nil {
			pool.Close()
			return nil, err
		}
	}

	router := chi.NewRouter()
	router.Use(middleware.RequestID)
	router.Use(middleware.Logger)
	router.Use(chimiddleware.Recoverer)
	router.Use(middleware.BodyLimit(cfg.MaxBodyBytes))
	router.Use(middleware.Auth(cfg.JWTSecret))

	router.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	router.Get("/readyz", func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()
		if err := pool.Ping(ctx); err != nil {
			http.Error(w, "db not ready", http.StatusServiceUnavailable)
			return
		}
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ready"))
	})

	router.Route("/api/v1", func(r chi.Router) {
		authHandler := authhandler.NewHandler(pool, cfg.JWTSecret, cfg.TokenTTL)
		r.Post("/auth/login", authHandler.HandleLogin)

		r.Group(func(r chi.Router) {
			r.Use(middleware.RequireAuth)

			laborhandler.NewHandler(pool).RegisterRoutes(r)
			employeehandler.NewHandler(pool).RegisterRoutes(r)
			attendancehandler.NewHandler(pool).RegisterRoutes(r)
			payrollhandler.NewHandler(pool, cfg.PayslipDir).RegisterRoutes(r)
		})
	})

	return &App{Config: cfg, Pool: pool, Router: router}, nil
}

func (a *App) Close() {
	a.Pool.Close()
}

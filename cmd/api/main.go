package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/multierr"

	"github.com/shilpokotha/shilpokotha-backend/api/routes"
	authsvc "github.com/shilpokotha/shilpokotha-backend/internal/auth"
	cartsvc "github.com/shilpokotha/shilpokotha-backend/internal/cart"
	"github.com/shilpokotha/shilpokotha-backend/internal/catalog"
	checkoutsvc "github.com/shilpokotha/shilpokotha-backend/internal/checkout"
	newslettersvc "github.com/shilpokotha/shilpokotha-backend/internal/newsletter"
	orderssvc "github.com/shilpokotha/shilpokotha-backend/internal/orders"
	profilessvc "github.com/shilpokotha/shilpokotha-backend/internal/profiles"
	reviewssvc "github.com/shilpokotha/shilpokotha-backend/internal/reviews"
	"github.com/shilpokotha/shilpokotha-backend/internal/users"
	wishlistsvc "github.com/shilpokotha/shilpokotha-backend/internal/wishlist"
	"github.com/shilpokotha/shilpokotha-backend/pkg/config"
	"github.com/shilpokotha/shilpokotha-backend/pkg/db"
	"github.com/shilpokotha/shilpokotha-backend/pkg/db/models"
	"github.com/shilpokotha/shilpokotha-backend/pkg/kvstore"
	"github.com/shilpokotha/shilpokotha-backend/pkg/logger"
	"github.com/shilpokotha/shilpokotha-backend/pkg/metrics"
)

const shutdownTimeout = 15 * time.Second

func main() {
	logg := logger.New(logger.Options{ServiceName: "api"})

	if err := godotenv.Load(); err != nil {
		logg.Warn(context.Background(), ".env file not found, relying on environment")
	}

	cfg, err := config.Load()
	if err != nil {
		logg.Error(context.Background(), "failed to load config", err)
		os.Exit(1)
	}

	logg = logger.New(logger.Options{
		ServiceName: "api",
		Level:       logger.ParseLevel(cfg.App.LogLevel),
		WarnStack:   cfg.App.LogWarnStack,
	})

	dbClient, err := db.New(context.Background(), cfg.DB, cfg.FeatureFlags.UseSQLite, logg)
	if err != nil {
		logg.Error(context.Background(), "failed to bootstrap database", err)
		os.Exit(1)
	}

	if cfg.FeatureFlags.AutoMigrate {
		if err := dbClient.DB().AutoMigrate(
			&models.User{},
			&models.Order{},
			&models.Review{},
			&models.Subscriber{},
		); err != nil {
			logg.Error(context.Background(), "failed to run migrations", err)
			os.Exit(1)
		}
	}

	var kv kvstore.Store
	var kvCloser interface{ Close() error }
	if cfg.FeatureFlags.UseMemoryKV {
		kv = kvstore.NewMemory()
	} else {
		redisStore, err := kvstore.NewRedis(context.Background(), cfg.Redis)
		if err != nil {
			logg.Error(context.Background(), "failed to bootstrap redis", err)
			os.Exit(1)
		}
		kv = redisStore
		kvCloser = redisStore
	}

	seed, err := catalog.Load(cfg.Catalog.SeedPath)
	if err != nil {
		logg.Error(context.Background(), "failed to load catalog", err)
		os.Exit(1)
	}

	svcs, err := buildServices(cfg, logg, dbClient, kv, seed)
	if err != nil {
		logg.Error(context.Background(), "failed to wire services", err)
		os.Exit(1)
	}

	httpMetrics := metrics.NewHTTPMetrics(prometheus.DefaultRegisterer)

	port := os.Getenv("PORT")
	if port == "" {
		port = cfg.App.Port
	}
	addr := ":" + port
	ctx := logg.WithFields(context.Background(), map[string]any{
		"env":      cfg.App.Env,
		"addr":     addr,
		"products": seed.Len(),
	})
	logg.Info(ctx, "starting api server")

	server := &http.Server{
		Addr:              addr,
		Handler:           routes.NewRouter(cfg, logg, httpMetrics, svcs),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- server.ListenAndServe()
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-errCh:
		if err != nil && err != http.ErrServerClosed {
			logg.Error(ctx, "api server stopped unexpectedly", err)
			os.Exit(1)
		}
	case sig := <-stop:
		logg.Info(logg.WithField(ctx, "signal", sig.String()), "shutting down")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		closeErr := server.Shutdown(shutdownCtx)
		closeErr = multierr.Append(closeErr, dbClient.Close())
		if kvCloser != nil {
			closeErr = multierr.Append(closeErr, kvCloser.Close())
		}
		if closeErr != nil {
			logg.Error(ctx, "shutdown finished with errors", closeErr)
			os.Exit(1)
		}
		logg.Info(ctx, "shutdown complete")
	}
}

func buildServices(cfg *config.Config, logg *logger.Logger, dbClient *db.Client, kv kvstore.Store, seed *catalog.Catalog) (routes.Services, error) {
	catalogService, err := catalog.NewService(seed)
	if err != nil {
		return routes.Services{}, err
	}

	cartService, err := cartsvc.NewService(kv, catalogService, func(ctx context.Context, userID string, totalQuantity, distinctItems int) {
		ctx = logg.WithFields(logg.WithUserID(ctx, userID), map[string]any{
			"total_quantity": totalQuantity,
			"distinct_items": distinctItems,
		})
		logg.Info(ctx, "cart.updated")
	})
	if err != nil {
		return routes.Services{}, err
	}

	wishlistService, err := wishlistsvc.NewService(kv, catalogService, func(ctx context.Context, userID string, count int) {
		ctx = logg.WithField(logg.WithUserID(ctx, userID), "count", count)
		logg.Info(ctx, "wishlist.updated")
	})
	if err != nil {
		return routes.Services{}, err
	}

	profilesService, err := profilessvc.NewService(kv)
	if err != nil {
		return routes.Services{}, err
	}

	authService, err := authsvc.NewService(authsvc.ServiceParams{
		UserRepo:       users.NewRepository(dbClient.DB()),
		JWTConfig:      cfg.JWT,
		PasswordConfig: cfg.Password,
	})
	if err != nil {
		return routes.Services{}, err
	}

	ordersService, err := orderssvc.NewService(orderssvc.NewRepository(dbClient.DB()))
	if err != nil {
		return routes.Services{}, err
	}

	checkoutService, err := checkoutsvc.NewService(checkoutsvc.ServiceParams{
		CartService:    cartService,
		CatalogService: catalogService,
		OrdersService:  ordersService,
		Logger:         logg,
		Config:         cfg.Checkout,
	})
	if err != nil {
		return routes.Services{}, err
	}

	reviewsService, err := reviewssvc.NewService(reviewssvc.NewRepository(dbClient.DB()), catalogService)
	if err != nil {
		return routes.Services{}, err
	}

	newsletterService, err := newslettersvc.NewService(newslettersvc.NewRepository(dbClient.DB()))
	if err != nil {
		return routes.Services{}, err
	}

	return routes.Services{
		Auth:       authService,
		Catalog:    catalogService,
		Cart:       cartService,
		Wishlist:   wishlistService,
		Checkout:   checkoutService,
		Orders:     ordersService,
		Reviews:    reviewsService,
		Newsletter: newsletterService,
		Profiles:   profilesService,
	}, nil
}

package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.uber.org/multierr"

	"github.com/angelmondragon/hotelops-backend/api/routes"
	itemsvc "github.com/angelmondragon/hotelops-backend/internal/items"
	locationsvc "github.com/angelmondragon/hotelops-backend/internal/locations"
	"github.com/angelmondragon/hotelops-backend/internal/maintenance"
	"github.com/angelmondragon/hotelops-backend/internal/purchasing"
	"github.com/angelmondragon/hotelops-backend/internal/stock"
	suppliersvc "github.com/angelmondragon/hotelops-backend/internal/suppliers"
	usersvc "github.com/angelmondragon/hotelops-backend/internal/users"
	"github.com/angelmondragon/hotelops-backend/pkg/config"
	"github.com/angelmondragon/hotelops-backend/pkg/db"
	"github.com/angelmondragon/hotelops-backend/pkg/logger"
	"github.com/angelmondragon/hotelops-backend/pkg/metrics"
	"github.com/angelmondragon/hotelops-backend/pkg/migrate"
	"github.com/angelmondragon/hotelops-backend/pkg/redis"
)

const shutdownTimeout = 10 * time.Second

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

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	dbClient, err := db.New(ctx, cfg.DB, logg)
	if err != nil {
		logg.Error(ctx, "failed to bootstrap database", err)
		os.Exit(1)
	}

	if err := migrate.MaybeRunDev(ctx, cfg, logg, dbClient); err != nil {
		logg.Error(ctx, "failed to run dev migrations", err)
		_ = dbClient.Close()
		os.Exit(1)
	}

	var redisClient *redis.Client
	if cfg.Redis.Enabled() {
		redisClient, err = redis.New(ctx, cfg.Redis, logg)
		if err != nil {
			logg.Error(ctx, "failed to bootstrap redis", err)
			_ = dbClient.Close()
			os.Exit(1)
		}
	} else {
		logg.Info(ctx, "redis not configured, idempotency replay disabled")
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	httpMetrics := metrics.NewHTTPMetrics(registry)
	ledgerMetrics := metrics.NewLedgerMetrics(registry)

	services, err := buildServices(dbClient, logg, ledgerMetrics)
	if err != nil {
		logg.Error(ctx, "failed to build services", err)
		_ = closeAll(dbClient, redisClient)
		os.Exit(1)
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = cfg.App.Port
	}
	addr := ":" + port
	ctx = logg.WithFields(ctx, map[string]any{
		"env":    cfg.App.Env,
		"addr":   addr,
		"driver": dbClient.Dialect(),
	})

	server := &http.Server{
		Addr:              addr,
		Handler:           routes.NewRouter(cfg, logg, dbClient, redisClient, registry, httpMetrics, services),
		ReadTimeout:       cfg.HTTP.ReadTimeout,
		ReadHeaderTimeout: cfg.HTTP.ReadTimeout,
		WriteTimeout:      cfg.HTTP.WriteTimeout,
	}

	serveErr := make(chan error, 1)
	go func() {
		logg.Info(ctx, "starting api server")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	exitCode := 0
	select {
	case err := <-serveErr:
		if err != nil {
			logg.Error(ctx, "api server stopped unexpectedly", err)
			exitCode = 1
		}
	case <-ctx.Done():
		logg.Info(ctx, "shutdown signal received")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	err = multierr.Append(server.Shutdown(shutdownCtx), closeAll(dbClient, redisClient))
	if err != nil {
		logg.Error(shutdownCtx, "error during shutdown", err)
		exitCode = 1
	}
	logg.Info(shutdownCtx, "api server stopped")
	if exitCode != 0 {
		os.Exit(exitCode)
	}
}

func buildServices(dbClient *db.Client, logg *logger.Logger, ledgerMetrics *metrics.LedgerMetrics) (routes.Services, error) {
	conn := dbClient.DB()

	stockSvc, err := stock.NewService(stock.NewRepository(conn), dbClient, logg, ledgerMetrics)
	if err != nil {
		return routes.Services{}, err
	}
	itemSvc, err := itemsvc.NewService(itemsvc.NewRepository(conn), stockSvc, dbClient)
	if err != nil {
		return routes.Services{}, err
	}
	locationSvc, err := locationsvc.NewService(locationsvc.NewRepository(conn), dbClient)
	if err != nil {
		return routes.Services{}, err
	}
	supplierSvc, err := suppliersvc.NewService(suppliersvc.NewRepository(conn), dbClient)
	if err != nil {
		return routes.Services{}, err
	}
	userSvc, err := usersvc.NewService(usersvc.NewRepository(conn))
	if err != nil {
		return routes.Services{}, err
	}
	orderSvc, err := purchasing.NewService(purchasing.NewRepository(conn), dbClient)
	if err != nil {
		return routes.Services{}, err
	}
	ticketSvc, err := maintenance.NewService(maintenance.NewRepository(conn), dbClient, logg)
	if err != nil {
		return routes.Services{}, err
	}

	return routes.Services{
		Items:       itemSvc,
		Locations:   locationSvc,
		Suppliers:   supplierSvc,
		Users:       userSvc,
		Stock:       stockSvc,
		Purchasing:  orderSvc,
		Maintenance: ticketSvc,
	}, nil
}

func closeAll(dbClient *db.Client, redisClient *redis.Client) error {
	var err error
	if redisClient != nil {
		err = multierr.Append(err, redisClient.Close())
	}
	if dbClient != nil {
		err = multierr.Append(err, dbClient.Close())
	}
	return err
}

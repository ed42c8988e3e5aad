package main

import (
	"context"
	"os"

	"github.com/angelmondragon/hotelops-backend/internal/seed"
	"github.com/angelmondragon/hotelops-backend/pkg/config"
	"github.com/angelmondragon/hotelops-backend/pkg/db"
	"github.com/angelmondragon/hotelops-backend/pkg/logger"
	"github.com/angelmondragon/hotelops-backend/pkg/migrate"
	"github.com/joho/godotenv"
)

func main() {
	ctx := context.Background()
	logg := logger.New(logger.Options{ServiceName: "seed"})

	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		logg.Error(ctx, "failed to load config", err)
		os.Exit(1)
	}
	logg = logger.New(logger.Options{
		ServiceName: "seed",
		Level:       logger.ParseLevel(cfg.App.LogLevel),
		WarnStack:   cfg.App.LogWarnStack,
	})

	dbClient, err := db.New(ctx, cfg.DB, logg)
	if err != nil {
		logg.Error(ctx, "failed to bootstrap database", err)
		os.Exit(1)
	}
	defer dbClient.Close()

	if err := migrate.MaybeRunDev(ctx, cfg, logg, dbClient); err != nil {
		logg.Error(ctx, "failed to run dev migrations", err)
		os.Exit(1)
	}

	res, err := seed.Run(ctx, dbClient, logg)
	if err != nil {
		logg.Error(ctx, "seeding failed", err)
		os.Exit(1)
	}
	ctx = logg.WithFields(ctx, map[string]any{
		"users_created":     res.UsersCreated,
		"locations_created": res.LocationsCreated,
	})
	logg.Info(ctx, "seed finished")
}

package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/AhmedMHR/PadelPal/app"
	"github.com/AhmedMHR/PadelPal/app/eventbus"
	"github.com/AhmedMHR/PadelPal/app/observability"
	"github.com/AhmedMHR/PadelPal/app/shared/attr"
	"github.com/AhmedMHR/PadelPal/config"
	"github.com/AhmedMHR/PadelPal/db/bundb"
)

func main() {
	configFile := flag.String("config", "config.yaml", "Path to the configuration file")
	migrate := flag.Bool("migrate", false, "Apply pending migrations before starting")
	flag.Parse()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.LoadConfig(*configFile)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	obs := observability.New(config.ToObsConfig(cfg))
	logger := obs.Logger

	db, err := bundb.NewBunDB(ctx, cfg.Postgres, logger)
	if err != nil {
		logger.Error("Failed to connect to database", attr.Error(err))
		os.Exit(1)
	}

	if *migrate {
		if err := bundb.MigrateAll(ctx, db); err != nil {
			logger.Error("Failed to apply migrations", attr.Error(err))
			os.Exit(1)
		}
	}

	bus, err := eventbus.NewEventBus(ctx, cfg.NATS.URL, logger)
	if err != nil {
		_ = db.Close()
		logger.Error("Failed to create event bus", attr.Error(err))
		os.Exit(1)
	}

	application, err := app.New(ctx, cfg, obs, db, bus)
	if err != nil {
		_ = bus.Close()
		_ = db.Close()
		logger.Error("Failed to initialize application", attr.Error(err))
		os.Exit(1)
	}

	logger.Info("PadelPal starting", attr.String("address", cfg.HTTP.Address))
	if err := application.Run(ctx); err != nil {
		logger.Error("Application stopped with error", attr.Error(err))
		os.Exit(1)
	}
	logger.Info("Application shut down gracefully")
}

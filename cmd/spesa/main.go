package main

import (
	"os"

	"spesa/internal/cli"
	applog "spesa/internal/log"
	"spesa/internal/menu"
	"spesa/internal/services"
	"spesa/internal/shopping"
)

func main() {
	cli.LoadEnvFile()
	cfg := cli.LoadAndValidateConfig()
	logger := cli.SetupLogger(cfg)

	ctx, cancel := cli.SignalContext(logger)
	defer cancel()

	manager := shopping.NewManager()
	if err := cli.SeedManager(logger, manager, cfg.SeedFile); err != nil {
		logger.Error("Failed to load seed file", applog.FieldError, err, "path", cfg.SeedFile)
		os.Exit(1)
	}

	var publisher services.EventPublisher
	events, err := cli.InitEvents(logger, cfg)
	if err != nil {
		// Events are optional; keep the shopping list usable without a broker.
		logger.Warn("Failed to connect to AMQP, continuing without events", applog.FieldError, err)
	}
	if events != nil {
		defer events.Close()
		publisher = events
	}

	svc := services.NewShoppingService(manager, publisher, logger)

	logger.Debug("Starting spesa", applog.FieldOperation, applog.OpStartup, "events", publisher != nil)
	if err := menu.New(svc, os.Stdin, os.Stdout, cfg.CurrencySymbol, logger).Run(ctx); err != nil && ctx.Err() == nil {
		logger.Error("Menu stopped", applog.FieldError, err)
		os.Exit(1)
	}
	logger.Debug("Stopped spesa", applog.FieldOperation, applog.OpShutdown)
}

// Package cli provides common CLI initialization utilities shared by
// cmd/spesa and cmd/spesa-events.
package cli

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"spesa/internal/amqp"
	"spesa/internal/config"
	applog "spesa/internal/log"
	"spesa/internal/shopping"
)

// LoadEnvFile loads the .env file for local development.
// Errors are ignored silently as the file is optional.
func LoadEnvFile() {
	_ = godotenv.Load()
}

// SetupLogger builds the application logger from cfg and makes it the
// slog default.
func SetupLogger(cfg *config.Config) *applog.Logger {
	logCfg := applog.DefaultConfig()
	logCfg.Level = applog.ParseLevel(cfg.LogLevel)
	logCfg.Format = cfg.LogFormat
	logger := applog.New(logCfg)
	applog.SetDefault(logger)
	return logger
}

// LoadAndValidateConfig loads configuration and validates it.
// Returns the config or exits the process on validation failure.
func LoadAndValidateConfig() *config.Config {
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		// The configured logger cannot be trusted yet.
		applog.New(applog.DefaultConfig()).Error("Configuration validation failed",
			applog.FieldErrorType, applog.ErrorTypeConfiguration,
			applog.FieldError, err)
		os.Exit(1)
	}
	return cfg
}

// InitEvents connects to the broker when events are enabled. It returns a nil
// client, and no error, when AMQP_URL is unset.
func InitEvents(logger *applog.Logger, cfg *config.Config) (*amqp.Client, error) {
	if !cfg.EventsEnabled() {
		logger.Info("Shopping events disabled - no AMQP_URL provided")
		return nil, nil
	}
	client, err := amqp.NewClient(cfg.AMQPURL, cfg.AMQPExchange, cfg.AMQPQueue, logger)
	if err != nil {
		return nil, err
	}
	logger.Info("Connected to AMQP broker", "exchange", cfg.AMQPExchange, "queue", cfg.AMQPQueue)
	return client, nil
}

// SeedManager loads the configured seed file into m.
func SeedManager(logger *applog.Logger, m *shopping.Manager, path string) error {
	if path == "" {
		return nil
	}
	n, err := shopping.LoadSeedFile(m, path)
	if err != nil {
		return err
	}
	if n > 0 {
		logger.WithComponent(applog.ComponentSeed).Info("Seeded products",
			applog.FieldOperation, applog.OpSeed,
			applog.FieldCount, n,
			"path", path)
	}
	return nil
}

// SignalContext returns a context cancelled on SIGINT or SIGTERM.
func SignalContext(logger *applog.Logger) (context.Context, context.CancelFunc) {
	ctx, cancel := context.WithCancel(context.Background())
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		defer signal.Stop(sigChan)
		select {
		case sig := <-sigChan:
			logger.Info("Shutdown signal received", "signal", sig.String())
			cancel()
		case <-ctx.Done():
		}
	}()

	return ctx, cancel
}

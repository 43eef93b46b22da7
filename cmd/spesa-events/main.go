package main

import (
	"context"
	"errors"
	"os"

	"spesa/internal/amqp"
	"spesa/internal/cli"
	applog "spesa/internal/log"
)

func main() {
	cli.LoadEnvFile()
	cfg := cli.LoadAndValidateConfig()
	logger := cli.SetupLogger(cfg).WithComponent(applog.ComponentEvents)

	if !cfg.EventsEnabled() {
		logger.Error("AMQP_URL is required to follow shopping events",
			applog.FieldErrorType, applog.ErrorTypeConfiguration)
		os.Exit(1)
	}

	ctx, cancel := cli.SignalContext(logger)
	defer cancel()

	client, err := cli.InitEvents(logger, cfg)
	if err != nil {
		logger.Error("Failed to initialize AMQP client",
			applog.FieldErrorType, applog.ErrorTypeNetwork,
			applog.FieldError, err)
		os.Exit(1)
	}
	defer client.Close()

	err = client.ConsumeEvents(ctx, func(msg *amqp.EventMessage) error {
		args := []any{
			applog.FieldOperation, applog.OpConsume,
			applog.FieldEventID, msg.ID.String(),
			applog.FieldEventType, msg.Type,
		}
		if p := msg.Product; p != nil {
			args = append(args, applog.NewFields().WithProduct(p.Name, p.Unit, p.PlannedQuantity, p.PlannedPrice).ToSlice()...)
		}
		if msg.PreviousPrice != nil {
			args = append(args, applog.FieldOldPrice, *msg.PreviousPrice)
		}
		if p := msg.Purchase; p != nil {
			args = append(args, applog.NewFields().WithPurchase(p.Month, p.ProductName, p.QuantityBought, p.UnitPrice, p.Supermarket).ToSlice()...)
		}
		logger.InfoContext(ctx, "Shopping event", args...)
		return nil
	})
	if err != nil && !errors.Is(err, context.Canceled) {
		logger.Error("Event consumption stopped", applog.FieldError, err)
		os.Exit(1)
	}
	logger.Info("Event listener stopped gracefully")
}

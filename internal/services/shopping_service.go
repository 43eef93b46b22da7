package services

import (
	"context"
	"fmt"

	"spesa/internal/amqp"
	"spesa/internal/core"
	applog "spesa/internal/log"
	"spesa/internal/shopping"
)

// EventPublisher sends shopping events to an outside listener.
type EventPublisher interface {
	Publish(ctx context.Context, msg *amqp.EventMessage) error
}

// ShoppingService fronts the Manager for the console: it logs every change and
// publishes an event for it when a publisher is configured.
type ShoppingService struct {
	manager   *shopping.Manager
	publisher EventPublisher
	logger    *applog.Logger
}

// NewShoppingService wires the service. publisher may be nil to disable events.
func NewShoppingService(manager *shopping.Manager, publisher EventPublisher, logger *applog.Logger) *ShoppingService {
	if logger == nil {
		logger = applog.Discard()
	}
	return &ShoppingService{
		manager:   manager,
		publisher: publisher,
		logger:    logger.WithComponent(applog.ComponentShopping),
	}
}

func (s *ShoppingService) AddProduct(ctx context.Context, name, unit string, plannedQuantity uint32, plannedPrice float64) {
	s.manager.AddProduct(name, unit, plannedQuantity, plannedPrice)

	fields := applog.NewFields().WithOperation(applog.OpCreate).WithProduct(name, unit, plannedQuantity, plannedPrice)
	s.logger.InfoContext(ctx, "Product added", fields.ToSlice()...)

	s.publish(ctx, amqp.NewProductAddedMessage(core.Product{
		Name:            name,
		Unit:            unit,
		PlannedQuantity: plannedQuantity,
		PlannedPrice:    plannedPrice,
	}))
}

// UpdatePlannedPrice reports whether the product exists.
func (s *ShoppingService) UpdatePlannedPrice(ctx context.Context, name string, price float64) bool {
	before, ok := s.manager.FindProduct(name)
	if !ok {
		s.logger.WarnContext(ctx, "Planned price not updated",
			applog.FieldOperation, applog.OpUpdate,
			applog.FieldProduct, name,
			applog.FieldErrorType, applog.ErrorTypeNotFound)
		return false
	}
	s.manager.UpdatePlannedPrice(name, price)

	s.logger.InfoContext(ctx, "Planned price updated",
		applog.FieldOperation, applog.OpUpdate,
		applog.FieldProduct, name,
		applog.FieldOldPrice, before.PlannedPrice,
		applog.FieldPrice, price)

	after, _ := s.manager.FindProduct(name)
	s.publish(ctx, amqp.NewPlannedPriceUpdatedMessage(after, before.PlannedPrice))
	return true
}

// AddPurchase records a purchase; the error wraps core.ErrProductNotFound
// when the product is unknown.
func (s *ShoppingService) AddPurchase(ctx context.Context, month, productName string, quantity uint32, price float64, supermarket string) error {
	fields := applog.NewFields().WithOperation(applog.OpCreate).WithPurchase(month, productName, quantity, price, supermarket)

	if err := s.manager.AddPurchase(month, productName, quantity, price, supermarket); err != nil {
		fields[applog.FieldErrorType] = applog.ErrorTypeValidation
		s.logger.WarnContext(ctx, "Purchase rejected", fields.WithError(err).ToSlice()...)
		return fmt.Errorf("add purchase: %w", err)
	}
	s.logger.InfoContext(ctx, "Purchase recorded", fields.ToSlice()...)

	s.publish(ctx, amqp.NewPurchaseRecordedMessage(core.Purchase{
		Month:          month,
		ProductName:    productName,
		QuantityBought: quantity,
		UnitPrice:      price,
		Supermarket:    supermarket,
	}))
	return nil
}

func (s *ShoppingService) ListProducts() []core.Product {
	return s.manager.ListProducts()
}

func (s *ShoppingService) ListPurchases() []core.Purchase {
	return s.manager.ListPurchases()
}

func (s *ShoppingService) TotalForMonth(month string) float64 {
	total := s.manager.TotalForMonth(month)
	s.logReport("month total", applog.FieldMonth, month, applog.FieldPrice, total)
	return total
}

func (s *ShoppingService) LowestPriceDetails(product string) core.PriceReport {
	r := s.manager.LowestPriceDetails(product)
	s.logReport("lowest price", applog.FieldProduct, product, "found", r.Found)
	return r
}

func (s *ShoppingService) HighestPriceDetails(product string) core.PriceReport {
	r := s.manager.HighestPriceDetails(product)
	s.logReport("highest price", applog.FieldProduct, product, "found", r.Found)
	return r
}

func (s *ShoppingService) CheapestSupermarketInMonth(month string) core.SupermarketReport {
	r := s.manager.CheapestSupermarketInMonth(month)
	s.logReport("cheapest supermarket", applog.FieldMonth, month, applog.FieldSupermarket, r.Supermarket)
	return r
}

func (s *ShoppingService) MostExpensiveSupermarketInMonth(month string) core.SupermarketReport {
	r := s.manager.MostExpensiveSupermarketInMonth(month)
	s.logReport("most expensive supermarket", applog.FieldMonth, month, applog.FieldSupermarket, r.Supermarket)
	return r
}

func (s *ShoppingService) ComparePlannedPrice(product, month string) (core.PlanComparison, bool) {
	c, ok := s.manager.ComparePlannedPrice(product, month)
	s.logReport("planned price comparison", applog.FieldProduct, product, applog.FieldMonth, month, "over_plan", c.OverPlan)
	return c, ok
}

func (s *ShoppingService) logReport(name string, args ...any) {
	s.logger.Debug("Report computed", append([]any{applog.FieldOperation, applog.OpReport, "report", name}, args...)...)
}

// publish never fails the caller: the change is already applied locally.
func (s *ShoppingService) publish(ctx context.Context, msg *amqp.EventMessage) {
	if s.publisher == nil {
		return
	}
	if err := s.publisher.Publish(ctx, msg); err != nil {
		s.logger.ErrorContext(ctx, "Failed to publish shopping event",
			applog.FieldOperation, applog.OpPublish,
			applog.FieldEventID, msg.ID.String(),
			applog.FieldEventType, msg.Type,
			applog.FieldError, err)
	}
}

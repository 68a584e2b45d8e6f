package commands

import (
	"context"
	"time"

	"burgershop/internal/core/domain/model/order"
	"burgershop/internal/core/domain/services"
)

// CreateOrderCommandHandler handles the business logic for placing orders.
// Prices every requested line item against the catalog and persists the new
// order atomically, so the stored total always reflects the catalog state the
// transaction saw.
//
// Example:
//
//	handler := NewCreateOrderCommandHandler(uowFactory, services.NewLineItemPricer())
//	cmd, _ := NewCreateOrderCommand(orderID, order.PaymentCash, nil, items)
//
//	placed, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    return fmt.Errorf("order creation failed: %w", err)
//	}
//	fmt.Printf("Order %s placed, total %s", placed.ID(), placed.Total())
type CreateOrderCommandHandler struct {
	uowFactory PricingUoWFactory
	pricer     services.LineItemPricer
}

// NewCreateOrderCommandHandler creates a handler for order placement.
// Requires a PricingUoWFactory so catalog reads and the order write share
// one transaction.
func NewCreateOrderCommandHandler(
	uowFactory PricingUoWFactory,
	pricer services.LineItemPricer,
) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
		pricer:     pricer,
	}
}

// Handle processes the order placement command.
// Resolves and prices each line item, creates the order in pending status,
// and persists it. Returns the placed order with its derived total.
func (h *CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	lineItems, err := priceLineItems(ctx, uow.CatalogRepository(), h.pricer, cmd.LineItems())
	if err != nil {
		return nil, err
	}

	placed, err := order.NewOrder(cmd.OrderID(), cmd.PaymentMethod(), cmd.CustomerID(), lineItems, time.Now())
	if err != nil {
		return nil, err
	}

	if err = uow.OrderRepository().Add(ctx, placed); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return placed, nil
}

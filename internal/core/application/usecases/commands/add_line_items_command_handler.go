package commands

import (
	"context"

	"burgershop/internal/core/domain/model/order"
	"burgershop/internal/core/domain/services"
	"burgershop/internal/pkg/errs"
)

// AddLineItemsCommandHandler handles adding line items to an existing order.
// The terminal-status gate runs before any catalog lookups so a delivered or
// cancelled order is rejected without doing pricing work.
type AddLineItemsCommandHandler struct {
	uowFactory PricingUoWFactory
	pricer     services.LineItemPricer
}

// NewAddLineItemsCommandHandler creates a handler for extending orders.
func NewAddLineItemsCommandHandler(
	uowFactory PricingUoWFactory,
	pricer services.LineItemPricer,
) AddLineItemsCommandHandler {
	return AddLineItemsCommandHandler{
		uowFactory: uowFactory,
		pricer:     pricer,
	}
}

// Handle loads the order, prices the requested items, appends them, and
// persists the order with its re-derived total, all in one transaction.
// Returns the updated order.
func (h *AddLineItemsCommandHandler) Handle(ctx context.Context, cmd AddLineItemsCommand) (*order.Order, error) {
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

	orderRepo := uow.OrderRepository()
	aggregate, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return nil, err
	}

	if aggregate.Status().IsTerminal() {
		return nil, errs.NewStateConflictError("order", aggregate.Status().String())
	}

	lineItems, err := priceLineItems(ctx, uow.CatalogRepository(), h.pricer, cmd.LineItems())
	if err != nil {
		return nil, err
	}

	if err = aggregate.AddLineItems(lineItems); err != nil {
		return nil, err
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return aggregate, nil
}

package commands

import (
	"context"

	"burgershop/internal/core/domain/model/order"
)

// RemoveLineItemCommandHandler handles removing a line item from an order.
// The aggregate enforces the terminal-status gate and re-derives the total;
// the handler only manages the transaction.
type RemoveLineItemCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewRemoveLineItemCommandHandler creates a handler for line-item removal.
func NewRemoveLineItemCommandHandler(uowFactory OrderUoWFactory) RemoveLineItemCommandHandler {
	return RemoveLineItemCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle loads the order, removes the line item, and persists the order with
// its re-derived total. Returns the updated order.
func (h *RemoveLineItemCommandHandler) Handle(ctx context.Context, cmd RemoveLineItemCommand) (*order.Order, error) {
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

	if err = aggregate.RemoveLineItem(cmd.LineItemID()); err != nil {
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

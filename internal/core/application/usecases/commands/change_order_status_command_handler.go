package commands

import (
	"context"
	"time"

	"burgershop/internal/core/domain/model/order"
)

// ChangeOrderStatusCommandHandler handles order status transitions.
// The injected policy decides which transitions are legal, so the same
// handler serves both the strict kitchen flow and a permissive back-office
// configuration.
type ChangeOrderStatusCommandHandler struct {
	uowFactory OrderUoWFactory
	policy     order.StatusPolicy
}

// NewChangeOrderStatusCommandHandler creates a handler for status transitions
// governed by the given policy.
func NewChangeOrderStatusCommandHandler(
	uowFactory OrderUoWFactory,
	policy order.StatusPolicy,
) ChangeOrderStatusCommandHandler {
	return ChangeOrderStatusCommandHandler{
		uowFactory: uowFactory,
		policy:     policy,
	}
}

// Handle loads the order, applies the transition under the policy, and
// persists the order with its appended history entry. Returns the updated
// order.
func (h *ChangeOrderStatusCommandHandler) Handle(
	ctx context.Context,
	cmd ChangeOrderStatusCommand,
) (*order.Order, error) {
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

	if err = aggregate.ChangeStatus(cmd.Target(), h.policy, time.Now()); err != nil {
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

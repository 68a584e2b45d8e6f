package commands

import (
	"context"
	"time"

	"burgershop/internal/core/domain/model/order"
)

// ExpireStaleOrdersCommandHandler cancels pending orders older than the
// command's max age. Cancellation goes through the status policy like any
// other transition, so each expired order gets a history entry.
type ExpireStaleOrdersCommandHandler struct {
	uowFactory OrderUoWFactory
	policy     order.StatusPolicy
}

// NewExpireStaleOrdersCommandHandler creates a handler for stale-order expiry.
func NewExpireStaleOrdersCommandHandler(
	uowFactory OrderUoWFactory,
	policy order.StatusPolicy,
) ExpireStaleOrdersCommandHandler {
	return ExpireStaleOrdersCommandHandler{
		uowFactory: uowFactory,
		policy:     policy,
	}
}

// Handle cancels every pending order created before now minus the max age.
// All expirations commit together. Returns the number of orders cancelled.
func (h *ExpireStaleOrdersCommandHandler) Handle(ctx context.Context, cmd ExpireStaleOrdersCommand) (int, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	now := time.Now()
	orderRepo := uow.OrderRepository()

	stale, err := orderRepo.GetAllPendingBefore(ctx, now.Add(-cmd.MaxAge()))
	if err != nil {
		return 0, err
	}

	for _, aggregate := range stale {
		if err = aggregate.ChangeStatus(order.Cancelled, h.policy, now); err != nil {
			return 0, err
		}

		if err = orderRepo.Update(ctx, aggregate); err != nil {
			return 0, err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	return len(stale), nil
}

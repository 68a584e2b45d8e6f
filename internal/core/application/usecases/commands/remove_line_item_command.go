package commands

import (
	"errors"

	"burgershop/internal/core/domain/model/kernel"
	"burgershop/internal/pkg/guard"
)

var ErrRemoveLineItemCommandIsNotConstructed = errors.New(
	"RemoveLineItemCommand must be created via NewRemoveLineItemCommand constructor",
)

// RemoveLineItemCommand represents a request to remove one line item from an
// order. The order total is re-derived from the remaining items.
type RemoveLineItemCommand struct { //nolint:recvcheck //using for validation
	orderID    kernel.UUID
	lineItemID kernel.UUID

	guard guard.ConstructorGuard
}

// NewRemoveLineItemCommand creates a command to remove a line item.
func NewRemoveLineItemCommand(orderID, lineItemID kernel.UUID) (RemoveLineItemCommand, error) {
	cmd := RemoveLineItemCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setLineItemID(lineItemID),
	); err != nil {
		return RemoveLineItemCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c RemoveLineItemCommand) Validate() error {
	return c.guard.Validate(ErrRemoveLineItemCommandIsNotConstructed)
}

// OrderID returns the order being modified.
func (c RemoveLineItemCommand) OrderID() kernel.UUID {
	return c.orderID
}

// LineItemID returns the line item to remove.
func (c RemoveLineItemCommand) LineItemID() kernel.UUID {
	return c.lineItemID
}

func (c *RemoveLineItemCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *RemoveLineItemCommand) setLineItemID(lineItemID kernel.UUID) error {
	if err := lineItemID.Validate(); err != nil {
		return err
	}

	c.lineItemID = lineItemID
	return nil
}

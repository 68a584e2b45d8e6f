package commands

import (
	"errors"

	"burgershop/internal/core/domain/model/kernel"
	"burgershop/internal/pkg/guard"
)

var ErrAddLineItemsCommandIsNotConstructed = errors.New(
	"AddLineItemsCommand must be created via NewAddLineItemsCommand constructor",
)

// AddLineItemsCommand represents a request to add line items to an existing
// order. The items are priced against the catalog at the time of addition,
// not at the time the order was placed.
type AddLineItemsCommand struct { //nolint:recvcheck //using for validation
	orderID   kernel.UUID
	lineItems []LineItemInput

	guard guard.ConstructorGuard
}

// NewAddLineItemsCommand creates a command to extend an order.
// Validates the order ID and that at least one line item was requested.
func NewAddLineItemsCommand(orderID kernel.UUID, lineItems []LineItemInput) (AddLineItemsCommand, error) {
	cmd := AddLineItemsCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setLineItems(lineItems),
	); err != nil {
		return AddLineItemsCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c AddLineItemsCommand) Validate() error {
	return c.guard.Validate(ErrAddLineItemsCommandIsNotConstructed)
}

// OrderID returns the order being extended.
func (c AddLineItemsCommand) OrderID() kernel.UUID {
	return c.orderID
}

// LineItems returns the requested line items.
func (c AddLineItemsCommand) LineItems() []LineItemInput {
	out := make([]LineItemInput, len(c.lineItems))
	copy(out, c.lineItems)
	return out
}

func (c *AddLineItemsCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *AddLineItemsCommand) setLineItems(lineItems []LineItemInput) error {
	if len(lineItems) == 0 {
		return ErrLineItemsAreRequired
	}

	for _, li := range lineItems {
		if err := li.Validate(); err != nil {
			return err
		}
	}

	c.lineItems = make([]LineItemInput, len(lineItems))
	copy(c.lineItems, lineItems)
	return nil
}

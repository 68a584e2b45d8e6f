package commands

import (
	"errors"

	"burgershop/internal/core/domain/model/kernel"
	"burgershop/internal/core/domain/model/order"
	"burgershop/internal/pkg/guard"
)

var (
	ErrCreateOrderCommandIsNotConstructed = errors.New(
		"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
	)
	ErrLineItemsAreRequired = errors.New("at least one line item is required")
)

// CreateOrderCommand represents a request to place a new order.
// Encapsulates the payment method, an optional customer reference, and the
// requested line items with their customizations.
//
// Example:
//
//	orderID := kernel.NewUUID()
//	item, _ := NewLineItemInput(productID, "no pickles", customizations)
//	cmd, err := NewCreateOrderCommand(orderID, order.PaymentCash, nil, []LineItemInput{item})
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//
//	handler := NewCreateOrderCommandHandler(uowFactory, pricer)
//	placed, err := handler.Handle(ctx, cmd)
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID       kernel.UUID
	paymentMethod order.PaymentMethod
	customerID    *kernel.UUID
	lineItems     []LineItemInput

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to place a new order.
// Validates the order ID, payment method, optional customer reference,
// and that at least one line item was requested.
func NewCreateOrderCommand(
	orderID kernel.UUID,
	paymentMethod order.PaymentMethod,
	customerID *kernel.UUID,
	lineItems []LineItemInput,
) (CreateOrderCommand, error) {
	cmd := CreateOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setPaymentMethod(paymentMethod),
		cmd.setCustomerID(customerID),
		cmd.setLineItems(lineItems),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCreateOrderCommandIsNotConstructed if validation fails.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// OrderID returns the unique identifier for the order.
func (c CreateOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// PaymentMethod returns how the customer will pay.
func (c CreateOrderCommand) PaymentMethod() order.PaymentMethod {
	return c.paymentMethod
}

// CustomerID returns the optional customer reference, nil for walk-ins.
func (c CreateOrderCommand) CustomerID() *kernel.UUID {
	return c.customerID
}

// LineItems returns the requested line items.
func (c CreateOrderCommand) LineItems() []LineItemInput {
	out := make([]LineItemInput, len(c.lineItems))
	copy(out, c.lineItems)
	return out
}

func (c *CreateOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *CreateOrderCommand) setPaymentMethod(paymentMethod order.PaymentMethod) error {
	if err := paymentMethod.Validate(); err != nil {
		return err
	}

	c.paymentMethod = paymentMethod
	return nil
}

func (c *CreateOrderCommand) setCustomerID(customerID *kernel.UUID) error {
	if customerID != nil {
		if err := customerID.Validate(); err != nil {
			return err
		}
	}

	c.customerID = customerID
	return nil
}

func (c *CreateOrderCommand) setLineItems(lineItems []LineItemInput) error {
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

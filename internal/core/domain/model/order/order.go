package order

import (
	"errors"
	"time"

	"burgershop/internal/core/domain/model/kernel"
	"burgershop/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created through
	// the NewOrder factory method. This ensures all orders are properly validated.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")
)

// Order represents a customer order. It is the aggregate root that owns the
// order's line items, their ingredient customizations, and the status
// lifecycle from creation through delivery or cancellation.
//
// Order follows these invariants:
//   - Must have a valid unique identifier and a known payment method
//   - Created with at least one line item
//   - Total always equals the sum of the current line-item subtotals;
//     every mutation re-derives it by resummation, never by delta
//   - Terminal orders (delivered, cancelled) cannot gain or lose line items
//   - Status history is append-only and starts with the pending entry
//   - Can only be created through NewOrder / RestoreOrder
//
// The Order struct uses private fields to ensure encapsulation and maintains
// its invariants through validated methods.
type Order struct {
	// id is the unique identifier for the order
	id kernel.UUID

	// createdAt is when the order was placed
	createdAt time.Time

	// paymentMethod is the payment method the customer chose
	paymentMethod PaymentMethod

	// customerID optionally references the customer (nil for walk-ins)
	customerID *kernel.UUID

	// lineItems are the ordered product instances; owned by the aggregate
	lineItems []*LineItem

	// total is the derived sum of line-item subtotals
	total kernel.Money

	// status is the current state in the order lifecycle
	status Status

	// history records every status the order has entered, in order
	history []StatusChange

	// isConstructed ensures the order was created via NewOrder
	isConstructed bool
}

// NewOrder creates a new Order in pending status with validation. This is
// the only way to create a valid Order from scratch; RestoreOrder is the
// only way to rebuild one from persistence.
//
// The line items must be non-empty and already priced. The total is derived
// from them, never passed in.
func NewOrder(
	id kernel.UUID,
	paymentMethod PaymentMethod,
	customerID *kernel.UUID,
	lineItems []*LineItem,
	now time.Time,
) (*Order, error) {
	o := &Order{
		status:        Pending,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setPaymentMethod(paymentMethod),
		o.setCustomerID(customerID),
		o.setCreatedAt(now),
		o.setLineItems(lineItems),
	); err != nil {
		return nil, err
	}

	initial, err := NewStatusChange(Pending, now)
	if err != nil {
		return nil, err
	}
	o.history = []StatusChange{initial}

	if err := o.resumTotal(); err != nil {
		return nil, err
	}

	return o, nil
}

// RestoreOrder reconstructs an Order from persistence, including its status
// and history. The total is re-derived from the line items rather than
// trusted, so a restored aggregate always satisfies the total invariant.
func RestoreOrder(
	id kernel.UUID,
	paymentMethod PaymentMethod,
	customerID *kernel.UUID,
	lineItems []*LineItem,
	status Status,
	history []StatusChange,
	createdAt time.Time,
) (*Order, error) {
	o := &Order{
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setPaymentMethod(paymentMethod),
		o.setCustomerID(customerID),
		o.setCreatedAt(createdAt),
		o.setRestoredLineItems(lineItems),
		o.setStatus(status),
	); err != nil {
		return nil, err
	}

	o.history = make([]StatusChange, len(history))
	copy(o.history, history)

	if err := o.resumTotal(); err != nil {
		return nil, err
	}

	return o, nil
}

// Validate ensures the Order instance was properly constructed.
// This prevents bypassing validation by directly instantiating the struct
// and should be called when handing aggregates to persistence.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}

	return nil
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// CreatedAt returns when the order was placed.
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// PaymentMethod returns the payment method chosen for the order.
func (o *Order) PaymentMethod() PaymentMethod {
	return o.paymentMethod
}

// CustomerID returns the optional customer reference.
// Returns nil for anonymous walk-in orders.
func (o *Order) CustomerID() *kernel.UUID {
	return o.customerID
}

// LineItems returns a copy of the order's current line items.
func (o *Order) LineItems() []*LineItem {
	out := make([]*LineItem, len(o.lineItems))
	copy(out, o.lineItems)
	return out
}

// LineItem returns the line item with the given identifier, or an
// ObjectNotFoundError if the order has no such line item.
func (o *Order) LineItem(id kernel.UUID) (*LineItem, error) {
	for _, li := range o.lineItems {
		if li.ID().IsEqual(id) {
			return li, nil
		}
	}
	return nil, errs.NewObjectNotFoundError("lineItem", id.String())
}

// Total returns the order total: the sum of the current line-item subtotals.
func (o *Order) Total() kernel.Money {
	return o.total
}

// Status returns the current status of the order.
func (o *Order) Status() Status {
	return o.status
}

// History returns a copy of the order's status history, oldest first.
func (o *Order) History() []StatusChange {
	out := make([]StatusChange, len(o.history))
	copy(out, o.history)
	return out
}

// AddLineItems appends already-priced line items to the order and re-derives
// the total.
//
// Business rules:
//   - The order must not be in a terminal status (StateConflictError)
//   - At least one line item must be supplied
//   - Every line item must be properly constructed
//
// On any error the aggregate is left unchanged.
func (o *Order) AddLineItems(items []*LineItem) error {
	if err := o.ensureMutable(); err != nil {
		return err
	}

	if len(items) == 0 {
		return errs.NewValueIsRequiredError("lineItems")
	}
	for _, li := range items {
		if err := li.Validate(); err != nil {
			return err
		}
	}

	o.lineItems = append(o.lineItems, items...)
	return o.resumTotal()
}

// RemoveLineItem removes one line item by identifier and re-derives the total.
//
// Business rules:
//   - The order must not be in a terminal status (StateConflictError)
//   - The line item must belong to this order (ObjectNotFoundError)
//
// On any error the aggregate is left unchanged.
func (o *Order) RemoveLineItem(id kernel.UUID) error {
	if err := o.ensureMutable(); err != nil {
		return err
	}
	if err := id.Validate(); err != nil {
		return err
	}

	for i, li := range o.lineItems {
		if li.ID().IsEqual(id) {
			o.lineItems = append(o.lineItems[:i], o.lineItems[i+1:]...)
			return o.resumTotal()
		}
	}

	return errs.NewObjectNotFoundError("lineItem", id.String())
}

// ChangeStatus transitions the order to the target status under the given
// policy and appends a history entry. Totals and line items are never
// touched by a status change.
func (o *Order) ChangeStatus(target Status, policy StatusPolicy, now time.Time) error {
	if err := target.Validate(); err != nil {
		return err
	}

	if err := policy.Authorize(o.status, target); err != nil {
		return err
	}

	change, err := NewStatusChange(target, now)
	if err != nil {
		return err
	}

	o.status = target
	o.history = append(o.history, change)
	return nil
}

// ensureMutable rejects line-item mutations on terminal orders.
// This gate runs before any pricing or persistence work.
func (o *Order) ensureMutable() error {
	if o.status.IsTerminal() {
		return errs.NewStateConflictError("order", o.status.String())
	}
	return nil
}

// resumTotal re-derives the order total as the full sum of the current
// line-item subtotals. Resummation inside the mutating operation keeps the
// total invariant even when the previous stored value was stale.
func (o *Order) resumTotal() error {
	total := kernel.ZeroMoney()
	for _, li := range o.lineItems {
		sum, err := total.Add(li.Subtotal())
		if err != nil {
			return err
		}
		total = sum
	}
	o.total = total
	return nil
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setPaymentMethod(paymentMethod PaymentMethod) error {
	if err := paymentMethod.Validate(); err != nil {
		return err
	}
	o.paymentMethod = paymentMethod
	return nil
}

func (o *Order) setCustomerID(customerID *kernel.UUID) error {
	if customerID != nil {
		if err := customerID.Validate(); err != nil {
			return err
		}
	}
	o.customerID = customerID
	return nil
}

func (o *Order) setCreatedAt(createdAt time.Time) error {
	if createdAt.IsZero() {
		return errs.NewValueIsRequiredError("createdAt")
	}
	o.createdAt = createdAt
	return nil
}

func (o *Order) setLineItems(lineItems []*LineItem) error {
	if len(lineItems) == 0 {
		return errs.NewValueIsRequiredError("lineItems")
	}
	return o.setRestoredLineItems(lineItems)
}

// setRestoredLineItems allows an empty list: an existing order may have had
// all of its line items removed after creation.
func (o *Order) setRestoredLineItems(lineItems []*LineItem) error {
	for _, li := range lineItems {
		if err := li.Validate(); err != nil {
			return err
		}
	}
	o.lineItems = make([]*LineItem, len(lineItems))
	copy(o.lineItems, lineItems)
	return nil
}

func (o *Order) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	o.status = status
	return nil
}

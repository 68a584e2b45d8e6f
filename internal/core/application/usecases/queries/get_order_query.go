// Package queries contains read-only operations over the order store.
// Implements the Query side of the CQRS architecture: handlers read the
// database directly with raw SQL and never load aggregates for mutation.
package queries

import (
	"errors"
	"time"

	"burgershop/internal/core/domain/model/kernel"
	"burgershop/internal/pkg/guard"
)

var ErrGetOrderQueryIsNotConstructed = errors.New(
	"GetOrderQuery must be created via NewGetOrderQuery constructor",
)

// GetOrderQuery retrieves one order with its line items, customizations,
// and status history.
//
// Example:
//
//	query, _ := NewGetOrderQuery(orderID)
//	handler := NewGetOrderQueryHandler(db)
//
//	view, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to get order: %w", err)
//	}
//	fmt.Printf("Order %s: %s, total %s\n", view.ID, view.Status, view.Total)
type GetOrderQuery struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetOrderQuery creates a query for a single order.
func NewGetOrderQuery(orderID kernel.UUID) (GetOrderQuery, error) {
	query := GetOrderQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := query.setOrderID(orderID); err != nil {
		return GetOrderQuery{}, err
	}

	return query, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrderQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderQueryIsNotConstructed)
}

// OrderID returns the order being requested.
func (q GetOrderQuery) OrderID() kernel.UUID {
	return q.orderID
}

func (q *GetOrderQuery) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	q.orderID = orderID
	return nil
}

// GetOrderQueryResponse is the full read model of one order.
type GetOrderQueryResponse struct {
	ID            kernel.UUID
	Status        string
	PaymentMethod string
	Total         kernel.Money
	CustomerID    *kernel.UUID
	CreatedAt     time.Time
	LineItems     []LineItemResponse
	History       []StatusChangeResponse
}

// LineItemResponse is the read model of one line item within an order.
type LineItemResponse struct {
	ID             kernel.UUID
	ProductID      kernel.UUID
	ProductName    string
	Subtotal       kernel.Money
	Notes          string
	Customizations []CustomizationResponse
}

// CustomizationResponse is the read model of one ingredient customization.
type CustomizationResponse struct {
	IngredientID   kernel.UUID
	IngredientName string
	Quantity       int
	IsExtra        bool
}

// StatusChangeResponse is one entry of an order's status history.
type StatusChangeResponse struct {
	Status    string
	ChangedAt time.Time
}

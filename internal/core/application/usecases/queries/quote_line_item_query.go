package queries

import (
	"errors"

	"burgershop/internal/core/domain/model/kernel"
	"burgershop/internal/core/domain/model/order"
	"burgershop/internal/pkg/guard"
)

var ErrQuoteLineItemQueryIsNotConstructed = errors.New(
	"QuoteLineItemQuery must be created via NewQuoteLineItemQuery constructor",
)

// QuoteLineItemQuery computes what one line item would cost without placing
// an order. Uses the same pricing rules as order placement.
//
// Example:
//
//	extra, _ := order.NewCustomization(baconID, 2, true)
//	query, _ := NewQuoteLineItemQuery(productID, []order.Customization{extra})
//	handler := NewQuoteLineItemQueryHandler(catalogRepo, pricer)
//
//	quote, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to quote: %w", err)
//	}
//	fmt.Printf("%s would cost %s\n", quote.ProductName, quote.Subtotal)
type QuoteLineItemQuery struct { //nolint:recvcheck //using for validation
	productID      kernel.UUID
	customizations []order.Customization

	guard guard.ConstructorGuard
}

// NewQuoteLineItemQuery creates a quote request.
func NewQuoteLineItemQuery(
	productID kernel.UUID,
	customizations []order.Customization,
) (QuoteLineItemQuery, error) {
	query := QuoteLineItemQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		query.setProductID(productID),
		query.setCustomizations(customizations),
	); err != nil {
		return QuoteLineItemQuery{}, err
	}

	return query, nil
}

// Validate ensures the query was created through the constructor.
func (q QuoteLineItemQuery) Validate() error {
	return q.guard.Validate(ErrQuoteLineItemQueryIsNotConstructed)
}

// ProductID returns the product being quoted.
func (q QuoteLineItemQuery) ProductID() kernel.UUID {
	return q.productID
}

// Customizations returns the requested ingredient customizations.
func (q QuoteLineItemQuery) Customizations() []order.Customization {
	out := make([]order.Customization, len(q.customizations))
	copy(out, q.customizations)
	return out
}

func (q *QuoteLineItemQuery) setProductID(productID kernel.UUID) error {
	if err := productID.Validate(); err != nil {
		return err
	}

	q.productID = productID
	return nil
}

func (q *QuoteLineItemQuery) setCustomizations(customizations []order.Customization) error {
	for _, c := range customizations {
		if err := c.Validate(); err != nil {
			return err
		}
	}

	q.customizations = make([]order.Customization, len(customizations))
	copy(q.customizations, customizations)
	return nil
}

// QuoteLineItemQueryResponse is the computed price quote.
type QuoteLineItemQueryResponse struct {
	ProductID   kernel.UUID
	ProductName string
	BasePrice   kernel.Money
	Subtotal    kernel.Money
}

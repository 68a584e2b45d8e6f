package queries

import (
	"errors"
	"time"

	"burgershop/internal/core/domain/model/kernel"
	"burgershop/internal/core/domain/model/order"
	"burgershop/internal/pkg/guard"
)

var (
	ErrGetOrdersQueryIsNotConstructed = errors.New(
		"GetOrdersQuery must be created via NewGetOrdersQuery constructor",
	)
	ErrDateRangeIsInvalid = errors.New("from must not be after to")
)

// GetOrdersQuery retrieves order summaries with optional filters: status,
// payment method, and creation date range. A zero filter means no filtering
// on that dimension.
//
// Example:
//
//	query, _ := NewGetOrdersQuery(order.Pending, order.PaymentUnknown, time.Time{}, time.Time{})
//	handler := NewGetOrdersQueryHandler(db)
//
//	summaries, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to list orders: %w", err)
//	}
//	fmt.Printf("Found %d pending orders\n", len(summaries))
type GetOrdersQuery struct { //nolint:recvcheck //using for validation
	status        order.Status
	paymentMethod order.PaymentMethod
	from          time.Time
	to            time.Time

	guard guard.ConstructorGuard
}

// NewGetOrdersQuery creates a filtered listing query.
// Pass order.Unknown, order.PaymentUnknown, or zero times to skip a filter.
// Set filters must hold valid values and from must not be after to.
func NewGetOrdersQuery(
	status order.Status,
	paymentMethod order.PaymentMethod,
	from time.Time,
	to time.Time,
) (GetOrdersQuery, error) {
	query := GetOrdersQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		query.setStatus(status),
		query.setPaymentMethod(paymentMethod),
		query.setRange(from, to),
	); err != nil {
		return GetOrdersQuery{}, err
	}

	return query, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetOrdersQueryIsNotConstructed)
}

// Status returns the status filter, order.Unknown when unset.
func (q GetOrdersQuery) Status() order.Status {
	return q.status
}

// PaymentMethod returns the payment filter, order.PaymentUnknown when unset.
func (q GetOrdersQuery) PaymentMethod() order.PaymentMethod {
	return q.paymentMethod
}

// From returns the start of the creation date range, zero when unset.
func (q GetOrdersQuery) From() time.Time {
	return q.from
}

// To returns the end of the creation date range, zero when unset.
func (q GetOrdersQuery) To() time.Time {
	return q.to
}

func (q *GetOrdersQuery) setStatus(status order.Status) error {
	if status != order.Unknown {
		if err := status.Validate(); err != nil {
			return err
		}
	}

	q.status = status
	return nil
}

func (q *GetOrdersQuery) setPaymentMethod(paymentMethod order.PaymentMethod) error {
	if paymentMethod != order.PaymentUnknown {
		if err := paymentMethod.Validate(); err != nil {
			return err
		}
	}

	q.paymentMethod = paymentMethod
	return nil
}

func (q *GetOrdersQuery) setRange(from, to time.Time) error {
	if !from.IsZero() && !to.IsZero() && from.After(to) {
		return ErrDateRangeIsInvalid
	}

	q.from = from
	q.to = to
	return nil
}

// GetOrdersQueryResponse is the summary read model of one order in a listing.
type GetOrdersQueryResponse struct {
	ID            kernel.UUID
	Status        string
	PaymentMethod string
	Total         kernel.Money
	CreatedAt     time.Time
	LineItemCount int
}

package queries

import (
	"context"
	"time"

	"burgershop/internal/core/domain/model/kernel"
	"burgershop/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// GetOrdersQueryHandler lists order summaries from the database.
// Filters compose in SQL so unfiltered dimensions cost nothing.
type GetOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetOrdersQueryHandler creates a handler for order listings.
// Requires a GORM database connection for query execution.
func NewGetOrdersQueryHandler(db *gorm.DB) GetOrdersQueryHandler {
	return GetOrdersQueryHandler{db: db}
}

// Handle executes the listing query with the configured filters.
// Results are sorted newest first.
func (h GetOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetOrdersQuery,
) ([]GetOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	sql := `
		SELECT
			o.id,
			o.status,
			o.payment_method,
			o.total,
			o.created_at,
			COUNT(li.id) AS line_item_count
		FROM orders o
		LEFT JOIN line_items li ON li.order_id = o.id
		WHERE 1=1
	`
	args := make([]any, 0, 4)

	if query.Status() != order.Unknown {
		sql += " AND o.status = ?"
		args = append(args, int(query.Status()))
	}
	if query.PaymentMethod() != order.PaymentUnknown {
		sql += " AND o.payment_method = ?"
		args = append(args, int(query.PaymentMethod()))
	}
	if !query.From().IsZero() {
		sql += " AND o.created_at >= ?"
		args = append(args, query.From())
	}
	if !query.To().IsZero() {
		sql += " AND o.created_at <= ?"
		args = append(args, query.To())
	}

	sql += `
		GROUP BY o.id, o.status, o.payment_method, o.total, o.created_at
		ORDER BY o.created_at DESC
	`

	rows, err := h.db.WithContext(ctx).Raw(sql, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	summaries := make([]GetOrdersQueryResponse, 0)
	for rows.Next() {
		var (
			id            uuid.UUID
			status        int
			paymentMethod int
			total         decimal.Decimal
			createdAt     time.Time
			lineItemCount int
		)
		if err = rows.Scan(&id, &status, &paymentMethod, &total, &createdAt, &lineItemCount); err != nil {
			return nil, err
		}

		summary := GetOrdersQueryResponse{
			Status:        order.Status(status).String(),
			PaymentMethod: order.PaymentMethod(paymentMethod).String(),
			CreatedAt:     createdAt,
			LineItemCount: lineItemCount,
		}
		if summary.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return nil, err
		}
		if summary.Total, err = kernel.NewMoney(total); err != nil {
			return nil, err
		}

		summaries = append(summaries, summary)
	}

	return summaries, rows.Err()
}

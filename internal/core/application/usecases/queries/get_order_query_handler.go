package queries

import (
	"context"
	"time"

	"burgershop/internal/core/domain/model/kernel"
	"burgershop/internal/core/domain/model/order"
	"burgershop/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// GetOrderQueryHandler retrieves one order's full read model from the
// database: header, line items with customizations, and status history.
type GetOrderQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderQueryHandler creates a handler for single-order queries.
// Requires a GORM database connection for query execution.
func NewGetOrderQueryHandler(db *gorm.DB) GetOrderQueryHandler {
	return GetOrderQueryHandler{db: db}
}

// Handle executes the query. Returns ObjectNotFoundError when the order
// does not exist.
func (h GetOrderQueryHandler) Handle(ctx context.Context, query GetOrderQuery) (GetOrderQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetOrderQueryResponse{}, err
	}

	resp, err := h.loadHeader(ctx, query.OrderID())
	if err != nil {
		return GetOrderQueryResponse{}, err
	}

	resp.LineItems, err = h.loadLineItems(ctx, query.OrderID())
	if err != nil {
		return GetOrderQueryResponse{}, err
	}

	resp.History, err = h.loadHistory(ctx, query.OrderID())
	if err != nil {
		return GetOrderQueryResponse{}, err
	}

	return resp, nil
}

func (h GetOrderQueryHandler) loadHeader(ctx context.Context, orderID kernel.UUID) (GetOrderQueryResponse, error) {
	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			status,
			payment_method,
			total,
			customer_id,
			created_at
		FROM orders
		WHERE id = ?
	`, orderID.Bytes()).Rows()
	if err != nil {
		return GetOrderQueryResponse{}, err
	}
	defer rows.Close()

	if !rows.Next() {
		if err = rows.Err(); err != nil {
			return GetOrderQueryResponse{}, err
		}
		return GetOrderQueryResponse{}, errs.NewObjectNotFoundError("orderId", orderID.String())
	}

	var (
		id            uuid.UUID
		status        int
		paymentMethod int
		total         decimal.Decimal
		customerID    *uuid.UUID
		createdAt     time.Time
	)
	if err = rows.Scan(&id, &status, &paymentMethod, &total, &customerID, &createdAt); err != nil {
		return GetOrderQueryResponse{}, err
	}

	resp := GetOrderQueryResponse{
		Status:        order.Status(status).String(),
		PaymentMethod: order.PaymentMethod(paymentMethod).String(),
		CreatedAt:     createdAt,
	}

	if resp.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
		return GetOrderQueryResponse{}, err
	}
	if resp.Total, err = kernel.NewMoney(total); err != nil {
		return GetOrderQueryResponse{}, err
	}
	if customerID != nil {
		cid, cidErr := kernel.UUIDFromBytes(customerID[:])
		if cidErr != nil {
			return GetOrderQueryResponse{}, cidErr
		}
		resp.CustomerID = &cid
	}

	return resp, nil
}

func (h GetOrderQueryHandler) loadLineItems(ctx context.Context, orderID kernel.UUID) ([]LineItemResponse, error) {
	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			li.id,
			li.product_id,
			p.name,
			li.subtotal,
			li.notes
		FROM line_items li
		JOIN products p ON p.id = li.product_id
		WHERE li.order_id = ?
		ORDER BY li.id
	`, orderID.Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	lineItems := make([]LineItemResponse, 0)
	for rows.Next() {
		var (
			id          uuid.UUID
			productID   uuid.UUID
			productName string
			subtotal    decimal.Decimal
			notes       string
		)
		if err = rows.Scan(&id, &productID, &productName, &subtotal, &notes); err != nil {
			return nil, err
		}

		item := LineItemResponse{
			ProductName: productName,
			Notes:       notes,
		}
		if item.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return nil, err
		}
		if item.ProductID, err = kernel.UUIDFromBytes(productID[:]); err != nil {
			return nil, err
		}
		if item.Subtotal, err = kernel.NewMoney(subtotal); err != nil {
			return nil, err
		}

		lineItems = append(lineItems, item)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	for i := range lineItems {
		lineItems[i].Customizations, err = h.loadCustomizations(ctx, lineItems[i].ID)
		if err != nil {
			return nil, err
		}
	}

	return lineItems, nil
}

func (h GetOrderQueryHandler) loadCustomizations(
	ctx context.Context,
	lineItemID kernel.UUID,
) ([]CustomizationResponse, error) {
	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			lii.ingredient_id,
			i.name,
			lii.quantity,
			lii.is_extra
		FROM line_item_ingredients lii
		JOIN ingredients i ON i.id = lii.ingredient_id
		WHERE lii.line_item_id = ?
		ORDER BY i.name
	`, lineItemID.Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	customizations := make([]CustomizationResponse, 0)
	for rows.Next() {
		var (
			ingredientID   uuid.UUID
			ingredientName string
			quantity       int
			isExtra        bool
		)
		if err = rows.Scan(&ingredientID, &ingredientName, &quantity, &isExtra); err != nil {
			return nil, err
		}

		c := CustomizationResponse{
			IngredientName: ingredientName,
			Quantity:       quantity,
			IsExtra:        isExtra,
		}
		if c.IngredientID, err = kernel.UUIDFromBytes(ingredientID[:]); err != nil {
			return nil, err
		}

		customizations = append(customizations, c)
	}

	return customizations, rows.Err()
}

func (h GetOrderQueryHandler) loadHistory(ctx context.Context, orderID kernel.UUID) ([]StatusChangeResponse, error) {
	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			status,
			changed_at
		FROM status_changes
		WHERE order_id = ?
		ORDER BY changed_at, id
	`, orderID.Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	history := make([]StatusChangeResponse, 0)
	for rows.Next() {
		var (
			status    int
			changedAt time.Time
		)
		if err = rows.Scan(&status, &changedAt); err != nil {
			return nil, err
		}
		history = append(history, StatusChangeResponse{
			Status:    order.Status(status).String(),
			ChangedAt: changedAt,
		})
	}

	return history, rows.Err()
}

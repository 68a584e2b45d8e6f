package queries

import (
	"context"

	"burgershop/internal/core/domain/model/kernel"
	"burgershop/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// topN bounds every ranking projection in the statistics response.
const topN = 5

// GetOrderStatisticsQueryHandler computes the dashboard projections with
// aggregate SQL. Each projection is one query; they share no transaction
// because the dashboard tolerates slight skew between panels.
type GetOrderStatisticsQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderStatisticsQueryHandler creates a handler for statistics queries.
// Requires a GORM database connection for query execution.
func NewGetOrderStatisticsQueryHandler(db *gorm.DB) GetOrderStatisticsQueryHandler {
	return GetOrderStatisticsQueryHandler{db: db}
}

// Handle executes every projection and assembles the response.
func (h GetOrderStatisticsQueryHandler) Handle(
	ctx context.Context,
	query GetOrderStatisticsQuery,
) (GetOrderStatisticsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetOrderStatisticsQueryResponse{}, err
	}

	var (
		resp GetOrderStatisticsQueryResponse
		err  error
	)

	if resp.TotalOrders, err = h.totalOrders(ctx); err != nil {
		return GetOrderStatisticsQueryResponse{}, err
	}
	if resp.OrdersByStatus, err = h.ordersByStatus(ctx); err != nil {
		return GetOrderStatisticsQueryResponse{}, err
	}
	if resp.TopProducts, err = h.topProducts(ctx); err != nil {
		return GetOrderStatisticsQueryResponse{}, err
	}
	if resp.TopExtraIngredients, err = h.topExtraIngredients(ctx); err != nil {
		return GetOrderStatisticsQueryResponse{}, err
	}
	if resp.RevenueByPayment, err = h.revenueByPayment(ctx); err != nil {
		return GetOrderStatisticsQueryResponse{}, err
	}
	if resp.MostCustomizedProduct, err = h.mostCustomizedProducts(ctx); err != nil {
		return GetOrderStatisticsQueryResponse{}, err
	}

	return resp, nil
}

func (h GetOrderStatisticsQueryHandler) totalOrders(ctx context.Context) (int, error) {
	var total int
	err := h.db.WithContext(ctx).Raw(`SELECT COUNT(*) FROM orders`).Scan(&total).Error
	return total, err
}

func (h GetOrderStatisticsQueryHandler) ordersByStatus(ctx context.Context) ([]StatusCount, error) {
	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT status, COUNT(*)
		FROM orders
		GROUP BY status
		ORDER BY status
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	counts := make([]StatusCount, 0)
	for rows.Next() {
		var status, count int
		if err = rows.Scan(&status, &count); err != nil {
			return nil, err
		}
		counts = append(counts, StatusCount{
			Status: order.Status(status).String(),
			Count:  count,
		})
	}

	return counts, rows.Err()
}

// topProducts counts line-item rows per product. A line item with an extra
// double bacon still counts as one unit of its product.
func (h GetOrderStatisticsQueryHandler) topProducts(ctx context.Context) ([]ProductSales, error) {
	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			p.id,
			p.name,
			p.category,
			COUNT(li.id) AS units_sold,
			SUM(li.subtotal) AS revenue
		FROM line_items li
		JOIN products p ON p.id = li.product_id
		GROUP BY p.id, p.name, p.category
		ORDER BY units_sold DESC
		LIMIT ?
	`, topN).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	sales := make([]ProductSales, 0, topN)
	for rows.Next() {
		var (
			id        uuid.UUID
			name      string
			category  string
			unitsSold int
			revenue   decimal.Decimal
		)
		if err = rows.Scan(&id, &name, &category, &unitsSold, &revenue); err != nil {
			return nil, err
		}

		s := ProductSales{
			Name:      name,
			Category:  category,
			UnitsSold: unitsSold,
		}
		if s.ProductID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return nil, err
		}
		if s.Revenue, err = kernel.NewMoney(revenue); err != nil {
			return nil, err
		}

		sales = append(sales, s)
	}

	return sales, rows.Err()
}

func (h GetOrderStatisticsQueryHandler) topExtraIngredients(ctx context.Context) ([]IngredientDemand, error) {
	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			i.id,
			i.name,
			i.unit,
			SUM(lii.quantity) AS requested
		FROM line_item_ingredients lii
		JOIN ingredients i ON i.id = lii.ingredient_id
		WHERE lii.is_extra = TRUE
		GROUP BY i.id, i.name, i.unit
		ORDER BY requested DESC
		LIMIT ?
	`, topN).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	demand := make([]IngredientDemand, 0, topN)
	for rows.Next() {
		var (
			id        uuid.UUID
			name      string
			unit      string
			requested int
		)
		if err = rows.Scan(&id, &name, &unit, &requested); err != nil {
			return nil, err
		}

		d := IngredientDemand{
			Name:      name,
			Unit:      unit,
			Requested: requested,
		}
		if d.IngredientID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return nil, err
		}

		demand = append(demand, d)
	}

	return demand, rows.Err()
}

func (h GetOrderStatisticsQueryHandler) revenueByPayment(ctx context.Context) ([]PaymentRevenue, error) {
	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			payment_method,
			COUNT(*) AS order_count,
			SUM(total) AS revenue
		FROM orders
		GROUP BY payment_method
		ORDER BY payment_method
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	revenues := make([]PaymentRevenue, 0)
	for rows.Next() {
		var (
			paymentMethod int
			orderCount    int
			revenue       decimal.Decimal
		)
		if err = rows.Scan(&paymentMethod, &orderCount, &revenue); err != nil {
			return nil, err
		}

		r := PaymentRevenue{
			PaymentMethod: order.PaymentMethod(paymentMethod).String(),
			OrderCount:    orderCount,
		}
		if r.Revenue, err = kernel.NewMoney(revenue); err != nil {
			return nil, err
		}

		revenues = append(revenues, r)
	}

	return revenues, rows.Err()
}

func (h GetOrderStatisticsQueryHandler) mostCustomizedProducts(ctx context.Context) ([]ProductCustomizations, error) {
	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			p.id,
			p.name,
			p.category,
			COUNT(lii.line_item_id) AS customizations,
			COUNT(DISTINCT li.id) AS customized_items
		FROM products p
		JOIN line_items li ON li.product_id = p.id
		JOIN line_item_ingredients lii ON lii.line_item_id = li.id
		GROUP BY p.id, p.name, p.category
		ORDER BY customizations DESC
		LIMIT ?
	`, topN).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	ranked := make([]ProductCustomizations, 0, topN)
	for rows.Next() {
		var (
			id              uuid.UUID
			name            string
			category        string
			customizations  int
			customizedItems int
		)
		if err = rows.Scan(&id, &name, &category, &customizations, &customizedItems); err != nil {
			return nil, err
		}

		pc := ProductCustomizations{
			Name:            name,
			Category:        category,
			Customizations:  customizations,
			CustomizedItems: customizedItems,
		}
		if pc.ProductID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return nil, err
		}

		ranked = append(ranked, pc)
	}

	return ranked, rows.Err()
}

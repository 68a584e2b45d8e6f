package queries

import (
	"errors"

	"burgershop/internal/core/domain/model/kernel"
	"burgershop/internal/pkg/guard"
)

var ErrGetOrderStatisticsQueryIsNotConstructed = errors.New(
	"GetOrderStatisticsQuery must be created via NewGetOrderStatisticsQuery constructor",
)

// GetOrderStatisticsQuery retrieves the sales dashboard projections:
// order counts by status, best-selling products, most requested extra
// ingredients, revenue by payment method, and most customized products.
//
// Example:
//
//	query := NewGetOrderStatisticsQuery()
//	handler := NewGetOrderStatisticsQueryHandler(db)
//
//	stats, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to get statistics: %w", err)
//	}
//	fmt.Printf("%d orders total\n", stats.TotalOrders)
type GetOrderStatisticsQuery struct {
	guard guard.ConstructorGuard
}

// NewGetOrderStatisticsQuery creates a statistics query.
// This is a parameterless query over the whole order store.
func NewGetOrderStatisticsQuery() GetOrderStatisticsQuery {
	return GetOrderStatisticsQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetOrderStatisticsQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderStatisticsQueryIsNotConstructed)
}

// GetOrderStatisticsQueryResponse aggregates every dashboard projection.
type GetOrderStatisticsQueryResponse struct {
	TotalOrders           int
	OrdersByStatus        []StatusCount
	TopProducts           []ProductSales
	TopExtraIngredients   []IngredientDemand
	RevenueByPayment      []PaymentRevenue
	MostCustomizedProduct []ProductCustomizations
}

// StatusCount is the number of orders currently in one status.
type StatusCount struct {
	Status string
	Count  int
}

// ProductSales ranks a product by units sold. Units count line-item rows,
// not customization quantities.
type ProductSales struct {
	ProductID kernel.UUID
	Name      string
	Category  string
	UnitsSold int
	Revenue   kernel.Money
}

// IngredientDemand ranks an extra ingredient by total requested quantity.
type IngredientDemand struct {
	IngredientID kernel.UUID
	Name         string
	Unit         string
	Requested    int
}

// PaymentRevenue sums order totals per payment method.
type PaymentRevenue struct {
	PaymentMethod string
	OrderCount    int
	Revenue       kernel.Money
}

// ProductCustomizations ranks a product by how often it gets customized.
type ProductCustomizations struct {
	ProductID       kernel.UUID
	Name            string
	Category        string
	Customizations  int
	CustomizedItems int
}

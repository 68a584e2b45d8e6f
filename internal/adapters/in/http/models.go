package http

import (
	"time"

	"burgershop/internal/core/application/usecases/commands"
	"burgershop/internal/core/application/usecases/queries"
	"burgershop/internal/core/domain/model/kernel"
	"burgershop/internal/core/domain/model/order"
)

// Error is the JSON error body returned by every failing endpoint.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// CreateOrderRequest is the body of POST /api/orders.
type CreateOrderRequest struct {
	PaymentMethod string            `json:"payment_method"`
	CustomerID    *string           `json:"customer_id,omitempty"`
	Items         []LineItemRequest `json:"items"`
}

// AddItemsRequest is the body of POST /api/orders/:id/items.
type AddItemsRequest struct {
	Items []LineItemRequest `json:"items"`
}

// LineItemRequest describes one requested line item.
type LineItemRequest struct {
	ProductID      string                 `json:"product_id"`
	Notes          string                 `json:"notes,omitempty"`
	Customizations []CustomizationRequest `json:"customizations,omitempty"`
}

// CustomizationRequest describes one ingredient customization.
type CustomizationRequest struct {
	IngredientID string `json:"ingredient_id"`
	Quantity     int    `json:"quantity"`
	IsExtra      bool   `json:"is_extra"`
}

// ChangeStatusRequest is the body of PATCH /api/orders/:id/status.
type ChangeStatusRequest struct {
	Status string `json:"status"`
}

// QuoteRequest is the body of POST /api/products/:id/quote.
type QuoteRequest struct {
	Customizations []CustomizationRequest `json:"customizations,omitempty"`
}

// OrderResponse is the full JSON view of one order.
type OrderResponse struct {
	ID            string                 `json:"id"`
	Status        string                 `json:"status"`
	PaymentMethod string                 `json:"payment_method"`
	Total         string                 `json:"total"`
	CustomerID    *string                `json:"customer_id,omitempty"`
	CreatedAt     time.Time              `json:"created_at"`
	Items         []LineItemResponse     `json:"items"`
	History       []StatusChangeResponse `json:"history,omitempty"`
}

// LineItemResponse is the JSON view of one line item.
type LineItemResponse struct {
	ID             string                  `json:"id"`
	ProductID      string                  `json:"product_id"`
	ProductName    string                  `json:"product_name,omitempty"`
	Subtotal       string                  `json:"subtotal"`
	Notes          string                  `json:"notes,omitempty"`
	Customizations []CustomizationResponse `json:"customizations,omitempty"`
}

// CustomizationResponse is the JSON view of one ingredient customization.
type CustomizationResponse struct {
	IngredientID   string `json:"ingredient_id"`
	IngredientName string `json:"ingredient_name,omitempty"`
	Quantity       int    `json:"quantity"`
	IsExtra        bool   `json:"is_extra"`
}

// StatusChangeResponse is one JSON entry of an order's status history.
type StatusChangeResponse struct {
	Status    string    `json:"status"`
	ChangedAt time.Time `json:"changed_at"`
}

// OrderSummaryResponse is the JSON view of one order in a listing.
type OrderSummaryResponse struct {
	ID            string    `json:"id"`
	Status        string    `json:"status"`
	PaymentMethod string    `json:"payment_method"`
	Total         string    `json:"total"`
	CreatedAt     time.Time `json:"created_at"`
	ItemCount     int       `json:"item_count"`
}

// ProductResponse is the JSON view of one menu entry.
type ProductResponse struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Category  string `json:"category"`
	BasePrice string `json:"base_price"`
}

// QuoteResponse is the JSON view of a price quote.
type QuoteResponse struct {
	ProductID   string `json:"product_id"`
	ProductName string `json:"product_name"`
	BasePrice   string `json:"base_price"`
	Subtotal    string `json:"subtotal"`
}

// StatisticsResponse is the JSON view of the sales dashboard.
type StatisticsResponse struct {
	TotalOrders           int                             `json:"total_orders"`
	OrdersByStatus        []StatusCountResponse           `json:"orders_by_status"`
	TopProducts           []ProductSalesResponse          `json:"top_products"`
	TopExtraIngredients   []IngredientDemandResponse      `json:"top_extra_ingredients"`
	RevenueByPayment      []PaymentRevenueResponse        `json:"revenue_by_payment_method"`
	MostCustomizedProduct []ProductCustomizationsResponse `json:"most_customized_products"`
}

// StatusCountResponse is one panel entry of orders per status.
type StatusCountResponse struct {
	Status string `json:"status"`
	Count  int    `json:"count"`
}

// ProductSalesResponse ranks a product by units sold.
type ProductSalesResponse struct {
	ProductID string `json:"product_id"`
	Name      string `json:"name"`
	Category  string `json:"category"`
	UnitsSold int    `json:"units_sold"`
	Revenue   string `json:"revenue"`
}

// IngredientDemandResponse ranks an extra ingredient by requested quantity.
type IngredientDemandResponse struct {
	IngredientID string `json:"ingredient_id"`
	Name         string `json:"name"`
	Unit         string `json:"unit"`
	Requested    int    `json:"requested"`
}

// PaymentRevenueResponse sums order totals per payment method.
type PaymentRevenueResponse struct {
	PaymentMethod string `json:"payment_method"`
	OrderCount    int    `json:"order_count"`
	Revenue       string `json:"revenue"`
}

// ProductCustomizationsResponse ranks a product by customization count.
type ProductCustomizationsResponse struct {
	ProductID       string `json:"product_id"`
	Name            string `json:"name"`
	Category        string `json:"category"`
	Customizations  int    `json:"customizations"`
	CustomizedItems int    `json:"customized_items"`
}

// toLineItemInputs converts request line items into validated command inputs.
func toLineItemInputs(items []LineItemRequest) ([]commands.LineItemInput, error) {
	inputs := make([]commands.LineItemInput, 0, len(items))
	for _, item := range items {
		productID, err := kernel.UUIDFromString(item.ProductID)
		if err != nil {
			return nil, err
		}

		customizations, err := toCustomizations(item.Customizations)
		if err != nil {
			return nil, err
		}

		input, err := commands.NewLineItemInput(productID, item.Notes, customizations)
		if err != nil {
			return nil, err
		}
		inputs = append(inputs, input)
	}

	return inputs, nil
}

func toCustomizations(reqs []CustomizationRequest) ([]order.Customization, error) {
	customizations := make([]order.Customization, 0, len(reqs))
	for _, req := range reqs {
		ingredientID, err := kernel.UUIDFromString(req.IngredientID)
		if err != nil {
			return nil, err
		}

		customization, err := order.NewCustomization(ingredientID, req.Quantity, req.IsExtra)
		if err != nil {
			return nil, err
		}
		customizations = append(customizations, customization)
	}

	return customizations, nil
}

// orderToResponse renders an order aggregate as returned by command handlers.
// Product and ingredient names are not resolved here; the read endpoints
// serve the enriched view.
func orderToResponse(aggregate *order.Order) OrderResponse {
	items := make([]LineItemResponse, 0, len(aggregate.LineItems()))
	for _, li := range aggregate.LineItems() {
		customizations := make([]CustomizationResponse, 0, len(li.Customizations()))
		for _, c := range li.Customizations() {
			customizations = append(customizations, CustomizationResponse{
				IngredientID: c.IngredientID().String(),
				Quantity:     c.Quantity(),
				IsExtra:      c.IsExtra(),
			})
		}

		items = append(items, LineItemResponse{
			ID:             li.ID().String(),
			ProductID:      li.ProductID().String(),
			Subtotal:       li.Subtotal().String(),
			Notes:          li.Notes(),
			Customizations: customizations,
		})
	}

	history := make([]StatusChangeResponse, 0, len(aggregate.History()))
	for _, change := range aggregate.History() {
		history = append(history, StatusChangeResponse{
			Status:    change.Status().String(),
			ChangedAt: change.ChangedAt(),
		})
	}

	resp := OrderResponse{
		ID:            aggregate.ID().String(),
		Status:        aggregate.Status().String(),
		PaymentMethod: aggregate.PaymentMethod().String(),
		Total:         aggregate.Total().String(),
		CreatedAt:     aggregate.CreatedAt(),
		Items:         items,
		History:       history,
	}
	if customerID := aggregate.CustomerID(); customerID != nil {
		s := customerID.String()
		resp.CustomerID = &s
	}

	return resp
}

// orderViewToResponse renders the read model served by the order query.
func orderViewToResponse(view queries.GetOrderQueryResponse) OrderResponse {
	items := make([]LineItemResponse, 0, len(view.LineItems))
	for _, li := range view.LineItems {
		customizations := make([]CustomizationResponse, 0, len(li.Customizations))
		for _, c := range li.Customizations {
			customizations = append(customizations, CustomizationResponse{
				IngredientID:   c.IngredientID.String(),
				IngredientName: c.IngredientName,
				Quantity:       c.Quantity,
				IsExtra:        c.IsExtra,
			})
		}

		items = append(items, LineItemResponse{
			ID:             li.ID.String(),
			ProductID:      li.ProductID.String(),
			ProductName:    li.ProductName,
			Subtotal:       li.Subtotal.String(),
			Notes:          li.Notes,
			Customizations: customizations,
		})
	}

	history := make([]StatusChangeResponse, 0, len(view.History))
	for _, change := range view.History {
		history = append(history, StatusChangeResponse{
			Status:    change.Status,
			ChangedAt: change.ChangedAt,
		})
	}

	resp := OrderResponse{
		ID:            view.ID.String(),
		Status:        view.Status,
		PaymentMethod: view.PaymentMethod,
		Total:         view.Total.String(),
		CreatedAt:     view.CreatedAt,
		Items:         items,
		History:       history,
	}
	if view.CustomerID != nil {
		s := view.CustomerID.String()
		resp.CustomerID = &s
	}

	return resp
}

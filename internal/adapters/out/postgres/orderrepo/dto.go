// Package orderrepo provides data transfer objects and mapping functions for order persistence.
// This package implements the repository pattern for the order domain aggregate, handling
// the conversion between domain entities and database representations.
package orderrepo

import (
	"time"

	"burgershop/internal/core/domain/model/kernel"
	"burgershop/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderDTO represents the database structure for persisting order aggregates.
// The order owns its line items and status history; both are stored in child
// tables keyed by the order ID.
type OrderDTO struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey"`
	Status        int       `gorm:"index"`
	PaymentMethod int
	Total         decimal.Decimal `gorm:"type:numeric(12,2)"`
	CustomerID    *uuid.UUID      `gorm:"type:uuid;index"`
	CreatedAt     time.Time       `gorm:"index"`

	LineItems []LineItemDTO     `gorm:"foreignKey:OrderID;references:ID"`
	History   []StatusChangeDTO `gorm:"foreignKey:OrderID;references:ID"`
}

// TableName specifies the database table name for order entities.
// Overrides GORM's default naming convention to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

// LineItemDTO represents one line item row. The stored subtotal is the price
// the customer saw; restore re-derives the order total from these rows.
type LineItemDTO struct {
	ID        uuid.UUID       `gorm:"type:uuid;primaryKey"`
	OrderID   uuid.UUID       `gorm:"type:uuid;index"`
	ProductID uuid.UUID       `gorm:"type:uuid;index"`
	Subtotal  decimal.Decimal `gorm:"type:numeric(12,2)"`
	Notes     string

	Ingredients []LineItemIngredientDTO `gorm:"foreignKey:LineItemID;references:ID"`
}

// TableName specifies the database table name for line items.
func (LineItemDTO) TableName() string {
	return "line_items"
}

// LineItemIngredientDTO represents one ingredient customization row.
// A line item holds at most one row per ingredient.
type LineItemIngredientDTO struct {
	LineItemID   uuid.UUID `gorm:"type:uuid;primaryKey"`
	IngredientID uuid.UUID `gorm:"type:uuid;primaryKey;index"`
	Quantity     int
	IsExtra      bool
}

// TableName specifies the database table name for customizations.
func (LineItemIngredientDTO) TableName() string {
	return "line_item_ingredients"
}

// StatusChangeDTO represents one status history row. Rows are append-only
// from the domain's point of view; the surrogate key keeps insertion order
// for entries sharing a timestamp.
type StatusChangeDTO struct {
	ID        uint64    `gorm:"primaryKey;autoIncrement"`
	OrderID   uuid.UUID `gorm:"type:uuid;index"`
	Status    int
	ChangedAt time.Time
}

// TableName specifies the database table name for status history.
func (StatusChangeDTO) TableName() string {
	return "status_changes"
}

// fromDomain converts an order domain aggregate to its database representation,
// including line items, customizations, and status history.
func fromDomain(aggregate *order.Order) OrderDTO {
	var customerID *uuid.UUID
	if id := aggregate.CustomerID(); id != nil {
		raw := id.Bytes()
		customerID = &raw
	}

	lineItems := aggregate.LineItems()
	lineItemDTOs := make([]LineItemDTO, 0, len(lineItems))
	for _, li := range lineItems {
		lineItemDTOs = append(lineItemDTOs, lineItemFromDomain(aggregate.ID(), li))
	}

	history := aggregate.History()
	historyDTOs := make([]StatusChangeDTO, 0, len(history))
	for _, change := range history {
		historyDTOs = append(historyDTOs, StatusChangeDTO{
			OrderID:   aggregate.ID().Bytes(),
			Status:    int(change.Status()),
			ChangedAt: change.ChangedAt(),
		})
	}

	return OrderDTO{
		ID:            aggregate.ID().Bytes(),
		Status:        int(aggregate.Status()),
		PaymentMethod: int(aggregate.PaymentMethod()),
		Total:         aggregate.Total().Decimal(),
		CustomerID:    customerID,
		CreatedAt:     aggregate.CreatedAt(),
		LineItems:     lineItemDTOs,
		History:       historyDTOs,
	}
}

func lineItemFromDomain(orderID kernel.UUID, li *order.LineItem) LineItemDTO {
	customizations := li.Customizations()
	ingredientDTOs := make([]LineItemIngredientDTO, 0, len(customizations))
	for _, c := range customizations {
		ingredientDTOs = append(ingredientDTOs, LineItemIngredientDTO{
			LineItemID:   li.ID().Bytes(),
			IngredientID: c.IngredientID().Bytes(),
			Quantity:     c.Quantity(),
			IsExtra:      c.IsExtra(),
		})
	}

	return LineItemDTO{
		ID:          li.ID().Bytes(),
		OrderID:     orderID.Bytes(),
		ProductID:   li.ProductID().Bytes(),
		Subtotal:    li.Subtotal().Decimal(),
		Notes:       li.Notes(),
		Ingredients: ingredientDTOs,
	}
}

// toDomain converts a database DTO to an order domain aggregate.
// Reconstructs the complete aggregate including line items, customizations,
// and status history using RestoreOrder.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	var customerID *kernel.UUID
	if dto.CustomerID != nil {
		cID, customerErr := kernel.UUIDFromBytes((*dto.CustomerID)[:])
		if customerErr != nil {
			return nil, customerErr
		}

		customerID = &cID
	}

	lineItems := make([]*order.LineItem, 0, len(dto.LineItems))
	for _, liDTO := range dto.LineItems {
		li, liErr := lineItemToDomain(liDTO)
		if liErr != nil {
			return nil, liErr
		}
		lineItems = append(lineItems, li)
	}

	history := make([]order.StatusChange, 0, len(dto.History))
	for _, changeDTO := range dto.History {
		change, changeErr := order.NewStatusChange(order.Status(changeDTO.Status), changeDTO.ChangedAt)
		if changeErr != nil {
			return nil, changeErr
		}
		history = append(history, change)
	}

	return order.RestoreOrder(
		id,
		order.PaymentMethod(dto.PaymentMethod),
		customerID,
		lineItems,
		order.Status(dto.Status),
		history,
		dto.CreatedAt,
	)
}

func lineItemToDomain(dto LineItemDTO) (*order.LineItem, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	productID, err := kernel.UUIDFromBytes(dto.ProductID[:])
	if err != nil {
		return nil, err
	}

	subtotal, err := kernel.NewMoney(dto.Subtotal)
	if err != nil {
		return nil, err
	}

	customizations := make([]order.Customization, 0, len(dto.Ingredients))
	for _, ingDTO := range dto.Ingredients {
		ingredientID, ingErr := kernel.UUIDFromBytes(ingDTO.IngredientID[:])
		if ingErr != nil {
			return nil, ingErr
		}

		customization, cErr := order.NewCustomization(ingredientID, ingDTO.Quantity, ingDTO.IsExtra)
		if cErr != nil {
			return nil, cErr
		}
		customizations = append(customizations, customization)
	}

	return order.RestoreLineItem(id, productID, subtotal, dto.Notes, customizations)
}

package queries

import (
	"context"

	"burgershop/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// GetAvailableProductsQueryHandler lists the menu from the product catalog.
type GetAvailableProductsQueryHandler struct {
	db *gorm.DB
}

// NewGetAvailableProductsQueryHandler creates a handler for menu queries.
// Requires a GORM database connection for query execution.
func NewGetAvailableProductsQueryHandler(db *gorm.DB) GetAvailableProductsQueryHandler {
	return GetAvailableProductsQueryHandler{db: db}
}

// Handle executes the menu query. Results are sorted by category then name.
func (h GetAvailableProductsQueryHandler) Handle(
	ctx context.Context,
	query GetAvailableProductsQuery,
) ([]GetAvailableProductsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			name,
			category,
			base_price
		FROM products
		WHERE available = TRUE
		ORDER BY category, name
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	menu := make([]GetAvailableProductsQueryResponse, 0)
	for rows.Next() {
		var (
			id        uuid.UUID
			name      string
			category  string
			basePrice decimal.Decimal
		)
		if err = rows.Scan(&id, &name, &category, &basePrice); err != nil {
			return nil, err
		}

		entry := GetAvailableProductsQueryResponse{
			Name:     name,
			Category: category,
		}
		if entry.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return nil, err
		}
		if entry.BasePrice, err = kernel.NewMoney(basePrice); err != nil {
			return nil, err
		}

		menu = append(menu, entry)
	}

	return menu, rows.Err()
}

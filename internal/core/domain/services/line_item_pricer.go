package services

import (
	"burgershop/internal/core/domain/model/kernel"
	"burgershop/internal/core/domain/model/order"
	"burgershop/internal/core/domain/model/product"
	"burgershop/internal/pkg/errs"
)

// LineItemPricer is a domain service responsible for pricing a single line
// item from its product and ingredient customizations.
//
// Pricing rules:
//   - The subtotal starts at the product's base price
//   - Each extra customization adds ingredient price times quantity
//   - Removal customizations never change the price
//   - The product must be available for sale
//
// The pricer is pure: the caller resolves products and ingredients from the
// catalog first, so pricing itself touches no storage.
type LineItemPricer struct{}

// NewLineItemPricer creates a new LineItemPricer instance.
func NewLineItemPricer() LineItemPricer {
	return LineItemPricer{}
}

// Price calculates a line-item subtotal for the given product and
// customizations. The ingredients map must contain every extra
// customization's ingredient, keyed by the ingredient ID string.
//
// Returns:
//   - ValueIsInvalidError if the product is unavailable
//   - ObjectNotFoundError if an extra references an ingredient missing
//     from the map
func (LineItemPricer) Price(
	prod *product.Product,
	customizations []order.Customization,
	ingredients map[string]*product.Ingredient,
) (kernel.Money, error) {
	if err := prod.Validate(); err != nil {
		return kernel.Money{}, err
	}

	if !prod.IsAvailable() {
		return kernel.Money{}, errs.NewValueIsInvalidError("productId")
	}

	subtotal := prod.BasePrice()

	for _, c := range customizations {
		if err := c.Validate(); err != nil {
			return kernel.Money{}, err
		}

		if !c.IsExtra() {
			continue
		}

		ingredient, ok := ingredients[c.IngredientID().String()]
		if !ok {
			return kernel.Money{}, errs.NewObjectNotFoundError("ingredientId", c.IngredientID().String())
		}
		if err := ingredient.Validate(); err != nil {
			return kernel.Money{}, err
		}

		surcharge, err := ingredient.Price().Multiply(c.Quantity())
		if err != nil {
			return kernel.Money{}, err
		}

		subtotal, err = subtotal.Add(surcharge)
		if err != nil {
			return kernel.Money{}, err
		}
	}

	return subtotal, nil
}

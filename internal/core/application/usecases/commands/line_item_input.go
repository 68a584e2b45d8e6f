package commands

import (
	"context"
	"errors"

	"burgershop/internal/core/domain/model/kernel"
	"burgershop/internal/core/domain/model/order"
	"burgershop/internal/core/domain/model/product"
	"burgershop/internal/core/domain/services"
	"burgershop/internal/core/ports"
	"burgershop/internal/pkg/guard"
)

var ErrLineItemInputIsNotConstructed = errors.New(
	"LineItemInput must be created via NewLineItemInput constructor",
)

// LineItemInput describes one requested line item: which product, optional
// kitchen notes, and the ingredient customizations. Pricing happens later in
// the handler, against catalog state inside the transaction.
type LineItemInput struct { //nolint:recvcheck //using for validation
	productID      kernel.UUID
	notes          string
	customizations []order.Customization

	guard guard.ConstructorGuard
}

// NewLineItemInput creates a validated line-item request.
// Notes are optional; customizations are optional but each must be valid.
func NewLineItemInput(
	productID kernel.UUID,
	notes string,
	customizations []order.Customization,
) (LineItemInput, error) {
	input := LineItemInput{
		notes: notes,
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		input.setProductID(productID),
		input.setCustomizations(customizations),
	); err != nil {
		return LineItemInput{}, err
	}

	return input, nil
}

// Validate ensures the input was created through the constructor.
func (i LineItemInput) Validate() error {
	return i.guard.Validate(ErrLineItemInputIsNotConstructed)
}

// ProductID returns the catalog product being ordered.
func (i LineItemInput) ProductID() kernel.UUID {
	return i.productID
}

// Notes returns the optional free-text notes for the kitchen.
func (i LineItemInput) Notes() string {
	return i.notes
}

// Customizations returns the requested ingredient customizations.
func (i LineItemInput) Customizations() []order.Customization {
	out := make([]order.Customization, len(i.customizations))
	copy(out, i.customizations)
	return out
}

func (i *LineItemInput) setProductID(productID kernel.UUID) error {
	if err := productID.Validate(); err != nil {
		return err
	}

	i.productID = productID
	return nil
}

func (i *LineItemInput) setCustomizations(customizations []order.Customization) error {
	for _, c := range customizations {
		if err := c.Validate(); err != nil {
			return err
		}
	}

	i.customizations = make([]order.Customization, len(customizations))
	copy(i.customizations, customizations)
	return nil
}

// priceLineItems resolves each input's product and extra ingredients from the
// catalog and builds priced line items. Must run inside the transaction that
// will persist the order.
func priceLineItems(
	ctx context.Context,
	catalogRepo ports.CatalogRepository,
	pricer services.LineItemPricer,
	inputs []LineItemInput,
) ([]*order.LineItem, error) {
	lineItems := make([]*order.LineItem, 0, len(inputs))

	for _, input := range inputs {
		if err := input.Validate(); err != nil {
			return nil, err
		}

		prod, err := catalogRepo.GetProduct(ctx, input.ProductID())
		if err != nil {
			return nil, err
		}

		customizations := input.Customizations()
		ingredients := make(map[string]*product.Ingredient)
		for _, c := range customizations {
			if !c.IsExtra() {
				continue
			}
			ingredient, err := catalogRepo.GetIngredient(ctx, c.IngredientID())
			if err != nil {
				return nil, err
			}
			ingredients[ingredient.ID().String()] = ingredient
		}

		subtotal, err := pricer.Price(prod, customizations, ingredients)
		if err != nil {
			return nil, err
		}

		lineItem, err := order.NewLineItem(kernel.NewUUID(), prod.ID(), subtotal, input.Notes(), customizations)
		if err != nil {
			return nil, err
		}

		lineItems = append(lineItems, lineItem)
	}

	return lineItems, nil
}

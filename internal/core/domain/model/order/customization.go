package order

import (
	"errors"
	"fmt"

	"burgershop/internal/core/domain/model/kernel"
	"burgershop/internal/pkg/errs"
)

var (
	// ErrCustomizationIsNotConstructed is returned when a Customization was not
	// created through the NewCustomization factory method.
	ErrCustomizationIsNotConstructed = errors.New(
		"Customization must be created via NewCustomization constructor",
	)
)

// Customization is a value object describing one change to a line item's
// base recipe.
//
// When isExtra is true the ingredient is added on top of the recipe and
// charged at its unit price times the quantity. When isExtra is false the
// ingredient is a base-recipe ingredient the customer wants left out; it is
// recorded for the kitchen but has no price effect.
type Customization struct {
	ingredientID kernel.UUID
	quantity     int
	isExtra      bool

	isConstructed bool
}

// NewCustomization creates a validated Customization.
// Quantity must be positive regardless of direction: "remove two slices"
// is as meaningful to the kitchen as "add two slices" is to the bill.
func NewCustomization(ingredientID kernel.UUID, quantity int, isExtra bool) (Customization, error) {
	c := Customization{
		isExtra:       isExtra,
		isConstructed: true,
	}

	if err := errors.Join(
		c.setIngredientID(ingredientID),
		c.setQuantity(quantity),
	); err != nil {
		return Customization{}, err
	}

	return c, nil
}

// Validate ensures the Customization was properly constructed through NewCustomization.
func (c Customization) Validate() error {
	if !c.isConstructed {
		return ErrCustomizationIsNotConstructed
	}
	return nil
}

// IngredientID returns the identifier of the ingredient being added or removed.
func (c Customization) IngredientID() kernel.UUID {
	return c.ingredientID
}

// Quantity returns how many units are added or removed. Always positive.
func (c Customization) Quantity() int {
	return c.quantity
}

// IsExtra reports whether the ingredient is a priced addition (true) or a
// recorded removal with no price effect (false).
func (c Customization) IsExtra() bool {
	return c.isExtra
}

func (c *Customization) setIngredientID(ingredientID kernel.UUID) error {
	if err := ingredientID.Validate(); err != nil {
		return err
	}
	c.ingredientID = ingredientID
	return nil
}

func (c *Customization) setQuantity(quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"quantity",
			fmt.Errorf("%d is not greater than 0", quantity),
		)
	}
	c.quantity = quantity
	return nil
}

package product

import (
	"errors"
	"fmt"

	"burgershop/internal/core/domain/model/kernel"
	"burgershop/internal/pkg/errs"
)

var (
	// ErrIngredientIsNotConstructed is returned when an Ingredient instance was not
	// created through the NewIngredient factory method.
	ErrIngredientIsNotConstructed = errors.New("Ingredient must be created via NewIngredient constructor")
)

// Ingredient represents a catalog ingredient that can be added to a line item
// as a priced extra or recorded as removed from the base recipe.
// The unit price applies per unit of measure when the ingredient is an extra.
type Ingredient struct {
	id    kernel.UUID
	name  string
	unit  string
	price kernel.Money
	stock int

	isConstructed bool
}

// NewIngredient creates a new Ingredient instance with validation.
func NewIngredient(
	id kernel.UUID,
	name string,
	unit string,
	price kernel.Money,
	stock int,
) (*Ingredient, error) {
	ing := &Ingredient{
		isConstructed: true,
	}

	if err := errors.Join(
		ing.setID(id),
		ing.setName(name),
		ing.setUnit(unit),
		ing.setPrice(price),
		ing.setStock(stock),
	); err != nil {
		return nil, err
	}

	return ing, nil
}

// RestoreIngredient reconstructs an Ingredient from persistence.
// Applies the same validation as NewIngredient.
func RestoreIngredient(
	id kernel.UUID,
	name string,
	unit string,
	price kernel.Money,
	stock int,
) (*Ingredient, error) {
	return NewIngredient(id, name, unit, price, stock)
}

// Validate ensures the Ingredient instance was properly constructed through NewIngredient.
func (i *Ingredient) Validate() error {
	if i == nil || !i.isConstructed {
		return ErrIngredientIsNotConstructed
	}

	return nil
}

// IsEqual compares two ingredients by their unique identifiers.
func (i *Ingredient) IsEqual(other *Ingredient) bool {
	return other != nil && i.id.IsEqual(other.id)
}

// ID returns the ingredient's unique identifier.
func (i *Ingredient) ID() kernel.UUID {
	return i.id
}

// Name returns the ingredient's display name.
func (i *Ingredient) Name() string {
	return i.name
}

// Unit returns the ingredient's unit of measure, e.g. "slice" or "g".
func (i *Ingredient) Unit() string {
	return i.unit
}

// Price returns the price charged per unit when the ingredient is added as an extra.
func (i *Ingredient) Price() kernel.Money {
	return i.price
}

// Stock returns the current stock counter.
func (i *Ingredient) Stock() int {
	return i.stock
}

func (i *Ingredient) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	i.id = id
	return nil
}

func (i *Ingredient) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	i.name = name
	return nil
}

func (i *Ingredient) setUnit(unit string) error {
	if unit == "" {
		return errs.NewValueIsRequiredError("unit")
	}
	i.unit = unit
	return nil
}

func (i *Ingredient) setPrice(price kernel.Money) error {
	if err := price.Validate(); err != nil {
		return err
	}
	i.price = price
	return nil
}

func (i *Ingredient) setStock(stock int) error {
	if stock < 0 {
		return errs.NewValueIsInvalidErrorWithCause("stock", fmt.Errorf("%d is negative", stock))
	}
	i.stock = stock
	return nil
}

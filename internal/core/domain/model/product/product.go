package product

import (
	"errors"

	"burgershop/internal/core/domain/model/kernel"
	"burgershop/internal/pkg/errs"
)

var (
	// ErrProductIsNotConstructed is returned when a Product instance was not created
	// through the NewProduct factory method.
	ErrProductIsNotConstructed = errors.New("Product must be created via NewProduct constructor")
)

// Product represents an orderable catalog item: a burger, a side, a drink.
// It carries the base price that line-item pricing starts from and an
// availability flag that gates whether it can appear on new orders.
//
// Product follows these invariants:
//   - Must have a valid unique identifier
//   - Must have a non-empty name and category
//   - Base price must be a properly constructed monetary amount
//   - Can only be created through NewProduct constructor
type Product struct {
	id        kernel.UUID
	name      string
	category  string
	basePrice kernel.Money
	available bool

	isConstructed bool
}

// NewProduct creates a new Product instance with validation. This is the only
// way to create a valid Product, ensuring all invariants are maintained.
func NewProduct(
	id kernel.UUID,
	name string,
	category string,
	basePrice kernel.Money,
	available bool,
) (*Product, error) {
	p := &Product{
		available:     available,
		isConstructed: true,
	}

	if err := errors.Join(
		p.setID(id),
		p.setName(name),
		p.setCategory(category),
		p.setBasePrice(basePrice),
	); err != nil {
		return nil, err
	}

	return p, nil
}

// RestoreProduct reconstructs a Product from persistence.
// Applies the same validation as NewProduct.
func RestoreProduct(
	id kernel.UUID,
	name string,
	category string,
	basePrice kernel.Money,
	available bool,
) (*Product, error) {
	return NewProduct(id, name, category, basePrice, available)
}

// Validate ensures the Product instance was properly constructed through NewProduct.
func (p *Product) Validate() error {
	if p == nil || !p.isConstructed {
		return ErrProductIsNotConstructed
	}

	return nil
}

// IsEqual compares two products by their unique identifiers.
func (p *Product) IsEqual(other *Product) bool {
	return other != nil && p.id.IsEqual(other.id)
}

// ID returns the product's unique identifier.
func (p *Product) ID() kernel.UUID {
	return p.id
}

// Name returns the product's display name.
func (p *Product) Name() string {
	return p.name
}

// Category returns the catalog category the product belongs to.
func (p *Product) Category() string {
	return p.category
}

// BasePrice returns the price of the product without any customizations.
func (p *Product) BasePrice() kernel.Money {
	return p.basePrice
}

// IsAvailable reports whether the product can be ordered.
func (p *Product) IsAvailable() bool {
	return p.available
}

func (p *Product) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	p.id = id
	return nil
}

func (p *Product) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	p.name = name
	return nil
}

func (p *Product) setCategory(category string) error {
	if category == "" {
		return errs.NewValueIsRequiredError("category")
	}
	p.category = category
	return nil
}

func (p *Product) setBasePrice(basePrice kernel.Money) error {
	if err := basePrice.Validate(); err != nil {
		return err
	}
	p.basePrice = basePrice
	return nil
}

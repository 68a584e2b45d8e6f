package order

import (
	"errors"

	"burgershop/internal/core/domain/model/kernel"
)

var (
	// ErrLineItemIsNotConstructed is returned when a LineItem instance was not
	// created through the NewLineItem factory method.
	ErrLineItemIsNotConstructed = errors.New("LineItem must be created via NewLineItem constructor")
)

// LineItem is one product instance within an order. Each unit of a product
// is its own line item with its own customizations and its own computed
// subtotal, so two burgers with different extras are two line items.
//
// The subtotal is computed by the pricing service before construction and
// never changes afterwards; repricing means replacing the line item.
type LineItem struct {
	id             kernel.UUID
	productID      kernel.UUID
	subtotal       kernel.Money
	notes          string
	customizations []Customization

	isConstructed bool
}

// NewLineItem creates a validated LineItem. Notes are optional free text for
// the kitchen; an empty string means no notes. Customizations are optional.
func NewLineItem(
	id kernel.UUID,
	productID kernel.UUID,
	subtotal kernel.Money,
	notes string,
	customizations []Customization,
) (*LineItem, error) {
	li := &LineItem{
		notes:         notes,
		isConstructed: true,
	}

	if err := errors.Join(
		li.setID(id),
		li.setProductID(productID),
		li.setSubtotal(subtotal),
		li.setCustomizations(customizations),
	); err != nil {
		return nil, err
	}

	return li, nil
}

// RestoreLineItem reconstructs a LineItem from persistence.
// Applies the same validation as NewLineItem.
func RestoreLineItem(
	id kernel.UUID,
	productID kernel.UUID,
	subtotal kernel.Money,
	notes string,
	customizations []Customization,
) (*LineItem, error) {
	return NewLineItem(id, productID, subtotal, notes, customizations)
}

// Validate ensures the LineItem instance was properly constructed through NewLineItem.
func (li *LineItem) Validate() error {
	if li == nil || !li.isConstructed {
		return ErrLineItemIsNotConstructed
	}
	return nil
}

// IsEqual compares two line items by their unique identifiers.
func (li *LineItem) IsEqual(other *LineItem) bool {
	return other != nil && li.id.IsEqual(other.id)
}

// ID returns the line item's unique identifier.
func (li *LineItem) ID() kernel.UUID {
	return li.id
}

// ProductID returns the identifier of the ordered product.
func (li *LineItem) ProductID() kernel.UUID {
	return li.productID
}

// Subtotal returns the computed price of this line item: the product's base
// price plus all priced extras.
func (li *LineItem) Subtotal() kernel.Money {
	return li.subtotal
}

// Notes returns the free-text kitchen notes. Empty string means no notes.
func (li *LineItem) Notes() string {
	return li.notes
}

// Customizations returns a copy of the line item's customization list.
func (li *LineItem) Customizations() []Customization {
	out := make([]Customization, len(li.customizations))
	copy(out, li.customizations)
	return out
}

// Extras returns only the customizations that add priced ingredients.
func (li *LineItem) Extras() []Customization {
	var extras []Customization
	for _, c := range li.customizations {
		if c.IsExtra() {
			extras = append(extras, c)
		}
	}
	return extras
}

func (li *LineItem) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	li.id = id
	return nil
}

func (li *LineItem) setProductID(productID kernel.UUID) error {
	if err := productID.Validate(); err != nil {
		return err
	}
	li.productID = productID
	return nil
}

func (li *LineItem) setSubtotal(subtotal kernel.Money) error {
	if err := subtotal.Validate(); err != nil {
		return err
	}
	li.subtotal = subtotal
	return nil
}

func (li *LineItem) setCustomizations(customizations []Customization) error {
	for _, c := range customizations {
		if err := c.Validate(); err != nil {
			return err
		}
	}
	li.customizations = make([]Customization, len(customizations))
	copy(li.customizations, customizations)
	return nil
}

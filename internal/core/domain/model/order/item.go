package order

import (
	"errors"
	"math"

	"shop/internal/core/domain/model/kernel"
	"shop/internal/pkg/errs"
	"shop/internal/pkg/guard"
)

// Item is a line of an order: a product, a quantity and the unit price captured when
// the order was placed. Items are immutable once created.
type Item struct {
	id        kernel.UUID
	productID kernel.UUID
	quantity  int
	unitPrice kernel.Money
	guard     guard.ConstructorGuard
}

// NewItem creates an order line. Quantity must be at least 1 and unitPrice must be a
// constructed Money value; it is the snapshot of the product price and is never
// refreshed from the catalog afterwards.
func NewItem(id, productID kernel.UUID, quantity int, unitPrice kernel.Money) (*Item, error) {
	item := &Item{guard: guard.NewConstructorGuard()}

	if err := errors.Join(
		item.setID(id),
		item.setProductID(productID),
		item.setQuantity(quantity),
		item.setUnitPrice(unitPrice),
	); err != nil {
		return nil, err
	}

	return item, nil
}

// Validate ensures the Item was created via NewItem.
func (i *Item) Validate() error {
	if i == nil {
		return ErrItemIsNotConstructed
	}
	return i.guard.Validate(ErrItemIsNotConstructed)
}

func (i *Item) ID() kernel.UUID {
	return i.id
}

func (i *Item) ProductID() kernel.UUID {
	return i.productID
}

func (i *Item) Quantity() int {
	return i.quantity
}

func (i *Item) UnitPrice() kernel.Money {
	return i.unitPrice
}

// LineTotal is quantity × unit price. It is derived on every call and never stored.
func (i *Item) LineTotal() kernel.Money {
	return i.unitPrice.Mul(i.quantity)
}

func (i *Item) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	i.id = id
	return nil
}

func (i *Item) setProductID(productID kernel.UUID) error {
	if err := productID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("productID", err)
	}
	i.productID = productID
	return nil
}

func (i *Item) setQuantity(quantity int) error {
	if quantity < 1 {
		return errs.NewValueIsOutOfRangeError("quantity", quantity, 1, math.MaxInt32)
	}
	i.quantity = quantity
	return nil
}

func (i *Item) setUnitPrice(unitPrice kernel.Money) error {
	if err := unitPrice.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("unitPrice", err)
	}
	i.unitPrice = unitPrice
	return nil
}

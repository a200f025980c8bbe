package product

import (
	"errors"
	"math"
	"strings"

	"shop/internal/core/domain/model/kernel"
	"shop/internal/pkg/errs"
	"shop/internal/pkg/guard"
)

// Product is a catalog entry. Inactive products are soft-deleted: they stay in storage
// so historical order items keep a valid reference, but ordering treats them as absent.
//
// Business rules:
//   - Name and category are required
//   - Price is a non-negative Money
//   - Stock never drops below zero
type Product struct {
	id          kernel.UUID
	name        string
	description string
	price       kernel.Money
	stock       int
	category    string
	active      bool
	guard       guard.ConstructorGuard
}

// NewProduct creates an active product.
func NewProduct(id kernel.UUID, name, description string, price kernel.Money, stock int, category string) (*Product, error) {
	return RestoreProduct(id, name, description, price, stock, category, true)
}

// RestoreProduct reconstructs a Product from persistent storage.
func RestoreProduct(
	id kernel.UUID,
	name string,
	description string,
	price kernel.Money,
	stock int,
	category string,
	active bool,
) (*Product, error) {
	p := &Product{
		description: description,
		active:      active,
		guard:       guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		p.setID(id),
		p.setName(name),
		p.setPrice(price),
		p.setStock(stock),
		p.setCategory(category),
	); err != nil {
		return nil, err
	}

	return p, nil
}

// Validate ensures the Product was properly constructed.
func (p *Product) Validate() error {
	if p == nil {
		return ErrProductIsNotConstructed
	}
	return p.guard.Validate(ErrProductIsNotConstructed)
}

func (p *Product) ID() kernel.UUID {
	return p.id
}

func (p *Product) Name() string {
	return p.name
}

func (p *Product) Description() string {
	return p.description
}

func (p *Product) Price() kernel.Money {
	return p.price
}

func (p *Product) Stock() int {
	return p.stock
}

func (p *Product) Category() string {
	return p.category
}

func (p *Product) IsActive() bool {
	return p.active
}

// CanSupply reports whether quantity units are in stock.
func (p *Product) CanSupply(quantity int) bool {
	return quantity <= p.stock
}

// DecreaseStock removes quantity units from stock.
//
// Returns:
//   - ValueIsOutOfRangeError if quantity is not positive
//   - *InsufficientStockError if quantity exceeds stock; stock is left unchanged
func (p *Product) DecreaseStock(quantity int) error {
	if quantity < 1 {
		return errs.NewValueIsOutOfRangeError("quantity", quantity, 1, math.MaxInt32)
	}
	if !p.CanSupply(quantity) {
		return NewInsufficientStockError(p.id, quantity, p.stock)
	}
	p.stock -= quantity
	return nil
}

func (p *Product) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	p.id = id
	return nil
}

func (p *Product) setName(name string) error {
	if strings.TrimSpace(name) == "" {
		return errs.NewValueIsRequiredError("name")
	}
	p.name = name
	return nil
}

func (p *Product) setPrice(price kernel.Money) error {
	if err := price.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("price", err)
	}
	p.price = price
	return nil
}

func (p *Product) setStock(stock int) error {
	if stock < 0 {
		return errs.NewValueIsOutOfRangeError("stock", stock, 0, math.MaxInt32)
	}
	p.stock = stock
	return nil
}

func (p *Product) setCategory(category string) error {
	if strings.TrimSpace(category) == "" {
		return errs.NewValueIsRequiredError("category")
	}
	p.category = category
	return nil
}

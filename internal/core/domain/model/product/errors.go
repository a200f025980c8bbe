package product

import (
	"errors"
	"fmt"

	"shop/internal/core/domain/model/kernel"
)

var (
	// ErrProductIsNotConstructed is returned for a Product that bypassed NewProduct/RestoreProduct.
	ErrProductIsNotConstructed = errors.New("Product must be created via NewProduct constructor")

	// ErrInsufficientStock is the sentinel wrapped by InsufficientStockError.
	ErrInsufficientStock = errors.New("insufficient stock")
)

// InsufficientStockError reports a requested quantity that exceeds stock on hand.
type InsufficientStockError struct {
	ProductID kernel.UUID
	Requested int
	Available int
}

func NewInsufficientStockError(productID kernel.UUID, requested, available int) *InsufficientStockError {
	return &InsufficientStockError{ProductID: productID, Requested: requested, Available: available}
}

// Shortfall is how many units are missing.
func (e *InsufficientStockError) Shortfall() int {
	return e.Requested - e.Available
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("%s: product %s requested %d, available %d, short by %d",
		ErrInsufficientStock, e.ProductID, e.Requested, e.Available, e.Shortfall())
}

func (e *InsufficientStockError) Unwrap() error {
	return ErrInsufficientStock
}

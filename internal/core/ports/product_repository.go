package ports

import (
	"context"

	"shop/internal/core/domain/model/kernel"
	"shop/internal/core/domain/model/product"
)

// ProductRepository is the catalog side of order creation.
type ProductRepository interface {
	// GetActiveByIDsForUpdate reads, in one query, the active products whose id is in ids
	// and locks their rows until the transaction ends. Missing or inactive ids are simply
	// absent from the result.
	GetActiveByIDsForUpdate(ctx context.Context, ids []kernel.UUID) ([]*product.Product, error)

	// UpdateStock persists the stock quantity of each product.
	UpdateStock(ctx context.Context, products []*product.Product) error
}

package queries

import (
	"context"
	"errors"

	"shop/internal/core/domain/model/kernel"
	"shop/internal/pkg/errs"
	"shop/internal/pkg/guard"

	"gorm.io/gorm"
)

var (
	ErrGetProductQueryIsNotConstructed = errors.New(
		"GetProductQuery must be created via NewGetProductQuery constructor",
	)
)

type GetProductQuery struct {
	productID kernel.UUID
	guard     guard.ConstructorGuard
}

func NewGetProductQuery(productID kernel.UUID) (GetProductQuery, error) {
	if err := productID.Validate(); err != nil {
		return GetProductQuery{}, errs.NewValueIsRequiredError("productID")
	}
	return GetProductQuery{productID: productID, guard: guard.NewConstructorGuard()}, nil
}

func (q GetProductQuery) ProductID() kernel.UUID {
	return q.productID
}

func (q GetProductQuery) Validate() error {
	return q.guard.Validate(ErrGetProductQueryIsNotConstructed)
}

// GetProductQueryHandler returns one active product. Inactive products are
// reported the same way as missing ones: a nil view.
type GetProductQueryHandler struct {
	db *gorm.DB
}

func NewGetProductQueryHandler(db *gorm.DB) GetProductQueryHandler {
	return GetProductQueryHandler{db: db}
}

func (h GetProductQueryHandler) Handle(ctx context.Context, query GetProductQuery) (*ProductView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(
		productColumns+"\n\tWHERE id = ? AND is_active = ?",
		query.ProductID().String(), true,
	).Rows()
	if err != nil {
		return nil, err
	}

	products, err := scanProducts(rows)
	if err != nil {
		return nil, err
	}
	if len(products) == 0 {
		return nil, nil
	}
	return &products[0], nil
}

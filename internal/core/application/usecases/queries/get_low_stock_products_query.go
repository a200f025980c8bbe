package queries

import (
	"context"
	"errors"
	"math"

	"shop/internal/pkg/errs"
	"shop/internal/pkg/guard"

	"gorm.io/gorm"
)

var (
	ErrGetLowStockProductsQueryIsNotConstructed = errors.New(
		"GetLowStockProductsQuery must be created via NewGetLowStockProductsQuery constructor",
	)
)

// GetLowStockProductsQuery lists active products whose stock is at or below a threshold,
// lowest stock first.
type GetLowStockProductsQuery struct {
	threshold int
	guard     guard.ConstructorGuard
}

func NewGetLowStockProductsQuery(threshold int) (GetLowStockProductsQuery, error) {
	if threshold < 0 {
		return GetLowStockProductsQuery{}, errs.NewValueIsOutOfRangeError("threshold", threshold, 0, math.MaxInt32)
	}
	return GetLowStockProductsQuery{threshold: threshold, guard: guard.NewConstructorGuard()}, nil
}

func (q GetLowStockProductsQuery) Threshold() int {
	return q.threshold
}

func (q GetLowStockProductsQuery) Validate() error {
	return q.guard.Validate(ErrGetLowStockProductsQueryIsNotConstructed)
}

type GetLowStockProductsQueryHandler struct {
	db *gorm.DB
}

func NewGetLowStockProductsQueryHandler(db *gorm.DB) GetLowStockProductsQueryHandler {
	return GetLowStockProductsQueryHandler{db: db}
}

func (h GetLowStockProductsQueryHandler) Handle(
	ctx context.Context,
	query GetLowStockProductsQuery,
) ([]ProductView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(
		productColumns+"\n\tWHERE is_active = ? AND stock <= ?\n\tORDER BY stock, name",
		true, query.Threshold(),
	).Rows()
	if err != nil {
		return nil, err
	}
	return scanProducts(rows)
}

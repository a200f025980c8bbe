package queries

import (
	"context"
	"errors"

	"shop/internal/pkg/guard"

	"gorm.io/gorm"
)

var (
	ErrGetCategoriesQueryIsNotConstructed = errors.New(
		"GetCategoriesQuery must be created via NewGetCategoriesQuery constructor",
	)
)

// GetCategoriesQuery lists the distinct categories that have at least one active product.
type GetCategoriesQuery struct {
	guard guard.ConstructorGuard
}

func NewGetCategoriesQuery() GetCategoriesQuery {
	return GetCategoriesQuery{guard: guard.NewConstructorGuard()}
}

func (q GetCategoriesQuery) Validate() error {
	return q.guard.Validate(ErrGetCategoriesQueryIsNotConstructed)
}

type GetCategoriesQueryHandler struct {
	db *gorm.DB
}

func NewGetCategoriesQueryHandler(db *gorm.DB) GetCategoriesQueryHandler {
	return GetCategoriesQueryHandler{db: db}
}

func (h GetCategoriesQueryHandler) Handle(ctx context.Context, query GetCategoriesQuery) ([]string, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	categories := make([]string, 0)
	err := h.db.WithContext(ctx).Raw(`
		SELECT DISTINCT category
		FROM products
		WHERE is_active = ?
		ORDER BY category
	`, true).Scan(&categories).Error
	if err != nil {
		return nil, err
	}

	return categories, nil
}

package queries

import (
	"context"
	"errors"
	"strings"

	"shop/internal/pkg/guard"

	"gorm.io/gorm"
)

var (
	ErrGetProductsQueryIsNotConstructed = errors.New(
		"GetProductsQuery must be created via NewGetProductsQuery constructor",
	)
)

// GetProductsQuery lists active products sorted by name. An empty category lists
// the whole catalog; otherwise the category is matched case-insensitively.
type GetProductsQuery struct {
	category string
	guard    guard.ConstructorGuard
}

func NewGetProductsQuery(category string) GetProductsQuery {
	return GetProductsQuery{category: strings.TrimSpace(category), guard: guard.NewConstructorGuard()}
}

func (q GetProductsQuery) Category() string {
	return q.category
}

func (q GetProductsQuery) Validate() error {
	return q.guard.Validate(ErrGetProductsQueryIsNotConstructed)
}

type GetProductsQueryHandler struct {
	db *gorm.DB
}

func NewGetProductsQueryHandler(db *gorm.DB) GetProductsQueryHandler {
	return GetProductsQueryHandler{db: db}
}

func (h GetProductsQueryHandler) Handle(ctx context.Context, query GetProductsQuery) ([]ProductView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	sql := productColumns + "\n\tWHERE is_active = ?"
	args := []any{true}
	if query.Category() != "" {
		sql += " AND LOWER(category) = LOWER(?)"
		args = append(args, query.Category())
	}
	sql += "\n\tORDER BY name, id"

	rows, err := h.db.WithContext(ctx).Raw(sql, args...).Rows()
	if err != nil {
		return nil, err
	}
	return scanProducts(rows)
}

package queries

import (
	"context"

	"gorm.io/gorm"
)

// GetAllOrdersQueryHandler returns every order view. Items, customer names and
// product names are loaded in batch, not per order.
type GetAllOrdersQueryHandler struct {
	projection orderProjection
}

func NewGetAllOrdersQueryHandler(db *gorm.DB) GetAllOrdersQueryHandler {
	return GetAllOrdersQueryHandler{projection: orderProjection{db: db}}
}

func (h GetAllOrdersQueryHandler) Handle(ctx context.Context, query GetAllOrdersQuery) ([]OrderView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}
	return h.projection.load(ctx, "")
}

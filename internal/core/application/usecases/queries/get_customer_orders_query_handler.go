package queries

import (
	"context"

	"gorm.io/gorm"
)

type GetCustomerOrdersQueryHandler struct {
	projection orderProjection
}

func NewGetCustomerOrdersQueryHandler(db *gorm.DB) GetCustomerOrdersQueryHandler {
	return GetCustomerOrdersQueryHandler{projection: orderProjection{db: db}}
}

// Handle returns the customer's orders sorted by order date descending.
func (h GetCustomerOrdersQueryHandler) Handle(ctx context.Context, query GetCustomerOrdersQuery) ([]OrderView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}
	return h.projection.load(ctx, "o.customer_id = ?", query.CustomerID().String())
}

package ports

import (
	"context"

	"shop/internal/core/domain/model/customer"
	"shop/internal/core/domain/model/kernel"
)

type CustomerRepository interface {
	// Get returns errs.ObjectNotFoundError when no customer has the id.
	Get(ctx context.Context, id kernel.UUID) (*customer.Customer, error)
}

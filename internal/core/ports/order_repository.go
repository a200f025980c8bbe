// Package ports defines the persistence contracts the ordering core depends on.
// Adapters in internal/adapters/out implement them.
package ports

import (
	"context"
	"errors"

	"shop/internal/core/domain/model/kernel"
	"shop/internal/core/domain/model/order"
)

// ErrOrderStatusChanged is returned by OrderRepository.UpdateStatus when the stored
// status no longer equals the status the caller read.
var ErrOrderStatusChanged = errors.New("order status changed concurrently")

// OrderRepository defines the persistence contract for order aggregates.
type OrderRepository interface {
	// Add persists a new order together with all of its items.
	Add(ctx context.Context, aggregate *order.Order) error

	// GetForUpdate loads an order with its items and locks the order row until the
	// surrounding transaction ends. Returns errs.ObjectNotFoundError when absent.
	GetForUpdate(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// UpdateStatus writes aggregate.Status() only if the stored status still equals
	// expected. Returns ErrOrderStatusChanged otherwise.
	//
	// Example:
	//   previous := o.Status()
	//   if err := o.ChangeStatus("Shipped"); err != nil {
	//       return err
	//   }
	//   err := repo.UpdateStatus(ctx, o, previous)
	UpdateStatus(ctx context.Context, aggregate *order.Order, expected order.Status) error
}

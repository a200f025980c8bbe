// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management, and persistence.
package commands

import (
	"context"

	"shop/internal/core/domain/model/kernel"
	"shop/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// Each handler depends only on the repositories it touches.
type (
	// TxManager handles database transaction lifecycle.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// OrderRepoFactory provides access to order repository within a transaction.
	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// ProductRepoFactory provides access to product repository within a transaction.
	ProductRepoFactory interface {
		ProductRepository() ports.ProductRepository
	}

	// CustomerRepoFactory provides access to customer repository within a transaction.
	CustomerRepoFactory interface {
		CustomerRepository() ports.CustomerRepository
	}

	// OrderWriteTracker reports which orders a unit of work wrote.
	OrderWriteTracker interface {
		TrackedOrderIDs() []kernel.UUID
	}

	// OrderUoW manages transactions for order-only operations such as status changes.
	OrderUoW interface {
		TxManager
		OrderRepoFactory
		OrderWriteTracker
	}

	// OrderUoWFactory creates new order unit of work instances.
	OrderUoWFactory interface {
		Create() OrderUoW
	}

	// PlaceOrderUoW spans everything order creation writes or checks: the customer,
	// the products whose stock is decremented and the new order.
	//
	// Example:
	//   uow := factory.Create()
	//   err := uow.Begin(ctx)
	//   defer uow.Rollback(ctx)
	//
	//   products, err := uow.ProductRepository().GetActiveByIDsForUpdate(ctx, ids)
	//   // ... build order
	//   err = uow.OrderRepository().Add(ctx, o)
	//   err = uow.ProductRepository().UpdateStock(ctx, products)
	//
	//   err = uow.Commit(ctx)
	PlaceOrderUoW interface {
		TxManager
		OrderRepoFactory
		ProductRepoFactory
		CustomerRepoFactory
	}

	// PlaceOrderUoWFactory creates new order creation unit of work instances.
	PlaceOrderUoWFactory interface {
		Create() PlaceOrderUoW
	}

	// OrderCacheInvalidator drops cached read models of an order after it changed.
	OrderCacheInvalidator interface {
		Invalidate(ctx context.Context, orderID kernel.UUID) error
	}
)

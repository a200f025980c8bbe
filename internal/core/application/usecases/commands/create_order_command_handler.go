package commands

import (
	"context"

	"shop/internal/core/domain/services"
)

// CreateOrderCommandHandler places an order in a single transaction:
// customer check, locked batch read of the products, order assembly, order insert
// and stock update. Any failure rolls everything back.
//
// Example:
//
//	handler := NewCreateOrderCommandHandler(uowFactory)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("order creation failed: %w", err)
//	}
//	// Order is now Pending and stock is decremented
type CreateOrderCommandHandler struct {
	uowFactory PlaceOrderUoWFactory
	builder    services.OrderBuilder
}

// NewCreateOrderCommandHandler creates a handler for order creation operations.
func NewCreateOrderCommandHandler(uowFactory PlaceOrderUoWFactory) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
		builder:    services.NewOrderBuilder(),
	}
}

// Handle processes the order creation command.
//
// Returns errs.ObjectNotFoundError for a missing customer (checked before any product is
// read) or for missing products, *product.InsufficientStockError when stock cannot
// cover the summed quantity of a product, and infrastructure errors as-is.
func (h *CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if _, err := uow.CustomerRepository().Get(ctx, cmd.CustomerID()); err != nil {
		return err
	}

	productRepo := uow.ProductRepository()
	lines := cmd.Lines()
	products, err := productRepo.GetActiveByIDsForUpdate(ctx, services.RequestedProductIDs(lines))
	if err != nil {
		return err
	}

	order, err := h.builder.Build(
		cmd.OrderID(),
		cmd.CustomerID(),
		cmd.ShippingAddress(),
		cmd.Notes(),
		lines,
		products,
	)
	if err != nil {
		return err
	}

	if err = uow.OrderRepository().Add(ctx, order); err != nil {
		return err
	}

	if err = productRepo.UpdateStock(ctx, products); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

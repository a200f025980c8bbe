package commands

import (
	"context"
	"errors"
	"log/slog"

	"shop/internal/core/domain/model/kernel"
	"shop/internal/core/domain/model/order"
	"shop/internal/core/ports"
)

// ChangeOrderStatusCommandHandler applies a status transition. The order row is locked
// while the transition is checked and the write is conditional on the status that
// was read, so a concurrent change surfaces as an invalid transition instead of a
// lost update.
type ChangeOrderStatusCommandHandler struct {
	uowFactory OrderUoWFactory
	cache      OrderCacheInvalidator
	logger     *slog.Logger
}

// NewChangeOrderStatusCommandHandler creates the handler. cache may be nil when no
// read model cache is configured.
func NewChangeOrderStatusCommandHandler(
	uowFactory OrderUoWFactory,
	cache OrderCacheInvalidator,
	logger *slog.Logger,
) ChangeOrderStatusCommandHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return ChangeOrderStatusCommandHandler{
		uowFactory: uowFactory,
		cache:      cache,
		logger:     logger.With("component", "ChangeOrderStatusCommandHandler"),
	}
}

// Handle processes the status change.
//
// Returns errs.ObjectNotFoundError when the order does not exist and
// *order.InvalidTransitionError when the table forbids the move or the stored status
// changed before commit. Nothing is written in either case.
func (h *ChangeOrderStatusCommandHandler) Handle(ctx context.Context, cmd ChangeOrderStatusCommand) error {
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

	orderRepo := uow.OrderRepository()
	aggregate, err := orderRepo.GetForUpdate(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	previous := aggregate.Status()
	if err = aggregate.ChangeStatus(cmd.Status()); err != nil {
		return err
	}

	if err = orderRepo.UpdateStatus(ctx, aggregate, previous); err != nil {
		if errors.Is(err, ports.ErrOrderStatusChanged) {
			return order.NewInvalidTransitionError(previous, cmd.Status())
		}
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	if h.cache != nil {
		h.invalidate(ctx, uow.TrackedOrderIDs())
	}

	h.logger.Info("order status changed",
		"order_id", cmd.OrderID().String(),
		"from", previous.String(),
		"to", aggregate.Status().String())

	return nil
}

// invalidate drops the cached views of the orders committed by the unit of work.
func (h *ChangeOrderStatusCommandHandler) invalidate(ctx context.Context, orderIDs []kernel.UUID) {
	for _, id := range orderIDs {
		if err := h.cache.Invalidate(ctx, id); err != nil {
			h.logger.Warn("failed to invalidate cached order",
				"order_id", id.String(),
				"error", err)
		}
	}
}

package queries

import (
	"context"
	"log/slog"

	"shop/internal/core/domain/model/kernel"

	"gorm.io/gorm"
)

// OrderViewCache is a read-through cache of single order views.
// Get returns a nil view and nil error on a miss.
type OrderViewCache interface {
	Get(ctx context.Context, orderID kernel.UUID) (*OrderView, error)
	Set(ctx context.Context, view OrderView) error
}

// GetOrderQueryHandler loads one order view. When a cache is configured it is consulted
// first and filled on a miss; cache failures fall back to the database.
type GetOrderQueryHandler struct {
	projection orderProjection
	cache      OrderViewCache
	logger     *slog.Logger
}

// NewGetOrderQueryHandler creates the handler. cache may be nil.
func NewGetOrderQueryHandler(db *gorm.DB, cache OrderViewCache, logger *slog.Logger) GetOrderQueryHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return GetOrderQueryHandler{
		projection: orderProjection{db: db},
		cache:      cache,
		logger:     logger.With("component", "GetOrderQueryHandler"),
	}
}

// Handle returns the order view, or nil when no order has the requested id.
func (h GetOrderQueryHandler) Handle(ctx context.Context, query GetOrderQuery) (*OrderView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	if h.cache != nil {
		cached, err := h.cache.Get(ctx, query.OrderID())
		if err != nil {
			h.logger.WarnContext(ctx, "order cache read failed",
				"orderID", query.OrderID().String(),
				"error", err,
			)
		} else if cached != nil {
			return cached, nil
		}
	}

	views, err := h.projection.load(ctx, "o.id = ?", query.OrderID().String())
	if err != nil {
		return nil, err
	}
	if len(views) == 0 {
		return nil, nil
	}

	view := views[0]
	if h.cache != nil {
		if err = h.cache.Set(ctx, view); err != nil {
			h.logger.WarnContext(ctx, "order cache write failed",
				"orderID", view.ID.String(),
				"error", err,
			)
		}
	}

	return &view, nil
}

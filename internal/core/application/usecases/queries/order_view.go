// Package queries contains read-only operations. Handlers read straight from the
// database with SQL and return flat read models; they never load aggregates.
package queries

import (
	"context"
	"time"

	"shop/internal/core/domain/model/kernel"
	"shop/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// UnknownName replaces a customer or product name that can no longer be resolved.
const UnknownName = "Unknown"

// OrderView is the outward representation of an order.
type OrderView struct {
	ID              kernel.UUID     `json:"id"`
	CustomerID      kernel.UUID     `json:"customerId"`
	CustomerName    string          `json:"customerName"`
	OrderDate       time.Time       `json:"orderDate"`
	Status          string          `json:"status"`
	TotalAmount     decimal.Decimal `json:"totalAmount"`
	ShippingAddress string          `json:"shippingAddress"`
	Notes           string          `json:"notes"`
	Items           []OrderItemView `json:"items"`
}

// OrderItemView is one line of an OrderView. LineTotal is computed on read.
type OrderItemView struct {
	ProductID   kernel.UUID     `json:"productId"`
	ProductName string          `json:"productName"`
	Quantity    int             `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unitPrice"`
	LineTotal   decimal.Decimal `json:"lineTotal"`
}

// orderProjection assembles OrderViews with two queries regardless of how many orders
// match: one for the orders joined with customers, one for all their items joined with
// products.
type orderProjection struct {
	db *gorm.DB
}

// load returns the orders matching filter (a WHERE fragment over alias o), newest first.
func (p orderProjection) load(ctx context.Context, filter string, args ...any) ([]OrderView, error) {
	sql := `
		SELECT
			o.id,
			o.customer_id,
			COALESCE(c.full_name, ?),
			o.order_date,
			o.status,
			o.shipping_address,
			COALESCE(o.notes, '')
		FROM orders o
		LEFT JOIN customers c ON c.id = o.customer_id`
	if filter != "" {
		sql += "\n\t\tWHERE " + filter
	}
	sql += "\n\t\tORDER BY o.order_date DESC, o.id"

	rows, err := p.db.WithContext(ctx).Raw(sql, append([]any{UnknownName}, args...)...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	views := make([]OrderView, 0)
	index := make(map[uuid.UUID]int)
	for rows.Next() {
		var (
			view       OrderView
			id, custID uuid.UUID
			status     int
		)
		if err = rows.Scan(
			&id,
			&custID,
			&view.CustomerName,
			&view.OrderDate,
			&status,
			&view.ShippingAddress,
			&view.Notes,
		); err != nil {
			return nil, err
		}

		if view.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return nil, err
		}
		if view.CustomerID, err = kernel.UUIDFromBytes(custID[:]); err != nil {
			return nil, err
		}
		view.OrderDate = view.OrderDate.UTC()
		view.Status = order.Status(status).String()
		view.Items = make([]OrderItemView, 0)
		view.TotalAmount = decimal.Zero

		index[id] = len(views)
		views = append(views, view)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	if len(views) == 0 {
		return views, nil
	}

	if err = p.attachItems(ctx, views, index); err != nil {
		return nil, err
	}

	return views, nil
}

// attachItems loads the items of the indexed views and sums their line totals into
// TotalAmount. The stored orders.total_amount is not read back.
func (p orderProjection) attachItems(ctx context.Context, views []OrderView, index map[uuid.UUID]int) error {
	ids := make([]uuid.UUID, 0, len(index))
	for id := range index {
		ids = append(ids, id)
	}

	rows, err := p.db.WithContext(ctx).Raw(`
		SELECT
			i.order_id,
			i.product_id,
			COALESCE(p.name, ?),
			i.quantity,
			i.unit_price
		FROM order_items i
		LEFT JOIN products p ON p.id = i.product_id
		WHERE i.order_id IN ?
		ORDER BY i.order_id, i.position
	`, UnknownName, ids).Rows()
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			item               OrderItemView
			orderID, productID uuid.UUID
		)
		if err = rows.Scan(&orderID, &productID, &item.ProductName, &item.Quantity, &item.UnitPrice); err != nil {
			return err
		}

		if item.ProductID, err = kernel.UUIDFromBytes(productID[:]); err != nil {
			return err
		}
		item.LineTotal = item.UnitPrice.Mul(decimal.NewFromInt(int64(item.Quantity)))

		pos, ok := index[orderID]
		if !ok {
			continue
		}
		views[pos].Items = append(views[pos].Items, item)
		views[pos].TotalAmount = views[pos].TotalAmount.Add(item.LineTotal)
	}

	return rows.Err()
}

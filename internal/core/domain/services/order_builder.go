package services

import (
	"strings"

	"shop/internal/core/domain/model/kernel"
	"shop/internal/core/domain/model/order"
	"shop/internal/core/domain/model/product"
	"shop/internal/pkg/errs"
)

// OrderLine is one requested {product, quantity} pair.
type OrderLine struct {
	ProductID kernel.UUID
	Quantity  int
}

// OrderBuilder assembles a new order from requested lines and the products they
// reference.
//
// Business rules:
//   - Every requested product must be present and active, otherwise ObjectNotFoundError
//     names all missing ids at once
//   - Quantities for the same product are summed and must not exceed its stock
//   - Each item keeps the product price read at build time
//   - Stock is decremented only after every check has passed
//
// Example usage:
//
//	builder := services.NewOrderBuilder()
//	ids := services.RequestedProductIDs(lines)
//	products, _ := productRepo.GetActiveByIDsForUpdate(ctx, ids)
//	o, err := builder.Build(orderID, customerID, address, notes, lines, products)
type OrderBuilder struct{}

func NewOrderBuilder() OrderBuilder {
	return OrderBuilder{}
}

// RequestedProductIDs returns the distinct product ids of lines in first-seen order.
func RequestedProductIDs(lines []OrderLine) []kernel.UUID {
	seen := make(map[kernel.UUID]struct{}, len(lines))
	ids := make([]kernel.UUID, 0, len(lines))
	for _, line := range lines {
		if _, ok := seen[line.ProductID]; ok {
			continue
		}
		seen[line.ProductID] = struct{}{}
		ids = append(ids, line.ProductID)
	}
	return ids
}

// Build validates lines against products and returns a Pending order.
// On success the stock of each product in products has been decreased by the ordered
// quantity; the caller persists both the order and the products in one transaction.
// On failure no product is modified.
//
// Returns:
//   - errs.ObjectNotFoundError listing every missing product id
//   - *product.InsufficientStockError for the first product that cannot be supplied
//   - validation errors from order.NewItem / order.NewOrder
func (b OrderBuilder) Build(
	orderID kernel.UUID,
	customerID kernel.UUID,
	shippingAddress string,
	notes string,
	lines []OrderLine,
	products []*product.Product,
) (*order.Order, error) {
	if len(lines) == 0 {
		return nil, errs.NewValueIsRequiredError("items")
	}

	byID := make(map[kernel.UUID]*product.Product, len(products))
	for _, p := range products {
		if p.Validate() != nil || !p.IsActive() {
			continue
		}
		byID[p.ID()] = p
	}

	requested := RequestedProductIDs(lines)
	if err := missingProducts(requested, byID); err != nil {
		return nil, err
	}

	quantities := make(map[kernel.UUID]int, len(requested))
	for _, line := range lines {
		quantities[line.ProductID] += line.Quantity
	}
	for _, id := range requested {
		p := byID[id]
		if !p.CanSupply(quantities[id]) {
			return nil, product.NewInsufficientStockError(id, quantities[id], p.Stock())
		}
	}

	items := make([]*order.Item, 0, len(lines))
	for _, line := range lines {
		item, err := order.NewItem(kernel.NewUUID(), line.ProductID, line.Quantity, byID[line.ProductID].Price())
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}

	o, err := order.NewOrder(orderID, customerID, shippingAddress, notes, items)
	if err != nil {
		return nil, err
	}

	for _, id := range requested {
		if err := byID[id].DecreaseStock(quantities[id]); err != nil {
			return nil, err
		}
	}

	return o, nil
}

func missingProducts(requested []kernel.UUID, found map[kernel.UUID]*product.Product) error {
	var missing []string
	for _, id := range requested {
		if _, ok := found[id]; !ok {
			missing = append(missing, id.String())
		}
	}
	if len(missing) == 0 {
		return nil
	}
	return errs.NewObjectNotFoundError("product", strings.Join(missing, ", "))
}

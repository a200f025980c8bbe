package order

import (
	"errors"
	"strings"
	"time"

	"shop/internal/core/domain/model/kernel"
	"shop/internal/pkg/errs"
	"shop/internal/pkg/guard"
)

// Order is the aggregate root of the ordering context. It owns its items and the
// lifecycle status.
//
// Order follows these invariants:
//   - Must have a valid identifier and customer reference
//   - Must have at least one item and a non-blank shipping address
//   - Total amount equals the sum of item line totals
//   - Order date is set once, at creation
//   - Status only changes along the transition table (see Status)
type Order struct {
	id              kernel.UUID
	customerID      kernel.UUID
	orderDate       time.Time
	status          Status
	shippingAddress string
	notes           string
	items           []*Item
	totalAmount     kernel.Money
	guard           guard.ConstructorGuard
}

// NewOrder creates a Pending order dated now (UTC, microsecond precision so the value
// survives a round trip through postgres unchanged).
//
// Example:
//
//	item, _ := order.NewItem(kernel.NewUUID(), productID, 2, price)
//	o, err := order.NewOrder(kernel.NewUUID(), customerID, "1 Main St", "", []*order.Item{item})
//	if err != nil {
//	    // Handle validation error
//	}
func NewOrder(
	id kernel.UUID,
	customerID kernel.UUID,
	shippingAddress string,
	notes string,
	items []*Item,
) (*Order, error) {
	return build(id, customerID, time.Now().UTC().Truncate(time.Microsecond), Pending, shippingAddress, notes, items)
}

// RestoreOrder reconstructs an Order from persistent storage. The total is recomputed
// from the items rather than trusted from storage.
func RestoreOrder(
	id kernel.UUID,
	customerID kernel.UUID,
	orderDate time.Time,
	status Status,
	shippingAddress string,
	notes string,
	items []*Item,
) (*Order, error) {
	return build(id, customerID, orderDate, status, shippingAddress, notes, items)
}

func build(
	id kernel.UUID,
	customerID kernel.UUID,
	orderDate time.Time,
	status Status,
	shippingAddress string,
	notes string,
	items []*Item,
) (*Order, error) {
	o := &Order{
		orderDate: orderDate,
		notes:     notes,
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		o.setID(id),
		o.setCustomerID(customerID),
		o.setStatus(status),
		o.setShippingAddress(shippingAddress),
		o.setItems(items),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// Validate ensures the Order instance was properly constructed.
func (o *Order) Validate() error {
	if o == nil {
		return ErrOrderIsNotConstructed
	}
	return o.guard.Validate(ErrOrderIsNotConstructed)
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

func (o *Order) ID() kernel.UUID {
	return o.id
}

func (o *Order) CustomerID() kernel.UUID {
	return o.customerID
}

func (o *Order) OrderDate() time.Time {
	return o.orderDate
}

func (o *Order) Status() Status {
	return o.status
}

func (o *Order) ShippingAddress() string {
	return o.shippingAddress
}

func (o *Order) Notes() string {
	return o.notes
}

// Items returns a copy of the item slice; the items themselves are immutable.
func (o *Order) Items() []*Item {
	items := make([]*Item, len(o.items))
	copy(items, o.items)
	return items
}

// TotalAmount returns the sum of line totals.
func (o *Order) TotalAmount() kernel.Money {
	return o.totalAmount
}

// ChangeStatus moves the order to the status named by target (case-insensitive).
//
// Returns *InvalidTransitionError, leaving the order untouched, when target is not a
// known status or the transition table does not allow it from the current status.
//
// Example:
//
//	if err := o.ChangeStatus("shipped"); err != nil {
//	    // errors.Is(err, order.ErrInvalidTransition)
//	}
func (o *Order) ChangeStatus(target string) error {
	if !CanTransition(o.status.String(), target) {
		return NewInvalidTransitionError(o.status, target)
	}

	next, err := ParseStatus(target)
	if err != nil {
		return NewInvalidTransitionError(o.status, target)
	}

	o.status = next
	return nil
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("customerID", err)
	}
	o.customerID = customerID
	return nil
}

func (o *Order) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	o.status = status
	return nil
}

func (o *Order) setShippingAddress(address string) error {
	if strings.TrimSpace(address) == "" {
		return errs.NewValueIsRequiredError("shippingAddress")
	}
	o.shippingAddress = address
	return nil
}

func (o *Order) setItems(items []*Item) error {
	if len(items) == 0 {
		return errs.NewValueIsRequiredError("items")
	}

	total := kernel.ZeroMoney()
	for _, item := range items {
		if err := item.Validate(); err != nil {
			return err
		}
		total = total.Add(item.LineTotal())
	}

	o.items = make([]*Item, len(items))
	copy(o.items, items)
	o.totalAmount = total
	return nil
}

package commands

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"shop/internal/core/domain/model/kernel"
	"shop/internal/core/domain/services"
	"shop/internal/pkg/errs"
	"shop/internal/pkg/guard"
)

var (
	ErrCreateOrderCommandIsNotConstructed = errors.New(
		"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
	)
	ErrShippingAddressIsRequired = errs.NewValueIsRequiredError("shippingAddress")
	ErrItemsAreRequired          = errs.NewValueIsRequiredError("items")
)

// CreateOrderCommand represents a request to place a new order.
//
// Example:
//
//	orderID := kernel.NewUUID()
//	cmd, err := NewCreateOrderCommand(orderID, customerID, "1 Main St", "", []services.OrderLine{
//	    {ProductID: keyboardID, Quantity: 2},
//	})
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//
//	handler := NewCreateOrderCommandHandler(uowFactory)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to create order: %w", err)
//	}
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID         kernel.UUID
	customerID      kernel.UUID
	shippingAddress string
	notes           string
	lines           []services.OrderLine

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand validates the request shape: identifiers, a non-blank shipping
// address and a non-empty list of lines with positive quantities.
func NewCreateOrderCommand(
	orderID kernel.UUID,
	customerID kernel.UUID,
	shippingAddress string,
	notes string,
	lines []services.OrderLine,
) (CreateOrderCommand, error) {
	orderCommand := CreateOrderCommand{
		notes: notes,
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		orderCommand.setOrderID(orderID),
		orderCommand.setCustomerID(customerID),
		orderCommand.setShippingAddress(shippingAddress),
		orderCommand.setLines(lines),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return orderCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

func (c CreateOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c CreateOrderCommand) CustomerID() kernel.UUID {
	return c.customerID
}

func (c CreateOrderCommand) ShippingAddress() string {
	return c.shippingAddress
}

func (c CreateOrderCommand) Notes() string {
	return c.notes
}

// Lines returns a copy of the requested lines.
func (c CreateOrderCommand) Lines() []services.OrderLine {
	lines := make([]services.OrderLine, len(c.lines))
	copy(lines, c.lines)
	return lines
}

func (c *CreateOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *CreateOrderCommand) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("customerID", err)
	}

	c.customerID = customerID
	return nil
}

func (c *CreateOrderCommand) setShippingAddress(address string) error {
	if strings.TrimSpace(address) == "" {
		return ErrShippingAddressIsRequired
	}

	c.shippingAddress = address
	return nil
}

func (c *CreateOrderCommand) setLines(lines []services.OrderLine) error {
	if len(lines) == 0 {
		return ErrItemsAreRequired
	}

	var lineErrs []error
	for i, line := range lines {
		if err := line.ProductID.Validate(); err != nil {
			lineErrs = append(lineErrs, errs.NewValueIsRequiredErrorWithCause(fmt.Sprintf("items[%d].productId", i), err))
		}
		if line.Quantity < 1 {
			lineErrs = append(lineErrs,
				errs.NewValueIsOutOfRangeError(fmt.Sprintf("items[%d].quantity", i), line.Quantity, 1, math.MaxInt32))
		}
	}
	if len(lineErrs) > 0 {
		return errors.Join(lineErrs...)
	}

	c.lines = make([]services.OrderLine, len(lines))
	copy(c.lines, lines)
	return nil
}

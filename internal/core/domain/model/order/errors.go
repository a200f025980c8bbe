package order

import (
	"errors"
	"fmt"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created through
	// NewOrder or RestoreOrder.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")

	// ErrItemIsNotConstructed is returned for an Item that bypassed NewItem.
	ErrItemIsNotConstructed = errors.New("Item must be created via NewItem constructor")

	// ErrInvalidTransition is the sentinel wrapped by every InvalidTransitionError.
	ErrInvalidTransition = errors.New("invalid status transition")
)

// InvalidTransitionError names both ends of a rejected status change. To keeps the
// name exactly as requested because it may not match any known status.
type InvalidTransitionError struct {
	From Status
	To   string
}

// NewInvalidTransitionError builds the error for a rejected move from -> to.
func NewInvalidTransitionError(from Status, to string) *InvalidTransitionError {
	return &InvalidTransitionError{From: from, To: to}
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("%s: cannot change status from %s to %q", ErrInvalidTransition, e.From, e.To)
}

func (e *InvalidTransitionError) Unwrap() error {
	return ErrInvalidTransition
}

// Package customer holds the Customer entity. Customers are read-only for the ordering
// core; it only needs to confirm that a customer exists.
package customer

import (
	"errors"
	"strings"
	"time"

	"shop/internal/core/domain/model/kernel"
	"shop/internal/pkg/errs"
	"shop/internal/pkg/guard"
)

// ErrCustomerIsNotConstructed is returned for a Customer that bypassed the constructors.
var ErrCustomerIsNotConstructed = errors.New("Customer must be created via NewCustomer constructor")

type Customer struct {
	id        kernel.UUID
	fullName  string
	email     string
	createdAt time.Time
	guard     guard.ConstructorGuard
}

// NewCustomer creates a customer registered now.
func NewCustomer(id kernel.UUID, fullName, email string) (*Customer, error) {
	return RestoreCustomer(id, fullName, email, time.Now().UTC().Truncate(time.Microsecond))
}

// RestoreCustomer reconstructs a Customer from persistent storage.
func RestoreCustomer(id kernel.UUID, fullName, email string, createdAt time.Time) (*Customer, error) {
	c := &Customer{
		createdAt: createdAt,
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		c.setID(id),
		c.setFullName(fullName),
		c.setEmail(email),
	); err != nil {
		return nil, err
	}

	return c, nil
}

func (c *Customer) Validate() error {
	if c == nil {
		return ErrCustomerIsNotConstructed
	}
	return c.guard.Validate(ErrCustomerIsNotConstructed)
}

func (c *Customer) ID() kernel.UUID {
	return c.id
}

func (c *Customer) FullName() string {
	return c.fullName
}

func (c *Customer) Email() string {
	return c.email
}

func (c *Customer) CreatedAt() time.Time {
	return c.createdAt
}

func (c *Customer) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.id = id
	return nil
}

func (c *Customer) setFullName(fullName string) error {
	if strings.TrimSpace(fullName) == "" {
		return errs.NewValueIsRequiredError("fullName")
	}
	c.fullName = fullName
	return nil
}

func (c *Customer) setEmail(email string) error {
	if !strings.Contains(email, "@") {
		return errs.NewValueIsInvalidError("email")
	}
	c.email = email
	return nil
}

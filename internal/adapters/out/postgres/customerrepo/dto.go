// Package customerrepo maps customers between the domain model and the customers table.
package customerrepo

import (
	"time"

	"shop/internal/core/domain/model/customer"
	"shop/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

type CustomerDTO struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	FullName  string    `gorm:"type:varchar(200);not null"`
	Email     string    `gorm:"type:varchar(255);not null;uniqueIndex"`
	CreatedAt time.Time `gorm:"not null"`
}

// TableName overrides GORM's default "customer_dtos".
func (CustomerDTO) TableName() string {
	return "customers"
}

// FromDomain converts a customer entity to its row.
func FromDomain(c *customer.Customer) CustomerDTO {
	return CustomerDTO{
		ID:        c.ID().Bytes(),
		FullName:  c.FullName(),
		Email:     c.Email(),
		CreatedAt: c.CreatedAt(),
	}
}

func toDomain(dto CustomerDTO) (*customer.Customer, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	return customer.RestoreCustomer(id, dto.FullName, dto.Email, dto.CreatedAt)
}

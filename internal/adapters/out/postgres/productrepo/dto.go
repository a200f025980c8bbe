// Package productrepo maps catalog products between the domain model and the products table.
package productrepo

import (
	"shop/internal/core/domain/model/kernel"
	"shop/internal/core/domain/model/product"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ProductDTO is the products table row. Inactive rows are soft-deleted products.
type ProductDTO struct {
	ID          uuid.UUID       `gorm:"type:uuid;primaryKey"`
	Name        string          `gorm:"type:varchar(100);not null"`
	Description string          `gorm:"type:varchar(500)"`
	Price       decimal.Decimal `gorm:"type:numeric(10,2);not null"`
	Stock       int             `gorm:"type:int;not null"`
	Category    string          `gorm:"type:varchar(50);not null;index"`
	IsActive    bool            `gorm:"not null;index"`
}

// TableName overrides GORM's default "product_dtos".
func (ProductDTO) TableName() string {
	return "products"
}

// FromDomain converts a product entity to its row.
func FromDomain(p *product.Product) ProductDTO {
	return ProductDTO{
		ID:          p.ID().Bytes(),
		Name:        p.Name(),
		Description: p.Description(),
		Price:       p.Price().Decimal(),
		Stock:       p.Stock(),
		Category:    p.Category(),
		IsActive:    p.IsActive(),
	}
}

func toDomain(dto ProductDTO) (*product.Product, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	price, err := kernel.NewMoney(dto.Price)
	if err != nil {
		return nil, err
	}

	return product.RestoreProduct(id, dto.Name, dto.Description, price, dto.Stock, dto.Category, dto.IsActive)
}

// Package orderrepo provides data transfer objects and mapping functions for order persistence.
// This package implements the repository pattern for the order domain aggregate, handling
// the conversion between domain entities and database representations.
package orderrepo

import (
	"time"

	"shop/internal/adapters/out/postgres/customerrepo"
	"shop/internal/adapters/out/postgres/productrepo"
	"shop/internal/core/domain/model/kernel"
	"shop/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderDTO is the orders table row. Deleting an order cascades to its items; a customer
// with orders cannot be deleted.
type OrderDTO struct {
	ID              uuid.UUID                 `gorm:"type:uuid;primaryKey"`
	CustomerID      uuid.UUID                 `gorm:"type:uuid;not null;index"`
	Customer        *customerrepo.CustomerDTO `gorm:"foreignKey:CustomerID;constraint:OnDelete:RESTRICT"`
	OrderDate       time.Time                 `gorm:"not null;index"`
	Status          int                       `gorm:"type:smallint;not null;index"`
	TotalAmount     decimal.Decimal           `gorm:"type:numeric(10,2);not null"`
	ShippingAddress string                    `gorm:"type:varchar(500);not null"`
	Notes           string                    `gorm:"type:varchar(1000)"`
	Items           []OrderItemDTO            `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the database table name for order entities.
func (OrderDTO) TableName() string {
	return "orders"
}

// OrderItemDTO is an order line. Position keeps the request order of the lines. A
// product referenced by any item cannot be hard-deleted.
type OrderItemDTO struct {
	ID        uuid.UUID               `gorm:"type:uuid;primaryKey"`
	OrderID   uuid.UUID               `gorm:"type:uuid;not null;index"`
	Position  int                     `gorm:"type:int;not null"`
	ProductID uuid.UUID               `gorm:"type:uuid;not null;index"`
	Product   *productrepo.ProductDTO `gorm:"foreignKey:ProductID;constraint:OnDelete:RESTRICT"`
	Quantity  int                     `gorm:"type:int;not null"`
	UnitPrice decimal.Decimal         `gorm:"type:numeric(10,2);not null"`
}

// TableName specifies the database table name for order item entities.
func (OrderItemDTO) TableName() string {
	return "order_items"
}

// fromDomain converts an order aggregate to its rows. Line totals are not stored.
func fromDomain(aggregate *order.Order) OrderDTO {
	orderID := aggregate.ID().Bytes()
	items := make([]OrderItemDTO, 0, len(aggregate.Items()))
	for i, item := range aggregate.Items() {
		items = append(items, OrderItemDTO{
			ID:        item.ID().Bytes(),
			OrderID:   orderID,
			Position:  i,
			ProductID: item.ProductID().Bytes(),
			Quantity:  item.Quantity(),
			UnitPrice: item.UnitPrice().Decimal(),
		})
	}

	return OrderDTO{
		ID:              orderID,
		CustomerID:      aggregate.CustomerID().Bytes(),
		OrderDate:       aggregate.OrderDate(),
		Status:          int(aggregate.Status()),
		TotalAmount:     aggregate.TotalAmount().Decimal(),
		ShippingAddress: aggregate.ShippingAddress(),
		Notes:           aggregate.Notes(),
		Items:           items,
	}
}

// toDomain rebuilds the aggregate with RestoreOrder. Items must already be sorted by Position.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	customerID, err := kernel.UUIDFromBytes(dto.CustomerID[:])
	if err != nil {
		return nil, err
	}

	items := make([]*order.Item, 0, len(dto.Items))
	for _, itemDTO := range dto.Items {
		item, itemErr := itemToDomain(itemDTO)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	return order.RestoreOrder(
		id,
		customerID,
		dto.OrderDate.UTC(),
		order.Status(dto.Status),
		dto.ShippingAddress,
		dto.Notes,
		items,
	)
}

func itemToDomain(dto OrderItemDTO) (*order.Item, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	productID, err := kernel.UUIDFromBytes(dto.ProductID[:])
	if err != nil {
		return nil, err
	}

	unitPrice, err := kernel.NewMoney(dto.UnitPrice)
	if err != nil {
		return nil, err
	}

	return order.NewItem(id, productID, dto.Quantity, unitPrice)
}

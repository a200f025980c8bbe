package postgres

import (
	"shop/internal/adapters/out/postgres/customerrepo"
	"shop/internal/adapters/out/postgres/orderrepo"
	"shop/internal/adapters/out/postgres/productrepo"

	"gorm.io/gorm"
)

// Models lists every table of the shop schema in dependency order.
func Models() []any {
	return []any{
		&customerrepo.CustomerDTO{},
		&productrepo.ProductDTO{},
		&orderrepo.OrderDTO{},
		&orderrepo.OrderItemDTO{},
	}
}

// Migrate creates or updates the schema, including foreign keys.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(Models()...)
}

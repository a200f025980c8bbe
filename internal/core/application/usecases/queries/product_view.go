package queries

import (
	"database/sql"

	"shop/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ProductView is the catalog representation of an active product.
type ProductView struct {
	ID          kernel.UUID     `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	Stock       int             `json:"stock"`
	Category    string          `json:"category"`
}

const productColumns = `
	SELECT
		id,
		name,
		COALESCE(description, ''),
		price,
		stock,
		category
	FROM products`

func scanProducts(rows *sql.Rows) ([]ProductView, error) {
	defer rows.Close()

	products := make([]ProductView, 0)
	for rows.Next() {
		var (
			view ProductView
			id   uuid.UUID
		)
		if err := rows.Scan(&id, &view.Name, &view.Description, &view.Price, &view.Stock, &view.Category); err != nil {
			return nil, err
		}

		productID, err := kernel.UUIDFromBytes(id[:])
		if err != nil {
			return nil, err
		}
		view.ID = productID
		products = append(products, view)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}
	return products, nil
}

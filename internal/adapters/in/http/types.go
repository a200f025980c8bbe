package http

import (
	"time"

	openapi_types "github.com/oapi-codegen/runtime/types"
)

// Error defines model for Error.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// NewOrder defines model for NewOrder.
type NewOrder struct {
	CustomerId      openapi_types.UUID `json:"customerId"`
	Items           []NewOrderItem     `json:"items"`
	Notes           *string            `json:"notes,omitempty"`
	ShippingAddress string             `json:"shippingAddress"`
}

// NewOrderItem defines model for NewOrderItem.
type NewOrderItem struct {
	ProductId openapi_types.UUID `json:"productId"`
	Quantity  int                `json:"quantity"`
}

// StatusUpdate defines model for StatusUpdate.
type StatusUpdate struct {
	Status string `json:"status"`
}

// TransitionCheck defines model for TransitionCheck.
type TransitionCheck struct {
	Allowed bool   `json:"allowed"`
	From    string `json:"from"`
	To      string `json:"to"`
}

// Order defines model for Order. Amounts are decimal strings with two fraction digits.
type Order struct {
	CustomerId      openapi_types.UUID `json:"customerId"`
	CustomerName    string             `json:"customerName"`
	Id              openapi_types.UUID `json:"id"`
	Items           []OrderItem        `json:"items"`
	Notes           string             `json:"notes,omitempty"`
	OrderDate       time.Time          `json:"orderDate"`
	ShippingAddress string             `json:"shippingAddress"`
	Status          string             `json:"status"`
	TotalAmount     string             `json:"totalAmount"`
}

// OrderItem defines model for OrderItem.
type OrderItem struct {
	LineTotal   string             `json:"lineTotal"`
	ProductId   openapi_types.UUID `json:"productId"`
	ProductName string             `json:"productName"`
	Quantity    int                `json:"quantity"`
	UnitPrice   string             `json:"unitPrice"`
}

// Product defines model for Product.
type Product struct {
	Category    string             `json:"category"`
	Description string             `json:"description,omitempty"`
	Id          openapi_types.UUID `json:"id"`
	Name        string             `json:"name"`
	Price       string             `json:"price"`
	Stock       int                `json:"stock"`
}

// Customer defines model for Customer.
type Customer struct {
	CreatedAt time.Time          `json:"createdAt"`
	Email     string             `json:"email"`
	FullName  string             `json:"fullName"`
	Id        openapi_types.UUID `json:"id"`
}

// GetProductsParams defines parameters for GetProducts.
type GetProductsParams struct {
	Category *string `form:"category,omitempty" json:"category,omitempty"`
}

// CanTransitionParams defines parameters for CanTransition.
type CanTransitionParams struct {
	From string `form:"from" json:"from"`
	To   string `form:"to" json:"to"`
}

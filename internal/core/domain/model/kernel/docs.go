// Package kernel holds the shared value objects of the shop domain.
//
// The package includes:
//   - UUID: identifier for orders, order items, products and customers
//   - Money: non-negative fixed-point amount backed by shopspring/decimal
//
// Both types are immutable; every operation returns a new value.
package kernel

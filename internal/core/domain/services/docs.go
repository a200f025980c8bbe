// Package services provides domain services that span more than one aggregate.
//
// The package includes:
//   - OrderBuilder: turns requested order lines and the referenced products into a
//     Pending order, snapshotting prices and decrementing stock
package services

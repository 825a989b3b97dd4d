// Package order provides the order aggregate of the restaurant order manager.
//
// The package includes:
//   - LineItem: one dish on an order (name, unit price, quantity)
//   - Order: the aggregate root holding the identifier, customer and line items
//   - Status: the Pending -> Fulfilled lifecycle
//   - List: an ordered sequence of orders with identifier uniqueness on insert
//
// Key business rules:
//   - Every order has at least one line item
//   - Prices are non-negative and quantities positive
//   - The order total is the sum of price*quantity and is recomputed on every call
//   - Fulfilled is final; there is no way back to Pending
package order

// Package ports defines the persistence contracts of the order manager.
// These interfaces establish contracts between the domain layer and infrastructure,
// enabling dependency inversion and testability.
package ports

import (
	"context"

	"restaurant/internal/core/domain/model/order"
)

// OrderRepository persists one store of orders as a whole ordered sequence.
// There is one repository for pending orders and one for the fulfilled archive;
// both share the same record layout.
type OrderRepository interface {
	// GetAll returns every order in the store in stored order.
	// A store that does not exist yet is returned as an empty list, not an error.
	GetAll(ctx context.Context) (*order.List, error)

	// SaveAll replaces the whole content of the store with orders.
	// Inside a unit of work the write becomes visible on Commit.
	SaveAll(ctx context.Context, orders *order.List) error
}

package ports

import (
	"context"
)

// UnitOfWorkFactory creates new UnitOfWork instances for each command.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork represents a business transaction boundary spanning both order stores.
// Writes made through its repositories are staged and applied on Commit:
// either every staged store is replaced or none is.
type UnitOfWork interface {
	// Begin starts a new transaction.
	Begin(ctx context.Context) error

	// Commit applies all staged writes.
	// Returns error if no active transaction or the writes could not be applied.
	Commit(ctx context.Context) error

	// Rollback discards staged writes.
	// Returns error if no active transaction.
	Rollback(ctx context.Context) error

	// PendingOrderRepository returns the pending store bound to the current transaction.
	PendingOrderRepository() OrderRepository

	// FulfilledOrderRepository returns the fulfilled archive bound to the current transaction.
	FulfilledOrderRepository() OrderRepository
}

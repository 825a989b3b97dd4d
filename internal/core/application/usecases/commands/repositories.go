// Package commands contains business operations that modify the order stores.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management, and persistence.
package commands

import (
	"context"

	"restaurant/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// These abstractions keep the pending and fulfilled stores consistent with each other.
type (
	// TxManager handles the unit of work lifecycle.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// PendingRepoFactory provides access to the pending store within a transaction.
	PendingRepoFactory interface {
		PendingOrderRepository() ports.OrderRepository
	}

	// FulfilledRepoFactory provides access to the fulfilled archive within a transaction.
	FulfilledRepoFactory interface {
		FulfilledOrderRepository() ports.OrderRepository
	}

	// PendingOrderUoW manages transactions that only touch the pending store.
	PendingOrderUoW interface {
		TxManager
		PendingRepoFactory
	}

	// PendingOrderUoWFactory creates new pending-store unit of work instances.
	PendingOrderUoWFactory interface {
		Create() PendingOrderUoW
	}

	// UoW manages transactions across both stores.
	// Used for commands that move orders between them.
	//
	// Example:
	//   uow := factory.Create()
	//   err := uow.Begin(ctx)
	//   defer uow.Rollback(ctx)
	//
	//   pendingRepo := uow.PendingOrderRepository()
	//   fulfilledRepo := uow.FulfilledOrderRepository()
	//   // ... perform operations
	//
	//   err = uow.Commit(ctx)
	UoW interface {
		TxManager
		PendingRepoFactory
		FulfilledRepoFactory
	}

	// UoWFactory creates new unit of work instances for cross-store operations.
	UoWFactory interface {
		Create() UoW
	}
)

package queries

import (
	"context"

	"restaurant/internal/core/domain/model/order"
	"restaurant/internal/core/ports"
)

// GetPendingOrdersQueryHandler reads the pending store outside any unit of work.
// The returned list is a snapshot; mutating it does not touch the store.
type GetPendingOrdersQueryHandler struct {
	repo ports.OrderRepository
}

// NewGetPendingOrdersQueryHandler creates a handler reading from repo.
func NewGetPendingOrdersQueryHandler(repo ports.OrderRepository) GetPendingOrdersQueryHandler {
	return GetPendingOrdersQueryHandler{repo: repo}
}

// Handle returns the pending orders in store order. A missing store is an empty list.
func (h GetPendingOrdersQueryHandler) Handle(ctx context.Context, query GetPendingOrdersQuery) (*order.List, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	return h.repo.GetAll(ctx)
}

package commands

import (
	"context"

	"restaurant/internal/core/domain/model/order"
	"restaurant/internal/core/domain/services"
	"restaurant/internal/pkg/errs"
)

// FulfillOrderCommandHandler moves one order from the pending store to the fulfilled
// store. Both stores are saved in the same unit of work, so after a failed commit
// neither file has changed.
type FulfillOrderCommandHandler struct {
	uowFactory UoWFactory
	fulfiller  services.Fulfiller
}

// NewFulfillOrderCommandHandler creates a handler for order fulfillment.
func NewFulfillOrderCommandHandler(uowFactory UoWFactory, fulfiller services.Fulfiller) FulfillOrderCommandHandler {
	return FulfillOrderCommandHandler{
		uowFactory: uowFactory,
		fulfiller:  fulfiller,
	}
}

// Handle fulfills the selected order and returns it in its Fulfilled state.
// Returns an errs.ObjectNotFoundError when the expected order is no longer at the
// selected position, and an errs.ValueIsOutOfRangeError for a selection past the end.
func (h *FulfillOrderCommandHandler) Handle(ctx context.Context, cmd FulfillOrderCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	pendingRepo := uow.PendingOrderRepository()
	fulfilledRepo := uow.FulfilledOrderRepository()

	pending, err := pendingRepo.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	fulfilled, err := fulfilledRepo.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	if err = h.fulfiller.ValidateSelection(pending, cmd.Selection()); err != nil {
		return nil, err
	}
	selected, err := pending.At(cmd.Selection() - 1)
	if err != nil {
		return nil, err
	}
	if !selected.ID().IsEqual(cmd.OrderID()) {
		return nil, errs.NewObjectNotFoundError("order id", cmd.OrderID().String())
	}

	moved, err := h.fulfiller.Fulfill(pending, fulfilled, cmd.Selection())
	if err != nil {
		return nil, err
	}

	if err = pendingRepo.SaveAll(ctx, pending); err != nil {
		return nil, err
	}
	if err = fulfilledRepo.SaveAll(ctx, fulfilled); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return moved, nil
}

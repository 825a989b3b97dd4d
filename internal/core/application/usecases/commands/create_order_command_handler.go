package commands

import (
	"context"

	"restaurant/internal/core/domain/model/order"
)

// CreateOrderCommandHandler handles the business logic for order creation.
// Appends the new order to the pending store inside a unit of work.
//
// Example:
//
//	handler := NewCreateOrderCommandHandler(uowFactory)
//	cmd, _ := NewCreateOrderCommand(kernel.MustNewOrderID("B2"), "Lee", items)
//
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("order creation failed: %w", err)
//	}
type CreateOrderCommandHandler struct {
	uowFactory PendingOrderUoWFactory
}

// NewCreateOrderCommandHandler creates a handler for order creation operations.
// Requires a PendingOrderUoWFactory for transactional persistence.
func NewCreateOrderCommandHandler(uowFactory PendingOrderUoWFactory) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the order creation command.
// The pending store is reloaded so a duplicate identifier is rejected against its
// current content with an errs.ObjectAlreadyExistsError.
func (h *CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	newOrder, err := order.NewOrder(cmd.OrderID(), cmd.Customer(), cmd.Items())
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	pendingRepo := uow.PendingOrderRepository()
	pending, err := pendingRepo.GetAll(ctx)
	if err != nil {
		return err
	}

	if err = pending.Append(newOrder); err != nil {
		return err
	}

	if err = pendingRepo.SaveAll(ctx, pending); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

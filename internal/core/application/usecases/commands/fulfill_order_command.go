package commands

import (
	"errors"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/pkg/errs"
	"restaurant/internal/pkg/guard"
)

var (
	ErrFulfillOrderCommandIsNotConstructed = errors.New(
		"FulfillOrderCommand must be created via NewFulfillOrderCommand constructor",
	)
)

// FulfillOrderCommand represents a request to move one pending order to the fulfilled store.
// The order is addressed by its 1-based position in the pending listing; the identifier
// shown to the user at that position is carried along so a store that changed in the
// meantime is detected instead of fulfilling a different order.
type FulfillOrderCommand struct { //nolint:recvcheck //using for validation
	selection int
	orderID   kernel.OrderID

	guard guard.ConstructorGuard
}

// NewFulfillOrderCommand creates a fulfillment command for the order listed at selection.
func NewFulfillOrderCommand(selection int, orderID kernel.OrderID) (FulfillOrderCommand, error) {
	cmd := FulfillOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setSelection(selection),
		cmd.setOrderID(orderID),
	); err != nil {
		return FulfillOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c FulfillOrderCommand) Validate() error {
	return c.guard.Validate(ErrFulfillOrderCommandIsNotConstructed)
}

// Selection returns the 1-based position in the pending store.
func (c FulfillOrderCommand) Selection() int {
	return c.selection
}

// OrderID returns the identifier expected at Selection.
func (c FulfillOrderCommand) OrderID() kernel.OrderID {
	return c.orderID
}

func (c *FulfillOrderCommand) setSelection(selection int) error {
	if selection < 1 {
		return errs.NewValueIsInvalidError("selection")
	}

	c.selection = selection
	return nil
}

func (c *FulfillOrderCommand) setOrderID(orderID kernel.OrderID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

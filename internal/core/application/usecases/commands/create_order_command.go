package commands

import (
	"errors"
	"slices"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/order"
	"restaurant/internal/pkg/guard"
)

var (
	ErrCreateOrderCommandIsNotConstructed = errors.New(
		"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
	)
)

// CreateOrderCommand represents a request to add a new order to the pending store.
// Carries everything the creation flow collected from the user.
//
// Example:
//
//	item, _ := order.NewLineItem("Bibimbap", 9000, 2)
//	cmd, err := NewCreateOrderCommand(kernel.MustNewOrderID("a1"), "Kim", []order.LineItem{item})
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//
//	handler := NewCreateOrderCommandHandler(uowFactory)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to create order: %w", err)
//	}
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID  kernel.OrderID
	customer string
	items    []order.LineItem

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to register a new pending order.
// Validates that the identifier was constructed and that there is at least one valid item.
func NewCreateOrderCommand(orderID kernel.OrderID, customer string, items []order.LineItem) (CreateOrderCommand, error) {
	orderCommand := CreateOrderCommand{
		customer: customer,
		guard:    guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		orderCommand.setOrderID(orderID),
		orderCommand.setItems(items),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return orderCommand, nil
}

// NewCreateOrderCommandFromOrder builds the command for an order assembled elsewhere,
// typically by the creation workflow.
func NewCreateOrderCommandFromOrder(o *order.Order) (CreateOrderCommand, error) {
	if err := o.Validate(); err != nil {
		return CreateOrderCommand{}, err
	}
	return NewCreateOrderCommand(o.ID(), o.Customer(), o.Items())
}

// Validate ensures the command was created through the constructor.
// Returns ErrCreateOrderCommandIsNotConstructed if validation fails.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// OrderID returns the normalized order identifier.
func (c CreateOrderCommand) OrderID() kernel.OrderID {
	return c.orderID
}

// Customer returns the customer name.
func (c CreateOrderCommand) Customer() string {
	return c.customer
}

// Items returns a copy of the line items.
func (c CreateOrderCommand) Items() []order.LineItem {
	return slices.Clone(c.items)
}

func (c *CreateOrderCommand) setOrderID(orderID kernel.OrderID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *CreateOrderCommand) setItems(items []order.LineItem) error {
	if len(items) == 0 {
		return order.ErrItemsAreRequired
	}
	for _, item := range items {
		if err := item.Validate(); err != nil {
			return err
		}
	}

	c.items = slices.Clone(items)
	return nil
}

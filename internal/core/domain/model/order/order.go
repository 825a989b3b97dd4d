package order

import (
	"errors"
	"fmt"
	"math"
	"slices"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created through
	// NewOrder or RestoreOrder.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")

	// ErrItemsAreRequired is returned when an order would have no line items.
	ErrItemsAreRequired = errs.NewValueIsRequiredError("order must contain at least one item")
)

// Order is a customer's order: an identifier, a free-text customer name and the
// ordered line items. It is the aggregate root of the order lifecycle.
//
// Order follows these invariants:
//   - The identifier is a constructed kernel.OrderID
//   - There is at least one line item, each constructed through NewLineItem
//   - Status moves only from Pending to Fulfilled
type Order struct {
	id       kernel.OrderID
	customer string
	items    []LineItem
	status   Status

	isConstructed bool
}

// NewOrder creates a Pending order.
//
// Example:
//
//	noodles, _ := order.NewLineItem("Beef noodles", 180, 2)
//	o, err := order.NewOrder(kernel.MustNewOrderID("a1"), "Mr. Lin", []order.LineItem{noodles})
//	if err != nil {
//	    return err
//	}
//	fmt.Println(o.Total()) // 360
func NewOrder(id kernel.OrderID, customer string, items []LineItem) (*Order, error) {
	return RestoreOrder(id, customer, items, Pending)
}

// RestoreOrder rebuilds an order read back from a store with the status of that store.
// It applies the same validation as NewOrder.
func RestoreOrder(id kernel.OrderID, customer string, items []LineItem, status Status) (*Order, error) {
	o := &Order{
		customer:      customer,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setItems(items),
		o.setStatus(status),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// Validate ensures the Order instance was properly constructed.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}

	return nil
}

// IsEqual compares two orders by identifier.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order identifier.
func (o *Order) ID() kernel.OrderID {
	return o.id
}

// Customer returns the customer name as typed.
func (o *Order) Customer() string {
	return o.customer
}

// Items returns a copy of the line items in entry order.
func (o *Order) Items() []LineItem {
	return slices.Clone(o.items)
}

// Status returns the lifecycle state.
func (o *Order) Status() Status {
	return o.status
}

// Total returns the sum of price * quantity over all line items.
// It is computed on every call and never cached.
func (o *Order) Total() int {
	total := 0
	for _, item := range o.items {
		total += item.Subtotal()
	}
	return total
}

// Fulfill marks a Pending order as Fulfilled.
func (o *Order) Fulfill() error {
	newStatus, err := o.status.Fulfill()
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

// SumSubtotals adds up the subtotals of items. It returns a ValueIsOutOfRangeError
// when the sum does not fit in an int.
func SumSubtotals(items []LineItem) (int, error) {
	total := 0
	for _, item := range items {
		subtotal := item.Subtotal()
		if total > math.MaxInt-subtotal {
			return 0, errs.NewValueIsOutOfRangeErrorWithCause("total", total, 0, math.MaxInt-subtotal,
				fmt.Errorf("adding %d overflows", subtotal))
		}
		total += subtotal
	}
	return total, nil
}

func (o *Order) setID(id kernel.OrderID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setItems(items []LineItem) error {
	if len(items) == 0 {
		return ErrItemsAreRequired
	}
	for _, item := range items {
		if err := item.Validate(); err != nil {
			return err
		}
	}
	if _, err := SumSubtotals(items); err != nil {
		return err
	}
	o.items = slices.Clone(items)
	return nil
}

func (o *Order) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	o.status = status
	return nil
}

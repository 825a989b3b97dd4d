package order

import (
	"slices"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/pkg/errs"
)

// List is an ordered sequence of orders as kept in one store.
// Positions are zero-based; user-facing numbering adds one.
// The zero value is an empty list ready to use.
type List struct {
	orders []*Order
}

// NewList wraps orders in their current order. The slice is copied.
func NewList(orders ...*Order) *List {
	return &List{orders: slices.Clone(orders)}
}

// Len returns the number of orders.
func (l *List) Len() int {
	return len(l.orders)
}

// IsEmpty reports whether the list holds no orders.
func (l *List) IsEmpty() bool {
	return len(l.orders) == 0
}

// Orders returns a copy of the underlying sequence.
func (l *List) Orders() []*Order {
	return slices.Clone(l.orders)
}

// At returns the order at index.
func (l *List) At(index int) (*Order, error) {
	if index < 0 || index >= len(l.orders) {
		return nil, errs.NewValueIsOutOfRangeError("index", index, 0, len(l.orders)-1)
	}
	return l.orders[index], nil
}

// Contains reports whether an order with id is present.
func (l *List) Contains(id kernel.OrderID) bool {
	return slices.ContainsFunc(l.orders, func(o *Order) bool {
		return o.ID().IsEqual(id)
	})
}

// Append adds o at the end.
// Returns an ObjectAlreadyExistsError when the identifier is already present.
func (l *List) Append(o *Order) error {
	if err := o.Validate(); err != nil {
		return err
	}
	if l.Contains(o.ID()) {
		return errs.NewObjectAlreadyExistsError("order id", o.ID().String())
	}

	l.orders = append(l.orders, o)
	return nil
}

// Archive adds o at the end without the uniqueness check.
// Archives are append-only and identifiers may repeat across runs.
func (l *List) Archive(o *Order) error {
	if err := o.Validate(); err != nil {
		return err
	}

	l.orders = append(l.orders, o)
	return nil
}

// RemoveAt removes and returns the order at index, keeping the rest in order.
func (l *List) RemoveAt(index int) (*Order, error) {
	o, err := l.At(index)
	if err != nil {
		return nil, err
	}

	l.orders = slices.Delete(l.orders, index, index+1)
	return o, nil
}

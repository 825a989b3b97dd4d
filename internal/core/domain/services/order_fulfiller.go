package services

import (
	"restaurant/internal/core/domain/model/order"
	"restaurant/internal/pkg/errs"
)

// Fulfiller is a domain service that serves one pending order: it removes the order from
// the pending list, marks it Fulfilled and appends it to the fulfilled archive.
//
// Business rules:
//   - Selection is 1-based, as shown to staff, and must lie in [1, pending.Len()]
//   - The move never copies: the order leaves pending before it enters fulfilled
//   - On any error neither list nor the selected order is modified
//
// Example usage:
//
//	fulfiller := services.NewFulfiller()
//	served, err := fulfiller.Fulfill(pending, fulfilled, 2)
//	if errors.Is(err, errs.ErrValueIsOutOfRange) {
//	    // ask for another number
//	}
type Fulfiller struct{}

// NewFulfiller creates a new Fulfiller instance.
func NewFulfiller() Fulfiller {
	return Fulfiller{}
}

// Fulfill moves the order at 1-based position selection from pending to fulfilled
// and returns it.
func (f Fulfiller) Fulfill(pending *order.List, fulfilled *order.List, selection int) (*order.Order, error) {
	if err := f.ValidateSelection(pending, selection); err != nil {
		return nil, err
	}

	selected, err := pending.At(selection - 1)
	if err != nil {
		return nil, err
	}
	if err = selected.Validate(); err != nil {
		return nil, err
	}
	if _, err = selected.Status().Fulfill(); err != nil {
		return nil, err
	}

	if _, err = pending.RemoveAt(selection - 1); err != nil {
		return nil, err
	}
	if err = selected.Fulfill(); err != nil {
		return nil, err
	}
	if err = fulfilled.Archive(selected); err != nil {
		return nil, err
	}

	return selected, nil
}

// ValidateSelection checks a 1-based selection against the pending list without
// changing anything.
func (f Fulfiller) ValidateSelection(pending *order.List, selection int) error {
	if selection < 1 || selection > pending.Len() {
		return errs.NewValueIsOutOfRangeError("selection", selection, 1, pending.Len())
	}
	return nil
}

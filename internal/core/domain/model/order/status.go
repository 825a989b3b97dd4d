package order

import (
	"fmt"

	"restaurant/internal/pkg/errs"
)

// Status is the lifecycle state of an order.
//
// State transitions:
//
//	Pending ──> Fulfilled
//
// Status is derived from the store holding the order; it is not serialized.
type Status int

const (
	// Unknown catches uninitialized Status values.
	Unknown Status = iota

	// Pending orders wait in the pending store to be served.
	Pending

	// Fulfilled orders have been moved to the fulfilled archive. Final state.
	Fulfilled
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:   "Unknown",
		Pending:   "Pending",
		Fulfilled: "Fulfilled",
	}
}

// Validate checks that s is Pending or Fulfilled.
func (s Status) Validate() error {
	if s != Pending && s != Fulfilled {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the human-readable name of the status, "Unknown" for invalid values.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// Fulfill transitions Pending to Fulfilled.
// Any other starting status is rejected.
func (s Status) Fulfill() (Status, error) {
	if s != Pending {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to fulfill", s.String()),
		)
	}

	return Fulfilled, nil
}

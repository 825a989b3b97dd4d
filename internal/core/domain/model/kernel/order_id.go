package kernel

import (
	"errors"
	"strings"

	"restaurant/internal/pkg/errs"
	"restaurant/internal/pkg/guard"
)

// ErrOrderIDIsNotConstructed is returned when validating a zero-value OrderID.
var ErrOrderIDIsNotConstructed = errors.New("OrderID must be created via NewOrderID constructor")

// OrderID identifies an order inside a store. Identifiers typed by staff are
// normalized: surrounding whitespace is dropped and letters are upper-cased, so
// "a1" and " A1 " name the same order. Identifiers read back from a store keep
// the text they were written with.
//
// Example:
//
//	id, err := kernel.NewOrderID("a1")
//	if err != nil {
//	    return err
//	}
//	fmt.Println(id) // A1
type OrderID struct { //nolint:recvcheck //using for validation
	value string
	guard guard.ConstructorGuard
}

// NewOrderID normalizes raw and returns the identifier.
// Returns a ValueIsRequiredError when nothing is left after trimming.
func NewOrderID(raw string) (OrderID, error) {
	value := NormalizeOrderID(raw)
	if value == "" {
		return OrderID{}, errs.NewValueIsRequiredError("order id")
	}

	return OrderID{value: value, guard: guard.NewConstructorGuard()}, nil
}

// RestoreOrderID rebuilds an identifier read back from a store without normalizing
// it, so the stored text survives the next save unchanged.
// Returns a ValueIsRequiredError for a blank value.
func RestoreOrderID(stored string) (OrderID, error) {
	if strings.TrimSpace(stored) == "" {
		return OrderID{}, errs.NewValueIsRequiredError("order id")
	}

	return OrderID{value: stored, guard: guard.NewConstructorGuard()}, nil
}

// MustNewOrderID is NewOrderID for literals known to be valid. It panics otherwise.
func MustNewOrderID(raw string) OrderID {
	id, err := NewOrderID(raw)
	if err != nil {
		panic(err)
	}
	return id
}

// NormalizeOrderID applies the identifier normalization without validating the result.
func NormalizeOrderID(raw string) string {
	return strings.ToUpper(strings.TrimSpace(raw))
}

// String returns the identifier text.
func (id OrderID) String() string {
	return id.value
}

// IsEqual reports whether both identifiers have the same text.
func (id OrderID) IsEqual(other OrderID) bool {
	return id.value == other.value
}

// Validate returns ErrOrderIDIsNotConstructed for a zero value.
func (id OrderID) Validate() error {
	return id.guard.Validate(ErrOrderIDIsNotConstructed)
}

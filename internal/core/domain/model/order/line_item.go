package order

import (
	"errors"
	"fmt"
	"math"

	"restaurant/internal/pkg/errs"
	"restaurant/internal/pkg/guard"
)

// ErrLineItemIsNotConstructed is returned when a LineItem was not created through NewLineItem.
var ErrLineItemIsNotConstructed = errors.New("LineItem must be created via NewLineItem constructor")

// LineItem is one product entry within an order. It is immutable once created.
//
// Example:
//
//	item, err := order.NewLineItem("Beef noodles", 180, 2)
//	if err != nil {
//	    return err
//	}
//	fmt.Println(item.Subtotal()) // 360
type LineItem struct { //nolint:recvcheck //using for validation
	name     string
	price    int
	quantity int

	guard guard.ConstructorGuard
}

// NewLineItem validates and creates a line item.
// The name must not be empty, the price must be >= 0 and the quantity > 0.
// All violations are reported together. A ValueIsOutOfRangeError is returned when
// price * quantity does not fit in an int.
func NewLineItem(name string, price int, quantity int) (LineItem, error) {
	item := LineItem{guard: guard.NewConstructorGuard()}

	if err := errors.Join(
		item.setName(name),
		item.setPrice(price),
		item.setQuantity(quantity),
	); err != nil {
		return LineItem{}, err
	}

	if limit := math.MaxInt / quantity; price > limit {
		return LineItem{}, errs.NewValueIsOutOfRangeErrorWithCause("price", price, 0, limit,
			fmt.Errorf("subtotal of %d x %d overflows", price, quantity))
	}

	return item, nil
}

// Validate ensures the item was created through NewLineItem.
func (i LineItem) Validate() error {
	return i.guard.Validate(ErrLineItemIsNotConstructed)
}

// Name returns the product name.
func (i LineItem) Name() string {
	return i.name
}

// Price returns the unit price.
func (i LineItem) Price() int {
	return i.price
}

// Quantity returns the ordered quantity.
func (i LineItem) Quantity() int {
	return i.quantity
}

// Subtotal returns price * quantity.
func (i LineItem) Subtotal() int {
	return i.price * i.quantity
}

// IsEqual compares all fields of both items.
func (i LineItem) IsEqual(other LineItem) bool {
	return i.name == other.name && i.price == other.price && i.quantity == other.quantity
}

func (i *LineItem) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("item name")
	}
	i.name = name
	return nil
}

func (i *LineItem) setPrice(price int) error {
	if price < 0 {
		return errs.NewValueIsInvalidErrorWithCause("price", fmt.Errorf("%d is negative", price))
	}
	i.price = price
	return nil
}

func (i *LineItem) setQuantity(quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("quantity", fmt.Errorf("%d is not greater than 0", quantity))
	}
	i.quantity = quantity
	return nil
}

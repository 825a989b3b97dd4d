package workflows

import (
	"errors"
	"fmt"
	"slices"
	"strconv"
	"strings"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/order"
	"restaurant/internal/pkg/errs"
)

// CreateStage is the position of a CreateOrderFlow.
type CreateStage int

const (
	AwaitingOrderID CreateStage = iota + 1
	AwaitingCustomer
	AwaitingItemName
	AwaitingPrice
	AwaitingQuantity
	Completed
	Aborted
)

func (s CreateStage) String() string {
	switch s {
	case AwaitingOrderID:
		return "awaiting_order_id"
	case AwaitingCustomer:
		return "awaiting_customer"
	case AwaitingItemName:
		return "awaiting_item_name"
	case AwaitingPrice:
		return "awaiting_price"
	case AwaitingQuantity:
		return "awaiting_quantity"
	case Completed:
		return "completed"
	case Aborted:
		return "aborted"
	default:
		return "unknown"
	}
}

const (
	msgOrderIDRequired   = "=> Error: order id is required"
	msgDuplicateOrderID  = "=> Error: order id %s already exists!"
	msgItemsRequired     = "=> At least one order item is required"
	msgOrderAdded        = "=> Order %s added!"
	msgNotAnInteger      = "=> Error: price and quantity must be integers, please try again"
	msgNegativePrice     = "=> Error: price cannot be negative, please try again"
	msgNonPositiveAmount = "=> Error: quantity must be a positive integer, please try again"
	msgAmountTooLarge    = "=> Error: amount is too large, item %s was not added"
)

// CreateOrderFlow collects a new order: identifier, customer, then line items until
// the terminator. On completion the order is appended to the pending list given to
// NewCreateOrderFlow.
type CreateOrderFlow struct {
	pending *order.List
	stage   CreateStage

	orderID  kernel.OrderID
	customer string
	items    []order.LineItem

	itemName string
	price    int

	created *order.Order
}

// NewCreateOrderFlow starts a flow that checks identifiers against pending and
// appends the finished order to it.
func NewCreateOrderFlow(pending *order.List) *CreateOrderFlow {
	return &CreateOrderFlow{
		pending: pending,
		stage:   AwaitingOrderID,
	}
}

// Stage returns the current stage.
func (f *CreateOrderFlow) Stage() CreateStage {
	return f.stage
}

// Done reports whether the flow reached Completed or Aborted.
func (f *CreateOrderFlow) Done() bool {
	return f.stage == Completed || f.stage == Aborted
}

// Order returns the created order once the flow is Completed, nil otherwise.
func (f *CreateOrderFlow) Order() *order.Order {
	return f.created
}

// Prompt returns the question for the current stage.
func (f *CreateOrderFlow) Prompt() string {
	switch f.stage {
	case AwaitingOrderID:
		return "Enter order id: "
	case AwaitingCustomer:
		return "Enter customer name: "
	case AwaitingItemName:
		return "Enter item name (blank to finish): "
	case AwaitingPrice:
		return "Enter price: "
	case AwaitingQuantity:
		return "Enter quantity: "
	default:
		return ""
	}
}

// Submit feeds one input line to the flow and returns the message to show, if any.
func (f *CreateOrderFlow) Submit(line string) (string, error) {
	switch f.stage {
	case AwaitingOrderID:
		return f.submitOrderID(line), nil
	case AwaitingCustomer:
		f.customer = line
		f.stage = AwaitingItemName
		return "", nil
	case AwaitingItemName:
		return f.submitItemName(line), nil
	case AwaitingPrice:
		return f.submitPrice(line), nil
	case AwaitingQuantity:
		return f.submitQuantity(line), nil
	default:
		return "", ErrFlowIsFinished
	}
}

func (f *CreateOrderFlow) submitOrderID(line string) string {
	id, err := kernel.NewOrderID(line)
	if err != nil {
		return msgOrderIDRequired
	}

	if f.pending.Contains(id) {
		f.stage = Aborted
		return fmt.Sprintf(msgDuplicateOrderID, id)
	}

	f.orderID = id
	f.stage = AwaitingCustomer
	return ""
}

func (f *CreateOrderFlow) submitItemName(line string) string {
	if !isItemTerminator(line) {
		f.itemName = line
		f.stage = AwaitingPrice
		return ""
	}

	if len(f.items) == 0 {
		return msgItemsRequired
	}

	created, err := order.NewOrder(f.orderID, f.customer, f.items)
	if err != nil {
		return "=> Error: " + err.Error()
	}
	if err = f.pending.Append(created); err != nil {
		f.stage = Aborted
		if errors.Is(err, errs.ErrObjectAlreadyExists) {
			return fmt.Sprintf(msgDuplicateOrderID, f.orderID)
		}
		return "=> Error: " + err.Error()
	}

	f.created = created
	f.stage = Completed
	return fmt.Sprintf(msgOrderAdded, f.orderID)
}

func (f *CreateOrderFlow) submitPrice(line string) string {
	price, err := parseInt(line)
	if err != nil {
		return msgNotAnInteger
	}
	if price < 0 {
		return msgNegativePrice
	}

	f.price = price
	f.stage = AwaitingQuantity
	return ""
}

func (f *CreateOrderFlow) submitQuantity(line string) string {
	quantity, err := parseInt(line)
	if err != nil {
		return msgNotAnInteger
	}
	if quantity <= 0 {
		return msgNonPositiveAmount
	}

	item, err := order.NewLineItem(f.itemName, f.price, quantity)
	if err == nil {
		_, err = order.SumSubtotals(append(slices.Clone(f.items), item))
	}
	if err != nil {
		if !errors.Is(err, errs.ErrValueIsOutOfRange) {
			return "=> Error: " + err.Error()
		}
		msg := fmt.Sprintf(msgAmountTooLarge, f.itemName)
		f.itemName, f.price = "", 0
		f.stage = AwaitingItemName
		return msg
	}

	f.items = append(f.items, item)
	f.itemName, f.price = "", 0
	f.stage = AwaitingItemName
	return ""
}

// isItemTerminator matches the two inputs that end the item list: an empty line
// and a single space.
func isItemTerminator(line string) bool {
	return line == "" || line == " "
}

func parseInt(line string) (int, error) {
	return strconv.Atoi(strings.TrimSpace(line))
}

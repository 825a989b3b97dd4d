package workflows

import (
	"fmt"
	"io"

	"restaurant/internal/core/application/reports"
	"restaurant/internal/core/domain/model/order"
	"restaurant/internal/core/domain/services"
)

// FulfillStage is the position of a FulfillOrderFlow.
type FulfillStage int

const (
	AwaitingSelection FulfillStage = iota + 1
	Selected
)

func (s FulfillStage) String() string {
	switch s {
	case AwaitingSelection:
		return "awaiting_selection"
	case Selected:
		return "selected"
	default:
		return "unknown"
	}
}

const (
	msgInvalidSelection = "=> Error: please enter a valid number"
	msgOrderFulfilled   = "=> Order %s has been fulfilled"
)

// FulfillOrderFlow asks which pending order to serve. There is no cancel input:
// the flow stays in AwaitingSelection until a valid number arrives, so an empty
// pending list can only be left by ending the input.
//
// The flow only chooses; moving the order between stores is done by
// commands.FulfillOrderCommandHandler with Selection and Order.
type FulfillOrderFlow struct {
	pending   *order.List
	fulfiller services.Fulfiller
	renderer  reports.Renderer

	stage     FulfillStage
	selection int
	selected  *order.Order
}

// NewFulfillOrderFlow starts a selection over pending.
func NewFulfillOrderFlow(pending *order.List, fulfiller services.Fulfiller, renderer reports.Renderer) *FulfillOrderFlow {
	return &FulfillOrderFlow{
		pending:   pending,
		fulfiller: fulfiller,
		renderer:  renderer,
		stage:     AwaitingSelection,
	}
}

// Stage returns the current stage.
func (f *FulfillOrderFlow) Stage() FulfillStage {
	return f.stage
}

// Done reports whether an order was selected.
func (f *FulfillOrderFlow) Done() bool {
	return f.stage == Selected
}

// Listing writes the numbered pending orders.
func (f *FulfillOrderFlow) Listing(w io.Writer) error {
	return f.renderer.RenderListing(w, f.pending.Orders())
}

// Prompt returns the selection question while a choice is still expected.
func (f *FulfillOrderFlow) Prompt() string {
	if f.stage != AwaitingSelection {
		return ""
	}
	return "Select the order number to fulfill: "
}

// Submit parses a 1-based selection. Anything that is not a number within the
// listing is rejected with a message and leaves the flow where it was.
func (f *FulfillOrderFlow) Submit(line string) (string, error) {
	if f.stage != AwaitingSelection {
		return "", ErrFlowIsFinished
	}

	selection, err := parseInt(line)
	if err != nil {
		return msgInvalidSelection, nil
	}
	if err = f.fulfiller.ValidateSelection(f.pending, selection); err != nil {
		return msgInvalidSelection, nil
	}

	selected, err := f.pending.At(selection - 1)
	if err != nil {
		return msgInvalidSelection, nil
	}

	f.selection = selection
	f.selected = selected
	f.stage = Selected
	return fmt.Sprintf(msgOrderFulfilled, selected.ID()), nil
}

// Selection returns the accepted 1-based selection, or 0 before one was made.
func (f *FulfillOrderFlow) Selection() int {
	return f.selection
}

// Order returns the selected order, or nil before a selection was made.
func (f *FulfillOrderFlow) Order() *order.Order {
	return f.selected
}

// RenderSelected writes the ticket of the order the user picked.
func (f *FulfillOrderFlow) RenderSelected(w io.Writer) error {
	return f.renderer.RenderOrderDetail(w, f.selected)
}

// Package console is the driving adapter for the text menu. It reads one menu
// choice, runs the matching order flow and persists the result through the
// command handlers. Like a classic single-shot kiosk menu, one completed action
// ends the session.
package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"restaurant/internal/core/application/reports"
	"restaurant/internal/core/application/usecases/commands"
	"restaurant/internal/core/application/usecases/queries"
	"restaurant/internal/core/application/workflows"
	"restaurant/internal/core/domain/services"

	"github.com/labstack/gommon/log"
)

const menu = `***************Menu***************
1. Add order
2. Show order report
3. Fulfill order
4. Exit
**********************************
`

const (
	choicePrompt     = "Choose an option (Enter to exit): "
	msgInvalidOption = "=> Please enter a valid option (1-4)"
)

// Console coordinates the menu with application use cases.
type Console struct {
	// Command handlers
	createOrderHandler  commands.CreateOrderCommandHandler
	fulfillOrderHandler commands.FulfillOrderCommandHandler

	// Query handlers
	getPendingOrdersHandler queries.GetPendingOrdersQueryHandler

	fulfiller services.Fulfiller
	renderer  reports.Renderer
	logger    *log.Logger
}

// NewConsole creates a console menu with the required command and query handlers.
func NewConsole(
	createOrderHandler commands.CreateOrderCommandHandler,
	fulfillOrderHandler commands.FulfillOrderCommandHandler,
	getPendingOrdersHandler queries.GetPendingOrdersQueryHandler,
	fulfiller services.Fulfiller,
	renderer reports.Renderer,
	logger *log.Logger,
) *Console {
	return &Console{
		createOrderHandler:      createOrderHandler,
		fulfillOrderHandler:     fulfillOrderHandler,
		getPendingOrdersHandler: getPendingOrdersHandler,
		fulfiller:               fulfiller,
		renderer:                renderer,
		logger:                  logger,
	}
}

// Run shows the menu until a valid choice is made and performs that one action.
// End of input at any prompt ends the session without error and without saving.
// Returned errors are infrastructure failures: unreadable stores or failed commits.
func (c *Console) Run(ctx context.Context, in io.Reader, out io.Writer) error {
	lines := newLineReader(in)

	for {
		fmt.Fprint(out, menu)
		fmt.Fprint(out, choicePrompt)

		choice, ok, err := lines.next()
		if err != nil || !ok {
			return err
		}

		switch choice {
		case "1":
			return c.addOrder(ctx, lines, out)
		case "2":
			return c.printReport(ctx, out)
		case "3":
			return c.fulfillOrder(ctx, lines, out)
		case "4", "":
			return nil
		default:
			fmt.Fprintln(out, msgInvalidOption)
		}
	}
}

func (c *Console) addOrder(ctx context.Context, lines *lineReader, out io.Writer) error {
	pending, err := c.getPendingOrdersHandler.Handle(ctx, queries.NewGetPendingOrdersQuery())
	if err != nil {
		return fmt.Errorf("load pending orders: %w", err)
	}

	flow := workflows.NewCreateOrderFlow(pending)
	for !flow.Done() {
		fmt.Fprint(out, flow.Prompt())
		line, ok, readErr := lines.next()
		if readErr != nil || !ok {
			return readErr
		}

		msg, submitErr := flow.Submit(line)
		if submitErr != nil {
			return submitErr
		}

		if flow.Stage() == workflows.Completed {
			if err = c.saveOrder(ctx, flow); err != nil {
				return err
			}
		}
		if msg != "" {
			fmt.Fprintln(out, msg)
		}
	}

	if flow.Stage() == workflows.Aborted {
		c.logger.Debugj(log.JSON{"event": "order_rejected", "reason": "duplicate_order_id"})
	}
	return nil
}

func (c *Console) saveOrder(ctx context.Context, flow *workflows.CreateOrderFlow) error {
	cmd, err := commands.NewCreateOrderCommandFromOrder(flow.Order())
	if err != nil {
		return err
	}

	if err = c.createOrderHandler.Handle(ctx, cmd); err != nil {
		return fmt.Errorf("save order %s: %w", cmd.OrderID(), err)
	}

	c.logger.Infoj(log.JSON{
		"event":    "order_created",
		"order_id": cmd.OrderID().String(),
		"items":    len(cmd.Items()),
		"total":    flow.Order().Total(),
	})
	return nil
}

func (c *Console) printReport(ctx context.Context, out io.Writer) error {
	pending, err := c.getPendingOrdersHandler.Handle(ctx, queries.NewGetPendingOrdersQuery())
	if err != nil {
		return fmt.Errorf("load pending orders: %w", err)
	}

	return c.renderer.RenderReport(out, pending.Orders(), reports.DefaultReportTitle)
}

func (c *Console) fulfillOrder(ctx context.Context, lines *lineReader, out io.Writer) error {
	pending, err := c.getPendingOrdersHandler.Handle(ctx, queries.NewGetPendingOrdersQuery())
	if err != nil {
		return fmt.Errorf("load pending orders: %w", err)
	}

	flow := workflows.NewFulfillOrderFlow(pending, c.fulfiller, c.renderer)
	if err = flow.Listing(out); err != nil {
		return err
	}

	var confirmation string
	for !flow.Done() {
		fmt.Fprint(out, flow.Prompt())
		line, ok, readErr := lines.next()
		if readErr != nil || !ok {
			return readErr
		}

		msg, submitErr := flow.Submit(line)
		if submitErr != nil {
			return submitErr
		}
		if flow.Done() {
			confirmation = msg
			break
		}
		fmt.Fprintln(out, msg)
	}

	cmd, err := commands.NewFulfillOrderCommand(flow.Selection(), flow.Order().ID())
	if err != nil {
		return err
	}
	fulfilled, err := c.fulfillOrderHandler.Handle(ctx, cmd)
	if err != nil {
		return fmt.Errorf("fulfill order %s: %w", cmd.OrderID(), err)
	}

	c.logger.Infoj(log.JSON{
		"event":     "order_fulfilled",
		"order_id":  fulfilled.ID().String(),
		"selection": cmd.Selection(),
		"total":     fulfilled.Total(),
	})

	fmt.Fprintln(out, confirmation)
	fmt.Fprintln(out, "Fulfilled order details:")
	return c.renderer.RenderOrderDetail(out, fulfilled)
}

// lineReader yields input lines without their line terminator. Lines have no
// length limit.
type lineReader struct {
	reader *bufio.Reader
}

func newLineReader(in io.Reader) *lineReader {
	return &lineReader{reader: bufio.NewReader(in)}
}

// next returns the next line; ok is false at end of input.
func (r *lineReader) next() (string, bool, error) {
	line, err := r.reader.ReadString('\n')
	if errors.Is(err, io.EOF) && line == "" {
		return "", false, nil
	}
	if err != nil && !errors.Is(err, io.EOF) {
		return "", false, err
	}
	line = strings.TrimSuffix(line, "\n")
	return strings.TrimSuffix(line, "\r"), true, nil
}

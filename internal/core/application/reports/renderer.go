// Package reports renders orders as plain-text reports for the console.
//
// Amounts are printed with grouped thousands ("12,000") through an English
// golang.org/x/text/message printer; no currency symbol or locale-specific
// layout is applied.
package reports

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"restaurant/internal/core/domain/model/order"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// DefaultReportTitle is used when RenderReport is given an empty title.
const DefaultReportTitle = "Order Report"

const (
	detailTitle = "Fulfilled Order"
	bannerRule  = "===================="
	closingRule = "=================================================="
	sectionRule = "--------------------------------------------------"
)

// Renderer formats orders. The zero value is not usable; call NewRenderer.
type Renderer struct {
	printer *message.Printer
}

// NewRenderer creates a Renderer with English digit grouping.
func NewRenderer() Renderer {
	return Renderer{printer: message.NewPrinter(language.English)}
}

// RenderReport writes every order with its rank, identifier, customer, item table
// and total. An empty sequence produces only the banner.
func (r Renderer) RenderReport(w io.Writer, orders []*order.Order, title string) error {
	if strings.TrimSpace(title) == "" {
		title = DefaultReportTitle
	}

	out := &reportWriter{w: w}
	out.printf("\n%s %s %s\n", bannerRule, title, bannerRule)
	for i, o := range orders {
		out.printf("Order #%d\n", i+1)
		r.writeOrder(out, o)
	}
	return out.err
}

// RenderOrderDetail writes the ticket of a single order.
func (r Renderer) RenderOrderDetail(w io.Writer, o *order.Order) error {
	if err := o.Validate(); err != nil {
		return err
	}

	out := &reportWriter{w: w}
	out.printf("\n%s %s %s\n", bannerRule, detailTitle, bannerRule)
	r.writeOrder(out, o)
	return out.err
}

// RenderListing writes the 1-based numbered list used to pick an order.
func (r Renderer) RenderListing(w io.Writer, orders []*order.Order) error {
	out := &reportWriter{w: w}
	out.printf("\n======== Pending Orders ========\n")
	for i, o := range orders {
		out.printf("%d. Order ID: %s - Customer: %s\n", i+1, o.ID(), o.Customer())
	}
	return out.err
}

// FormatAmount returns n with grouped thousands.
func (r Renderer) FormatAmount(n int) string {
	return r.printer.Sprintf("%d", n)
}

func (r Renderer) writeOrder(out *reportWriter, o *order.Order) {
	out.printf("Order ID: %s\n", o.ID())
	out.printf("Customer: %s\n", o.Customer())
	out.printf("%s\n", sectionRule)

	tw := tabwriter.NewWriter(out, 0, 8, 2, ' ', 0)
	fmt.Fprintf(tw, "Item\tPrice\tQty\tSubtotal\n")
	for _, item := range o.Items() {
		fmt.Fprintf(tw, "%s\t%s\t%d\t%s\n",
			item.Name(), r.FormatAmount(item.Price()), item.Quantity(), r.FormatAmount(item.Subtotal()))
	}
	if err := tw.Flush(); err != nil && out.err == nil {
		out.err = err
	}

	out.printf("%s\n", sectionRule)
	out.printf("Order Total: %s\n", r.FormatAmount(o.Total()))
	out.printf("%s\n", closingRule)
}

// reportWriter keeps the first write error and drops later output.
type reportWriter struct {
	w   io.Writer
	err error
}

func (rw *reportWriter) Write(p []byte) (int, error) {
	if rw.err != nil {
		return 0, rw.err
	}
	n, err := rw.w.Write(p)
	rw.err = err
	return n, err
}

func (rw *reportWriter) printf(format string, args ...any) {
	_, _ = fmt.Fprintf(rw, format, args...)
}

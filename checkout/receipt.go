package checkout

import (
	"fmt"
	"io"

	"go-checkout/models"
)

// ConsolePresenter writes the receipt as human-readable text: a header,
// one line per purchased item, then the subtotal, shipping fee, amount
// charged and remaining balance.
type ConsolePresenter struct {
	Out io.Writer
}

func (p *ConsolePresenter) Present(receipt *models.Receipt) {
	fmt.Fprintln(p.Out)
	fmt.Fprintln(p.Out, "** Checkout receipt **")
	for _, line := range receipt.Lines {
		fmt.Fprintf(p.Out, "%dx %-15s%d\n", line.Quantity, line.Name, line.LineTotal)
	}
	fmt.Fprintln(p.Out, "----------------------")
	fmt.Fprintf(p.Out, "%-17s%d\n", "Subtotal", receipt.Subtotal)
	fmt.Fprintf(p.Out, "%-17s%d\n", "Shipping", receipt.ShippingFee)
	fmt.Fprintf(p.Out, "%-17s%d\n", "Amount", receipt.Total)
	fmt.Fprintf(p.Out, "%-17s%d\n", "Balance", receipt.Balance)
}

package checkout

import (
	"fmt"
	"io"

	"go-checkout/models"
)

// ConsoleNotifier writes the shipment notice as human-readable text: one
// line per shipment entry followed by the total package weight.
type ConsoleNotifier struct {
	Out io.Writer
}

func (n *ConsoleNotifier) Notify(lines []models.ShipmentLine) {
	fmt.Fprintln(n.Out, "** Shipment notice **")
	totalWeight := 0
	for _, line := range lines {
		fmt.Fprintf(n.Out, "%dx %s %dg\n", line.Quantity, line.Name, line.Weight)
		totalWeight += line.Weight
	}
	fmt.Fprintf(n.Out, "Total package weight %.1fkg\n", float64(totalWeight)/1000.0)
}

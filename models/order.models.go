package models

import "time"

// ShipmentLine is one shippable cart entry handed to the shipping
// notifier: total line weight in grams (unit weight times quantity).
// Lines are derived per checkout call and never persisted.
type ShipmentLine struct {
	Name     string `json:"name"`
	Weight   int    `json:"weight"`
	Quantity int    `json:"quantity"`
}

// ReceiptLine is one purchased cart entry on the final receipt.
type ReceiptLine struct {
	Quantity  int    `json:"quantity"`
	Name      string `json:"name"`
	LineTotal int    `json:"line_total"`
}

// Receipt is the outcome of a successful checkout.
type Receipt struct {
	ID          string        `json:"id"`
	Customer    string        `json:"customer"`
	Lines       []ReceiptLine `json:"lines"`
	Subtotal    int           `json:"subtotal"`
	ShippingFee int           `json:"shipping_fee"`
	Total       int           `json:"total"`
	Balance     int           `json:"balance"` // customer balance after the charge
	CreatedAt   time.Time     `json:"created_at"`
}

package checkout

import (
	"math"
	"time"

	"github.com/google/uuid"

	"go-checkout/models"
)

// ShippingNotifier receives the shipment lines of a checkout that
// contains shippable products. It is invoked after all validation gates
// pass and before any balance or stock is touched.
type ShippingNotifier interface {
	Notify(lines []models.ShipmentLine)
}

// ReceiptPresenter renders the final receipt of a successful checkout.
type ReceiptPresenter interface {
	Present(receipt *models.Receipt)
}

// Engine runs the checkout gates over a customer and a cart. It is the
// sole writer of customer balances and product stock, and it only writes
// after every gate has passed. The engine itself is not safe for
// concurrent use; callers serialize checkout calls externally.
type Engine struct {
	notifier  ShippingNotifier
	presenter ReceiptPresenter
	now       func() time.Time
}

// NewEngine returns an engine wired to the given collaborators. Either
// may be nil, in which case that side effect is skipped.
func NewEngine(notifier ShippingNotifier, presenter ReceiptPresenter) *Engine {
	return &Engine{notifier: notifier, presenter: presenter, now: time.Now}
}

// Checkout validates the cart, charges the customer and decrements
// stock. Gates run in order: empty cart, per-line expiry, per-line
// stock, then the balance check against subtotal plus shipping fee. The
// first failing gate aborts the whole call with no mutation; on success
// the shipping notifier fires first, then balance and stock are updated,
// then the receipt is presented.
func (e *Engine) Checkout(customer *models.Customer, cart *Cart) (*models.Receipt, error) {
	if cart.IsEmpty() {
		return nil, ErrEmptyCart
	}

	now := e.now()
	subtotal := 0
	var shipment []models.ShipmentLine
	for _, line := range cart.Lines() {
		product := line.Product
		if product.HasExpiration() && product.IsExpiredAt(now) {
			return nil, &ExpiredProductError{Name: product.Name}
		}
		// Stock may have changed since the item was added.
		if line.Quantity > product.Quantity {
			return nil, &InsufficientStockError{Name: product.Name}
		}
		subtotal += product.Price * line.Quantity
		if product.IsShippable() {
			shipment = append(shipment, models.ShipmentLine{
				Name:     product.Name,
				Weight:   product.Weight * line.Quantity,
				Quantity: line.Quantity,
			})
		}
	}

	fee := ShippingFee(shipment)
	total := subtotal + fee
	if total > customer.Balance {
		return nil, ErrInsufficientBalance
	}

	if len(shipment) > 0 && e.notifier != nil {
		e.notifier.Notify(shipment)
	}

	customer.Balance -= total
	receipt := &models.Receipt{
		ID:          uuid.NewString(),
		Customer:    customer.Name,
		Subtotal:    subtotal,
		ShippingFee: fee,
		Total:       total,
		Balance:     customer.Balance,
		CreatedAt:   now,
	}
	for _, line := range cart.Lines() {
		line.Product.Quantity -= line.Quantity
		receipt.Lines = append(receipt.Lines, models.ReceiptLine{
			Quantity:  line.Quantity,
			Name:      line.Product.Name,
			LineTotal: line.Product.Price * line.Quantity,
		})
	}

	if e.presenter != nil {
		e.presenter.Present(receipt)
	}
	return receipt, nil
}

const (
	baseFee    = 20   // flat fee covering the first kilogram
	extraKgFee = 10   // per additional kilogram, rounded half up
	baseWeight = 1000 // grams covered by the base fee
)

// ShippingFee computes the fee for a set of shipment lines. It is a step
// function of the total weight: zero with no lines, the base fee up to a
// kilogram, then the base fee plus a per-kilogram charge on the excess
// weight rounded half up to whole kilograms.
func ShippingFee(lines []models.ShipmentLine) int {
	if len(lines) == 0 {
		return 0
	}
	totalWeight := 0
	for _, line := range lines {
		totalWeight += line.Weight
	}
	if totalWeight <= baseWeight {
		return baseFee
	}
	extraKg := float64(totalWeight-baseWeight) / 1000.0
	return baseFee + extraKgFee*int(math.Round(extraKg))
}

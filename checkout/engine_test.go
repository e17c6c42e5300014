package checkout

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-checkout/models"
)

type fakeNotifier struct {
	calls [][]models.ShipmentLine
}

func (f *fakeNotifier) Notify(lines []models.ShipmentLine) {
	f.calls = append(f.calls, lines)
}

type fakePresenter struct {
	receipts []*models.Receipt
}

func (f *fakePresenter) Present(r *models.Receipt) {
	f.receipts = append(f.receipts, r)
}

var testNow = time.Date(2026, time.March, 10, 15, 4, 5, 0, time.UTC)

func newTestEngine(n ShippingNotifier, p ReceiptPresenter) *Engine {
	e := NewEngine(n, p)
	e.now = func() time.Time { return testNow }
	return e
}

func daysFromNow(days int) *time.Time {
	d := testNow.AddDate(0, 0, days)
	return &d
}

func TestCheckoutEmptyCart(t *testing.T) {
	customer := &models.Customer{Name: "Ahmed", Balance: 1000000}
	engine := newTestEngine(nil, nil)

	_, err := engine.Checkout(customer, NewCart())

	require.ErrorIs(t, err, ErrEmptyCart)
	assert.Equal(t, 1000000, customer.Balance)
}

func TestCheckoutExpiredProduct(t *testing.T) {
	cheese := &models.Product{Name: "Cheese", Price: 100, Quantity: 6, ExpiresAt: daysFromNow(-1), Weight: 200}
	customer := &models.Customer{Name: "Ahmed", Balance: 1000}
	cart := NewCart()
	require.NoError(t, cart.Add(cheese, 2))

	notifier := &fakeNotifier{}
	_, err := newTestEngine(notifier, nil).Checkout(customer, cart)

	var expErr *ExpiredProductError
	require.ErrorAs(t, err, &expErr)
	assert.Equal(t, "Cheese", expErr.Name)
	assert.Equal(t, 1000, customer.Balance)
	assert.Equal(t, 6, cheese.Quantity)
	assert.Empty(t, notifier.calls)
}

// A product expiring today is still good; one day earlier is not.
func TestCheckoutExpiryBoundary(t *testing.T) {
	customer := &models.Customer{Name: "Ahmed", Balance: 1000}
	today := &models.Product{Name: "Milk", Price: 30, Quantity: 5, ExpiresAt: daysFromNow(0)}
	cart := NewCart()
	require.NoError(t, cart.Add(today, 1))

	_, err := newTestEngine(nil, nil).Checkout(customer, cart)
	require.NoError(t, err)
	assert.Equal(t, 970, customer.Balance)
}

func TestCheckoutStockRecheckedAtCheckout(t *testing.T) {
	biscuits := &models.Product{Name: "Biscuits", Price: 150, Quantity: 3, Weight: 700}
	customer := &models.Customer{Name: "Ahmed", Balance: 1000}
	cart := NewCart()
	require.NoError(t, cart.Add(biscuits, 3))

	// Stock drops between add and checkout.
	biscuits.Quantity = 2

	_, err := newTestEngine(nil, nil).Checkout(customer, cart)

	var stockErr *InsufficientStockError
	require.ErrorAs(t, err, &stockErr)
	assert.Equal(t, "Biscuits", stockErr.Name)
	assert.Equal(t, 1000, customer.Balance)
	assert.Equal(t, 2, biscuits.Quantity)
}

func TestCheckoutInsufficientBalance(t *testing.T) {
	tv := &models.Product{Name: "TV", Price: 2000, Quantity: 2, Weight: 5000}
	customer := &models.Customer{Name: "Ahmed", Balance: 1000}
	cart := NewCart()
	require.NoError(t, cart.Add(tv, 1))

	notifier := &fakeNotifier{}
	presenter := &fakePresenter{}
	_, err := newTestEngine(notifier, presenter).Checkout(customer, cart)

	require.ErrorIs(t, err, ErrInsufficientBalance)
	assert.Equal(t, 1000, customer.Balance)
	assert.Equal(t, 2, tv.Quantity)
	assert.Empty(t, notifier.calls, "notifier must not fire on a failed checkout")
	assert.Empty(t, presenter.receipts)
}

// Balance 1000; Cheese(100, 200g)x5 + Biscuits(150, 700g)x2 +
// ScratchCard(50)x1: subtotal 850, shippable weight 2400g, fee 30,
// total 880, final balance 120.
func TestCheckoutSuccess(t *testing.T) {
	cheese := &models.Product{Name: "Cheese", Price: 100, Quantity: 6, ExpiresAt: daysFromNow(3), Weight: 200}
	biscuits := &models.Product{Name: "Biscuits", Price: 150, Quantity: 3, ExpiresAt: daysFromNow(2), Weight: 700}
	scratch := &models.Product{Name: "Scratch Card", Price: 50, Quantity: 10}
	customer := &models.Customer{Name: "Ahmed", Balance: 1000}

	cart := NewCart()
	require.NoError(t, cart.Add(cheese, 5))
	require.NoError(t, cart.Add(biscuits, 2))
	require.NoError(t, cart.Add(scratch, 1))

	notifier := &fakeNotifier{}
	presenter := &fakePresenter{}
	receipt, err := newTestEngine(notifier, presenter).Checkout(customer, cart)
	require.NoError(t, err)

	assert.Equal(t, 850, receipt.Subtotal)
	assert.Equal(t, 30, receipt.ShippingFee)
	assert.Equal(t, 880, receipt.Total)
	assert.Equal(t, 120, receipt.Balance)
	assert.NotEmpty(t, receipt.ID)
	assert.Equal(t, testNow, receipt.CreatedAt)
	require.Len(t, receipt.Lines, 3)
	assert.Equal(t, models.ReceiptLine{Quantity: 5, Name: "Cheese", LineTotal: 500}, receipt.Lines[0])
	assert.Equal(t, models.ReceiptLine{Quantity: 2, Name: "Biscuits", LineTotal: 300}, receipt.Lines[1])
	assert.Equal(t, models.ReceiptLine{Quantity: 1, Name: "Scratch Card", LineTotal: 50}, receipt.Lines[2])

	assert.Equal(t, 120, customer.Balance)
	assert.Equal(t, 1, cheese.Quantity)
	assert.Equal(t, 1, biscuits.Quantity)
	assert.Equal(t, 9, scratch.Quantity)

	require.Len(t, notifier.calls, 1)
	assert.Equal(t, []models.ShipmentLine{
		{Name: "Cheese", Weight: 1000, Quantity: 5},
		{Name: "Biscuits", Weight: 1400, Quantity: 2},
	}, notifier.calls[0])

	require.Len(t, presenter.receipts, 1)
	assert.Same(t, receipt, presenter.receipts[0])
}

func TestCheckoutNoShippablesSkipsNotifier(t *testing.T) {
	scratch := &models.Product{Name: "Scratch Card", Price: 50, Quantity: 10}
	customer := &models.Customer{Name: "Ahmed", Balance: 100}
	cart := NewCart()
	require.NoError(t, cart.Add(scratch, 1))

	notifier := &fakeNotifier{}
	receipt, err := newTestEngine(notifier, nil).Checkout(customer, cart)

	require.NoError(t, err)
	assert.Empty(t, notifier.calls)
	assert.Equal(t, 0, receipt.ShippingFee)
	assert.Equal(t, 50, receipt.Total)
	assert.Equal(t, 50, customer.Balance)
}

func TestShippingFee(t *testing.T) {
	cases := []struct {
		name   string
		weight int
		want   int
	}{
		{"one gram", 1, 20},
		{"at base weight", 1000, 20},
		{"just over, rounds down", 1001, 20},
		{"under half kilogram extra", 1499, 20},
		{"half kilogram extra rounds up", 1500, 30},
		{"one kilogram extra", 2000, 30},
		{"reference scenario weight", 2400, 30},
		{"one and a half extra rounds up", 2500, 40},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			lines := []models.ShipmentLine{{Name: "Box", Weight: tc.weight, Quantity: 1}}
			assert.Equal(t, tc.want, ShippingFee(lines))
		})
	}
}

func TestShippingFeeNoLines(t *testing.T) {
	assert.Equal(t, 0, ShippingFee(nil))
}

func TestShippingFeeSumsLineWeights(t *testing.T) {
	lines := []models.ShipmentLine{
		{Name: "Cheese", Weight: 1000, Quantity: 5},
		{Name: "Biscuits", Weight: 1400, Quantity: 2},
	}
	assert.Equal(t, 30, ShippingFee(lines))
}

func TestConsoleNotifierFormat(t *testing.T) {
	var buf bytes.Buffer
	n := &ConsoleNotifier{Out: &buf}
	n.Notify([]models.ShipmentLine{
		{Name: "Cheese", Weight: 1000, Quantity: 5},
		{Name: "Biscuits", Weight: 1400, Quantity: 2},
	})

	want := "** Shipment notice **\n" +
		"5x Cheese 1000g\n" +
		"2x Biscuits 1400g\n" +
		"Total package weight 2.4kg\n"
	assert.Equal(t, want, buf.String())
}

func TestConsolePresenterFormat(t *testing.T) {
	var buf bytes.Buffer
	p := &ConsolePresenter{Out: &buf}
	p.Present(&models.Receipt{
		Lines: []models.ReceiptLine{
			{Quantity: 5, Name: "Cheese", LineTotal: 500},
			{Quantity: 1, Name: "Scratch Card", LineTotal: 50},
		},
		Subtotal:    550,
		ShippingFee: 20,
		Total:       570,
		Balance:     430,
	})

	want := "\n** Checkout receipt **\n" +
		"5x Cheese         500\n" +
		"1x Scratch Card   50\n" +
		"----------------------\n" +
		"Subtotal         550\n" +
		"Shipping         20\n" +
		"Amount           570\n" +
		"Balance          430\n"
	assert.Equal(t, want, buf.String())
}

package checkout

import "go-checkout/models"

// Line is one cart entry: a catalog product and the quantity requested.
type Line struct {
	Product  *models.Product
	Quantity int
}

// Cart maps products to requested quantities. A cart lives for a single
// checkout session: it is filled incrementally, consumed by one Checkout
// call and then discarded, whatever the outcome.
type Cart struct {
	quantities map[*models.Product]int
	order      []*models.Product
}

// NewCart returns an empty cart.
func NewCart() *Cart {
	return &Cart{quantities: make(map[*models.Product]int)}
}

// Add puts quantity units of product into the cart, merging with any
// quantity already requested for it. The requested quantity is checked
// against the product's live stock per call only: adding the same product
// twice validates each call against the same unreduced stock figure, not
// against the cumulative demand. That matches the observed legacy policy
// and is kept as-is; the checkout gates re-validate total demand anyway.
func (c *Cart) Add(product *models.Product, quantity int) error {
	if quantity > product.Quantity {
		return &InsufficientStockError{Name: product.Name}
	}
	if _, ok := c.quantities[product]; !ok {
		c.order = append(c.order, product)
	}
	c.quantities[product] += quantity
	return nil
}

// IsEmpty reports whether the cart has no entries.
func (c *Cart) IsEmpty() bool {
	return len(c.quantities) == 0
}

// Len returns the number of distinct products in the cart.
func (c *Cart) Len() int {
	return len(c.quantities)
}

// Lines returns the cart entries in insertion order. The slice is a copy;
// callers cannot modify the cart through it.
func (c *Cart) Lines() []Line {
	lines := make([]Line, 0, len(c.order))
	for _, p := range c.order {
		lines = append(lines, Line{Product: p, Quantity: c.quantities[p]})
	}
	return lines
}

package models

import (
	"fmt"
	"time"
)

// Product represents a catalog entry. The name is the stable key and the
// price is fixed after creation; only Quantity changes over a product's
// lifetime. The two optional capabilities replace a subclass hierarchy:
// a product with ExpiresAt set is perishable, a product with a positive
// Weight is physically shippable, and a product may be both.
type Product struct {
	Name      string     `json:"name"`
	Price     int        `json:"price"`    // minor currency unit
	Quantity  int        `json:"quantity"` // units in stock, never negative
	ExpiresAt *time.Time `json:"expires_at,omitempty"`
	Weight    int        `json:"weight,omitempty"` // grams per unit, 0 = not shippable
}

// HasExpiration reports whether the product carries an expiration date.
func (p *Product) HasExpiration() bool {
	return p.ExpiresAt != nil
}

// IsShippable reports whether the product has a physical weight.
func (p *Product) IsShippable() bool {
	return p.Weight > 0
}

// IsExpiredAt reports whether the product has expired relative to now.
// The comparison is calendar-date only: a product expiring today is still
// good, one whose date was yesterday is not.
func (p *Product) IsExpiredAt(now time.Time) bool {
	if p.ExpiresAt == nil {
		return false
	}
	y, m, d := now.Date()
	today := time.Date(y, m, d, 0, 0, 0, 0, now.Location())
	ey, em, ed := p.ExpiresAt.Date()
	expiry := time.Date(ey, em, ed, 0, 0, 0, 0, now.Location())
	return today.After(expiry)
}

// Info returns the catalog summary line for the product.
func (p *Product) Info() string {
	return fmt.Sprintf("%s - %d EGP (In stock: %d)", p.Name, p.Price, p.Quantity)
}

package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestProductCapabilities(t *testing.T) {
	date := time.Now()
	plain := &Product{Name: "Scratch Card", Price: 50, Quantity: 10}
	perishable := &Product{Name: "Milk", Price: 30, Quantity: 5, ExpiresAt: &date}
	shippable := &Product{Name: "TV", Price: 2000, Quantity: 2, Weight: 5000}
	both := &Product{Name: "Cheese", Price: 100, Quantity: 6, ExpiresAt: &date, Weight: 200}

	assert.False(t, plain.HasExpiration())
	assert.False(t, plain.IsShippable())
	assert.True(t, perishable.HasExpiration())
	assert.False(t, perishable.IsShippable())
	assert.False(t, shippable.HasExpiration())
	assert.True(t, shippable.IsShippable())
	assert.True(t, both.HasExpiration())
	assert.True(t, both.IsShippable())
}

func TestIsExpiredAtComparesCalendarDates(t *testing.T) {
	now := time.Date(2026, time.March, 10, 23, 30, 0, 0, time.UTC)

	// Expiring earlier the same day does not count as expired.
	sameDay := time.Date(2026, time.March, 10, 1, 0, 0, 0, time.UTC)
	yesterday := time.Date(2026, time.March, 9, 23, 59, 0, 0, time.UTC)
	tomorrow := time.Date(2026, time.March, 11, 0, 1, 0, 0, time.UTC)

	p := &Product{Name: "Milk", ExpiresAt: &sameDay}
	assert.False(t, p.IsExpiredAt(now))

	p.ExpiresAt = &yesterday
	assert.True(t, p.IsExpiredAt(now))

	p.ExpiresAt = &tomorrow
	assert.False(t, p.IsExpiredAt(now))
}

func TestIsExpiredAtWithoutExpiration(t *testing.T) {
	p := &Product{Name: "Scratch Card"}
	assert.False(t, p.IsExpiredAt(time.Now()))
}

func TestProductInfo(t *testing.T) {
	p := &Product{Name: "Cheese", Price: 100, Quantity: 6}
	assert.Equal(t, "Cheese - 100 EGP (In stock: 6)", p.Info())
}

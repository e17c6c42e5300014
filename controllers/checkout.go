// controllers/checkout.go
package controllers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/rs/zerolog/log"

	"go-checkout/checkout"
	"go-checkout/middleware"
	"go-checkout/models"
	"go-checkout/store"
	"go-checkout/utils"
)

// ReceiptMailer is the slice of the email service the checkout flow
// needs.
type ReceiptMailer interface {
	SendReceiptEmail(toEmail string, receipt *models.Receipt) error
}

// CheckoutController runs the checkout engine over a customer's cart
type CheckoutController struct {
	Store  store.Store
	Engine *checkout.Engine
	Mailer ReceiptMailer
}

// NewCheckoutController creates a new CheckoutController
func NewCheckoutController(s store.Store, engine *checkout.Engine, mailer ReceiptMailer) *CheckoutController {
	return &CheckoutController{Store: s, Engine: engine, Mailer: mailer}
}

// Checkout settles the customer's open cart. The engine mutates balances
// and stock with no locking of its own, so the store's checkout lock is
// held across the whole call. The cart is consumed either way: a failed
// checkout leaves balances and stock untouched but still discards it.
func (cc *CheckoutController) Checkout(w http.ResponseWriter, r *http.Request) {
	claims, ok := r.Context().Value(middleware.UserContextKey).(*utils.Claims)
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	customer, err := cc.Store.GetCustomer(claims.Email)
	if err != nil {
		http.Error(w, "Customer not found", http.StatusNotFound)
		return
	}

	unlock := cc.Store.CheckoutLock()
	cart := cc.Store.Cart(claims.Email)
	receipt, err := cc.Engine.Checkout(customer, cart)
	cc.Store.ClearCart(claims.Email)
	unlock()

	if err != nil {
		http.Error(w, fmt.Sprintf("Checkout failed: %s", err), checkoutStatus(err))
		return
	}

	cc.Store.SaveReceipt(claims.Email, receipt)

	go func(email string) {
		if err := cc.Mailer.SendReceiptEmail(email, receipt); err != nil {
			log.Error().Err(err).Str("email", email).Str("receipt", receipt.ID).Msg("failed to send receipt email")
		}
	}(claims.Email)

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(receipt)
}

// checkoutStatus maps an engine error to an HTTP status code.
func checkoutStatus(err error) int {
	var stockErr *checkout.InsufficientStockError
	var expiredErr *checkout.ExpiredProductError
	switch {
	case errors.Is(err, checkout.ErrEmptyCart):
		return http.StatusBadRequest
	case errors.Is(err, checkout.ErrInsufficientBalance):
		return http.StatusPaymentRequired
	case errors.As(err, &stockErr), errors.As(err, &expiredErr):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// GetOrders retrieves all past receipts for the authenticated customer
func (cc *CheckoutController) GetOrders(w http.ResponseWriter, r *http.Request) {
	claims, ok := r.Context().Value(middleware.UserContextKey).(*utils.Claims)
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(cc.Store.ListReceipts(claims.Email))
}

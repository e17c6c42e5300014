package controllers

import (
	"encoding/json"
	"errors"
	"net/http"

	"go-checkout/checkout"
	"go-checkout/middleware"
	"go-checkout/store"
	"go-checkout/utils"
)

// CartController handles cart-related requests
type CartController struct {
	Store store.Store
}

// NewCartController creates a new CartController
func NewCartController(s store.Store) *CartController {
	return &CartController{Store: s}
}

type cartItemView struct {
	Product   string `json:"product"`
	Quantity  int    `json:"quantity"`
	UnitPrice int    `json:"unit_price"`
	LineTotal int    `json:"line_total"`
}

// AddToCart adds a product to the customer's cart
func (cc *CartController) AddToCart(w http.ResponseWriter, r *http.Request) {
	claims, ok := r.Context().Value(middleware.UserContextKey).(*utils.Claims)
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	var req struct {
		Product  string `json:"product"`
		Quantity int    `json:"quantity"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid input", http.StatusBadRequest)
		return
	}
	if req.Quantity <= 0 {
		http.Error(w, "Quantity must be > 0", http.StatusBadRequest)
		return
	}

	product, err := cc.Store.GetProduct(req.Product)
	if err != nil {
		http.Error(w, "Product not found", http.StatusNotFound)
		return
	}

	// Cart mutation and the stock read inside Add must not interleave
	// with a running checkout.
	unlock := cc.Store.CheckoutLock()
	cart := cc.Store.Cart(claims.Email)
	err = cart.Add(product, req.Quantity)
	unlock()
	if err != nil {
		var stockErr *checkout.InsufficientStockError
		if errors.As(err, &stockErr) {
			http.Error(w, err.Error(), http.StatusConflict)
			return
		}
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	json.NewEncoder(w).Encode("Item added to cart")
}

// GetCart retrieves the customer's cart
func (cc *CartController) GetCart(w http.ResponseWriter, r *http.Request) {
	claims, ok := r.Context().Value(middleware.UserContextKey).(*utils.Claims)
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	unlock := cc.Store.CheckoutLock()
	cart := cc.Store.Cart(claims.Email)
	items := []cartItemView{}
	subtotal := 0
	for _, line := range cart.Lines() {
		lineTotal := line.Product.Price * line.Quantity
		items = append(items, cartItemView{
			Product:   line.Product.Name,
			Quantity:  line.Quantity,
			UnitPrice: line.Product.Price,
			LineTotal: lineTotal,
		})
		subtotal += lineTotal
	}
	unlock()

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"items":    items,
		"subtotal": subtotal,
	})
}

// ClearCart discards the customer's cart
func (cc *CartController) ClearCart(w http.ResponseWriter, r *http.Request) {
	claims, ok := r.Context().Value(middleware.UserContextKey).(*utils.Claims)
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	cc.Store.ClearCart(claims.Email)
	json.NewEncoder(w).Encode("Cart cleared")
}

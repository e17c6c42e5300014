package controllers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"go-checkout/models"
	"go-checkout/store"
)

// ProductController handles catalog-related requests
type ProductController struct {
	Store store.Store
}

// NewProductController creates a new ProductController
func NewProductController(s store.Store) *ProductController {
	return &ProductController{Store: s}
}

// CreateProduct handles adding a new product (Admin only)
func (pc *ProductController) CreateProduct(w http.ResponseWriter, r *http.Request) {
	var product models.Product
	if err := json.NewDecoder(r.Body).Decode(&product); err != nil {
		http.Error(w, "Invalid input", http.StatusBadRequest)
		return
	}

	if err := pc.Store.AddProduct(&product); err != nil {
		if errors.Is(err, store.ErrProductExists) {
			http.Error(w, "Product already exists", http.StatusConflict)
			return
		}
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(product)
}

// GetProducts retrieves the whole catalog
func (pc *ProductController) GetProducts(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(pc.Store.ListProducts())
}

// GetProductByName retrieves a single product
func (pc *ProductController) GetProductByName(w http.ResponseWriter, r *http.Request) {
	params := mux.Vars(r)
	product, err := pc.Store.GetProduct(params["name"])
	if err != nil {
		http.Error(w, "Product not found", http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(product)
}

// RestockProduct sets the stock level of a product (Admin only). The
// price cannot be changed once a product exists; stock is the only
// mutable attribute here.
func (pc *ProductController) RestockProduct(w http.ResponseWriter, r *http.Request) {
	params := mux.Vars(r)

	var req struct {
		Quantity int `json:"quantity"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid input", http.StatusBadRequest)
		return
	}

	if err := pc.Store.RestockProduct(params["name"], req.Quantity); err != nil {
		if errors.Is(err, store.ErrProductNotFound) {
			http.Error(w, "Product not found", http.StatusNotFound)
			return
		}
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	json.NewEncoder(w).Encode("Stock updated")
}

// DeleteProduct removes a product from the catalog (Admin only)
func (pc *ProductController) DeleteProduct(w http.ResponseWriter, r *http.Request) {
	params := mux.Vars(r)
	if err := pc.Store.DeleteProduct(params["name"]); err != nil {
		http.Error(w, "Product not found", http.StatusNotFound)
		return
	}

	json.NewEncoder(w).Encode("Product deleted")
}

// routes/routes.go
package routes

import (
	"github.com/gorilla/mux"

	"go-checkout/controllers"
	"go-checkout/middleware"
)

// RegisterRoutes sets up all the routes for the application
func RegisterRoutes(router *mux.Router, customerController *controllers.CustomerController, productController *controllers.ProductController, cartController *controllers.CartController, checkoutController *controllers.CheckoutController) {
	// Public routes
	router.HandleFunc("/register", customerController.Register).Methods("POST")
	router.HandleFunc("/login", customerController.Login).Methods("POST")
	router.HandleFunc("/verify", customerController.VerifyEmail).Methods("GET")

	// Product routes
	router.HandleFunc("/products", productController.GetProducts).Methods("GET")
	router.HandleFunc("/products/{name}", productController.GetProductByName).Methods("GET")

	// Admin routes
	admin := router.PathPrefix("/products").Subrouter()
	admin.Use(middleware.AuthMiddleware)
	admin.Use(middleware.AdminMiddleware)
	admin.HandleFunc("", productController.CreateProduct).Methods("POST")
	admin.HandleFunc("/{name}/stock", productController.RestockProduct).Methods("PUT")
	admin.HandleFunc("/{name}", productController.DeleteProduct).Methods("DELETE")

	// Protected routes
	protected := router.PathPrefix("/").Subrouter()
	protected.Use(middleware.AuthMiddleware)
	protected.HandleFunc("/profile", customerController.GetProfile).Methods("GET")
	protected.HandleFunc("/cart", cartController.AddToCart).Methods("POST")
	protected.HandleFunc("/cart", cartController.GetCart).Methods("GET")
	protected.HandleFunc("/cart", cartController.ClearCart).Methods("DELETE")
	protected.HandleFunc("/checkout", checkoutController.Checkout).Methods("POST")
	protected.HandleFunc("/orders", checkoutController.GetOrders).Methods("GET")

	// Metrics
	router.Handle("/metrics", middleware.MetricsHandler()).Methods("GET")
}

// main.go
package main

import (
	"net/http"
	"os"
	"time"

	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"go-checkout/checkout"
	"go-checkout/controllers"
	"go-checkout/middleware"
	"go-checkout/models"
	"go-checkout/routes"
	"go-checkout/store"
	"go-checkout/utils"
)

const serviceName = "checkout-service"

func main() {
	// Load environment variables from .env file
	if err := godotenv.Load(); err != nil {
		log.Info().Msg("No .env file found. Proceeding with environment variables.")
	}

	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	log.Logger = log.With().Str("service", serviceName).Logger()

	// Set the JWT secret key
	utils.JwtKey = []byte(os.Getenv("JWT_SECRET"))

	// Initialize EmailService
	emailService := utils.NewEmailService()

	// In-memory state; everything lives for the lifetime of the process
	memStore := store.NewMemoryStore()
	if os.Getenv("DEMO_SEED") != "" {
		seedCatalog(memStore)
	}

	// Shipment notices and receipts go to the console; the HTTP response
	// carries the receipt as JSON either way
	engine := checkout.NewEngine(
		&checkout.ConsoleNotifier{Out: os.Stdout},
		&checkout.ConsolePresenter{Out: os.Stdout},
	)

	// Initialize controllers
	customerController := controllers.NewCustomerController(memStore, emailService)
	productController := controllers.NewProductController(memStore)
	cartController := controllers.NewCartController(memStore)
	checkoutController := controllers.NewCheckoutController(memStore, engine, emailService)

	// Set up the router
	router := mux.NewRouter()
	metrics := middleware.NewServerMetrics()
	router.Use(metrics.Middleware)
	routes.RegisterRoutes(router, customerController, productController, cartController, checkoutController)

	// Start the server
	port := os.Getenv("PORT")
	if port == "" {
		port = "8000"
	}
	log.Info().Str("port", port).Msg("server is running")
	log.Fatal().Err(http.ListenAndServe(":"+port, router)).Msg("server stopped")
}

// seedCatalog loads the demo catalog used in the examples.
func seedCatalog(s store.Store) {
	in3Days := time.Now().AddDate(0, 0, 3)
	in2Days := time.Now().AddDate(0, 0, 2)
	demo := []*models.Product{
		{Name: "Cheese", Price: 100, Quantity: 6, ExpiresAt: &in3Days, Weight: 200},
		{Name: "Biscuits", Price: 150, Quantity: 3, ExpiresAt: &in2Days, Weight: 700},
		{Name: "Scratch Card", Price: 50, Quantity: 10},
		{Name: "TV", Price: 2000, Quantity: 2, Weight: 5000},
	}
	for _, p := range demo {
		if err := s.AddProduct(p); err != nil {
			log.Warn().Err(err).Str("product", p.Name).Msg("failed to seed product")
		}
	}
	log.Info().Int("products", len(demo)).Msg("demo catalog seeded")
}

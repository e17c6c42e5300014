package store

import (
	"errors"

	"go-checkout/checkout"
	"go-checkout/models"
)

// ErrProductNotFound is returned when a product name is not in the catalog.
var ErrProductNotFound = errors.New("product not found")

// ErrProductExists is returned when creating a product whose name is taken.
var ErrProductExists = errors.New("product already exists")

// ErrCustomerNotFound is returned when no account matches the given email.
var ErrCustomerNotFound = errors.New("customer not found")

// ErrCustomerExists is returned when registering an email that is taken.
var ErrCustomerExists = errors.New("customer already exists")

// Store is the state boundary the controllers depend on. All state lives
// in process memory for the lifetime of the service; there is no database
// behind it.
type Store interface {
	AddProduct(p *models.Product) error
	GetProduct(name string) (*models.Product, error)
	ListProducts() []*models.Product
	RestockProduct(name string, quantity int) error
	DeleteProduct(name string) error

	CreateCustomer(c *models.Customer) error
	GetCustomer(email string) (*models.Customer, error)
	VerifyCustomer(token string) (*models.Customer, error)

	Cart(email string) *checkout.Cart
	ClearCart(email string)

	SaveReceipt(email string, r *models.Receipt)
	ListReceipts(email string) []*models.Receipt

	CheckoutLock() func()
}

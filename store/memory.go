package store

import (
	"errors"
	"sort"
	"sync"

	"go-checkout/checkout"
	"go-checkout/models"
)

// MemoryStore keeps the catalog, customer accounts, open carts and past
// receipts in maps guarded by a single RWMutex. Product and customer
// values are shared by pointer: carts borrow catalog products, and the
// checkout engine mutates stock and balances through those pointers while
// holding the checkout lock.
type MemoryStore struct {
	mu        sync.RWMutex
	products  map[string]*models.Product
	customers map[string]*models.Customer
	carts     map[string]*checkout.Cart
	receipts  map[string][]*models.Receipt

	// Serializes whole checkout calls; see CheckoutLock.
	checkoutMu sync.Mutex
}

// NewMemoryStore returns an empty store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		products:  make(map[string]*models.Product),
		customers: make(map[string]*models.Customer),
		carts:     make(map[string]*checkout.Cart),
		receipts:  make(map[string][]*models.Receipt),
	}
}

// CheckoutLock acquires the catalog-wide checkout lock and returns the
// unlock func. The engine mutates product stock and customer balances
// with no locking of its own, so callers hold this lock for the duration
// of one checkout call. Every other writer that touches live products
// or an open cart (restock, delete, cart adds) takes the same lock;
// otherwise a write landing between the engine's stock gate and its
// decrement is a lost update that can drive stock negative.
func (s *MemoryStore) CheckoutLock() func() {
	s.checkoutMu.Lock()
	return func() { s.checkoutMu.Unlock() }
}

func (s *MemoryStore) AddProduct(p *models.Product) error {
	if p.Name == "" {
		return errors.New("product name required")
	}
	if p.Price < 0 {
		return errors.New("price must be >= 0")
	}
	if p.Quantity < 0 {
		return errors.New("quantity must be >= 0")
	}
	if p.Weight < 0 {
		return errors.New("weight must be >= 0")
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.products[p.Name]; ok {
		return ErrProductExists
	}
	s.products[p.Name] = p
	return nil
}

func (s *MemoryStore) GetProduct(name string) (*models.Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	p, ok := s.products[name]
	if !ok {
		return nil, ErrProductNotFound
	}
	return p, nil
}

// ListProducts returns the catalog sorted by name.
func (s *MemoryStore) ListProducts() []*models.Product {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*models.Product, 0, len(s.products))
	for _, p := range s.products {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// RestockProduct sets the absolute stock for a product. Price stays as it
// was at creation; stock is the only attribute an admin can change.
func (s *MemoryStore) RestockProduct(name string, quantity int) error {
	if quantity < 0 {
		return errors.New("stock cannot be negative")
	}
	// Stock writes must not interleave with a running checkout.
	s.checkoutMu.Lock()
	defer s.checkoutMu.Unlock()
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.products[name]
	if !ok {
		return ErrProductNotFound
	}
	p.Quantity = quantity
	return nil
}

func (s *MemoryStore) DeleteProduct(name string) error {
	s.checkoutMu.Lock()
	defer s.checkoutMu.Unlock()
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.products[name]; !ok {
		return ErrProductNotFound
	}
	delete(s.products, name)
	return nil
}

func (s *MemoryStore) CreateCustomer(c *models.Customer) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.customers[c.Email]; ok {
		return ErrCustomerExists
	}
	s.customers[c.Email] = c
	return nil
}

func (s *MemoryStore) GetCustomer(email string) (*models.Customer, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	c, ok := s.customers[email]
	if !ok {
		return nil, ErrCustomerNotFound
	}
	return c, nil
}

// VerifyCustomer marks the account holding the given verification token
// as verified and clears the token.
func (s *MemoryStore) VerifyCustomer(token string) (*models.Customer, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, c := range s.customers {
		if c.VerificationToken != "" && c.VerificationToken == token {
			c.IsVerified = true
			c.VerificationToken = ""
			return c, nil
		}
	}
	return nil, ErrCustomerNotFound
}

// Cart returns the customer's open cart, creating one if needed.
func (s *MemoryStore) Cart(email string) *checkout.Cart {
	s.mu.Lock()
	defer s.mu.Unlock()
	c, ok := s.carts[email]
	if !ok {
		c = checkout.NewCart()
		s.carts[email] = c
	}
	return c
}

// ClearCart discards the customer's cart. Carts live for one checkout
// session and are dropped whether the checkout succeeded or not.
func (s *MemoryStore) ClearCart(email string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.carts, email)
}

func (s *MemoryStore) SaveReceipt(email string, r *models.Receipt) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.receipts[email] = append(s.receipts[email], r)
}

func (s *MemoryStore) ListReceipts(email string) []*models.Receipt {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*models.Receipt, len(s.receipts[email]))
	copy(out, s.receipts[email])
	return out
}

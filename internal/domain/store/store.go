// Package store owns the product catalog and orchestrates multi-line orders.
package store

import (
	"fmt"
	"sync"

	"github.com/shopspring/decimal"

	"github.com/N123p/bestbuy2/internal/domain/product"
)

// ProductNotFoundError indicates an order line references a product that is
// not a member of the store's catalog.
type ProductNotFoundError struct {
	Name string
}

func (e *ProductNotFoundError) Error() string {
	return fmt.Sprintf("product %q is not available in the store", e.Name)
}

// Policy selects how Order behaves when a line fails partway through.
type Policy int

const (
	// PolicyCommitPerLine processes lines sequentially and stops at the
	// first failing line. Lines already processed keep their stock
	// mutations; there is no rollback.
	PolicyCommitPerLine Policy = iota
	// PolicyAllOrNothing validates every line before committing any of
	// them: a failing line leaves the whole catalog untouched.
	PolicyAllOrNothing
)

// Line is one (product, requested quantity) pair in an order.
type Line struct {
	Product  *product.Product
	Quantity int
}

// Store holds an ordered collection of products. Duplicate entries are
// allowed and treated as distinct catalog lines. All operations take the
// store mutex, so an Order call reads and mutates stock without interleaving
// from another caller on the same product.
type Store struct {
	mu       sync.Mutex
	products []*product.Product
	policy   Policy
}

// New creates a Store over the given products with the given order policy.
func New(products []*product.Product, policy Policy) *Store {
	return &Store{products: products, policy: policy}
}

// Add appends a product to the catalog.
func (s *Store) Add(p *product.Product) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.products = append(s.products, p)
}

// Remove deletes the first catalog entry identical to p, if present.
func (s *Store) Remove(p *product.Product) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, existing := range s.products {
		if existing == p {
			s.products = append(s.products[:i], s.products[i+1:]...)
			return
		}
	}
}

// Contains reports whether p is a current member of the catalog.
// Membership is identity-based: two products with equal fields are still
// distinct catalog lines.
func (s *Store) Contains(p *product.Product) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.contains(p)
}

func (s *Store) contains(p *product.Product) bool {
	for _, existing := range s.products {
		if existing == p {
			return true
		}
	}
	return false
}

// FindByName returns the first catalog product with the given name, or a
// ProductNotFoundError.
func (s *Store) FindByName(name string) (*product.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, p := range s.products {
		if p.Name() == name {
			return p, nil
		}
	}
	return nil, &ProductNotFoundError{Name: name}
}

// ActiveProducts returns the currently purchasable products in catalog order.
func (s *Store) ActiveProducts() []*product.Product {
	s.mu.Lock()
	defer s.mu.Unlock()

	active := make([]*product.Product, 0, len(s.products))
	for _, p := range s.products {
		if p.IsActive() {
			active = append(active, p)
		}
	}
	return active
}

// TotalQuantity returns the sum of stock-tracked quantities across the
// catalog. Non-stocked products contribute nothing.
func (s *Store) TotalQuantity() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	total := 0
	for _, p := range s.products {
		if p.Kind() != product.KindNonStocked {
			total += p.Quantity()
		}
	}
	return total
}

// Order purchases every line and returns the summed total price. Pricing and
// stock mutation are delegated entirely to Product.Buy, which consults the
// product's own promotion; the store never applies promotions itself.
//
// The whole call holds the store mutex. Failure behavior depends on the
// configured Policy.
func (s *Store) Order(lines []Line) (decimal.Decimal, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.policy == PolicyAllOrNothing {
		if err := s.validateLines(lines); err != nil {
			return decimal.Zero, err
		}
	}

	total := decimal.Zero
	for _, line := range lines {
		if err := s.checkLine(line); err != nil {
			return decimal.Zero, err
		}
		lineTotal, err := line.Product.Buy(line.Quantity)
		if err != nil {
			return decimal.Zero, err
		}
		total = total.Add(lineTotal)
	}
	return total, nil
}

// checkLine verifies catalog membership and activity for one line.
func (s *Store) checkLine(line Line) error {
	if !s.contains(line.Product) {
		return &ProductNotFoundError{Name: line.Product.Name()}
	}
	if !line.Product.IsActive() {
		return &product.InactiveError{Name: line.Product.Name()}
	}
	return nil
}

// validateLines dry-runs every line before any stock is touched. Requested
// quantities are accumulated per product so that repeated lines against the
// same stock cannot pass individually and then fail at commit time.
func (s *Store) validateLines(lines []Line) error {
	reserved := make(map[*product.Product]int, len(lines))
	for _, line := range lines {
		if err := s.checkLine(line); err != nil {
			return err
		}
		if err := line.Product.CanBuy(line.Quantity); err != nil {
			return err
		}
		if line.Product.Kind() == product.KindNonStocked {
			continue
		}
		reserved[line.Product] += line.Quantity
		if reserved[line.Product] > line.Product.Quantity() {
			return &product.InsufficientStockError{
				Name:      line.Product.Name(),
				Requested: reserved[line.Product],
				Available: line.Product.Quantity(),
			}
		}
	}
	return nil
}

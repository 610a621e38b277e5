package catalog

import (
	"fmt"
	"strings"
)

// Store holds the ordered catalog supplied at startup. It is read-only after
// construction and safe to share between goroutines.
type Store struct {
	products []Product
	index    map[string]int
}

// NewStore builds a Store from the provided products, preserving their order.
func NewStore(products []Product) (*Store, error) {
	s := &Store{
		products: make([]Product, 0, len(products)),
		index:    make(map[string]int, len(products)),
	}
	for i, p := range products {
		id := strings.TrimSpace(p.ID)
		if id == "" {
			return nil, fmt.Errorf("%w: entry %d has no id", ErrInvalidProduct, i)
		}
		if p.Price < 0 {
			return nil, fmt.Errorf("%w: %s has negative price", ErrInvalidProduct, id)
		}
		if _, exists := s.index[id]; exists {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateID, id)
		}
		p.ID = id
		s.index[id] = len(s.products)
		s.products = append(s.products, p)
	}
	return s, nil
}

// Products returns a copy of the catalog in insertion order.
func (s *Store) Products() []Product {
	if s == nil {
		return nil
	}
	return append([]Product(nil), s.products...)
}

// Len returns the number of products in the catalog.
func (s *Store) Len() int {
	if s == nil {
		return 0
	}
	return len(s.products)
}

// Lookup returns the product with the given id.
func (s *Store) Lookup(id string) (Product, bool) {
	if s == nil {
		return Product{}, false
	}
	i, ok := s.index[strings.TrimSpace(id)]
	if !ok {
		return Product{}, false
	}
	return s.products[i], true
}

// Categories returns the distinct categories in order of first appearance.
func (s *Store) Categories() []string {
	if s == nil {
		return nil
	}
	seen := make(map[string]struct{}, len(s.products))
	var out []string
	for _, p := range s.products {
		if p.Category == "" {
			continue
		}
		if _, ok := seen[p.Category]; ok {
			continue
		}
		seen[p.Category] = struct{}{}
		out = append(out, p.Category)
	}
	return out
}

// Package catalog owns the product collection and its read paths. Products
// are seeded once at startup and never change afterwards.
package catalog

import (
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/WGledhill94/loadLab/internal/domain"
	"github.com/WGledhill94/loadLab/internal/store"
	"golang.org/x/sync/singleflight"
)

//go:embed products.json
var seedData []byte

var ErrProductNotFound = errors.New("product not found")

// Filter narrows a product listing. Zero values leave the corresponding
// dimension unfiltered.
type Filter struct {
	Search   string
	Category string
	MinPrice *float64
	MaxPrice *float64
}

type Service struct {
	products *store.Collection[domain.Product]

	// The distinct category list is computed on first use; singleflight
	// collapses concurrent first requests into one pass.
	sfg        singleflight.Group
	catMu      sync.RWMutex
	categories []string
}

// NewService builds a catalog over an existing product set.
func NewService(products []domain.Product) *Service {
	col := store.New[domain.Product]()
	for _, p := range products {
		col.Append(p)
	}
	return &Service{products: col}
}

// NewFromSeed builds the catalog from the embedded product data.
func NewFromSeed() (*Service, error) {
	var products []domain.Product
	if err := json.Unmarshal(seedData, &products); err != nil {
		return nil, fmt.Errorf("failed to parse product seed: %w", err)
	}
	return NewService(products), nil
}

// List returns products matching the filter, in catalog order.
func (s *Service) List(f Filter) []domain.Product {
	search := strings.ToLower(f.Search)
	matched := s.products.FindAll(func(p domain.Product) bool {
		if search != "" &&
			!strings.Contains(strings.ToLower(p.Name), search) &&
			!strings.Contains(strings.ToLower(p.Description), search) {
			return false
		}
		if f.Category != "" && p.Category != f.Category {
			return false
		}
		if f.MinPrice != nil && p.Price < *f.MinPrice {
			return false
		}
		if f.MaxPrice != nil && p.Price > *f.MaxPrice {
			return false
		}
		return true
	})
	if matched == nil {
		matched = []domain.Product{}
	}
	return matched
}

func (s *Service) Get(id int) (domain.Product, error) {
	p, ok := s.products.Find(func(p domain.Product) bool { return p.ID == id })
	if !ok {
		return domain.Product{}, ErrProductNotFound
	}
	return p, nil
}

// Categories returns the distinct categories in catalog order.
func (s *Service) Categories() []string {
	s.catMu.RLock()
	cached := s.categories
	s.catMu.RUnlock()
	if cached != nil {
		return cached
	}

	v, _, _ := s.sfg.Do("categories", func() (interface{}, error) {
		seen := make(map[string]bool)
		cats := []string{}
		for _, p := range s.products.All() {
			if !seen[p.Category] {
				seen[p.Category] = true
				cats = append(cats, p.Category)
			}
		}
		s.catMu.Lock()
		s.categories = cats
		s.catMu.Unlock()
		return cats, nil
	})
	return v.([]string)
}

package service

import (
	"context"
	"log"
	"sync"

	"github.com/muhammadwafiq/smartkasir-kasir-app/internal/domain/entity"
)

// CatalogFetcher is the slice of the upstream client the catalog needs.
type CatalogFetcher interface {
	Products(ctx context.Context) ([]entity.Product, error)
	Categories(ctx context.Context) ([]string, error)
}

// CatalogService holds the in-memory product/category cache. The cache is
// loaded wholesale from the backend; a load failure degrades silently to an
// empty catalog so the terminal keeps working offline.
type CatalogService struct {
	upstream CatalogFetcher

	mu         sync.RWMutex
	products   []entity.Product
	categories []string
}

// NewCatalogService creates a catalog service backed by the given fetcher.
func NewCatalogService(upstream CatalogFetcher) *CatalogService {
	return &CatalogService{upstream: upstream}
}

// Load fetches products and categories and replaces both lists wholesale.
// Network errors are logged, never surfaced as a blocking error.
func (s *CatalogService) Load(ctx context.Context) {
	products, err := s.upstream.Products(ctx)
	if err != nil {
		log.Printf("catalog: failed to load products: %v", err)
		products = nil
	}

	categories, err := s.upstream.Categories(ctx)
	if err != nil {
		log.Printf("catalog: failed to load categories: %v", err)
		categories = nil
	}

	s.mu.Lock()
	s.products = products
	s.categories = categories
	s.mu.Unlock()
}

// Products returns a snapshot of the cached product list.
func (s *CatalogService) Products() []entity.Product {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]entity.Product, len(s.products))
	copy(out, s.products)
	return out
}

// Categories returns a snapshot of the cached category list.
func (s *CatalogService) Categories() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]string, len(s.categories))
	copy(out, s.categories)
	return out
}

// FilterByCategory returns the products in the given category, or the full
// list when category is empty. An unknown category yields an empty list.
func (s *CatalogService) FilterByCategory(category string) []entity.Product {
	if category == "" {
		return s.Products()
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]entity.Product, 0)
	for _, p := range s.products {
		if p.Category == category {
			out = append(out, p)
		}
	}
	return out
}

// FindByID resolves a product from the cache.
func (s *CatalogService) FindByID(id int64) (*entity.Product, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for i := range s.products {
		if s.products[i].ID == id {
			p := s.products[i]
			return &p, true
		}
	}
	return nil, false
}

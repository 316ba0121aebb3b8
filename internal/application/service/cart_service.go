package service

import (
	"sync"

	"github.com/google/uuid"

	"github.com/muhammadwafiq/smartkasir-kasir-app/internal/domain/entity"
	"github.com/muhammadwafiq/smartkasir-kasir-app/pkg/apperror"
)

// productResolver resolves a product id against the catalog cache on add.
type productResolver interface {
	FindByID(id int64) (*entity.Product, bool)
}

// CartService owns the session's ordered cart lines. It is the single
// source of truth for cart state: every mutation goes through its API and
// notifies subscribers after it commits, so pricing and rendering never
// depend on call sites remembering to recompute.
type CartService struct {
	catalog productResolver

	mu          sync.Mutex
	lines       []entity.CartLine
	subscribers []func()
}

// NewCartService creates an empty cart resolving products via catalog.
func NewCartService(catalog productResolver) *CartService {
	return &CartService{catalog: catalog}
}

// Subscribe registers a listener invoked after every committed mutation.
// Listeners run outside the cart lock, in registration order.
func (s *CartService) Subscribe(fn func()) {
	s.mu.Lock()
	s.subscribers = append(s.subscribers, fn)
	s.mu.Unlock()
}

func (s *CartService) notify() {
	s.mu.Lock()
	subs := make([]func(), len(s.subscribers))
	copy(subs, s.subscribers)
	s.mu.Unlock()

	for _, fn := range subs {
		fn()
	}
}

// AddItem adds requestedQty units of a product. A non-positive quantity
// defaults to 1. If a line for the product already exists its quantity is
// incremented; otherwise a new line is appended with the product's name and
// price snapshotted. Stock is not checked here; that is the caller's
// concern (the scanner checks it before adding).
func (s *CartService) AddItem(productID int64, requestedQty int) (entity.CartLine, error) {
	product, ok := s.catalog.FindByID(productID)
	if !ok {
		return entity.CartLine{}, apperror.NewNotFoundError("Product")
	}

	if requestedQty <= 0 {
		requestedQty = 1
	}

	s.mu.Lock()
	var result entity.CartLine
	merged := false
	for i := range s.lines {
		if s.lines[i].ProductID == productID {
			s.lines[i].Quantity += requestedQty
			result = s.lines[i]
			merged = true
			break
		}
	}
	if !merged {
		result = entity.CartLine{
			ID:        uuid.New(),
			ProductID: product.ID,
			Name:      product.Name,
			UnitPrice: product.Price,
			Quantity:  requestedQty,
		}
		s.lines = append(s.lines, result)
	}
	s.mu.Unlock()

	s.notify()
	return result, nil
}

// UpdateQuantity sets a line's quantity. A quantity <= 0 removes the line.
func (s *CartService) UpdateQuantity(lineID uuid.UUID, newQty int) error {
	if newQty <= 0 {
		return s.RemoveLine(lineID)
	}

	s.mu.Lock()
	found := false
	for i := range s.lines {
		if s.lines[i].ID == lineID {
			s.lines[i].Quantity = newQty
			found = true
			break
		}
	}
	s.mu.Unlock()

	if !found {
		return apperror.NewNotFoundError("Cart line")
	}
	s.notify()
	return nil
}

// RemoveLine deletes a line; later lines shift down one position.
func (s *CartService) RemoveLine(lineID uuid.UUID) error {
	s.mu.Lock()
	found := false
	for i := range s.lines {
		if s.lines[i].ID == lineID {
			s.lines = append(s.lines[:i], s.lines[i+1:]...)
			found = true
			break
		}
	}
	s.mu.Unlock()

	if !found {
		return apperror.NewNotFoundError("Cart line")
	}
	s.notify()
	return nil
}

// Clear empties the cart.
func (s *CartService) Clear() {
	s.mu.Lock()
	s.lines = nil
	s.mu.Unlock()

	s.notify()
}

// Lines returns an ordered snapshot of the cart (insertion order equals
// display order).
func (s *CartService) Lines() []entity.CartLine {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]entity.CartLine, len(s.lines))
	copy(out, s.lines)
	return out
}

// IsEmpty reports whether the cart has no lines.
func (s *CartService) IsEmpty() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.lines) == 0
}

package service

import (
	"sync"

	"github.com/muhammadwafiq/smartkasir-kasir-app/internal/application/pricing"
	"github.com/muhammadwafiq/smartkasir-kasir-app/internal/domain/entity"
	"github.com/muhammadwafiq/smartkasir-kasir-app/internal/domain/enum"
)

// SessionInputs are the cashier-entered values that feed pricing and
// checkout: discount percent, cash received, payment method and notes.
type SessionInputs struct {
	DiscountPercent int64              `json:"discount_percent"`
	AmountReceived  int64              `json:"amount_received"`
	PaymentMethod   enum.PaymentMethod `json:"payment_method"`
	Notes           string             `json:"notes"`
}

// SessionService holds the cashier inputs and the derived pricing snapshot.
// It subscribes to the cart so the snapshot is recomputed after every
// committed cart mutation as well as after every input change.
type SessionService struct {
	cart *CartService

	mu       sync.RWMutex
	inputs   SessionInputs
	snapshot entity.PricingSnapshot
}

// NewSessionService creates the session state and wires it to the cart.
func NewSessionService(cart *CartService) *SessionService {
	s := &SessionService{
		cart:   cart,
		inputs: SessionInputs{PaymentMethod: enum.PaymentCash},
	}
	cart.Subscribe(s.recompute)
	return s
}

func (s *SessionService) recompute() {
	lines := s.cart.Lines()

	s.mu.Lock()
	s.snapshot = pricing.Snapshot(lines, s.inputs.DiscountPercent, s.inputs.AmountReceived)
	s.mu.Unlock()
}

// SetInputs replaces the cashier inputs. A negative discount percent is
// normalized to 0 (the pricing engine treats it the same); the payment
// method is kept unchanged when the new one is empty.
func (s *SessionService) SetInputs(in SessionInputs) {
	s.mu.Lock()
	if in.DiscountPercent < 0 {
		in.DiscountPercent = 0
	}
	if in.PaymentMethod == "" {
		in.PaymentMethod = s.inputs.PaymentMethod
	}
	s.inputs = in
	s.mu.Unlock()

	s.recompute()
}

// Inputs returns the current cashier inputs.
func (s *SessionService) Inputs() SessionInputs {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.inputs
}

// Snapshot returns the current derived pricing state.
func (s *SessionService) Snapshot() entity.PricingSnapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snapshot
}

// Reset restores the inputs to their new-transaction defaults.
func (s *SessionService) Reset() {
	s.mu.Lock()
	s.inputs = SessionInputs{PaymentMethod: enum.PaymentCash}
	s.mu.Unlock()

	s.recompute()
}

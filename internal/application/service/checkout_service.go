package service

import (
	"context"
	"sync"

	"github.com/muhammadwafiq/smartkasir-kasir-app/internal/domain/entity"
	"github.com/muhammadwafiq/smartkasir-kasir-app/internal/domain/enum"
	"github.com/muhammadwafiq/smartkasir-kasir-app/internal/infrastructure/upstream"
	"github.com/muhammadwafiq/smartkasir-kasir-app/pkg/apperror"
)

// TransactionSubmitter is the slice of the upstream client checkout needs.
type TransactionSubmitter interface {
	CreateTransaction(ctx context.Context, req *upstream.CreateTransactionRequest) (int64, error)
	TodayTransactions(ctx context.Context) ([]entity.TransactionSummary, error)
}

// CheckoutService orchestrates the Idle -> Validating -> Submitting ->
// Succeeded | Failed transaction flow: it validates the cart and payment,
// submits the order upstream, and on success renders the receipt and pushes
// the order to the customer display.
//
// A Submitting lock rejects overlapping checkout triggers, so a double-tap
// on the checkout button cannot post the transaction twice.
type CheckoutService struct {
	cart     *CartService
	session  *SessionService
	upstream TransactionSubmitter
	receipts *ReceiptService
	display  *DisplayService

	mu    sync.Mutex
	state enum.CheckoutState
}

// NewCheckoutService wires the checkout controller.
func NewCheckoutService(
	cart *CartService,
	session *SessionService,
	submitter TransactionSubmitter,
	receipts *ReceiptService,
	display *DisplayService,
) *CheckoutService {
	return &CheckoutService{
		cart:     cart,
		session:  session,
		upstream: submitter,
		receipts: receipts,
		display:  display,
		state:    enum.CheckoutIdle,
	}
}

// State returns the controller's current state.
func (s *CheckoutService) State() enum.CheckoutState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

func (s *CheckoutService) setState(state enum.CheckoutState) {
	s.mu.Lock()
	s.state = state
	s.mu.Unlock()
}

// Checkout validates and submits the current cart as a transaction.
//
// Validation failures (empty cart, insufficient cash for non-QRIS methods)
// return the controller to Idle with a blocking error and touch nothing,
// so the cashier can correct and retry. A submission failure likewise
// leaves the cart and inputs intact and relays the backend's message. On
// success the cart is NOT cleared; NewTransaction is the distinct reset.
func (s *CheckoutService) Checkout(ctx context.Context) (*entity.Receipt, error) {
	s.mu.Lock()
	if s.state == enum.CheckoutSubmitting {
		s.mu.Unlock()
		return nil, apperror.ErrCheckoutInProgress
	}
	s.state = enum.CheckoutValidating
	s.mu.Unlock()

	lines := s.cart.Lines()
	if len(lines) == 0 {
		s.setState(enum.CheckoutIdle)
		return nil, apperror.ErrEmptyCart
	}

	snap := s.session.Snapshot()
	inputs := s.session.Inputs()
	if inputs.PaymentMethod.RequiresSufficientPayment() && snap.AmountReceived < snap.Total {
		s.setState(enum.CheckoutIdle)
		return nil, apperror.ErrInsufficientPayment
	}

	s.setState(enum.CheckoutSubmitting)

	id, err := s.upstream.CreateTransaction(ctx, &upstream.CreateTransactionRequest{
		TotalAmount:   snap.Total,
		PaymentMethod: inputs.PaymentMethod,
		Items:         entity.TransactionItemsFromCart(lines),
		Notes:         inputs.Notes,
	})
	if err != nil {
		s.setState(enum.CheckoutFailed)
		return nil, err
	}

	s.setState(enum.CheckoutSucceeded)
	receipt := s.receipts.Render(id, snap.Total, inputs.PaymentMethod, lines)
	s.display.ShowOrder(id, lines, snap.Total, inputs.PaymentMethod)
	return receipt, nil
}

// NewTransaction resets the session for the next customer: clears the cart
// and inputs, closes the receipt view, and returns the customer display to
// the idle screen.
func (s *CheckoutService) NewTransaction() {
	s.cart.Clear()
	s.session.Reset()
	s.receipts.Clear()
	s.display.ShowIdle()
	s.setState(enum.CheckoutIdle)
}

// TodayTransactions fetches today's transaction history from the backend
// for the cashier's history view. The client keeps no history of its own.
func (s *CheckoutService) TodayTransactions(ctx context.Context) ([]entity.TransactionSummary, error) {
	return s.upstream.TodayTransactions(ctx)
}

package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"sync"
	"time"

	"github.com/muhammadwafiq/smartkasir-kasir-app/internal/domain/entity"
	"github.com/muhammadwafiq/smartkasir-kasir-app/internal/infrastructure/upstream"
)

// ScanPolicy makes the barcode debounce heuristic explicit and tunable per
// scanner hardware instead of burying magic numbers in the handler.
type ScanPolicy struct {
	// Terminator completes the scan when received (scanners usually send
	// a carriage return or newline after the code).
	Terminator rune
	// MaxBufferLength completes the scan once the buffer grows past it,
	// for scanners that send no terminator.
	MaxBufferLength int
	// InterCharTimeout flushes a stalled buffer; human typing is slower
	// than a scanner's burst, so a pause means the scan ended.
	InterCharTimeout time.Duration
}

// DefaultScanPolicy matches common USB HID scanner timing.
func DefaultScanPolicy() ScanPolicy {
	return ScanPolicy{
		Terminator:       '\n',
		MaxBufferLength:  5,
		InterCharTimeout: 100 * time.Millisecond,
	}
}

// BarcodeLookup is the slice of the upstream client the scanner needs.
type BarcodeLookup interface {
	ProductByBarcode(ctx context.Context, barcode string) (*entity.Product, error)
}

// ScannerService debounces raw scanner keystrokes into completed scans,
// resolves the product upstream, and adds it to the cart. Every outcome is
// reported through transient notifications; a failed scan never mutates
// the cart.
type ScannerService struct {
	policy   ScanPolicy
	lookup   BarcodeLookup
	cart     *CartService
	notifier *Notifier

	mu     sync.Mutex
	buffer []rune
	timer  *time.Timer
}

// NewScannerService creates a scanner handler with the given policy.
func NewScannerService(policy ScanPolicy, lookup BarcodeLookup, cart *CartService, notifier *Notifier) *ScannerService {
	return &ScannerService{
		policy:   policy,
		lookup:   lookup,
		cart:     cart,
		notifier: notifier,
	}
}

// Push feeds one keystroke into the scan buffer. The buffered input is
// treated as a completed scan when the terminator arrives or the buffer
// exceeds the policy length; a stalled buffer is flushed after the
// inter-character timeout. Returns true when a scan completed.
func (s *ScannerService) Push(ctx context.Context, ch rune) bool {
	s.mu.Lock()

	if ch == s.policy.Terminator {
		code := s.flushLocked()
		s.mu.Unlock()
		if code == "" {
			return false
		}
		s.Scan(ctx, code)
		return true
	}

	s.buffer = append(s.buffer, ch)
	if len(s.buffer) > s.policy.MaxBufferLength {
		code := s.flushLocked()
		s.mu.Unlock()
		s.Scan(ctx, code)
		return true
	}

	if s.timer != nil {
		s.timer.Stop()
	}
	s.timer = time.AfterFunc(s.policy.InterCharTimeout, s.flushStalled)
	s.mu.Unlock()
	return false
}

// flushStalled completes a scan whose input burst ended without a
// terminator and without reaching the length threshold.
func (s *ScannerService) flushStalled() {
	s.mu.Lock()
	code := s.flushLocked()
	s.mu.Unlock()

	if code != "" {
		s.Scan(context.Background(), code)
	}
}

// flushLocked empties the buffer and cancels the pending timer.
func (s *ScannerService) flushLocked() string {
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
	code := strings.TrimSpace(string(s.buffer))
	s.buffer = s.buffer[:0]
	return code
}

// Scan handles a completed barcode: backend lookup, stock check, add one
// unit to the cart. Lookup misses and empty stock surface as transient
// error notifications and leave the cart untouched.
func (s *ScannerService) Scan(ctx context.Context, code string) {
	code = strings.TrimSpace(code)
	if code == "" {
		return
	}

	product, err := s.lookup.ProductByBarcode(ctx, code)
	if err != nil {
		if errors.Is(err, upstream.ErrProductNotFound) {
			s.notifier.Error(fmt.Sprintf("Produk tidak ditemukan: %s", code))
			return
		}
		log.Printf("scanner: barcode lookup failed: %v", err)
		s.notifier.Error("Error saat scan barcode")
		return
	}

	if product.Stock <= 0 {
		s.notifier.Error(fmt.Sprintf("%s - Stok habis!", product.Name))
		return
	}

	if _, err := s.cart.AddItem(product.ID, 1); err != nil {
		log.Printf("scanner: add to cart failed for product %d: %v", product.ID, err)
		s.notifier.Error("Error saat scan barcode")
		return
	}

	s.notifier.Success(fmt.Sprintf("%s ditambahkan", product.Name))
}

package service

import (
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/muhammadwafiq/smartkasir-kasir-app/internal/domain/entity"
	"github.com/muhammadwafiq/smartkasir-kasir-app/internal/domain/enum"
)

var indonesianDays = [...]string{"Minggu", "Senin", "Selasa", "Rabu", "Kamis", "Jumat", "Sabtu"}

var indonesianMonths = [...]string{
	"Januari", "Februari", "Maret", "April", "Mei", "Juni",
	"Juli", "Agustus", "September", "Oktober", "November", "Desember",
}

// DisplayService drives the customer-facing display mirror. It holds the
// current display state (idle screen or order summary) and broadcasts every
// change to subscribers; the HTTP layer streams those to the secondary
// screen. Close releases every subscriber so no stream outlives the
// mirror's visible lifetime.
type DisplayService struct {
	now func() time.Time

	mu          sync.Mutex
	state       entity.DisplayState
	subscribers map[uuid.UUID]chan entity.DisplayState
}

// NewDisplayService creates a display mirror starting on the idle screen.
func NewDisplayService() *DisplayService {
	s := &DisplayService{
		now:         time.Now,
		subscribers: make(map[uuid.UUID]chan entity.DisplayState),
	}
	s.state = s.idleState()
	return s
}

func (s *DisplayService) idleState() entity.DisplayState {
	t := s.now()
	date := fmt.Sprintf("%s, %d %s %d",
		indonesianDays[t.Weekday()], t.Day(), indonesianMonths[t.Month()-1], t.Year())
	return entity.DisplayState{Mode: entity.DisplayIdle, Date: date}
}

// ShowIdle switches the mirror to the dated waiting screen.
func (s *DisplayService) ShowIdle() {
	s.broadcast(s.idleState())
}

// ShowOrder switches the mirror to an itemized summary of the completed
// order, with the payment method mapped to its customer-facing label.
func (s *DisplayService) ShowOrder(transactionID int64, lines []entity.CartLine, total int64, method enum.PaymentMethod) {
	items := make([]entity.DisplayItem, len(lines))
	for i, l := range lines {
		items[i] = entity.DisplayItem{Name: l.Name, Quantity: l.Quantity, LineTotal: l.Total()}
	}

	s.broadcast(entity.DisplayState{
		Mode:          entity.DisplayOrder,
		TransactionID: transactionID,
		Items:         items,
		Total:         total,
		MethodLabel:   method.DisplayLabel(),
	})
}

func (s *DisplayService) broadcast(state entity.DisplayState) {
	s.mu.Lock()
	s.state = state
	for _, ch := range s.subscribers {
		select {
		case ch <- state:
		default: // slow subscriber, drop rather than block the mutation
		}
	}
	s.mu.Unlock()
}

// State returns what the mirror currently shows.
func (s *DisplayService) State() entity.DisplayState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Subscribe registers a mirror surface and returns its update channel.
// The current state is delivered first so a new screen renders immediately.
func (s *DisplayService) Subscribe() (uuid.UUID, <-chan entity.DisplayState) {
	id := uuid.New()
	ch := make(chan entity.DisplayState, 8)

	s.mu.Lock()
	s.subscribers[id] = ch
	ch <- s.state
	s.mu.Unlock()

	return id, ch
}

// Unsubscribe releases a single mirror surface.
func (s *DisplayService) Unsubscribe(id uuid.UUID) {
	s.mu.Lock()
	if ch, ok := s.subscribers[id]; ok {
		delete(s.subscribers, id)
		close(ch)
	}
	s.mu.Unlock()
}

// Close releases every subscriber and returns the mirror to the idle
// screen. This is the cancellation trigger from the cashier's side.
func (s *DisplayService) Close() {
	s.mu.Lock()
	for id, ch := range s.subscribers {
		delete(s.subscribers, id)
		close(ch)
	}
	s.state = s.idleState()
	s.mu.Unlock()
}

// SubscriberCount reports how many mirror surfaces are attached.
func (s *DisplayService) SubscriberCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.subscribers)
}

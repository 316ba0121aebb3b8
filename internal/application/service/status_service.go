package service

import (
	"context"
	"sync"
	"time"
)

// StatusChecker is the slice of the upstream client the poller needs.
type StatusChecker interface {
	Status(ctx context.Context) (bool, error)
}

// StatusService polls the backend liveness endpoint on a fixed interval
// and keeps a binary online/offline indicator. Any transport failure
// counts as offline; there is no backoff and no retry budget, this is
// purely a heartbeat display.
type StatusService struct {
	upstream StatusChecker
	interval time.Duration

	mu          sync.RWMutex
	online      bool
	offlineMode bool
	done        chan struct{}
}

// NewStatusService creates a poller with the given interval.
func NewStatusService(upstream StatusChecker, interval time.Duration) *StatusService {
	return &StatusService{upstream: upstream, interval: interval}
}

// Start launches the polling loop. It checks once immediately, then on
// every tick until ctx is cancelled.
func (s *StatusService) Start(ctx context.Context) {
	s.done = make(chan struct{})
	go func() {
		defer close(s.done)

		s.Check(ctx)
		ticker := time.NewTicker(s.interval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				s.Check(ctx)
			}
		}
	}()
}

// Wait blocks until the polling loop has exited after cancellation.
func (s *StatusService) Wait() {
	if s.done != nil {
		<-s.done
	}
}

// Check performs one liveness probe and updates the indicator.
func (s *StatusService) Check(ctx context.Context) {
	online, err := s.upstream.Status(ctx)
	if err != nil {
		online = false
	}

	s.mu.Lock()
	s.online = online
	s.offlineMode = !online
	s.mu.Unlock()
}

// Online returns the current indicator value.
func (s *StatusService) Online() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.online
}

// OfflineMode reports whether the terminal considers itself offline. It is
// seeded by the /api/init bootstrap and then tracks the heartbeat.
func (s *StatusService) OfflineMode() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.offlineMode
}

// SetOfflineMode seeds the offline flag from the bootstrap response.
func (s *StatusService) SetOfflineMode(offline bool) {
	s.mu.Lock()
	s.offlineMode = offline
	s.online = !offline
	s.mu.Unlock()
}

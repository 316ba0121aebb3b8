package service

import (
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/muhammadwafiq/smartkasir-kasir-app/internal/domain/entity"
)

const (
	successNotificationTTL = 2 * time.Second
	errorNotificationTTL   = 3 * time.Second
)

// Notifier collects transient, non-blocking notifications (scanner results,
// stock warnings). Notifications auto-expire: success after 2s, error
// after 3s so stale toasts never linger on the cashier screen.
type Notifier struct {
	mu            sync.Mutex
	notifications map[uuid.UUID]entity.Notification
	now           func() time.Time
}

// NewNotifier creates an empty notification store.
func NewNotifier() *Notifier {
	return &Notifier{
		notifications: make(map[uuid.UUID]entity.Notification),
		now:           time.Now,
	}
}

// Success posts a transient success notification.
func (n *Notifier) Success(message string) {
	n.add(entity.NotificationSuccess, message, successNotificationTTL)
}

// Error posts a transient error notification.
func (n *Notifier) Error(message string) {
	n.add(entity.NotificationError, message, errorNotificationTTL)
}

func (n *Notifier) add(level entity.NotificationLevel, message string, ttl time.Duration) {
	now := n.now()
	notif := entity.Notification{
		ID:        uuid.New(),
		Level:     level,
		Message:   message,
		CreatedAt: now,
		ExpiresAt: now.Add(ttl),
	}

	n.mu.Lock()
	n.pruneLocked(now)
	n.notifications[notif.ID] = notif
	n.mu.Unlock()
}

// Active returns the not-yet-expired notifications, oldest first.
func (n *Notifier) Active() []entity.Notification {
	now := n.now()

	n.mu.Lock()
	n.pruneLocked(now)
	out := make([]entity.Notification, 0, len(n.notifications))
	for _, notif := range n.notifications {
		out = append(out, notif)
	}
	n.mu.Unlock()

	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	return out
}

func (n *Notifier) pruneLocked(now time.Time) {
	for id, notif := range n.notifications {
		if !notif.ExpiresAt.After(now) {
			delete(n.notifications, id)
		}
	}
}

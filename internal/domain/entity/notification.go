package entity

import (
	"time"

	"github.com/google/uuid"
)

// NotificationLevel distinguishes transient scanner notifications.
type NotificationLevel string

const (
	NotificationSuccess NotificationLevel = "success"
	NotificationError   NotificationLevel = "error"
)

// Notification is a transient, non-blocking message (scanner results,
// stock warnings). It auto-expires and is never persisted.
type Notification struct {
	ID        uuid.UUID         `json:"id"`
	Level     NotificationLevel `json:"level"`
	Message   string            `json:"message"`
	CreatedAt time.Time         `json:"created_at"`
	ExpiresAt time.Time         `json:"expires_at"`
}

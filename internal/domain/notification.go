package domain

import (
	"time"

	"github.com/google/uuid"
)

// Notification is an inbox message owned by exactly one recipient user.
type Notification struct {
	ID        uuid.UUID
	Content   string
	Read      bool
	CreatedAt time.Time
}

// NewNotification creates an unread notification with a fresh ID.
func NewNotification(content string) *Notification {
	return &Notification{
		ID:        uuid.New(),
		Content:   content,
		CreatedAt: time.Now().UTC(),
	}
}

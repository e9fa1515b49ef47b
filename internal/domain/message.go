package domain

import (
	"time"

	"github.com/google/uuid"
)

// Message is a chat line posted by a student inside a group.
type Message struct {
	ID        uuid.UUID
	Content   string
	CreatedAt time.Time
	Sender    *User
}

// NewMessage creates a message from the given sender.
func NewMessage(content string, sender *User) *Message {
	return &Message{
		ID:        uuid.New(),
		Content:   content,
		CreatedAt: time.Now().UTC(),
		Sender:    sender,
	}
}

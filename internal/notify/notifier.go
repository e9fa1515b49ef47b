// Package notify delivers notifications to user inboxes as a side effect
// of engine actions. Delivery is fire-and-forget: it never blocks and
// never fails observably, so a failed notification can never abort the
// operation that triggered it.
package notify

import (
	"log/slog"

	"github.com/cuiconnect/cuiconnect/internal/domain"
	"github.com/google/uuid"
)

// Notifier appends notifications to user inboxes.
type Notifier struct {
	logger *slog.Logger
}

// New creates a Notifier.
func New(logger *slog.Logger) *Notifier {
	return &Notifier{
		logger: logger.With("component", "notifier"),
	}
}

// Send appends an unread notification to the recipient's inbox. A nil
// recipient is logged and dropped rather than surfaced as an error.
func (n *Notifier) Send(recipient *domain.User, content string) {
	if recipient == nil {
		n.logger.Warn("dropping notification with no recipient", "content", content)
		return
	}
	recipient.Inbox = append(recipient.Inbox, domain.NewNotification(content))
	n.logger.Debug("notification delivered",
		"recipient_id", recipient.ID,
		"content", content)
}

// MarkRead flips the read flag of the notification with the given ID.
// Silent no-op if the ID is not in the user's inbox.
func (n *Notifier) MarkRead(u *domain.User, id uuid.UUID) {
	for _, notif := range u.Inbox {
		if notif.ID == id {
			notif.Read = true
			return
		}
	}
}

// MarkAllRead marks every notification in the user's inbox as read.
func (n *Notifier) MarkAllRead(u *domain.User) {
	for _, notif := range u.Inbox {
		notif.Read = true
	}
}

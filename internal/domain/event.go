package domain

import (
	"time"

	"github.com/google/uuid"
)

// Event is a dated happening students can RSVP to. Organizer is a free
// label (a society name or a department), not a user reference.
type Event struct {
	ID          uuid.UUID
	Title       string
	Description string
	Date        time.Time
	Venue       string
	Organizer   string
	Attendees   []*User
}

// NewEvent creates an event with no attendees.
func NewEvent(title, description string, date time.Time, venue, organizer string) (*Event, error) {
	if title == "" {
		return nil, ErrEmptyEventTitle
	}
	return &Event{
		ID:          uuid.New(),
		Title:       title,
		Description: description,
		Date:        date,
		Venue:       venue,
		Organizer:   organizer,
	}, nil
}

// HasAttendee reports whether the student is registered for the event.
func (e *Event) HasAttendee(student *User) bool {
	for _, a := range e.Attendees {
		if a == student {
			return true
		}
	}
	return false
}

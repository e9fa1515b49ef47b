package domain

import (
	"time"

	"github.com/google/uuid"
)

// AnnouncementType classifies an announcement.
type AnnouncementType string

const (
	AnnouncementEvent      AnnouncementType = "EVENT"
	AnnouncementGeneral    AnnouncementType = "GENERAL"
	AnnouncementDepartment AnnouncementType = "DEPARTMENT"
	AnnouncementUrgent     AnnouncementType = "URGENT"
)

// Announcement is a post attached to a society (or broadcast to a
// department). An event announcement may reference the related event.
type Announcement struct {
	ID        uuid.UUID
	Type      AnnouncementType
	Title     string
	Content   string
	CreatedBy string // user ID of the author
	CreatedAt time.Time
	Published bool
	Event     *Event // set only for AnnouncementEvent
}

// NewAnnouncement creates an unpublished announcement.
func NewAnnouncement(typ AnnouncementType, title, content, createdBy string) *Announcement {
	return &Announcement{
		ID:        uuid.New(),
		Type:      typ,
		Title:     title,
		Content:   content,
		CreatedBy: createdBy,
		CreatedAt: time.Now().UTC(),
	}
}

// Publish marks the announcement as published.
func (a *Announcement) Publish() { a.Published = true }

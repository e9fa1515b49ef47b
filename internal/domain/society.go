package domain

import "github.com/google/uuid"

// Society is an admin-owned collective with a two-stage membership
// lifecycle: students apply, then the admin approves or rejects. A student
// is never in Members and PendingRequests at the same time.
type Society struct {
	ID          uuid.UUID
	Name        string // unique, case-insensitive
	Description string
	Category    string
	Admin       *User // role SocietyAdmin
	Members     []*User
	// PendingRequests holds join applications awaiting admin action,
	// in arrival order.
	PendingRequests []*User
	Events          []*Event
	Announcements   []*Announcement
}

// NewSociety creates a society owned by the given admin.
// Returns an error if the name is empty or the admin lacks the
// SocietyAdmin role.
func NewSociety(name, description, category string, admin *User) (*Society, error) {
	if name == "" {
		return nil, ErrEmptySocietyName
	}
	if admin == nil || admin.SocietyAdmin == nil {
		return nil, ErrNotSocietyAdmin
	}
	return &Society{
		ID:          uuid.New(),
		Name:        name,
		Description: description,
		Category:    category,
		Admin:       admin,
	}, nil
}

// HasMember reports whether the student is an approved member.
func (s *Society) HasMember(student *User) bool {
	for _, m := range s.Members {
		if m == student {
			return true
		}
	}
	return false
}

// HasPending reports whether the student has an open join request.
func (s *Society) HasPending(student *User) bool {
	for _, p := range s.PendingRequests {
		if p == student {
			return true
		}
	}
	return false
}

// RemovePending removes the student from the pending list and reports
// whether a removal occurred.
func (s *Society) RemovePending(student *User) bool {
	for i, p := range s.PendingRequests {
		if p == student {
			s.PendingRequests = append(s.PendingRequests[:i], s.PendingRequests[i+1:]...)
			return true
		}
	}
	return false
}

// RemoveMember removes the student from the member list and reports
// whether a removal occurred.
func (s *Society) RemoveMember(student *User) bool {
	for i, m := range s.Members {
		if m == student {
			s.Members = append(s.Members[:i], s.Members[i+1:]...)
			return true
		}
	}
	return false
}

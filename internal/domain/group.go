package domain

import "github.com/google/uuid"

// Group is a study group with immediate membership: there is no pending
// stage and no owner role. The creator becomes the first member.
type Group struct {
	ID          uuid.UUID
	Name        string // unique, case-insensitive
	Description string
	Category    string
	Members     []*User
	Messages    []*Message
}

// NewGroup creates a group with the creator as its first member.
func NewGroup(name, description, category string, creator *User) (*Group, error) {
	if name == "" {
		return nil, ErrEmptyGroupName
	}
	if creator == nil || creator.Student == nil {
		return nil, ErrNotStudent
	}
	return &Group{
		ID:          uuid.New(),
		Name:        name,
		Description: description,
		Category:    category,
		Members:     []*User{creator},
	}, nil
}

// HasMember reports whether the student is a member of the group.
func (g *Group) HasMember(student *User) bool {
	for _, m := range g.Members {
		if m == student {
			return true
		}
	}
	return false
}

// RemoveMember removes the student from the member list and reports
// whether a removal occurred.
func (g *Group) RemoveMember(student *User) bool {
	for i, m := range g.Members {
		if m == student {
			g.Members = append(g.Members[:i], g.Members[i+1:]...)
			return true
		}
	}
	return false
}

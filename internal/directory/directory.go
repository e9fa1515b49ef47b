// Package directory provides the in-memory registry of all entities for a
// session. It is the single source of truth while the process runs; the
// persistence store rebuilds its user table from it on every save.
package directory

import (
	"strings"

	"github.com/cuiconnect/cuiconnect/internal/domain"
)

// Directory holds the canonical collections of users, societies, groups,
// and events. Adds are append-only; no top-level entity is ever removed
// in-session. Lookups are linear scans returning the first match in
// insertion order, which is the tie-break rule should duplicates somehow
// exist. Uniqueness (email for users, name for societies and groups) is
// enforced by the caller, not here.
type Directory struct {
	users     []*domain.User
	societies []*domain.Society
	groups    []*domain.Group
	events    []*domain.Event
}

// New creates an empty directory.
func New() *Directory {
	return &Directory{}
}

// AddUser appends a user. The caller must have already checked email
// uniqueness.
func (d *Directory) AddUser(u *domain.User) {
	d.users = append(d.users, u)
}

// AddSociety appends a society. The caller must have already checked name
// uniqueness.
func (d *Directory) AddSociety(s *domain.Society) {
	d.societies = append(d.societies, s)
}

// AddGroup appends a group. The caller must have already checked name
// uniqueness.
func (d *Directory) AddGroup(g *domain.Group) {
	d.groups = append(d.groups, g)
}

// AddEvent appends an event.
func (d *Directory) AddEvent(e *domain.Event) {
	d.events = append(d.events, e)
}

// Users returns all users in insertion order.
func (d *Directory) Users() []*domain.User { return d.users }

// Societies returns all societies in insertion order.
func (d *Directory) Societies() []*domain.Society { return d.societies }

// Groups returns all groups in insertion order.
func (d *Directory) Groups() []*domain.Group { return d.groups }

// Events returns all events in insertion order.
func (d *Directory) Events() []*domain.Event { return d.events }

// Students returns the users with the Student role, in insertion order.
func (d *Directory) Students() []*domain.User {
	var students []*domain.User
	for _, u := range d.users {
		if u.Role == domain.RoleStudent {
			students = append(students, u)
		}
	}
	return students
}

// FindUserByEmail returns the first user whose email matches
// case-insensitively, or nil.
func (d *Directory) FindUserByEmail(email string) *domain.User {
	for _, u := range d.users {
		if strings.EqualFold(u.Email, email) {
			return u
		}
	}
	return nil
}

// FindUserByID returns the first user with the given ID, or nil.
func (d *Directory) FindUserByID(id string) *domain.User {
	for _, u := range d.users {
		if u.ID == id {
			return u
		}
	}
	return nil
}

// FindSocietyByName returns the first society whose name matches
// case-insensitively, or nil.
func (d *Directory) FindSocietyByName(name string) *domain.Society {
	for _, s := range d.societies {
		if strings.EqualFold(s.Name, name) {
			return s
		}
	}
	return nil
}

// FindGroupByName returns the first group whose name matches
// case-insensitively, or nil.
func (d *Directory) FindGroupByName(name string) *domain.Group {
	for _, g := range d.groups {
		if strings.EqualFold(g.Name, name) {
			return g
		}
	}
	return nil
}

// ActiveUserCount returns the number of users with the active flag set.
func (d *Directory) ActiveUserCount() int {
	count := 0
	for _, u := range d.users {
		if u.Active {
			count++
		}
	}
	return count
}

// ReplaceUsers swaps the entire user collection. Only the persistence
// store's destructive reload uses this; everything else goes through
// AddUser.
func (d *Directory) ReplaceUsers(users []*domain.User) {
	d.users = users
}

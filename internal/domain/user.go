package domain

import (
	"strings"
	"time"
)

// Role identifies the kind of user. The string values double as the role
// tags of the persisted record format, so they must not change.
type Role string

const (
	RoleStudent       Role = "STUDENT"
	RoleSocietyAdmin  Role = "SOCIETY_ADMIN"
	RoleDepartmentRep Role = "DEPARTMENT_REP"
	RoleSystemAdmin   Role = "SYSTEM_ADMIN"
)

// Valid reports whether r is one of the four known roles.
func (r Role) Valid() bool {
	switch r {
	case RoleStudent, RoleSocietyAdmin, RoleDepartmentRep, RoleSystemAdmin:
		return true
	}
	return false
}

// User represents a registered user of any role. Instead of a class
// hierarchy, the role-specific state lives in at most one non-nil payload
// pointer; callers dispatch on Role. A SystemAdmin carries no payload.
type User struct {
	ID           string // opaque, caller-supplied (e.g. "FA20-BCS-001")
	Role         Role
	Name         string
	Email        string // unique across all users, case-insensitive
	Password     string // plaintext by design; equality check only
	Active       bool
	RegisteredAt time.Time
	Inbox        []*Notification

	Student       *StudentProfile
	SocietyAdmin  *SocietyAdminProfile
	DepartmentRep *DepartmentRepProfile
}

// StudentProfile holds the state specific to the Student role.
type StudentProfile struct {
	Department string
	Semester   int
	Skills     []string // lowercase-normalized, no duplicates
	// Relationship lists. Membership in a society is mirrored here after
	// approval; group and event lists are maintained by the membership
	// engine.
	JoinedSocieties []*Society
	JoinedGroups    []*Group
	EventRSVPs      []*Event
}

// SocietyAdminProfile holds the societies a SocietyAdmin administers.
type SocietyAdminProfile struct {
	ManagedSocieties []*Society
}

// DepartmentRepProfile holds the department a representative speaks for.
type DepartmentRepProfile struct {
	Department string
}

// NewStudent creates a Student user. Skills are normalized and
// deduplicated via AddSkill. Returns an error if validation fails.
func NewStudent(id, name, email, password, department string, semester int) (*User, error) {
	u := newUser(id, RoleStudent, name, email, password)
	u.Student = &StudentProfile{
		Department: department,
		Semester:   semester,
	}
	if err := u.Validate(); err != nil {
		return nil, err
	}
	return u, nil
}

// NewSocietyAdmin creates a SocietyAdmin user.
func NewSocietyAdmin(id, name, email, password string) (*User, error) {
	u := newUser(id, RoleSocietyAdmin, name, email, password)
	u.SocietyAdmin = &SocietyAdminProfile{}
	if err := u.Validate(); err != nil {
		return nil, err
	}
	return u, nil
}

// NewDepartmentRep creates a DepartmentRep user.
func NewDepartmentRep(id, name, email, password, department string) (*User, error) {
	u := newUser(id, RoleDepartmentRep, name, email, password)
	u.DepartmentRep = &DepartmentRepProfile{Department: department}
	if err := u.Validate(); err != nil {
		return nil, err
	}
	return u, nil
}

// NewSystemAdmin creates a SystemAdmin user.
func NewSystemAdmin(id, name, email, password string) (*User, error) {
	u := newUser(id, RoleSystemAdmin, name, email, password)
	if err := u.Validate(); err != nil {
		return nil, err
	}
	return u, nil
}

func newUser(id string, role Role, name, email, password string) *User {
	return &User{
		ID:           id,
		Role:         role,
		Name:         name,
		Email:        email,
		Password:     password,
		Active:       true,
		RegisteredAt: time.Now().UTC(),
	}
}

// Validate checks if the User has valid data.
// Returns an error if any field fails validation.
func (u *User) Validate() error {
	if u.ID == "" {
		return ErrEmptyUserID
	}
	if u.Name == "" {
		return ErrEmptyName
	}
	if u.Email == "" {
		return ErrEmptyEmail
	}
	if u.Password == "" {
		return ErrEmptyPassword
	}
	switch u.Role {
	case RoleStudent:
		if u.Student == nil {
			return ErrNotStudent
		}
		if u.Student.Department == "" {
			return ErrEmptyDepartment
		}
		if u.Student.Semester < 1 || u.Student.Semester > 12 {
			return ErrInvalidSemester
		}
	case RoleDepartmentRep:
		if u.DepartmentRep == nil {
			return ErrNotDepartmentRep
		}
		if u.DepartmentRep.Department == "" {
			return ErrEmptyDepartment
		}
	case RoleSocietyAdmin:
		if u.SocietyAdmin == nil {
			return ErrNotSocietyAdmin
		}
	}
	return nil
}

// AddSkill normalizes the skill (trimmed, lowercase) and appends it to the
// student's skill set unless already present. Empty input is ignored.
// No-op for non-student users.
func (u *User) AddSkill(skill string) {
	if u.Student == nil {
		return
	}
	cleaned := strings.ToLower(strings.TrimSpace(skill))
	if cleaned == "" {
		return
	}
	for _, s := range u.Student.Skills {
		if s == cleaned {
			return
		}
	}
	u.Student.Skills = append(u.Student.Skills, cleaned)
}

// HasSkill reports whether the student has the given skill
// (case-insensitive). Always false for non-student users.
func (u *User) HasSkill(skill string) bool {
	if u.Student == nil {
		return false
	}
	key := strings.ToLower(strings.TrimSpace(skill))
	for _, s := range u.Student.Skills {
		if s == key {
			return true
		}
	}
	return false
}

// UnreadNotifications returns the unread subset of the inbox in order.
func (u *User) UnreadNotifications() []*Notification {
	var unread []*Notification
	for _, n := range u.Inbox {
		if !n.Read {
			unread = append(unread, n)
		}
	}
	return unread
}

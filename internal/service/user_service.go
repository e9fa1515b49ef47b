package service

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/cuiconnect/cuiconnect/internal/auditlog"
	"github.com/cuiconnect/cuiconnect/internal/directory"
	"github.com/cuiconnect/cuiconnect/internal/domain"
	"github.com/cuiconnect/cuiconnect/internal/store"
	"github.com/go-playground/validator/v10"
)

// UserService handles registration of all four roles, authentication, and
// account status changes. Every successful registration and status toggle
// is persisted immediately via the user table.
type UserService struct {
	dir      *directory.Directory
	table    store.UserTable
	audit    *auditlog.Log
	logger   *slog.Logger
	validate *validator.Validate
}

// NewUserService creates a UserService.
func NewUserService(dir *directory.Directory, table store.UserTable, audit *auditlog.Log, logger *slog.Logger) *UserService {
	return &UserService{
		dir:      dir,
		table:    table,
		audit:    audit,
		logger:   logger.With("component", "user_service"),
		validate: validator.New(),
	}
}

// RegisterStudent registers a new Student. Skills are normalized and
// deduplicated. Returns store.ErrEmailExists if the email is already
// taken by any user of any role (case-insensitive).
func (s *UserService) RegisterStudent(id, name, email, password, department string, semester int, skills []string) (*domain.User, error) {
	if err := s.checkEmail(email); err != nil {
		return nil, err
	}
	u, err := domain.NewStudent(id, name, email, password, department, semester)
	if err != nil {
		return nil, fmt.Errorf("failed to register student: %w", err)
	}
	for _, skill := range skills {
		u.AddSkill(skill)
	}
	s.admit(u)
	return u, nil
}

// RegisterSocietyAdmin registers a new SocietyAdmin.
func (s *UserService) RegisterSocietyAdmin(id, name, email, password string) (*domain.User, error) {
	if err := s.checkEmail(email); err != nil {
		return nil, err
	}
	u, err := domain.NewSocietyAdmin(id, name, email, password)
	if err != nil {
		return nil, fmt.Errorf("failed to register society admin: %w", err)
	}
	s.admit(u)
	return u, nil
}

// RegisterDepartmentRep registers a new DepartmentRep.
func (s *UserService) RegisterDepartmentRep(id, name, email, password, department string) (*domain.User, error) {
	if err := s.checkEmail(email); err != nil {
		return nil, err
	}
	u, err := domain.NewDepartmentRep(id, name, email, password, department)
	if err != nil {
		return nil, fmt.Errorf("failed to register department rep: %w", err)
	}
	s.admit(u)
	return u, nil
}

// RegisterSystemAdmin registers a new SystemAdmin.
func (s *UserService) RegisterSystemAdmin(id, name, email, password string) (*domain.User, error) {
	if err := s.checkEmail(email); err != nil {
		return nil, err
	}
	u, err := domain.NewSystemAdmin(id, name, email, password)
	if err != nil {
		return nil, fmt.Errorf("failed to register system admin: %w", err)
	}
	s.admit(u)
	return u, nil
}

// Authenticate returns the active user matching the email
// (case-insensitive) and password (exact). Returns ErrAccountInactive if
// the credentials match a deactivated account, ErrInvalidCredentials
// otherwise.
func (s *UserService) Authenticate(email, password string) (*domain.User, error) {
	for _, u := range s.dir.Users() {
		if strings.EqualFold(u.Email, email) && u.Password == password {
			if !u.Active {
				s.logger.Debug("login attempt on deactivated account", "email", email)
				return nil, ErrAccountInactive
			}
			s.logger.Info("login success", "user_id", u.ID, "role", u.Role)
			s.audit.Record(fmt.Sprintf("Login success: %s (%s)", u.Name, u.Role))
			return u, nil
		}
	}
	s.logger.Debug("login failed", "email", email)
	s.audit.Record("Login failed for email: " + email)
	return nil, ErrInvalidCredentials
}

// SetUserActive sets the active flag of the user with the given ID and
// persists the change. Returns store.ErrUserNotFound if no such user.
func (s *UserService) SetUserActive(userID string, active bool) error {
	u := s.dir.FindUserByID(userID)
	if u == nil {
		return store.ErrUserNotFound
	}
	u.Active = active
	s.persist()
	status := "INACTIVE"
	if active {
		status = "ACTIVE"
	}
	s.logger.Info("user status changed", "user_id", u.ID, "status", status)
	s.audit.Record(fmt.Sprintf("Toggled status for %s to %s", u.Name, status))
	return nil
}

// checkEmail validates the format and directory-wide uniqueness of a
// registration email.
func (s *UserService) checkEmail(email string) error {
	if err := s.validate.Var(email, "required,email"); err != nil {
		return fmt.Errorf("%w: %q", domain.ErrInvalidEmail, email)
	}
	if s.dir.FindUserByEmail(email) != nil {
		return store.ErrEmailExists
	}
	return nil
}

// admit adds the validated user to the directory and persists the table.
func (s *UserService) admit(u *domain.User) {
	s.dir.AddUser(u)
	s.persist()
	s.logger.Info("user registered", "user_id", u.ID, "role", u.Role, "email", u.Email)
	s.audit.Record(fmt.Sprintf("%s registered: %s (%s)", u.Role, u.Name, u.Email))
}

// persist saves the user table, degrading to a logged warning on I/O
// failure; the in-memory state stays authoritative for the session.
func (s *UserService) persist() {
	if err := s.table.Save(s.dir); err != nil {
		s.logger.Warn("user table save failed, continuing with in-memory state", "error", err)
	}
}

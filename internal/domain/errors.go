package domain

import "errors"

// Common validation errors
var (
	ErrEmptyUserID      = errors.New("user ID cannot be empty")
	ErrEmptyName        = errors.New("name cannot be empty")
	ErrEmptyEmail       = errors.New("email cannot be empty")
	ErrInvalidEmail     = errors.New("invalid email format")
	ErrEmptyPassword    = errors.New("password cannot be empty")
	ErrEmptyDepartment  = errors.New("department cannot be empty")
	ErrInvalidSemester  = errors.New("semester must be between 1 and 12")
	ErrEmptySocietyName = errors.New("society name cannot be empty")
	ErrEmptyGroupName   = errors.New("group name cannot be empty")
	ErrEmptyEventTitle  = errors.New("event title cannot be empty")
	ErrNotStudent       = errors.New("user is not a student")
	ErrNotSocietyAdmin  = errors.New("user is not a society admin")
	ErrNotDepartmentRep = errors.New("user is not a department representative")
)

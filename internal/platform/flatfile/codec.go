package flatfile

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/cuiconnect/cuiconnect/internal/domain"
)

// Record layouts, role tag first:
//
//	STUDENT|id|name|email|password|active|department|semester|skill1,skill2,...
//	SOCIETY_ADMIN|id|name|email|password|active
//	DEPARTMENT_REP|id|name|email|password|active|department
//	SYSTEM_ADMIN|id|name|email|password|active
//
// Every field value is escaped: `\` -> `\\`, `|` -> `\|`, and newlines are
// collapsed to a single space. The newline collapse is deliberately lossy;
// multi-line content does not round-trip.

// Codec errors. Callers skip the offending line and keep loading.
var (
	ErrShortRecord = errors.New("record has too few fields")
	ErrUnknownRole = errors.New("unknown role tag")
	ErrBadRecord   = errors.New("malformed record")
)

const (
	minFields     = 6 // role, id, name, email, password, active
	studentFields = 9
	deptRepFields = 7
)

// escapeField makes a field value safe to embed in a pipe-delimited line.
func escapeField(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, "|", `\|`)
	return strings.ReplaceAll(s, "\n", " ")
}

// splitRecord splits a line on unescaped pipes, unescaping each field in
// the same pass (`\|` -> `|` first, then `\\` -> `\`, so a literal
// backslash can never be mistaken for the start of an escape).
func splitRecord(line string) []string {
	var fields []string
	var b strings.Builder
	escaped := false
	for _, r := range line {
		if escaped {
			switch r {
			case '|', '\\':
				b.WriteRune(r)
			default:
				// Stray escape: keep both characters verbatim.
				b.WriteRune('\\')
				b.WriteRune(r)
			}
			escaped = false
			continue
		}
		switch r {
		case '\\':
			escaped = true
		case '|':
			fields = append(fields, b.String())
			b.Reset()
		default:
			b.WriteRune(r)
		}
	}
	if escaped {
		b.WriteRune('\\')
	}
	return append(fields, b.String())
}

// EncodeUser converts one user of any role to a single record line
// (without trailing newline).
func EncodeUser(u *domain.User) (string, error) {
	common := []string{
		string(u.Role),
		escapeField(u.ID),
		escapeField(u.Name),
		escapeField(u.Email),
		escapeField(u.Password),
		strconv.FormatBool(u.Active),
	}

	switch u.Role {
	case domain.RoleStudent:
		if u.Student == nil {
			return "", fmt.Errorf("%w: student record without student profile", ErrBadRecord)
		}
		fields := append(common,
			escapeField(u.Student.Department),
			strconv.Itoa(u.Student.Semester),
			escapeField(strings.Join(u.Student.Skills, ",")),
		)
		return strings.Join(fields, "|"), nil
	case domain.RoleDepartmentRep:
		if u.DepartmentRep == nil {
			return "", fmt.Errorf("%w: department rep record without profile", ErrBadRecord)
		}
		return strings.Join(append(common, escapeField(u.DepartmentRep.Department)), "|"), nil
	case domain.RoleSocietyAdmin, domain.RoleSystemAdmin:
		return strings.Join(common, "|"), nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownRole, u.Role)
	}
}

// DecodeUser parses one record line back into a user. Lines beginning
// with '#' are comments; the caller is expected to skip them before
// calling. Malformed records (short field counts, bad semester numbers,
// unknown roles) return an error so the caller can skip the line without
// aborting the load.
func DecodeUser(line string) (*domain.User, error) {
	fields := splitRecord(line)
	if len(fields) < minFields {
		return nil, fmt.Errorf("%w: got %d", ErrShortRecord, len(fields))
	}

	role := domain.Role(strings.TrimSpace(fields[0]))
	id := fields[1]
	name := fields[2]
	email := fields[3]
	password := fields[4]
	// Mirrors the permissive boolean parse of the original table format:
	// anything but "true" deactivates the account.
	active := fields[5] == "true"

	var u *domain.User
	var err error
	switch role {
	case domain.RoleStudent:
		if len(fields) < studentFields {
			return nil, fmt.Errorf("%w: student record needs %d fields, got %d",
				ErrShortRecord, studentFields, len(fields))
		}
		semester, convErr := strconv.Atoi(strings.TrimSpace(fields[7]))
		if convErr != nil {
			return nil, fmt.Errorf("%w: semester %q: %v", ErrBadRecord, fields[7], convErr)
		}
		u, err = domain.NewStudent(id, name, email, password, fields[6], semester)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrBadRecord, err)
		}
		if csv := strings.TrimSpace(fields[8]); csv != "" {
			for _, skill := range strings.Split(csv, ",") {
				u.AddSkill(skill)
			}
		}
	case domain.RoleSocietyAdmin:
		u, err = domain.NewSocietyAdmin(id, name, email, password)
	case domain.RoleDepartmentRep:
		if len(fields) < deptRepFields {
			return nil, fmt.Errorf("%w: department rep record needs %d fields, got %d",
				ErrShortRecord, deptRepFields, len(fields))
		}
		u, err = domain.NewDepartmentRep(id, name, email, password, fields[6])
	case domain.RoleSystemAdmin:
		u, err = domain.NewSystemAdmin(id, name, email, password)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownRole, role)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadRecord, err)
	}

	u.Active = active
	return u, nil
}

package flatfile

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/cuiconnect/cuiconnect/internal/directory"
	"github.com/cuiconnect/cuiconnect/internal/domain"
	"github.com/cuiconnect/cuiconnect/internal/store"
)

// header is the comment line written at the top of every saved table.
const header = "# CUICONNECT USERS DB"

// UserTable is the flat-file implementation of store.UserTable.
type UserTable struct {
	path   string
	logger *slog.Logger
}

// Ensure UserTable implements store.UserTable.
var _ store.UserTable = (*UserTable)(nil)

// NewUserTable creates a user table backed by the file at path. The file
// need not exist yet; it is created on first save.
func NewUserTable(path string, logger *slog.Logger) *UserTable {
	return &UserTable{
		path:   path,
		logger: logger.With("component", "user_table", "path", path),
	}
}

// Save serializes every user in the directory and overwrites the table
// file in full. Users that fail to encode are logged and skipped so one
// bad record cannot block persistence of the rest.
func (t *UserTable) Save(dir *directory.Directory) error {
	var b strings.Builder
	b.WriteString(header)
	b.WriteByte('\n')

	for _, u := range dir.Users() {
		line, err := EncodeUser(u)
		if err != nil {
			t.logger.Warn("skipping unencodable user", "user_id", u.ID, "error", err)
			continue
		}
		b.WriteString(line)
		b.WriteByte('\n')
	}

	if err := os.WriteFile(t.path, []byte(b.String()), 0o644); err != nil {
		return fmt.Errorf("failed to write user table: %w", err)
	}

	t.logger.Debug("user table saved", "users", len(dir.Users()))
	return nil
}

// Load reads the table file and replaces the directory's user collection
// with the decoded records. An absent or empty file leaves the directory
// untouched. Comment lines and individually malformed records are
// skipped; a corrupt line never prevents loading the remaining valid
// lines.
func (t *UserTable) Load(dir *directory.Directory) error {
	data, err := os.ReadFile(t.path)
	if err != nil {
		if os.IsNotExist(err) {
			t.logger.Debug("user table absent, nothing to load")
			return nil
		}
		return fmt.Errorf("failed to read user table: %w", err)
	}

	var users []*domain.User
	records := 0
	for _, raw := range strings.Split(string(data), "\n") {
		line := strings.TrimSpace(raw)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		records++
		u, err := DecodeUser(line)
		if err != nil {
			t.logger.Warn("skipping malformed record", "error", err)
			continue
		}
		users = append(users, u)
	}

	// An empty table (no record lines at all) must not clear the
	// directory; a failed load degrades to "nothing changed".
	if records == 0 {
		t.logger.Debug("user table empty, directory unchanged")
		return nil
	}

	dir.ReplaceUsers(users)
	t.logger.Info("user table loaded", "users", len(users), "skipped", records-len(users))
	return nil
}

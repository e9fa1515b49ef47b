package flatfile

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cuiconnect/cuiconnect/internal/directory"
	"github.com/cuiconnect/cuiconnect/internal/domain"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testTablePath(t *testing.T) string {
	t.Helper()
	return filepath.Join(t.TempDir(), "users.txt")
}

func addStudent(t *testing.T, dir *directory.Directory, id, name, email string) *domain.User {
	t.Helper()
	u, err := domain.NewStudent(id, name, email, "pass", "CS", 5)
	require.NoError(t, err)
	dir.AddUser(u)
	return u
}

func TestSaveWritesHeaderAndRecords(t *testing.T) {
	path := testTablePath(t)
	table := NewUserTable(path, testLogger())
	dir := directory.New()
	addStudent(t, dir, "FA20-BCS-001", "Ali Khan", "ali@test.com")

	require.NoError(t, table.Save(dir))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimRight(string(data), "\n"), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "# CUICONNECT USERS DB", lines[0])
	assert.True(t, strings.HasPrefix(lines[1], "STUDENT|FA20-BCS-001|"))
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := testTablePath(t)
	table := NewUserTable(path, testLogger())

	dir := directory.New()
	ali := addStudent(t, dir, "FA20-BCS-001", "Ali|Khan", "ali@test.com")
	ali.AddSkill("Java")
	rep, err := domain.NewDepartmentRep("DR001", "Dr. Sana", "sana@test.com", "dept123", "Computer Science")
	require.NoError(t, err)
	rep.Active = false
	dir.AddUser(rep)

	require.NoError(t, table.Save(dir))

	reloaded := directory.New()
	require.NoError(t, table.Load(reloaded))
	require.Len(t, reloaded.Users(), 2)

	got := reloaded.FindUserByEmail("ali@test.com")
	require.NotNil(t, got)
	assert.Equal(t, "Ali|Khan", got.Name)
	assert.True(t, got.HasSkill("java"))

	gotRep := reloaded.FindUserByEmail("sana@test.com")
	require.NotNil(t, gotRep)
	assert.False(t, gotRep.Active)
	require.NotNil(t, gotRep.DepartmentRep)
	assert.Equal(t, "Computer Science", gotRep.DepartmentRep.Department)
}

func TestLoadSkipsMalformedLines(t *testing.T) {
	path := testTablePath(t)
	content := strings.Join([]string{
		"# CUICONNECT USERS DB",
		"STUDENT|FA20-BCS-001|Ali|ali@test.com|pass|true|CS|5|java",
		"THIS IS NOT A RECORD",
		"SOCIETY_ADMIN|SA001|Dr. Farhan|farhan@test.com|admin123|true",
		"",
	}, "\n")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	dir := directory.New()
	table := NewUserTable(path, testLogger())
	require.NoError(t, table.Load(dir))

	require.Len(t, dir.Users(), 2)
	assert.NotNil(t, dir.FindUserByEmail("ali@test.com"))
	assert.NotNil(t, dir.FindUserByEmail("farhan@test.com"))
}

func TestLoadAbsentFile(t *testing.T) {
	table := NewUserTable(testTablePath(t), testLogger())
	dir := directory.New()
	addStudent(t, dir, "FA20-BCS-001", "Ali", "ali@test.com")

	require.NoError(t, table.Load(dir))
	assert.Len(t, dir.Users(), 1, "absent file must leave the directory untouched")
}

func TestLoadEmptyTableKeepsDirectory(t *testing.T) {
	path := testTablePath(t)
	require.NoError(t, os.WriteFile(path, []byte("# CUICONNECT USERS DB\n\n"), 0o644))

	dir := directory.New()
	addStudent(t, dir, "FA20-BCS-001", "Ali", "ali@test.com")

	table := NewUserTable(path, testLogger())
	require.NoError(t, table.Load(dir))
	assert.Len(t, dir.Users(), 1, "a table with no records must not clear the directory")
}

func TestLoadReplacesExistingUsers(t *testing.T) {
	path := testTablePath(t)
	require.NoError(t, os.WriteFile(path,
		[]byte("SYSTEM_ADMIN|SYS001|Admin|admin@test.com|pass|true\n"), 0o644))

	dir := directory.New()
	addStudent(t, dir, "FA20-BCS-001", "Ali", "ali@test.com")

	table := NewUserTable(path, testLogger())
	require.NoError(t, table.Load(dir))

	require.Len(t, dir.Users(), 1)
	assert.Nil(t, dir.FindUserByEmail("ali@test.com"))
	assert.NotNil(t, dir.FindUserByEmail("admin@test.com"))
}

func TestSaveOverwritesPreviousTable(t *testing.T) {
	path := testTablePath(t)
	table := NewUserTable(path, testLogger())

	dir := directory.New()
	addStudent(t, dir, "FA20-BCS-001", "Ali", "ali@test.com")
	addStudent(t, dir, "FA20-BCS-002", "Sara", "sara@test.com")
	require.NoError(t, table.Save(dir))

	smaller := directory.New()
	addStudent(t, smaller, "FA20-BCS-003", "Zain", "zain@test.com")
	require.NoError(t, table.Save(smaller))

	reloaded := directory.New()
	require.NoError(t, table.Load(reloaded))
	require.Len(t, reloaded.Users(), 1)
	assert.NotNil(t, reloaded.FindUserByEmail("zain@test.com"))
}

package cmd

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

const testConfig = `
db_path: bloom.db
log_level: error
rosters:
  filles: [camille, joëlle]
  garcons: [jhosue, nathan]
  coachs: [aurel]
`

var reportID = regexp.MustCompile(`[0-9a-f]{8}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{12}`)

// setupWorkdir chdirs into a fresh directory holding bloom.yaml.
func setupWorkdir(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Chdir(dir)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "bloom.yaml"), []byte(testConfig), 0o644))
	return dir
}

func run(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	out, _, err := runApp(t, stdin, args...)
	return out, err
}

// runApp runs one invocation like Execute does and returns its state.
func runApp(t *testing.T, stdin string, args ...string) (string, *app, error) {
	t.Helper()
	a := &app{}
	root := newRootCommand(a)
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&bytes.Buffer{})
	root.SetIn(strings.NewReader(stdin))
	root.SetArgs(args)
	err := execute(context.Background(), a, root)
	return out.String(), a, err
}

func TestReportFromStdin(t *testing.T) {
	setupWorkdir(t)

	out, err := run(t, "Camile\nJHOSUE\n  aurel \n", "report", "--date", "14/10/2026")
	require.NoError(t, err)

	assert.Contains(t, out, "Date : 14/10/2026")
	assert.Contains(t, out, "✓ Camille")
	assert.Contains(t, out, "✓ Jhosue")
	assert.Contains(t, out, "✗ Joëlle")
	assert.Contains(t, out, "✗ Nathan")
	assert.Contains(t, out, "Coachs absents:\nAucun")
	assert.Contains(t, out, "Total général : 3 présents / 2 absents")
}

func TestReportFromFileAndRecord(t *testing.T) {
	dir := setupWorkdir(t)
	names := filepath.Join(dir, "names.txt")
	require.NoError(t, os.WriteFile(names, []byte("nathan\nquelqu'un\n"), 0o644))

	_, err := run(t, "", "report", names, "--date", "01/02/2026", "--record")
	require.NoError(t, err)

	out, err := run(t, "", "history", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "2026-02-01")

	id := reportID.FindString(out)
	require.NotEmpty(t, id)
	shown, err := run(t, "", "history", "show", id)
	require.NoError(t, err)
	assert.Contains(t, shown, "Date : 01/02/2026")
	assert.Contains(t, shown, "✓ Nathan")
}

func TestReportRejectsBadDate(t *testing.T) {
	setupWorkdir(t)

	_, err := run(t, "camille\n", "report", "--date", "2026-10-14")
	require.Error(t, err)
}

func TestHistoryEmpty(t *testing.T) {
	setupWorkdir(t)

	out, err := run(t, "", "history", "list")
	require.NoError(t, err)
	assert.Equal(t, "No reports recorded\n", out)
}

func TestRosterEdits(t *testing.T) {
	setupWorkdir(t)

	out, err := run(t, "", "roster", "add", "girls", "Sarah", "CAMILLE")
	require.NoError(t, err)
	assert.Equal(t, "added Sarah to filles\nCAMILLE is already in filles\n", out)

	out, err = run(t, "", "roster", "remove", "c", "Aurel")
	require.NoError(t, err)
	assert.Equal(t, "removed Aurel from coachs\n", out)

	_, err = run(t, "", "roster", "remove", "coachs", "aurel")
	require.Error(t, err)

	_, err = run(t, "", "roster", "add", "parents", "someone")
	require.Error(t, err)

	out, err = run(t, "", "roster", "list")
	require.NoError(t, err)
	assert.Equal(t, "Filles (3)\n  camille\n  joëlle\n  Sarah\n\nGarçons (2)\n  jhosue\n  nathan\n\nCoachs (0)\n", out)
}

func TestRosterListYAML(t *testing.T) {
	setupWorkdir(t)

	out, err := run(t, "", "roster", "list", "--format", "yaml")
	require.NoError(t, err)
	assert.Contains(t, out, "rosters:")
	assert.Contains(t, out, "filles:")
	assert.Contains(t, out, "- jhosue")

	_, err = run(t, "", "roster", "list", "--format", "json")
	require.Error(t, err)
}

func TestHashPassword(t *testing.T) {
	setupWorkdir(t)

	out, err := run(t, "", "hash-password", "correct horse")
	require.NoError(t, err)
	hash := strings.TrimSpace(out)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(hash), []byte("correct horse")))

	_, err = run(t, "", "hash-password", "short")
	require.Error(t, err)
}

func TestHashPasswordIgnoresConfig(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "bloom.yaml"), []byte("port: 0\n"), 0o644))

	_, err := run(t, "", "history", "list")
	require.Error(t, err)

	out, err := run(t, "", "hash-password", "correct horse")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "$2"), out)
}

func TestStoreClosedAfterFailure(t *testing.T) {
	setupWorkdir(t)

	_, a, err := runApp(t, "", "roster", "remove", "coachs", "nobody")
	require.Error(t, err)
	require.NotNil(t, a.store)

	_, err = a.store.LoadRosters(context.Background())
	assert.Error(t, err)
}

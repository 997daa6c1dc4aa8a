package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestImportDueList(t *testing.T) {
	t.Setenv("DEFAULT_TZ", "UTC")
	t.Setenv("LOG_LEVEL", "error")
	dir := t.TempDir()
	db := filepath.Join(dir, "meds.db")

	file := filepath.Join(dir, "meds.yaml")
	require.NoError(t, os.WriteFile(file, []byte(`
medications:
  - name: Vitamin D
    time: "08:30"
    start_date: "2025-05-01"
    duration_days: 30
  - name: Magnesium
    time: "21:00"
    start_date: "2025-05-01"
`), 0o600))

	out, err := run(t, "import", file, "--db", db)
	require.NoError(t, err)
	assert.Contains(t, out, "Vitamin D at 08:30")
	assert.Contains(t, out, "Magnesium at 21:00")

	out, err = run(t, "due", "--db", db, "--date", "2025-05-05", "--time", "08:30")
	require.NoError(t, err)
	assert.Contains(t, out, "Vitamin D")
	assert.NotContains(t, out, "Magnesium")

	// Past the end of the 30-day course.
	out, err = run(t, "due", "--db", db, "--date", "2025-05-31", "--time", "08:30")
	require.NoError(t, err)
	assert.Contains(t, out, "Nothing due at 2025-05-31 08:30")

	out, err = run(t, "list", "--db", db)
	require.NoError(t, err)
	assert.Contains(t, out, "Vitamin D")
	assert.Contains(t, out, "Ongoing")
}

func TestDueRejectsBadFlags(t *testing.T) {
	t.Setenv("DEFAULT_TZ", "UTC")
	t.Setenv("LOG_LEVEL", "error")
	db := filepath.Join(t.TempDir(), "meds.db")

	_, err := run(t, "due", "--db", db, "--time", "8:30")
	assert.Error(t, err)
	_, err = run(t, "due", "--db", db, "--date", "2025-02-29")
	assert.Error(t, err)
}

func TestImportRejectsInvalidFile(t *testing.T) {
	t.Setenv("DEFAULT_TZ", "UTC")
	dir := t.TempDir()
	file := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(file, []byte("medications:\n  - name: X\n    time: \"25:00\"\n"), 0o600))

	_, err := run(t, "import", file, "--db", filepath.Join(dir, "meds.db"))
	assert.Error(t, err)
}

package dataset

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/draftsmith-ai/draftsmith/internal/core"
)

func openSeeded(t *testing.T) *SQLite {
	t.Helper()
	db, err := Open(filepath.Join(t.TempDir(), "students.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	require.NoError(t, db.Seed(context.Background()))
	return db
}

func TestSeed_FixedRows(t *testing.T) {
	db := openSeeded(t)

	rows, err := db.Execute(context.Background(), `SELECT COUNT(*) FROM students`)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.EqualValues(t, 6, rows[0][0])
}

func TestSeed_Idempotent(t *testing.T) {
	db := openSeeded(t)
	require.NoError(t, db.Seed(context.Background()))
	require.NoError(t, db.Seed(context.Background()))

	rows, err := db.Execute(context.Background(), `SELECT COUNT(*) FROM students`)
	require.NoError(t, err)
	assert.EqualValues(t, 6, rows[0][0])
}

func TestExecute_HighestGrade(t *testing.T) {
	db := openSeeded(t)

	rows, err := db.Execute(context.Background(),
		`SELECT name, subject, grade FROM students ORDER BY grade DESC LIMIT 1`)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "Bob", rows[0][0])
	assert.Equal(t, "Math", rows[0][1])
	assert.EqualValues(t, 92, rows[0][2])
}

func TestExecute_BadSQL(t *testing.T) {
	db := openSeeded(t)

	_, err := db.Execute(context.Background(), `SELECT nope FROM missing`)
	require.Error(t, err)
	assert.True(t, core.IsCategory(err, core.ErrCatCollaborator))
}

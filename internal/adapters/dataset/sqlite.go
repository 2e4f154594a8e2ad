// Package dataset provides the fixed relational collaborator backing
// the question-answering pipeline.
package dataset

import (
	"context"
	"database/sql"

	_ "modernc.org/sqlite"

	"github.com/draftsmith-ai/draftsmith/internal/core"
)

// SQLite implements core.Dataset on a single-file SQLite database.
type SQLite struct {
	db *sql.DB
}

// Open opens (creating if needed) the database at path. Use ":memory:"
// for an ephemeral store.
func Open(path string) (*SQLite, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, core.ErrCollaborator(core.CodeQueryFailed, "opening database").WithCause(err)
	}
	// database/sql pooling breaks :memory: databases, which exist per
	// connection. One connection is enough for this workload anyway.
	db.SetMaxOpenConns(1)
	return &SQLite{db: db}, nil
}

// seedRows is the fixed demo dataset. Seed always converges to exactly
// these rows regardless of prior contents.
var seedRows = []struct {
	name    string
	subject string
	grade   int
}{
	{"Alice", "Math", 85},
	{"Alice", "Science", 78},
	{"Bob", "Math", 92},
	{"Bob", "Science", 88},
	{"Charlie", "Math", 76},
	{"Charlie", "Science", 82},
}

// Seed (re)creates the students table with its fixed rows.
func (s *SQLite) Seed(ctx context.Context) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return core.ErrCollaborator(core.CodeQueryFailed, "beginning seed transaction").WithCause(err)
	}
	defer func() { _ = tx.Rollback() }()

	const schema = `CREATE TABLE IF NOT EXISTS students (
		name TEXT NOT NULL,
		subject TEXT NOT NULL,
		grade INTEGER NOT NULL
	)`
	if _, err := tx.ExecContext(ctx, schema); err != nil {
		return core.ErrCollaborator(core.CodeQueryFailed, "creating students table").WithCause(err)
	}
	if _, err := tx.ExecContext(ctx, `DELETE FROM students`); err != nil {
		return core.ErrCollaborator(core.CodeQueryFailed, "clearing students table").WithCause(err)
	}
	for _, row := range seedRows {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO students (name, subject, grade) VALUES (?, ?, ?)`,
			row.name, row.subject, row.grade); err != nil {
			return core.ErrCollaborator(core.CodeQueryFailed, "inserting seed row").WithCause(err)
		}
	}
	if err := tx.Commit(); err != nil {
		return core.ErrCollaborator(core.CodeQueryFailed, "committing seed").WithCause(err)
	}
	return nil
}

// Execute runs one statement and materializes every row.
func (s *SQLite) Execute(ctx context.Context, query string) ([][]any, error) {
	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, core.ErrCollaborator(core.CodeQueryFailed, "executing query").WithCause(err)
	}
	defer rows.Close()

	cols, err := rows.Columns()
	if err != nil {
		return nil, core.ErrCollaborator(core.CodeQueryFailed, "reading columns").WithCause(err)
	}

	var out [][]any
	for rows.Next() {
		values := make([]any, len(cols))
		ptrs := make([]any, len(cols))
		for i := range values {
			ptrs[i] = &values[i]
		}
		if err := rows.Scan(ptrs...); err != nil {
			return nil, core.ErrCollaborator(core.CodeQueryFailed, "scanning row").WithCause(err)
		}
		for i, v := range values {
			if b, ok := v.([]byte); ok {
				values[i] = string(b)
			}
		}
		out = append(out, values)
	}
	if err := rows.Err(); err != nil {
		return nil, core.ErrCollaborator(core.CodeQueryFailed, "iterating rows").WithCause(err)
	}
	return out, nil
}

// Close releases the database handle.
func (s *SQLite) Close() error {
	return s.db.Close()
}

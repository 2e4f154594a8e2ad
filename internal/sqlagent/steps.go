package sqlagent

import (
	"context"
	"fmt"
	"strings"

	"github.com/draftsmith-ai/draftsmith/internal/core"
)

// errOnlySelect is the rejection message the validate step records.
// shouldReparse keys off it, so the two must stay in sync.
const errOnlySelect = "Only SELECT queries allowed"

// parse asks the model for one SQL statement answering the question.
// No validation happens here; that is the next step's job.
func (a *Agent) parse(ctx context.Context, s *core.QueryState) error {
	if strings.TrimSpace(s.Question) == "" {
		return core.ErrMissingField("question")
	}
	prompt := fmt.Sprintf(
		"Convert this question to SQL for students table (columns: name, subject, grade): %s",
		s.Question)
	resp, err := a.model.Complete(ctx, prompt)
	if err != nil {
		return core.ErrCollaborator(core.CodeModelFailed, "generating SQL").WithCause(err)
	}
	s.SQL = stripFences(resp)
	a.log.Debug("sql generated", "run_id", s.RunID, "sql", s.SQL)
	return nil
}

// stripFences removes a markdown code fence wrapping, which chat models
// add routinely.
func stripFences(s string) string {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "```") {
		s = strings.TrimPrefix(s, "```")
		if i := strings.Index(s, "\n"); i >= 0 && !strings.ContainsAny(s[:i], " \t") {
			// Language tag on the opening fence, e.g. ```sql
			s = s[i+1:]
		}
		s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	}
	return strings.TrimSpace(s)
}

// validate is the only write/DDL guard in the system: anything whose
// first keyword is not SELECT is rejected before it can reach the
// dataset.
func (a *Agent) validate(_ context.Context, s *core.QueryState) error {
	fields := strings.Fields(s.SQL)
	if len(fields) == 0 || !strings.EqualFold(fields[0], "SELECT") {
		a.log.Warn("statement rejected", "run_id", s.RunID, "sql", s.SQL)
		s.Err = errOnlySelect
		return nil
	}
	s.Err = ""
	return nil
}

// execute runs the validated statement. Failures are captured in the
// state, never raised; respond turns them into a user-facing message.
func (a *Agent) execute(ctx context.Context, s *core.QueryState) error {
	if s.Failed() {
		return nil
	}
	rows, err := a.dataset.Execute(ctx, s.SQL)
	if err != nil {
		a.log.Warn("query execution failed", "run_id", s.RunID, "error", err)
		s.Err = err.Error()
		s.Rows = nil
		return nil
	}
	s.Rows = rows
	s.Err = ""
	return nil
}

// respond produces the final answer: a plain error string when the run
// failed, otherwise one model call narrating the rows.
func (a *Agent) respond(ctx context.Context, s *core.QueryState) error {
	if s.Failed() {
		s.Response = "Error: " + s.Err
		return nil
	}
	prompt := fmt.Sprintf(
		"Convert this SQL result to natural language. Question: %s, Results: %v",
		s.Question, s.Rows)
	resp, err := a.model.Complete(ctx, prompt)
	if err != nil {
		return core.ErrCollaborator(core.CodeModelFailed, "narrating results").WithCause(err)
	}
	s.Response = strings.TrimSpace(resp)
	return nil
}

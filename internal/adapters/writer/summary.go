package writer

import (
	"encoding/json"

	"github.com/google/renameio/v2"

	"github.com/draftsmith-ai/draftsmith/internal/core"
)

// WriteSummary persists the final assembly record as pretty-printed
// JSON, atomically, so a crash never leaves a half-written summary.
func WriteSummary(path string, assembly *core.Assembly) error {
	if assembly == nil {
		return core.ErrMissingField("final_output")
	}
	data, err := json.MarshalIndent(assembly, "", "  ")
	if err != nil {
		return core.ErrCollaborator(core.CodeWriteFailed, "encoding summary").WithCause(err)
	}
	data = append(data, '\n')
	if err := renameio.WriteFile(path, data, 0o644); err != nil {
		return core.ErrCollaborator(core.CodeWriteFailed, "writing summary").WithCause(err)
	}
	return nil
}

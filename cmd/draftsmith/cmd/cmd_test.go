package cmd

import (
	"bytes"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/draftsmith-ai/draftsmith/internal/core"
)

func TestVersionCommand(t *testing.T) {
	SetVersion("1.0.0", "abc123", "2026-01-01")
	var out bytes.Buffer
	versionCmd.SetOut(&out)
	versionCmd.Run(versionCmd, nil)
	assert.Contains(t, out.String(), "draftsmith 1.0.0")
	assert.Contains(t, out.String(), "abc123")
}

func TestPromptForQuery_DefaultOnEmptyInput(t *testing.T) {
	c := &cobra.Command{}
	var out bytes.Buffer
	c.SetOut(&out)
	c.SetIn(strings.NewReader("\n"))
	assert.Equal(t, defaultQuery, promptForQuery(c))
	assert.Contains(t, out.String(), defaultQuery)
}

func TestPromptForQuery_ReadsLine(t *testing.T) {
	c := &cobra.Command{}
	c.SetOut(&bytes.Buffer{})
	c.SetIn(strings.NewReader("  write a report on tides  \n"))
	assert.Equal(t, "write a report on tides", promptForQuery(c))
}

func TestGraphCommand_PrintsBothPipelines(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, printContentGraph(&out))
	require.NoError(t, printSQLGraph(&out))
	got := out.String()
	assert.Contains(t, got, "%% content pipeline")
	assert.Contains(t, got, "%% sql pipeline")
	assert.Contains(t, got, "START([start]) --> analyze")
	assert.Contains(t, got, "analyze --> research")
	assert.Contains(t, got, "generate -->|with_visuals| visuals")
	assert.Contains(t, got, "generate -->|no_visuals| template")
	assert.Contains(t, got, "assemble --> END([end])")
	assert.Contains(t, got, "validate -->|parse| parse")
	assert.Contains(t, got, "respond --> END([end])")
}

func TestRenderSummary(t *testing.T) {
	state := &core.ContentState{
		ContentType:  core.ContentTypeDocument,
		Template:     "professional_report",
		QualityScore: 0.7,
		FinalOutput: &core.Assembly{
			FilesCreated: []string{"tides_document.pdf"},
		},
	}
	got := renderSummary(state, "out/output.json")
	require.NotEmpty(t, got)
	assert.Contains(t, got, "document")
	assert.Contains(t, got, "professional_report")
	assert.Contains(t, got, "tides_document.pdf")
	assert.Contains(t, got, "0.70")
}

package chart

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/draftsmith-ai/draftsmith/internal/core"
)

func TestRenderer_Render(t *testing.T) {
	dir := t.TempDir()
	r := NewRenderer(dir)

	spec := core.ChartSpec{
		Title:      "Key Insights",
		YLabel:     "Relevance",
		Categories: []string{"Current Trends", "Future Outlook", "Key Benefits"},
		Values:     []float64{30, 45, 25},
	}

	path, png, err := r.Render(context.Background(), spec, "chart_test.png")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "chart_test.png"), path)
	require.NotEmpty(t, png)

	// File bytes and returned bytes come from one rendering pass.
	onDisk, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, bytes.Equal(png, onDisk))

	// PNG magic number.
	assert.Equal(t, []byte{0x89, 'P', 'N', 'G'}, png[:4])
}

func TestRenderer_RejectsMismatchedSpec(t *testing.T) {
	r := NewRenderer(t.TempDir())

	_, _, err := r.Render(context.Background(), core.ChartSpec{
		Categories: []string{"a", "b"},
		Values:     []float64{1},
	}, "bad.png")
	require.Error(t, err)
	assert.True(t, core.IsCategory(err, core.ErrCatValidation))
}

func TestRenderer_CanceledContext(t *testing.T) {
	r := NewRenderer(t.TempDir())
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, _, err := r.Render(ctx, core.ChartSpec{
		Categories: []string{"a"},
		Values:     []float64{1},
	}, "never.png")
	require.Error(t, err)
}

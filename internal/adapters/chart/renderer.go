// Package chart renders pipeline visuals as PNG bar charts.
package chart

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"

	gochart "github.com/wcharczuk/go-chart/v2"

	"github.com/draftsmith-ai/draftsmith/internal/core"
)

// Renderer implements core.ChartRenderer with go-chart. The chart is
// rendered exactly once; the on-disk file and the returned bytes come
// from the same buffer so both representations are identical.
type Renderer struct {
	outDir string
}

// NewRenderer creates a chart renderer writing into outDir.
func NewRenderer(outDir string) *Renderer {
	if outDir == "" {
		outDir = "."
	}
	return &Renderer{outDir: outDir}
}

// Render draws a bar chart and persists it under the given filename.
func (r *Renderer) Render(ctx context.Context, spec core.ChartSpec, filename string) (string, []byte, error) {
	if err := ctx.Err(); err != nil {
		return "", nil, err
	}
	if len(spec.Categories) == 0 || len(spec.Categories) != len(spec.Values) {
		return "", nil, core.ErrInvalidInput(core.CodeRenderFailed,
			fmt.Sprintf("chart spec mismatch: %d categories, %d values", len(spec.Categories), len(spec.Values)))
	}

	bars := make([]gochart.Value, len(spec.Categories))
	for i, cat := range spec.Categories {
		bars[i] = gochart.Value{Label: cat, Value: spec.Values[i]}
	}

	bar := gochart.BarChart{
		Title:    spec.Title,
		Width:    1024,
		Height:   612,
		BarWidth: 80,
		XAxis: gochart.Style{
			TextRotationDegrees: 0,
		},
		YAxis: gochart.YAxis{
			Name: spec.YLabel,
		},
		Bars: bars,
	}

	var buf bytes.Buffer
	if err := bar.Render(gochart.PNG, &buf); err != nil {
		return "", nil, core.ErrCollaborator(core.CodeRenderFailed, "rendering chart").WithCause(err)
	}

	path := filepath.Join(r.outDir, filename)
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return "", nil, core.ErrCollaborator(core.CodeRenderFailed, "writing chart file").WithCause(err)
	}

	return path, buf.Bytes(), nil
}

package content

import (
	"context"
	"encoding/base64"

	"github.com/draftsmith-ai/draftsmith/internal/core"
)

// chartCategories and chartValues are the fixed placeholder series for
// the single overview chart.
var (
	chartCategories = []string{"Current Trends", "Future Outlook", "Key Benefits"}
	chartValues     = []float64{30, 45, 25}
)

// visuals renders exactly one bar chart for chart-bearing content
// types. The renderer returns the same bytes it wrote to disk, so the
// embedded base64 copy is pixel-identical to the file. A render failure
// leaves the run without visuals; the assembler tolerates that.
func (p *Pipeline) visuals(ctx context.Context, s *core.ContentState) error {
	if s.ContentType != core.ContentTypePresentation && s.ContentType != core.ContentTypeDocument {
		s.Visuals = nil
		return nil
	}

	spec := core.ChartSpec{
		Title:      "Analysis Overview: " + s.Query,
		XLabel:     "Categories",
		YLabel:     "Impact Score",
		Categories: chartCategories,
		Values:     chartValues,
	}
	filename := "chart_" + core.FilenameBase(s.Query) + ".png"

	path, png, err := p.charts.Render(ctx, spec, filename)
	if err != nil {
		p.log.Warn("chart rendering failed, continuing without visuals", "run_id", s.RunID, "error", err)
		s.Visuals = nil
		return nil
	}

	s.Visuals = []core.Visual{{
		Type:     "chart",
		Filename: filename,
		Data:     base64.StdEncoding.EncodeToString(png),
		Caption:  "Analysis overview for " + s.Query,
	}}
	p.log.Info("visual created", "run_id", s.RunID, "path", path)
	return nil
}

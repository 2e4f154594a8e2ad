package writer

import (
	"bytes"
	"context"
	"html/template"
	"path/filepath"

	"github.com/google/renameio/v2"

	"github.com/draftsmith-ai/draftsmith/internal/core"
)

// WebpageWriter produces a single self-contained HTML page. Visuals are
// embedded as data URIs so the page has no file dependencies.
type WebpageWriter struct {
	outDir string
}

// NewWebpageWriter creates a webpage writer targeting outDir.
func NewWebpageWriter(outDir string) *WebpageWriter {
	if outDir == "" {
		outDir = "."
	}
	return &WebpageWriter{outDir: outDir}
}

type pageData struct {
	Title    string
	Sections []core.Section
	Visuals  []core.Visual
	Sources  []string
}

var pageTmpl = template.Must(template.New("page").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>{{.Title}}</title>
<style>
body { font-family: Georgia, serif; max-width: 860px; margin: 2rem auto; padding: 0 1rem; color: #222; }
h1 { border-bottom: 2px solid #4472c4; padding-bottom: 0.3rem; }
h2 { color: #4472c4; margin-top: 2rem; }
figure { margin: 1.5rem 0; text-align: center; }
figcaption { font-size: 0.9rem; color: #666; }
img { max-width: 100%; }
ul.sources { font-size: 0.9rem; }
</style>
</head>
<body>
<h1>{{.Title}}</h1>
{{range .Sections}}<section>
<h2>{{.Name}}</h2>
<p>{{.Text}}</p>
</section>
{{end}}{{range .Visuals}}<figure>
<img src="data:image/png;base64,{{.Data}}" alt="{{.Caption}}">
<figcaption>{{.Caption}}</figcaption>
</figure>
{{end}}{{if .Sources}}<section>
<h2>Sources</h2>
<ul class="sources">
{{range .Sources}}<li><a href="{{.}}">{{.}}</a></li>
{{end}}</ul>
</section>
{{end}}</body>
</html>
`))

// Write renders state.Generated as an HTML page and returns the filename.
func (w *WebpageWriter) Write(ctx context.Context, state *core.ContentState) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if len(state.Generated) == 0 {
		return "", core.ErrMissingField("generated_content")
	}

	filename := core.FilenameBase(state.Query) + "_webpage.html"
	path := filepath.Join(w.outDir, filename)

	var buf bytes.Buffer
	err := pageTmpl.Execute(&buf, pageData{
		Title:    state.Query,
		Sections: state.Generated,
		Visuals:  state.Visuals,
		Sources:  sourceURLs(state),
	})
	if err != nil {
		return "", core.ErrCollaborator(core.CodeWriteFailed, "rendering webpage").WithCause(err)
	}
	if err := renameio.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return "", core.ErrCollaborator(core.CodeWriteFailed, "writing webpage").WithCause(err)
	}
	return filename, nil
}

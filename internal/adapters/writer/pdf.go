package writer

import (
	"bytes"
	"context"
	"path/filepath"

	"github.com/go-pdf/fpdf"
	"github.com/google/renameio/v2"

	"github.com/draftsmith-ai/draftsmith/internal/core"
)

// PDFWriter produces a report-style PDF, one heading per generated
// section with the chart visuals embedded inline.
type PDFWriter struct {
	outDir string
}

// NewPDFWriter creates a document writer targeting outDir.
func NewPDFWriter(outDir string) *PDFWriter {
	if outDir == "" {
		outDir = "."
	}
	return &PDFWriter{outDir: outDir}
}

// Write renders state.Generated as a PDF and returns the filename.
func (w *PDFWriter) Write(ctx context.Context, state *core.ContentState) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if len(state.Generated) == 0 {
		return "", core.ErrMissingField("generated_content")
	}

	filename := core.FilenameBase(state.Query) + "_document.pdf"
	path := filepath.Join(w.outDir, filename)

	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetTitle(state.Query, true)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 20)
	pdf.MultiCell(0, 10, state.Query, "", "C", false)
	pdf.Ln(6)

	for _, sec := range state.Generated {
		pdf.SetFont("Helvetica", "B", 14)
		pdf.MultiCell(0, 8, sec.Name, "", "L", false)
		pdf.Ln(1)
		pdf.SetFont("Helvetica", "", 11)
		pdf.MultiCell(0, 6, sec.Text, "", "L", false)
		pdf.Ln(4)
	}

	for _, v := range state.Visuals {
		png, err := decodeVisual(v)
		if err != nil {
			continue
		}
		pdf.RegisterImageOptionsReader(v.Filename, fpdf.ImageOptions{ImageType: "PNG"}, bytes.NewReader(png))
		pdf.AddPage()
		pdf.SetFont("Helvetica", "B", 14)
		pdf.MultiCell(0, 8, v.Caption, "", "L", false)
		pdf.Ln(2)
		x, y := pdf.GetXY()
		pdf.ImageOptions(v.Filename, x, y, 170, 0, false, fpdf.ImageOptions{ImageType: "PNG"}, 0, "")
	}

	if urls := sourceURLs(state); len(urls) > 0 {
		pdf.AddPage()
		pdf.SetFont("Helvetica", "B", 14)
		pdf.MultiCell(0, 8, "Sources", "", "L", false)
		pdf.SetFont("Helvetica", "", 10)
		for _, src := range urls {
			pdf.MultiCell(0, 6, src, "", "L", false)
		}
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return "", core.ErrCollaborator(core.CodeWriteFailed, "rendering pdf").WithCause(err)
	}
	if err := renameio.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return "", core.ErrCollaborator(core.CodeWriteFailed, "writing pdf").WithCause(err)
	}
	return filename, nil
}

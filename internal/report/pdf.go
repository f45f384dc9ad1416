package report

import (
	"bytes"
	"fmt"

	"movie-catalog/internal/models"

	"github.com/go-pdf/fpdf"
)

// PDF layout, in points.
const (
	margin      = 50.0
	lineHeight  = 20.0
	titleSize   = 20.0
	headingSize = 14.0
	detailSize  = 12.0
	indent      = 15.0
)

// RenderPDF draws the report on A4 pages. A new page starts once fewer than
// four lines fit above the bottom margin.
func RenderPDF(title string, entries []models.ReportEntry) ([]byte, error) {
	pdf := fpdf.New("P", "pt", "A4", "")
	pdf.SetTitle(title, true)
	pdf.SetAutoPageBreak(false, margin)
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	_, pageHeight := pdf.GetPageSize()
	limit := pageHeight - (margin + 4*lineHeight)

	pdf.AddPage()
	y := margin + titleSize
	pdf.SetFont("Helvetica", "B", titleSize)
	pdf.Text(margin, y, tr(title))
	y += 2 * lineHeight

	for _, e := range entries {
		if y > limit {
			pdf.AddPage()
			y = margin + lineHeight
		}

		pdf.SetFont("Helvetica", "B", headingSize)
		pdf.Text(margin, y, tr(e.Heading))
		y += lineHeight

		pdf.SetFont("Helvetica", "", detailSize)
		for _, d := range e.Details {
			pdf.Text(margin+indent, y, tr(line(d)))
			y += lineHeight
		}
		y += lineHeight / 2
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("render pdf: %w", err)
	}
	return buf.Bytes(), nil
}

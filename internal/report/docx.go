package report

import (
	"bytes"
	"fmt"

	"movie-catalog/internal/models"

	"github.com/fumiama/go-docx"
)

// Run colours and sizes (half-points).
const (
	titleColor   = "1F4E78"
	headingColor = "2E75B6"
	labelColor   = "5B9BD5"
	docTitleSize = "28"
	docHeadSize  = "24"
	docTextSize  = "22"
)

// RenderDOCX writes the report as a single flowing Word document.
func RenderDOCX(title string, entries []models.ReportEntry) ([]byte, error) {
	doc := docx.New().WithDefaultTheme()

	p := doc.AddParagraph()
	p.Justification("center")
	p.AddText(title).Bold().Size(docTitleSize).Color(titleColor)
	doc.AddParagraph()

	for _, e := range entries {
		doc.AddParagraph().AddText(e.Heading).Bold().Size(docHeadSize).Color(headingColor)
		for _, d := range e.Details {
			line := doc.AddParagraph()
			line.AddText(d.Label + ": ").Bold().Size(docTextSize).Color(labelColor)
			line.AddText(d.Value).Size(docTextSize)
		}
		doc.AddParagraph()
	}

	var buf bytes.Buffer
	if _, err := doc.WriteTo(&buf); err != nil {
		return nil, fmt.Errorf("render docx: %w", err)
	}
	return buf.Bytes(), nil
}

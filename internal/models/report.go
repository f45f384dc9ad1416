package models

// ReportFormat is the document format of a favorites report.
type ReportFormat string

const (
	ReportPDF  ReportFormat = "pdf"
	ReportDOCX ReportFormat = "docx"
)

// ContentType returns the MIME type of the format.
func (f ReportFormat) ContentType() string {
	switch f {
	case ReportPDF:
		return "application/pdf"
	case ReportDOCX:
		return "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
	}
	return "application/octet-stream"
}

// Valid reports whether the format is supported.
func (f ReportFormat) Valid() bool {
	return f == ReportPDF || f == ReportDOCX
}

// Report is a rendered document ready to be sent.
type Report struct {
	Filename    string
	ContentType string
	Body        []byte
}

// ReportEntry is one record of a report: a heading and labelled detail lines.
type ReportEntry struct {
	Heading string
	Details []ReportField
}

// ReportField is a labelled value inside a report entry.
type ReportField struct {
	Label string
	Value string
}

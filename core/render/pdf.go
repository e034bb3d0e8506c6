// Package render — PDF renderer.
// Produces a printable shipment report using gofpdf: a title block,
// then one heading per section with its records as label/value lines.
package render

import (
	"bytes"
	"sort"
	"strings"

	"github.com/jung-kurt/gofpdf"

	"github.com/gaurav-prasanna/cargotab/core"
)

// PDFRenderer renders the envelope as a PDF document.
type PDFRenderer struct{}

// NewPDFRenderer creates a PDFRenderer.
func NewPDFRenderer() *PDFRenderer {
	return &PDFRenderer{}
}

// Render converts the envelope into PDF bytes.
func (r *PDFRenderer) Render(env *core.Envelope) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetAutoPageBreak(true, 15)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 18)
	pdf.MultiCell(0, 8, "Tracking "+env.TrackingID, "", "L", false)
	pdf.Ln(2)

	pdf.SetFont("Helvetica", "I", 9)
	pdf.SetTextColor(100, 100, 100)
	pdf.MultiCell(0, 5, "Source: "+env.SourceName+" — extracted "+env.ExtractedAt, "", "L", false)
	pdf.SetTextColor(0, 0, 0)
	pdf.Ln(4)

	if env.Warning != "" {
		pdf.SetFont("Helvetica", "I", 10)
		pdf.MultiCell(0, 5, env.Warning, "", "L", false)
	}

	for _, report := range env.Tables {
		renderSectionHeading(pdf, report)

		for _, record := range report.Records {
			renderRecord(pdf, record)
		}
		for _, row := range report.Rows {
			pdf.SetFont("Helvetica", "", 10)
			pdf.MultiCell(0, 5, strings.Join(row, "  |  "), "", "L", false)
		}
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Extension returns the file extension for PDF output.
func (r *PDFRenderer) Extension() string {
	return ".pdf"
}

func renderSectionHeading(pdf *gofpdf.Fpdf, report core.TableReport) {
	heading := report.SectionTitle
	if heading == "" {
		heading = report.TableID
	}
	pdf.Ln(4)
	pdf.SetFont("Helvetica", "B", 13)
	pdf.MultiCell(0, 7, heading, "", "L", false)
	pdf.Ln(1)
}

func renderRecord(pdf *gofpdf.Fpdf, record core.Record) {
	keys := make([]string, 0, len(record))
	for key := range record {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	for _, key := range keys {
		pdf.SetFont("Helvetica", "B", 10)
		pdf.CellFormat(50, 5, key, "", 0, "L", false, 0, "")
		pdf.SetFont("Helvetica", "", 10)
		pdf.MultiCell(0, 5, record[key], "", "L", false)
	}
	pdf.Ln(2)
}

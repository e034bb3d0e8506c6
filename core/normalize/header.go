package normalize

import "github.com/gaurav-prasanna/cargotab/core"

// maxInferredHeaderLen caps cell length for the SeaLine header scan.
// Data cells on that layout routinely exceed it (remarks, addresses).
const maxInferredHeaderLen = 100

// HeaderNormalizer handles the SeaLine layout: plain tables where the
// first row that looks like a header labels every row after it.
type HeaderNormalizer struct{}

// NewHeaderNormalizer creates a HeaderNormalizer.
func NewHeaderNormalizer() *HeaderNormalizer {
	return &HeaderNormalizer{}
}

// Normalize scans for the first row with more than one cell and all
// cell texts shorter than 100 characters, and maps every later row
// against it. When no row qualifies, row 0 is used as the header even
// if it is a single cell; the output is then plausible but unverified,
// which callers accept over an error since source markup is not
// contractually stable.
func (n *HeaderNormalizer) Normalize(table core.Table) []core.ReportSection {
	if len(table.Rows) == 0 {
		return []core.ReportSection{{TableID: table.ID}}
	}

	headerIdx := 0
	for i, row := range table.Rows {
		if isInferredHeader(row) {
			headerIdx = i
			break
		}
	}
	header := headerKeys(table.Rows[headerIdx])

	var records []core.Record
	for _, row := range table.Rows[headerIdx+1:] {
		records = append(records, mapDefinedCells(header, row))
	}

	return []core.ReportSection{{TableID: table.ID, Records: records}}
}

func isInferredHeader(row core.Row) bool {
	if len(row.Cells) <= 1 {
		return false
	}
	for _, cell := range row.Cells {
		if len(cell.Text) >= maxInferredHeaderLen {
			return false
		}
	}
	return true
}

// mapDefinedCells maps a row positionally against the header, emitting
// a key only for positions the row actually defines: a short row omits
// its missing trailing keys, and cells beyond the header are dropped.
func mapDefinedCells(header []string, row core.Row) core.Record {
	record := make(core.Record, len(header))
	for i := range header {
		if i >= len(row.Cells) {
			break
		}
		record[keyAt(header, i)] = row.Cells[i].Text
	}
	return record
}

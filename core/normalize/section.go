package normalize

import (
	"regexp"
	"strings"

	"github.com/gaurav-prasanna/cargotab/core"
)

// sectionMarker is the case-sensitive substring that, in a single-cell
// row, introduces a new subsection of the SkyCargo report table.
const sectionMarker = "DETAILS"

// Header candidate shape limits. A row of column labels is short and
// narrow; anything wider or longer is data.
const (
	maxHeaderCells   = 20
	maxHeaderCellLen = 50
)

// datePattern matches values like 05-Jan-24. A row containing one is a
// data row even when it otherwise passes the header shape test.
var datePattern = regexp.MustCompile(`\d{2}-[A-Za-z]{3}-\d{2}`)

// sectionState tracks progress through one subsection of the table.
type sectionState int

const (
	noSection sectionState = iota
	awaitingHeader
	haveHeader
)

// SectionNormalizer handles the SkyCargo layout: one flat table whose
// logical subsections are delimited by in-band marker rows, each
// followed by its own header row and data rows.
type SectionNormalizer struct{}

// NewSectionNormalizer creates a SectionNormalizer.
func NewSectionNormalizer() *SectionNormalizer {
	return &SectionNormalizer{}
}

// Normalize splits the table into titled sections. Rows before the
// first marker are ignored; within a section, rows are skipped until a
// header candidate is found, and after that only rows matching the
// header's cell count become records. Sections that accumulated no
// records are discarded.
func (n *SectionNormalizer) Normalize(table core.Table) []core.ReportSection {
	var (
		sections []core.ReportSection
		current  *core.ReportSection
		header   []string
		state    = noSection
	)

	flush := func() {
		if current != nil && len(current.Records) > 0 {
			sections = append(sections, *current)
		}
		current = nil
	}

	for _, row := range table.Rows {
		if isSectionStart(row) {
			flush()
			title := row.Cells[0].Text
			current = &core.ReportSection{Title: title, TableID: slugify(title)}
			header = nil
			state = awaitingHeader
			continue
		}

		switch state {
		case noSection:
			// Nothing to attach the row to.
		case awaitingHeader:
			if isHeaderCandidate(row) {
				header = headerKeys(row)
				state = haveHeader
			}
		case haveHeader:
			if len(row.Cells) == len(header) {
				current.Records = append(current.Records, mapToRecord(header, row))
			}
			// Mismatched rows are skipped without resetting state.
		}
	}
	flush()

	return sections
}

// isSectionStart reports whether the row is a section marker: exactly
// one cell whose text contains the marker substring.
func isSectionStart(row core.Row) bool {
	return len(row.Cells) == 1 && strings.Contains(row.Cells[0].Text, sectionMarker)
}

// isHeaderCandidate applies the shape heuristics that distinguish a row
// of column labels from a row of data.
func isHeaderCandidate(row core.Row) bool {
	if len(row.Cells) <= 1 || len(row.Cells) >= maxHeaderCells {
		return false
	}
	for _, cell := range row.Cells {
		if len(cell.Text) >= maxHeaderCellLen {
			return false
		}
		if datePattern.MatchString(cell.Text) {
			return false
		}
	}
	return true
}

// mapToRecord maps a row positionally against the header. Missing
// trailing cells default to the empty string.
func mapToRecord(header []string, row core.Row) core.Record {
	record := make(core.Record, len(header))
	for i := range header {
		value := ""
		if i < len(row.Cells) {
			value = row.Cells[i].Text
		}
		record[keyAt(header, i)] = value
	}
	return record
}

// slugify derives a section's table id from its title: lower-cased,
// whitespace runs replaced with a single underscore.
func slugify(title string) string {
	return whitespaceRun.ReplaceAllString(strings.ToLower(strings.TrimSpace(title)), "_")
}

// Package assemble packages normalized tables into the output envelope.
// It is pure restructuring: no filtering happens here beyond what the
// normalizers already applied.
package assemble

import (
	"time"

	"github.com/google/uuid"

	"github.com/gaurav-prasanna/cargotab/core"
)

// Granularity selects what each table report carries.
type Granularity string

const (
	// GranularityRecords emits header-keyed records per section.
	GranularityRecords Granularity = "records"
	// GranularityRaw emits the extracted rows as plain string lists,
	// bypassing normalization.
	GranularityRaw Granularity = "raw"
)

// Assembler builds envelopes. Now and NewID default to the wall clock
// and random uuids; tests pin them for byte-identical output.
type Assembler struct {
	Granularity Granularity
	Now         func() time.Time
	NewID       func() string
}

// New creates an Assembler for the given granularity.
func New(granularity Granularity) *Assembler {
	return &Assembler{
		Granularity: granularity,
		Now:         time.Now,
		NewID:       uuid.NewString,
	}
}

// Assemble combines the per-table normalizer output into one envelope.
// sections holds, for each retained table in order, the sections its
// normalizer produced; it is ignored for raw granularity. table_number
// is reassigned densely over the emitted reports.
func (a *Assembler) Assemble(trackingID string, source core.Source, tables []core.Table, sections [][]core.ReportSection) *core.Envelope {
	env := &core.Envelope{
		TrackingID:   trackingID,
		SourceName:   source.Label(),
		SourceCode:   string(source),
		ExtractionID: a.NewID(),
		ExtractedAt:  a.Now().UTC().Format(time.RFC3339),
	}

	if a.Granularity == GranularityRaw {
		env.Tables = rawReports(tables)
	} else {
		env.Tables = recordReports(sections)
	}
	env.TotalTables = len(env.Tables)
	if env.TotalTables == 0 {
		env.Warning = core.WarningEmptyResult
	}
	return env
}

func recordReports(sections [][]core.ReportSection) []core.TableReport {
	var reports []core.TableReport
	for _, tableSections := range sections {
		for _, section := range tableSections {
			reports = append(reports, core.TableReport{
				TableID:      section.TableID,
				TableNumber:  len(reports) + 1,
				SectionTitle: section.Title,
				TotalRows:    len(section.Records),
				Records:      section.Records,
			})
		}
	}
	return reports
}

func rawReports(tables []core.Table) []core.TableReport {
	var reports []core.TableReport
	for _, table := range tables {
		rows := make([][]string, len(table.Rows))
		for i, row := range table.Rows {
			texts := make([]string, len(row.Cells))
			for j, cell := range row.Cells {
				texts[j] = cell.Text
			}
			rows[i] = texts
		}
		reports = append(reports, core.TableReport{
			TableID:     table.ID,
			TableNumber: len(reports) + 1,
			TotalRows:   table.TotalRows,
			Rows:        rows,
		})
	}
	return reports
}
